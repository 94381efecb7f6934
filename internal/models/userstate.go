package models

// ConversationState represents the state of a conversation with a user
type ConversationState int

const (
	// Default is the initial state
	Default ConversationState = iota
	// AwaitingBookingDay is the state when the user is picking a day on the calendar
	AwaitingBookingDay
	// AwaitingBookingConfirm is the state when the user is confirming the picked day
	AwaitingBookingConfirm
	// AwaitingAddress is the state when the user is typing an address for the shop search
	AwaitingAddress
	// AwaitingShopPick is the state when the user is choosing a shop from the search result
	AwaitingShopPick
	// AwaitingServiceTerm is the state when the user is typing a service search term
	AwaitingServiceTerm
	// AwaitingServicePick is the state when the user is choosing a service to add to a quote
	AwaitingServicePick
	// AwaitingQuoteAction is the state when the user is looking at the highlighted quote
	AwaitingQuoteAction
	// AwaitingQuoteConfirm is the state when the user is confirming a quote action
	AwaitingQuoteConfirm
	// AwaitingDiagnosticInput is the state when the user is describing a problem or sending a photo
	AwaitingDiagnosticInput
	// InSupportChat is the state when texts are forwarded to the support flow
	InSupportChat
	// AwaitingSupportFinalize is the state when the user is confirming the chat finalization
	AwaitingSupportFinalize
)

var conversationStateNames = map[ConversationState]string{
	Default:                 "default",
	AwaitingBookingDay:      "awaiting_booking_day",
	AwaitingBookingConfirm:  "awaiting_booking_confirm",
	AwaitingAddress:         "awaiting_address",
	AwaitingShopPick:        "awaiting_shop_pick",
	AwaitingServiceTerm:     "awaiting_service_term",
	AwaitingServicePick:     "awaiting_service_pick",
	AwaitingQuoteAction:     "awaiting_quote_action",
	AwaitingQuoteConfirm:    "awaiting_quote_confirm",
	AwaitingDiagnosticInput: "awaiting_diagnostic_input",
	InSupportChat:           "in_support_chat",
	AwaitingSupportFinalize: "awaiting_support_finalize",
}

// String returns the state name used in logs
func (s ConversationState) String() string {
	if name, ok := conversationStateNames[s]; ok {
		return name
	}
	return "unknown"
}

// UserState represents the state of a user's conversation
type UserState struct {
	State   ConversationState `json:"state"`
	Payload *string           `json:"payload,omitempty"`
	Day     *int              `json:"day,omitempty"`
	QuoteID *int64            `json:"quote_id,omitempty"`
}
