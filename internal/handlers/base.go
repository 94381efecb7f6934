package handlers

import (
	"bytes"
	"encoding/json"
	"html"
	"strings"

	"github.com/sirupsen/logrus"
	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/commands"
	"oficina-tg-client/internal/config"
	"oficina-tg-client/internal/services"
)

// Services groups the application services used by the screens
type Services struct {
	Booking    *services.BookingService
	Map        *services.MapService
	Catalog    *services.CatalogService
	Quotes     *services.QuoteService
	Diagnostic *services.DiagnosticService
	Support    *services.SupportService
	State      *services.UserStateService
	Profiles   *services.ProfileStorage
	QR         *services.QRService
}

// BaseHandler provides common functionality for all screens
type BaseHandler struct {
	booking      *services.BookingService
	maps         *services.MapService
	catalog      *services.CatalogService
	quotes       *services.QuoteService
	diagnostic   *services.DiagnosticService
	support      *services.SupportService
	stateService *services.UserStateService
	profiles     *services.ProfileStorage
	qrService    *services.QRService
	config       *config.Config
	logger       *logrus.Logger
}

// NewBaseHandler creates a new base handler
func NewBaseHandler(svc Services, config *config.Config, logger *logrus.Logger) BaseHandler {
	return BaseHandler{
		booking:      svc.Booking,
		maps:         svc.Map,
		catalog:      svc.Catalog,
		quotes:       svc.Quotes,
		diagnostic:   svc.Diagnostic,
		support:      svc.Support,
		stateService: svc.State,
		profiles:     svc.Profiles,
		qrService:    svc.QR,
		config:       config,
		logger:       logger,
	}
}

// buttonIcons maps each keyboard command to the emoji shown before it
var buttonIcons = map[string]string{
	commands.Schedule:         "📅",
	commands.MyBookings:       "📋",
	commands.NearbyShops:      "📍",
	commands.Services:         "🔧",
	commands.Quotes:           "💰",
	commands.Diagnostic:       "🩺",
	commands.Support:          "💬",
	commands.AcceptQuote:      "✅",
	commands.FinalizeQuote:    "🏁",
	commands.FinalizeChat:     "🏁",
	commands.NewChat:          "🆕",
	commands.ReturnToMainMenu: "↩️",
	commands.Confirm:          "✅",
	commands.Cancel:           "❌",
}

// buttonText returns the label of a keyboard button
func buttonText(command string) string {
	if icon, ok := buttonIcons[command]; ok {
		return icon + " " + command
	}
	return command
}

// getButtonCommand extracts the command from button text with emoji
func getButtonCommand(text string) string {
	text = strings.TrimSpace(text)
	for command, icon := range buttonIcons {
		if text == icon+" "+command {
			return command
		}
	}
	return text
}

// escape makes user and backend text safe for HTML messages
func escape(text string) string {
	return html.EscapeString(text)
}

// sendTextMessage sends a text message with optional markup
func (h *BaseHandler) sendTextMessage(c telebot.Context, text string, markup *telebot.ReplyMarkup) error {
	opts := &telebot.SendOptions{
		ParseMode: telebot.ModeHTML,
	}

	if markup != nil {
		opts.ReplyMarkup = markup
	}

	err := c.Send(text, opts)
	if err != nil {
		h.logger.Errorf("Failed to send message: %v", err)
	}
	return err
}

// sendQRCode sends a QR code image with a caption
func (h *BaseHandler) sendQRCode(c telebot.Context, png []byte, caption string) error {
	photo := &telebot.Photo{File: telebot.FromReader(bytes.NewReader(png)), Caption: caption}

	err := c.Send(photo)
	if err != nil {
		h.logger.Errorf("Failed to send QR code: %v", err)
	}
	return err
}

// createMainKeyboard creates the home screen keyboard
func (h *BaseHandler) createMainKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{
		ResizeKeyboard: true,
	}

	markup.Reply(
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.Schedule)},
			telebot.Btn{Text: buttonText(commands.MyBookings)},
		},
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.NearbyShops)},
			telebot.Btn{Text: buttonText(commands.Services)},
		},
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.Quotes)},
			telebot.Btn{Text: buttonText(commands.Diagnostic)},
		},
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.Support)},
		},
	)

	return markup
}

// createReturnKeyboard creates a keyboard with a return button
func (h *BaseHandler) createReturnKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{
		ResizeKeyboard: true,
	}

	markup.Reply(
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.ReturnToMainMenu)},
		},
	)

	return markup
}

// createConfirmKeyboard creates a keyboard with confirm/cancel buttons
func (h *BaseHandler) createConfirmKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{
		ResizeKeyboard: true,
	}

	markup.Reply(
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.Confirm)},
			telebot.Btn{Text: buttonText(commands.Cancel)},
		},
	)

	return markup
}

// createSupportKeyboard creates the support chat keyboard
func (h *BaseHandler) createSupportKeyboard() *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{
		ResizeKeyboard: true,
	}

	markup.Reply(
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.NewChat)},
			telebot.Btn{Text: buttonText(commands.FinalizeChat)},
		},
		telebot.Row{
			telebot.Btn{Text: buttonText(commands.ReturnToMainMenu)},
		},
	)

	return markup
}

// createQuoteKeyboard creates the keyboard of the quote screen
func (h *BaseHandler) createQuoteKeyboard(canAccept, canFinalize bool) *telebot.ReplyMarkup {
	markup := &telebot.ReplyMarkup{
		ResizeKeyboard: true,
	}

	var actions telebot.Row
	if canAccept {
		actions = append(actions, telebot.Btn{Text: buttonText(commands.AcceptQuote)})
	}
	if canFinalize {
		actions = append(actions, telebot.Btn{Text: buttonText(commands.FinalizeQuote)})
	}

	rows := []telebot.Row{}
	if len(actions) > 0 {
		rows = append(rows, actions)
	}
	rows = append(rows, telebot.Row{telebot.Btn{Text: buttonText(commands.ReturnToMainMenu)}})

	markup.Reply(rows...)
	return markup
}

// encodePayload stores a value in the user state payload
func encodePayload(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodePayload reads a value stored with encodePayload
func decodePayload(payload *string, v interface{}) error {
	if payload == nil {
		return json.Unmarshal([]byte("null"), v)
	}
	return json.Unmarshal([]byte(*payload), v)
}
