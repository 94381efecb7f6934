package supportflow

import "fmt"

// Level is the position of a conversation inside the support menu
type Level int

const (
	// MainMenu waits for a category number
	MainMenu Level = iota
	// Submenu waits for an option of the selected category
	Submenu
	// DetailMenu waits for a detail of the selected option
	DetailMenu
	// FreeTextFirst waits for the first problem description
	FreeTextFirst
	// FreeTextContinue waits for 1 (finalize), 2 (continue) or more description
	FreeTextContinue
)

var levelNames = [...]string{
	MainMenu:         "MAIN_MENU",
	Submenu:          "SUBMENU",
	DetailMenu:       "DETAIL_MENU",
	FreeTextFirst:    "FREE_TEXT_FIRST",
	FreeTextContinue: "FREE_TEXT_CONTINUE",
}

// String returns the level name
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// MarshalText implements encoding.TextMarshaler
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (l *Level) UnmarshalText(text []byte) error {
	for i, name := range levelNames {
		if name == string(text) {
			*l = Level(i)
			return nil
		}
	}
	return fmt.Errorf("unknown level %q", string(text))
}

// State is a snapshot of one support conversation
type State struct {
	Level           Level  `json:"level"`
	PrimaryCategory string `json:"primary_category,omitempty"`
	SubOptionIndex  *int   `json:"sub_option_index,omitempty"`
	DetailIndex     *int   `json:"detail_index,omitempty"`
	SessionID       int64  `json:"chat_session_id,omitempty"`
}

// NewState returns a root state bound to a remote chat session
func NewState(sessionID int64) State {
	return State{Level: MainMenu, SessionID: sessionID}
}

// Clone returns a copy that shares no pointers with s
func (s State) Clone() State {
	out := s
	if s.SubOptionIndex != nil {
		v := *s.SubOptionIndex
		out.SubOptionIndex = &v
	}
	if s.DetailIndex != nil {
		v := *s.DetailIndex
		out.DetailIndex = &v
	}
	return out
}

// Equal reports whether two states select the same thing
func (s State) Equal(o State) bool {
	return s.Level == o.Level &&
		s.PrimaryCategory == o.PrimaryCategory &&
		s.SessionID == o.SessionID &&
		intPtrEqual(s.SubOptionIndex, o.SubOptionIndex) &&
		intPtrEqual(s.DetailIndex, o.DetailIndex)
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func intPtr(v int) *int {
	return &v
}
