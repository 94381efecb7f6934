package supportflow

import (
	"strconv"
	"strings"
)

// EffectKind identifies a remote side effect requested by a transition
type EffectKind int

const (
	// PostMessage persists a text in the remote chat session
	PostMessage EffectKind = iota
	// FinalizeSession closes the remote chat session
	FinalizeSession
)

// Effect is a remote call the caller performs after a transition
type Effect struct {
	Kind      EffectKind
	SessionID int64
	Text      string
}

// Navigation tells the host screen where to go after a transition
type Navigation int

const (
	// Stay keeps the user on the support screen
	Stay Navigation = iota
	// NavigateHome sends the user back to the home screen
	NavigateHome
)

// Notice is a message for the host surface, outside of the transcript
type Notice struct {
	Text     string
	Blocking bool
}

// Result is the outcome of one transition
type Result struct {
	State    State
	Replies  []string
	Effects  []Effect
	Notices  []Notice
	Navigate Navigation
}

// Engine maps (state, input) to the next state. It performs no I/O.
type Engine struct {
	menu     *Menu
	greeting string
}

// NewEngine creates a flow engine over a validated menu
func NewEngine(menu *Menu) *Engine {
	e := &Engine{menu: menu}
	e.greeting = e.renderGreeting()
	return e
}

// Menu returns the menu the engine walks
func (e *Engine) Menu() *Menu {
	return e.menu
}

// Greeting returns the main menu prompt
func (e *Engine) Greeting() string {
	return e.greeting
}

// Apply processes one user input
func (e *Engine) Apply(s State, input string) Result {
	s = s.Clone()
	clean := strings.TrimSpace(input)
	if clean == "" {
		return Result{State: s}
	}

	if clean == "0" {
		return e.back(s)
	}

	switch s.Level {
	case MainMenu:
		return e.applyMainMenu(s, clean)
	case Submenu:
		return e.applySubmenu(s, clean)
	case DetailMenu:
		return e.applyDetailMenu(s, clean)
	case FreeTextFirst:
		s.Level = FreeTextContinue
		return Result{
			State:   s,
			Effects: []Effect{postEffect(s, clean)},
			Replies: []string{firstDescriptionPrompt},
		}
	case FreeTextContinue:
		return e.applyFreeTextContinue(s, clean)
	default:
		return e.reset(s)
	}
}

// FinalizeOutcome turns the result of a FinalizeSession effect into the next step
func (e *Engine) FinalizeOutcome(s State, err error) Result {
	s = s.Clone()
	if err != nil {
		return Result{
			State:   s,
			Notices: []Notice{{Text: FinalizeFailedMessage, Blocking: true}},
		}
	}

	return Result{
		State:    s,
		Replies:  []string{ClosingMessage},
		Navigate: NavigateHome,
	}
}

func (e *Engine) back(s State) Result {
	switch s.Level {
	case MainMenu:
		return Result{State: s, Replies: []string{alreadyAtRootMessage(e.menu.Len())}}
	case Submenu:
		s.Level = MainMenu
		s.PrimaryCategory = ""
		s.SubOptionIndex = nil
		s.DetailIndex = nil
		return Result{State: s, Replies: []string{e.greeting}}
	case DetailMenu:
		c, ok := e.menu.Category(s.PrimaryCategory)
		if !ok {
			return e.reset(s)
		}
		s.Level = Submenu
		s.DetailIndex = nil
		return Result{State: s, Replies: []string{submenuPrompt(c)}}
	case FreeTextFirst, FreeTextContinue:
		opt, ok := e.currentOption(s)
		if !ok {
			return e.reset(s)
		}
		s.Level = DetailMenu
		s.DetailIndex = nil
		return Result{State: s, Replies: []string{detailPrompt(opt)}}
	default:
		return e.reset(s)
	}
}

func (e *Engine) applyMainMenu(s State, input string) Result {
	n, ok := parseChoice(input, e.menu.Len())
	if !ok {
		return Result{State: s, Replies: []string{mainMenuRangeMessage(e.menu.Len())}}
	}

	c, _ := e.menu.CategoryAt(n - 1)
	s.Level = Submenu
	s.PrimaryCategory = c.Key
	return Result{State: s, Replies: []string{submenuPrompt(c)}}
}

func (e *Engine) applySubmenu(s State, input string) Result {
	c, ok := e.menu.Category(s.PrimaryCategory)
	if !ok {
		return e.reset(s)
	}

	n, ok := parseChoice(input, len(c.Options))
	if !ok {
		return Result{State: s, Replies: []string{rangeMessage(len(c.Options))}}
	}

	opt := &c.Options[n-1]
	s.Level = DetailMenu
	s.SubOptionIndex = intPtr(n - 1)
	return Result{
		State:   s,
		Effects: []Effect{postEffect(s, categoryChoicePrefix+opt.Label)},
		Replies: []string{detailPrompt(opt)},
	}
}

func (e *Engine) applyDetailMenu(s State, input string) Result {
	opt, ok := e.currentOption(s)
	if !ok {
		return e.reset(s)
	}

	n, ok := parseChoice(input, len(opt.Level2))
	if !ok {
		return Result{State: s, Replies: []string{rangeMessage(len(opt.Level2))}}
	}

	s.Level = FreeTextFirst
	s.DetailIndex = intPtr(n - 1)
	return Result{
		State:   s,
		Effects: []Effect{postEffect(s, detailChoicePrefix+opt.Level2[n-1])},
		Replies: []string{describePrompt},
	}
}

func (e *Engine) applyFreeTextContinue(s State, input string) Result {
	switch input {
	case "1":
		return Result{State: s, Effects: []Effect{{Kind: FinalizeSession, SessionID: s.SessionID}}}
	case "2":
		return Result{State: s, Replies: []string{keepDescribingPrompt}}
	default:
		return Result{
			State:   s,
			Effects: []Effect{postEffect(s, input)},
			Replies: []string{moreDescriptionPrompt},
		}
	}
}

func (e *Engine) currentOption(s State) (*Option, bool) {
	c, ok := e.menu.Category(s.PrimaryCategory)
	if !ok || s.SubOptionIndex == nil {
		return nil, false
	}
	return c.OptionAt(*s.SubOptionIndex)
}

// reset recovers from a selection that no longer matches the menu
func (e *Engine) reset(s State) Result {
	return Result{
		State:   NewState(s.SessionID),
		Replies: []string{InternalErrorMessage, e.greeting},
	}
}

func postEffect(s State, text string) Effect {
	return Effect{Kind: PostMessage, SessionID: s.SessionID, Text: text}
}

// parseChoice accepts only canonical decimal numbers in [1, limit]
func parseChoice(input string, limit int) (int, bool) {
	n, err := strconv.Atoi(input)
	if err != nil || n < 1 || n > limit {
		return 0, false
	}
	if strconv.Itoa(n) != input {
		return 0, false
	}
	return n, true
}
