package supportchat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/supportflow"
)

var (
	// ErrBusy is returned while another input of the same session is being processed
	ErrBusy = errors.New("support session is busy")
	// ErrClosed is returned once the session has been closed
	ErrClosed = errors.New("support session is closed")
	// ErrFinalizeFailed is returned when the remote session could not be finalized
	ErrFinalizeFailed = errors.New("failed to finalize support session")
)

const (
	startFailedNotice   = "Não foi possível iniciar o chat."
	postFailedNotice    = "Não foi possível registrar sua mensagem no suporte. Seguimos sem salvar."
	manualFinalizeError = "Não foi possível finalizar."
)

// ChatAPI is the remote chat persistence used by a session
type ChatAPI interface {
	StartOrResumeChatSession(ctx context.Context, clientID int64) (*models.ChatSession, error)
	ListMessages(ctx context.Context, sessionID int64) ([]models.ChatMessage, error)
	PostMessage(ctx context.Context, sessionID int64, text string) (*models.ChatMessage, error)
	FinalizeSession(ctx context.Context, sessionID int64) (*models.ChatSession, error)
}

// Outcome is what the host surface has to show after a call
type Outcome struct {
	Replies      []string
	Notices      []supportflow.Notice
	NavigateHome bool
	Finalized    bool
}

// Session binds one flow state to a remote chat session
type Session struct {
	api    ChatAPI
	engine *supportflow.Engine
	logger *logrus.Logger

	// mu allows a single transition at a time
	mu     sync.Mutex
	closed atomic.Bool

	dataMu     sync.RWMutex
	state      supportflow.State
	status     string
	transcript *Transcript
}

// NewSession creates a session that is not yet bound to a remote chat
func NewSession(api ChatAPI, engine *supportflow.Engine, logger *logrus.Logger) *Session {
	return &Session{
		api:        api,
		engine:     engine,
		logger:     logger,
		state:      supportflow.NewState(0),
		transcript: NewTranscript(),
	}
}

// Start resets the conversation and binds it to the client's remote chat
func (s *Session) Start(ctx context.Context, clientID int64) (Outcome, error) {
	if !s.mu.TryLock() {
		return Outcome{}, ErrBusy
	}
	defer s.mu.Unlock()

	if s.closed.Load() {
		return Outcome{}, ErrClosed
	}

	greeting := s.engine.Greeting()
	state := supportflow.NewState(0)
	transcript := NewTranscript()
	var outcome Outcome
	var status string

	chat, err := s.api.StartOrResumeChatSession(ctx, clientID)
	if err == nil && chat == nil {
		err = errors.New("backend returned no chat session")
	}
	if err == nil {
		state.SessionID = chat.ID
		status = chat.Status

		var msgs []models.ChatMessage
		msgs, err = s.api.ListMessages(ctx, chat.ID)
		if err == nil {
			history, appended := withGreeting(fromBackend(msgs), greeting)
			for _, m := range history {
				transcript.Append(m)
			}
			if appended {
				outcome.Replies = append(outcome.Replies, greeting)
			}
		}
	}

	if err != nil {
		s.logger.Errorf("Failed to start support chat for client %d: %v", clientID, err)
		state = supportflow.NewState(0)
		status = ""
		transcript = NewTranscript()
		transcript.Append(greetingMessage(greeting))
		outcome.Replies = []string{greeting}
		outcome.Notices = append(outcome.Notices, supportflow.Notice{Text: startFailedNotice})
	}

	if s.closed.Load() {
		return Outcome{}, ErrClosed
	}

	s.dataMu.Lock()
	s.state = state
	s.status = status
	s.transcript = transcript
	s.dataMu.Unlock()

	s.logger.Infof("Support chat started for client %d (session %d, %d messages)", clientID, state.SessionID, transcript.Len())
	return outcome, nil
}

// Submit processes one user input
func (s *Session) Submit(ctx context.Context, input string) (Outcome, error) {
	clean := strings.TrimSpace(input)
	if clean == "" {
		return Outcome{}, nil
	}

	if s.closed.Load() {
		return Outcome{}, ErrClosed
	}
	if !s.mu.TryLock() {
		return Outcome{}, ErrBusy
	}
	defer s.mu.Unlock()

	if s.closed.Load() {
		return Outcome{}, ErrClosed
	}

	s.dataMu.Lock()
	s.transcript.AppendLocal(SenderClient, clean)
	current := s.state.Clone()
	s.dataMu.Unlock()

	result := s.engine.Apply(current, clean)
	outcome := Outcome{}

	for _, effect := range result.Effects {
		switch effect.Kind {
		case supportflow.PostMessage:
			if err := s.post(ctx, effect); err != nil {
				s.logger.Warnf("Failed to persist support message in session %d: %v", effect.SessionID, err)
				outcome.Notices = appendNotice(outcome.Notices, supportflow.Notice{Text: postFailedNotice})
			}
		case supportflow.FinalizeSession:
			err := s.finalize(ctx, effect.SessionID)
			if err != nil {
				s.logger.Errorf("Failed to finalize support session %d: %v", effect.SessionID, err)
			}
			finalized := s.engine.FinalizeOutcome(result.State, err)
			result.State = finalized.State
			result.Replies = append(result.Replies, finalized.Replies...)
			result.Notices = append(result.Notices, finalized.Notices...)
			if finalized.Navigate == supportflow.NavigateHome {
				result.Navigate = supportflow.NavigateHome
				outcome.Finalized = true
			}
		}
	}

	// Continuations of a closed session must not touch its data
	if s.closed.Load() {
		return Outcome{}, ErrClosed
	}

	s.dataMu.Lock()
	s.state = result.State
	for _, reply := range result.Replies {
		s.transcript.AppendLocal(SenderSupport, reply)
	}
	s.dataMu.Unlock()

	s.logger.Debugf("Support session %d moved to %s", result.State.SessionID, result.State.Level)

	outcome.Replies = result.Replies
	outcome.Notices = append(outcome.Notices, result.Notices...)
	outcome.NavigateHome = result.Navigate == supportflow.NavigateHome
	return outcome, nil
}

// Finalize closes the remote chat on explicit user request.
// The host asks for confirmation before calling it.
func (s *Session) Finalize(ctx context.Context) (Outcome, error) {
	if s.closed.Load() {
		return Outcome{}, ErrClosed
	}
	if !s.mu.TryLock() {
		return Outcome{}, ErrBusy
	}
	defer s.mu.Unlock()

	sessionID := s.SessionID()
	if err := s.finalize(ctx, sessionID); err != nil {
		s.logger.Errorf("Failed to finalize support session %d: %v", sessionID, err)
		return Outcome{
			Notices: []supportflow.Notice{{Text: manualFinalizeError, Blocking: true}},
		}, fmt.Errorf("%w: %v", ErrFinalizeFailed, err)
	}

	s.logger.Infof("Support session %d finalized by user", sessionID)
	return Outcome{NavigateHome: true, Finalized: true}, nil
}

// Reset starts a new chat on the same session object
func (s *Session) Reset(ctx context.Context, clientID int64) (Outcome, error) {
	return s.Start(ctx, clientID)
}

// Close detaches the session. Pending calls finish but change nothing.
func (s *Session) Close() {
	s.closed.Store(true)
}

// Closed reports whether Close was called
func (s *Session) Closed() bool {
	return s.closed.Load()
}

// State returns a snapshot of the flow state
func (s *Session) State() supportflow.State {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.state.Clone()
}

// SessionID returns the bound remote session id, or 0
func (s *Session) SessionID() int64 {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.state.SessionID
}

// Status returns the remote chat status reported at start
func (s *Session) Status() string {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.status
}

// Messages returns a copy of the transcript
func (s *Session) Messages() []Message {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.transcript.Messages()
}

// Tail returns the n newest messages of the transcript
func (s *Session) Tail(n int) []Message {
	s.dataMu.RLock()
	defer s.dataMu.RUnlock()
	return s.transcript.Tail(n)
}

func (s *Session) post(ctx context.Context, effect supportflow.Effect) error {
	if effect.SessionID == 0 {
		s.logger.Debugf("No support session bound, message kept local: %q", effect.Text)
		return nil
	}
	_, err := s.api.PostMessage(ctx, effect.SessionID, effect.Text)
	return err
}

func (s *Session) finalize(ctx context.Context, sessionID int64) error {
	if sessionID == 0 {
		s.logger.Debugf("No support session bound, finalizing locally")
		return nil
	}
	_, err := s.api.FinalizeSession(ctx, sessionID)
	return err
}

func appendNotice(notices []supportflow.Notice, n supportflow.Notice) []supportflow.Notice {
	for _, existing := range notices {
		if existing == n {
			return notices
		}
	}
	return append(notices, n)
}
