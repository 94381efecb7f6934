package handlers

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/config"
	"oficina-tg-client/internal/models"
	"oficina-tg-client/internal/services"
	"oficina-tg-client/internal/supportflow"
)

const testUserID int64 = 4242

var errBackend = errors.New("backend unavailable")

// fakeContext records what a handler sends back to Telegram
type fakeContext struct {
	telebot.Context

	sender  *telebot.User
	message *telebot.Message

	sent    []interface{}
	options [][]interface{}
	actions []telebot.ChatAction
}

func newFakeContext(text string) *fakeContext {
	return &fakeContext{
		sender:  &telebot.User{ID: testUserID},
		message: &telebot.Message{Text: text},
	}
}

func (c *fakeContext) Sender() *telebot.User     { return c.sender }
func (c *fakeContext) Message() *telebot.Message { return c.message }
func (c *fakeContext) Text() string              { return c.message.Text }

func (c *fakeContext) Send(what interface{}, opts ...interface{}) error {
	c.sent = append(c.sent, what)
	c.options = append(c.options, opts)
	return nil
}

func (c *fakeContext) Notify(action telebot.ChatAction) error {
	c.actions = append(c.actions, action)
	return nil
}

// texts returns the text messages sent so far
func (c *fakeContext) texts() []string {
	var out []string
	for _, s := range c.sent {
		if text, ok := s.(string); ok {
			out = append(out, text)
		}
	}
	return out
}

// lastText returns the last text message sent
func (c *fakeContext) lastText() string {
	texts := c.texts()
	if len(texts) == 0 {
		return ""
	}
	return texts[len(texts)-1]
}

// lastButtons returns the reply keyboard labels of the last message
func (c *fakeContext) lastButtons() []string {
	if len(c.options) == 0 {
		return nil
	}
	var labels []string
	for _, opt := range c.options[len(c.options)-1] {
		send, ok := opt.(*telebot.SendOptions)
		if !ok || send.ReplyMarkup == nil {
			continue
		}
		for _, row := range send.ReplyMarkup.ReplyKeyboard {
			for _, btn := range row {
				labels = append(labels, btn.Text)
			}
		}
	}
	return labels
}

// fakeBackend implements every platform API used by the screens
type fakeBackend struct {
	mu sync.Mutex

	availability models.Availability
	bookings     []models.Booking
	created      []models.Booking
	createErr    error

	shops    []models.Shop
	featured []models.Service
	found    []models.Service
	terms    []string
	added    []string

	quotes    []models.Quote
	accepted  []int64
	finalized []int64

	diagnosis    string
	diagnostics  []models.DiagnosticRequest
	imageContent string

	chat          *models.ChatSession
	history       []models.ChatMessage
	posts         []string
	chatFinalized []int64
	finalizeErr   error
}

func (f *fakeBackend) GetAvailabilityForMonth(_ context.Context, _, _ int, _ int64) (models.Availability, error) {
	return f.availability, nil
}

func (f *fakeBackend) CreateBooking(_ context.Context, b models.Booking) (*models.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	b.ID = int64(len(f.created) + 100)
	f.created = append(f.created, b)
	return &b, nil
}

func (f *fakeBackend) ListBookingsForUser(_ context.Context, _ int64) ([]models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBackend) SearchNearbyShops(_ context.Context, _ string, _ int) ([]models.Shop, error) {
	return f.shops, nil
}

func (f *fakeBackend) SearchServices(_ context.Context, term string) ([]models.Service, error) {
	f.terms = append(f.terms, term)
	return f.found, nil
}

func (f *fakeBackend) ListFeaturedServices(_ context.Context) ([]models.Service, error) {
	return f.featured, nil
}

func (f *fakeBackend) AddQuoteItem(_ context.Context, _, _ int64, serviceName string, price float64) (*models.Quote, error) {
	f.added = append(f.added, serviceName)
	return &models.Quote{ID: 7, Status: models.QuotePending, Description: serviceName, Total: &price}, nil
}

func (f *fakeBackend) GetQuoteHistory(_ context.Context, _ int64) ([]models.Quote, error) {
	return f.quotes, nil
}

func (f *fakeBackend) AcceptQuote(_ context.Context, quoteID int64) (*models.Quote, error) {
	f.accepted = append(f.accepted, quoteID)
	return &models.Quote{ID: quoteID, Status: models.QuoteApproved}, nil
}

func (f *fakeBackend) FinalizeQuote(_ context.Context, quoteID int64) (*models.Quote, error) {
	f.finalized = append(f.finalized, quoteID)
	return &models.Quote{ID: quoteID, Status: models.QuoteDone}, nil
}

func (f *fakeBackend) AnalyzeDiagnostic(_ context.Context, req models.DiagnosticRequest) (*models.Diagnosis, error) {
	if req.Image != nil {
		data, err := io.ReadAll(req.Image.Reader)
		if err != nil {
			return nil, err
		}
		f.imageContent = string(data)
	}
	f.diagnostics = append(f.diagnostics, req)
	return &models.Diagnosis{Text: f.diagnosis}, nil
}

func (f *fakeBackend) StartOrResumeChatSession(_ context.Context, _ int64) (*models.ChatSession, error) {
	if f.chat == nil {
		return nil, errBackend
	}
	return f.chat, nil
}

func (f *fakeBackend) ListMessages(_ context.Context, _ int64) ([]models.ChatMessage, error) {
	return f.history, nil
}

func (f *fakeBackend) PostMessage(_ context.Context, _ int64, text string) (*models.ChatMessage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.posts = append(f.posts, text)
	return &models.ChatMessage{Content: text, SentByClient: true}, nil
}

func (f *fakeBackend) FinalizeSession(_ context.Context, sessionID int64) (*models.ChatSession, error) {
	if f.finalizeErr != nil {
		return nil, f.finalizeErr
	}
	f.chatFinalized = append(f.chatFinalized, sessionID)
	return &models.ChatSession{ID: sessionID, Status: "FINALIZADA"}, nil
}

type testEnv struct {
	handler *ClientHandler
	backend *fakeBackend
	state   *services.UserStateService
	profile *services.ProfileStorage
	support *services.SupportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	backend := &fakeBackend{chat: &models.ChatSession{ID: 55, Status: "ABERTA"}}
	engine := supportflow.NewEngine(supportflow.DefaultMenu())

	state := services.NewUserStateService(services.NewMemoryStateStore(), logger)
	profiles := services.NewProfileStorage(filepath.Join(t.TempDir(), "profiles.json"), 1, 3, logger)
	support := services.NewSupportService(backend, engine, logger)

	handler := NewClientHandler(Services{
		Booking:    services.NewBookingService(backend, logger),
		Map:        services.NewMapService(backend, 10, 10, logger),
		Catalog:    services.NewCatalogService(backend, 15, logger),
		Quotes:     services.NewQuoteService(backend, logger),
		Diagnostic: services.NewDiagnosticService(backend, logger),
		Support:    support,
		State:      state,
		Profiles:   profiles,
		QR:         services.NewQRService(logger),
	}, &config.Config{}, logger)
	handler.now = func() time.Time { return time.Date(2025, time.March, 10, 9, 0, 0, 0, time.UTC) }

	return &testEnv{handler: handler, backend: backend, state: state, profile: profiles, support: support}
}

// send runs one text message through the handler
func (e *testEnv) send(t *testing.T, text string) *fakeContext {
	t.Helper()
	c := newFakeContext(text)
	require.NoError(t, e.handler.Handle(context.Background(), c))
	return c
}

// conversationState returns the stored screen of the test user
func (e *testEnv) conversationState(t *testing.T) models.ConversationState {
	t.Helper()
	state, err := e.state.GetState(testUserID)
	require.NoError(t, err)
	return state.State
}

func hasButton(labels []string, command string) bool {
	for _, l := range labels {
		if strings.HasSuffix(l, command) {
			return true
		}
	}
	return false
}
