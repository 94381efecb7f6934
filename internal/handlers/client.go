package handlers

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/commands"
	"oficina-tg-client/internal/config"
	"oficina-tg-client/internal/models"
)

// MessageHandler defines the interface for handling Telegram messages
type MessageHandler interface {
	Handle(ctx context.Context, c telebot.Context) error
}

// ClientHandler handles every screen of the customer bot
type ClientHandler struct {
	BaseHandler
	commandHandlers map[string]func(context.Context, telebot.Context) error
	now             func() time.Time
	fetchFile       func(telebot.Context, *telebot.File) (io.ReadCloser, error)
}

// NewClientHandler creates a new client handler
func NewClientHandler(svc Services, config *config.Config, logger *logrus.Logger) *ClientHandler {
	handler := &ClientHandler{
		BaseHandler: NewBaseHandler(svc, config, logger),
		now:         time.Now,
		fetchFile:   botFile,
	}

	handler.initializeCommands()
	return handler
}

// initializeCommands initializes the home screen command handlers
func (h *ClientHandler) initializeCommands() {
	h.commandHandlers = map[string]func(context.Context, telebot.Context) error{
		commands.Start:            h.handleStart,
		commands.ReturnToMainMenu: h.handleStart,
		commands.Cancel:           h.handleStart,
		commands.Schedule:         h.handleSchedule,
		commands.MyBookings:       h.handleMyBookings,
		commands.NearbyShops:      h.handleNearbyShops,
		commands.Services:         h.handleServices,
		commands.Quotes:           h.handleQuotes,
		commands.Diagnostic:       h.handleDiagnostic,
		commands.Support:          h.handleSupport,
	}
}

// Handle handles a message from Telegram
func (h *ClientHandler) Handle(ctx context.Context, c telebot.Context) error {
	// Get user ID
	userID := c.Sender().ID
	command := getButtonCommand(c.Text())

	// Start and return work from every screen
	if command == commands.Start || command == commands.ReturnToMainMenu {
		return h.handleStart(ctx, c)
	}

	// Get user state
	state, err := h.stateService.GetState(userID)
	if err != nil {
		h.logger.Errorf("Failed to get user state: %v", err)
		return err
	}

	if msg := c.Message(); msg != nil && msg.Photo != nil {
		if state.State == models.AwaitingDiagnosticInput {
			return h.handleDiagnosticPhoto(ctx, c, msg.Photo)
		}
		return h.sendTextMessage(c, "Para analisar uma foto, escolha Diagnóstico no menu.", h.createMainKeyboard())
	}

	// Handle based on state
	switch state.State {
	case models.Default:
		return h.handleDefaultState(ctx, c)
	case models.AwaitingBookingDay:
		return h.handleBookingDayInput(ctx, c)
	case models.AwaitingBookingConfirm:
		return h.handleBookingConfirm(ctx, c, state)
	case models.AwaitingAddress:
		return h.handleAddressInput(ctx, c)
	case models.AwaitingShopPick:
		return h.handleShopPick(ctx, c, state)
	case models.AwaitingServiceTerm, models.AwaitingServicePick:
		return h.handleServiceInput(ctx, c, state)
	case models.AwaitingQuoteAction:
		return h.handleQuoteAction(ctx, c, state)
	case models.AwaitingQuoteConfirm:
		return h.handleQuoteConfirm(ctx, c, state)
	case models.AwaitingDiagnosticInput:
		return h.handleDiagnosticText(ctx, c)
	case models.InSupportChat:
		return h.handleSupportInput(ctx, c)
	case models.AwaitingSupportFinalize:
		return h.handleSupportFinalizeConfirm(ctx, c)
	default:
		h.logger.Warnf("Unknown state: %d", state.State)
		return h.handleStart(ctx, c)
	}
}

// handleDefaultState handles the home screen
func (h *ClientHandler) handleDefaultState(ctx context.Context, c telebot.Context) error {
	// Check if we have a command handler for this text
	if handler, ok := h.commandHandlers[getButtonCommand(c.Text())]; ok {
		return handler(ctx, c)
	}

	// If not, show the main menu
	return h.handleStart(ctx, c)
}

// handleStart shows the home screen and drops any pending screen
func (h *ClientHandler) handleStart(_ context.Context, c telebot.Context) error {
	h.support.End(c.Sender().ID)
	return h.goHome(c, "Bem-vindo! Escolha uma opção:")
}

// goHome shows the home keyboard with a message
func (h *ClientHandler) goHome(c telebot.Context, text string) error {
	if err := h.stateService.ClearState(c.Sender().ID); err != nil {
		h.logger.Errorf("Failed to clear user state: %v", err)
	}
	return h.sendTextMessage(c, text, h.createMainKeyboard())
}

// profile returns the ids used for the user's backend calls
func (h *ClientHandler) profile(userID int64) models.Profile {
	return h.profiles.Get(userID)
}
