package telegrambot

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	telebot "gopkg.in/telebot.v3"

	"oficina-tg-client/internal/config"
	"oficina-tg-client/internal/handlers"
)

// Bot represents a Telegram bot
type Bot struct {
	bot     *telebot.Bot
	config  *config.Config
	handler handlers.MessageHandler
	logger  *logrus.Logger
}

// NewBot creates a new Telegram bot
func NewBot(cfg *config.Config, handler handlers.MessageHandler, logger *logrus.Logger) (*Bot, error) {
	// Create bot settings
	settings := telebot.Settings{
		Token:  cfg.Telegram.Token,
		Poller: &telebot.LongPoller{Timeout: 10 * time.Second},
		OnError: func(err error, c telebot.Context) {
			logger.Errorf("Telegram bot error: %v", err)
			if c != nil {
				c.Send("Ocorreu um erro. Tente novamente mais tarde.")
			}
		},
	}

	// Create bot instance
	b, err := telebot.NewBot(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}

	bot := &Bot{
		bot:     b,
		config:  cfg,
		handler: handler,
		logger:  logger,
	}

	// Setup middleware
	bot.setupMiddleware()

	return bot, nil
}

// Start starts the bot and blocks until the context is cancelled
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("Starting Telegram bot")

	// Setup context for graceful shutdown
	go func() {
		<-ctx.Done()
		b.logger.Info("Stopping Telegram bot")
		b.bot.Stop()
	}()

	// Start the bot
	b.bot.Start()
	return nil
}

// setupMiddleware sets up the bot middleware
func (b *Bot) setupMiddleware() {
	// Add middleware for all updates
	b.bot.Use(func(next telebot.HandlerFunc) telebot.HandlerFunc {
		return func(c telebot.Context) error {
			if c.Sender() == nil {
				return nil
			}

			started := time.Now()
			err := next(c)

			b.logger.WithFields(logrus.Fields{
				"user":     c.Sender().ID,
				"photo":    c.Message() != nil && c.Message().Photo != nil,
				"duration": time.Since(started).Round(time.Millisecond).String(),
			}).Debugf("Handled message: %q", c.Text())

			return err
		}
	})

	// Handle all messages
	b.bot.Handle(telebot.OnText, b.handleUpdate)
	b.bot.Handle(telebot.OnPhoto, b.handleUpdate)
	b.bot.Handle("/start", b.handleUpdate)
}

// handleUpdate handles an update from Telegram
func (b *Bot) handleUpdate(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	return b.handler.Handle(ctx, c)
}
