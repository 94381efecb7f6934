package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"

	"oficina-tg-client/internal/config"
	"oficina-tg-client/internal/constants"
	"oficina-tg-client/internal/handlers"
	"oficina-tg-client/internal/httpserver"
	"oficina-tg-client/internal/services"
	"oficina-tg-client/internal/supportflow"
	"oficina-tg-client/pkg/oficinaclient"
	"oficina-tg-client/pkg/telegrambot"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.New().Fatal("Failed to load configuration: ", err)
	}

	// Setup logger
	logger := setupLogger(cfg.LogLevel)

	// Support menu is checked before anything talks to users
	menu := supportflow.DefaultMenu()
	if err := menu.Validate(); err != nil {
		logger.Fatal("Invalid support menu:", err)
	}
	engine := supportflow.NewEngine(menu)

	// Platform backend client
	api := oficinaclient.NewClient(cfg.Backend, logger)
	logger.Infof("Using platform backend at %s", api.BaseURL())

	// State store
	store, closeStore, err := setupStateStore(cfg.State, logger)
	if err != nil {
		logger.Fatal("Failed to setup state store:", err)
	}
	defer closeStore()

	// Initialize services
	svc := handlers.Services{
		Booking:    services.NewBookingService(api, logger),
		Map:        services.NewMapService(api, cfg.Defaults.SearchRadiusKm, constants.MaxShopsShown, logger),
		Catalog:    services.NewCatalogService(api, constants.MaxServicesShown, logger),
		Quotes:     services.NewQuoteService(api, logger),
		Diagnostic: services.NewDiagnosticService(api, logger),
		Support:    services.NewSupportService(api, engine, logger),
		State:      services.NewUserStateService(store, logger),
		Profiles:   services.NewProfileStorage(cfg.Defaults.ProfileFile, cfg.Defaults.ClientID, cfg.Defaults.ShopID, logger),
		QR:         services.NewQRService(logger),
	}

	// Initialize bot
	handler := handlers.NewClientHandler(svc, cfg, logger)
	bot, err := telegrambot.NewBot(cfg, handler, logger)
	if err != nil {
		logger.Fatal("Failed to create bot:", err)
	}

	// Setup context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	var wg sync.WaitGroup
	if cfg.HTTP.Addr != "" {
		status := httpserver.NewServer(cfg.HTTP.Addr, svc.Support, svc.Profiles, logger)
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := status.Start(ctx); err != nil {
				logger.Errorf("Status server failed: %v", err)
			}
		}()
	}

	// Start bot
	logger.Info("Starting repair-shop Telegram bot")
	if err := bot.Start(ctx); err != nil {
		logger.Fatal("Bot failed:", err)
	}

	cancel()
	wg.Wait()
	if err := svc.Profiles.Save(); err != nil {
		logger.Warnf("Failed to save profiles: %v", err)
	}
}

// setupStateStore creates the configured user state store
func setupStateStore(cfg config.StateConfig, logger *logrus.Logger) (services.StateStore, func(), error) {
	if cfg.Backend != "redis" {
		logger.Info("Keeping user state in memory")
		return services.NewMemoryStateStore(), func() {}, nil
	}

	store, err := services.NewRedisStateStore(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		return nil, nil, err
	}

	logger.Infof("Keeping user state in Redis at %s", cfg.RedisAddr)
	return store, func() {
		if err := store.Close(); err != nil {
			logger.Warnf("Failed to close Redis: %v", err)
		}
	}, nil
}

// setupLogger sets up the logger
func setupLogger(logLevel string) *logrus.Logger {
	logger := logrus.New()

	// Set formatter
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		logger.Warnf("Invalid log level %s, defaulting to info", logLevel)
		level = logrus.InfoLevel
	}

	logger.SetLevel(level)

	return logger
}
