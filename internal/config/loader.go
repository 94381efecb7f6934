package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"oficina-tg-client/internal/constants"
	apperrors "oficina-tg-client/internal/errors"
)

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// A missing .env is fine, the environment may already be set
	_ = godotenv.Load()

	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	v.SetEnvPrefix("")
	v.AutomaticEnv()

	// Set default values
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("BACKEND_TIMEOUT_SECONDS", constants.DefaultTimeout)
	v.SetDefault("DIAGNOSTIC_TIMEOUT_SECONDS", constants.DefaultDiagnosticTimeout)
	v.SetDefault("DEFAULT_CLIENT_ID", constants.DefaultClientID)
	v.SetDefault("DEFAULT_SHOP_ID", constants.DefaultShopID)
	v.SetDefault("SEARCH_RADIUS_KM", constants.DefaultSearchRadiusKm)
	v.SetDefault("PROFILE_FILE", constants.DefaultProfileFile)
	v.SetDefault("STATE_BACKEND", "memory")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("HTTP_ADDR", ":8081")

	// Define environment variables
	v.BindEnv("TG_TOKEN")
	v.BindEnv("BACKEND_URL")
	v.BindEnv("REDIS_ADDR")
	v.BindEnv("REDIS_PASSWORD")

	// Create config instance
	cfg := &Config{
		LogLevel: strings.ToLower(strings.TrimSpace(v.GetString("LOG_LEVEL"))),
		Telegram: TelegramConfig{
			Token: strings.TrimSpace(v.GetString("TG_TOKEN")),
		},
		Backend: BackendConfig{
			URL:                      strings.TrimRight(strings.TrimSpace(v.GetString("BACKEND_URL")), "/"),
			TimeoutSeconds:           v.GetInt("BACKEND_TIMEOUT_SECONDS"),
			DiagnosticTimeoutSeconds: v.GetInt("DIAGNOSTIC_TIMEOUT_SECONDS"),
		},
		Defaults: DefaultsConfig{
			ClientID:       v.GetInt64("DEFAULT_CLIENT_ID"),
			ShopID:         v.GetInt64("DEFAULT_SHOP_ID"),
			SearchRadiusKm: v.GetInt("SEARCH_RADIUS_KM"),
			ProfileFile:    strings.TrimSpace(v.GetString("PROFILE_FILE")),
		},
		State: StateConfig{
			Backend:       strings.ToLower(strings.TrimSpace(v.GetString("STATE_BACKEND"))),
			RedisAddr:     strings.TrimSpace(v.GetString("REDIS_ADDR")),
			RedisPassword: v.GetString("REDIS_PASSWORD"),
			RedisDB:       v.GetInt("REDIS_DB"),
		},
		HTTP: HTTPConfig{
			Addr: strings.TrimSpace(v.GetString("HTTP_ADDR")),
		},
	}

	// Validate configuration
	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.Telegram.Token == "" {
		return &apperrors.ConfigError{Section: "telegram", Message: "TG_TOKEN is required"}
	}

	if cfg.Backend.URL == "" {
		return &apperrors.ConfigError{Section: "backend", Message: "BACKEND_URL is required"}
	}

	if err := validator.New().Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return &apperrors.ConfigError{
				Section: strings.ToLower(fe.Namespace()),
				Message: fmt.Sprintf("failed on %q rule (value %v)", fe.Tag(), fe.Value()),
			}
		}
		return &apperrors.ConfigError{Section: "config", Message: err.Error()}
	}

	return nil
}
