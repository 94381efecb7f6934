package config

// Config represents the application configuration
type Config struct {
	Telegram TelegramConfig `mapstructure:"telegram"`
	Backend  BackendConfig  `mapstructure:"backend"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	State    StateConfig    `mapstructure:"state"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	LogLevel string         `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
}

// TelegramConfig holds the Telegram bot configuration
type TelegramConfig struct {
	Token string `mapstructure:"token" validate:"required"`
}

// BackendConfig holds the configuration for the repair-shop platform API
type BackendConfig struct {
	URL                      string `mapstructure:"url" validate:"required,url"`
	TimeoutSeconds           int    `mapstructure:"timeout_seconds" validate:"gt=0"`
	DiagnosticTimeoutSeconds int    `mapstructure:"diagnostic_timeout_seconds" validate:"gt=0"`
}

// DefaultsConfig holds the account values used until a user picks their own
type DefaultsConfig struct {
	ClientID       int64  `mapstructure:"client_id" validate:"gt=0"`
	ShopID         int64  `mapstructure:"shop_id" validate:"gt=0"`
	SearchRadiusKm int    `mapstructure:"search_radius_km" validate:"gt=0"`
	ProfileFile    string `mapstructure:"profile_file" validate:"required"`
}

// StateConfig selects where per-user screen state lives
type StateConfig struct {
	Backend       string `mapstructure:"backend" validate:"oneof=memory redis"`
	RedisAddr     string `mapstructure:"redis_addr" validate:"required_if=Backend redis"`
	RedisPassword string `mapstructure:"redis_password"`
	RedisDB       int    `mapstructure:"redis_db" validate:"gte=0"`
}

// HTTPConfig holds the status server configuration
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}
