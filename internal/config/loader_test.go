package config

import (
	"errors"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "oficina-tg-client/internal/errors"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TG_TOKEN", "123:abc")
	t.Setenv("BACKEND_URL", "http://10.0.0.136:8080/")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.Token)
	assert.Equal(t, "http://10.0.0.136:8080", cfg.Backend.URL, "trailing slash is trimmed")
	assert.Equal(t, 10, cfg.Backend.TimeoutSeconds)
	assert.Equal(t, 60, cfg.Backend.DiagnosticTimeoutSeconds)
	assert.Equal(t, int64(1), cfg.Defaults.ClientID)
	assert.Equal(t, int64(1), cfg.Defaults.ShopID)
	assert.Equal(t, 10, cfg.Defaults.SearchRadiusKm)
	assert.Equal(t, "data/profiles.json", cfg.Defaults.ProfileFile)
	assert.Equal(t, "memory", cfg.State.Backend)
	assert.Equal(t, ":8081", cfg.HTTP.Addr)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("DEFAULT_CLIENT_ID", "42")
	t.Setenv("DEFAULT_SHOP_ID", "7")
	t.Setenv("SEARCH_RADIUS_KM", "25")
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, int64(42), cfg.Defaults.ClientID)
	assert.Equal(t, int64(7), cfg.Defaults.ShopID)
	assert.Equal(t, 25, cfg.Defaults.SearchRadiusKm)
	assert.Equal(t, "redis", cfg.State.Backend)
	assert.Equal(t, "localhost:6379", cfg.State.RedisAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadMissingToken(t *testing.T) {
	t.Setenv("TG_TOKEN", "")
	t.Setenv("BACKEND_URL", "http://localhost:8080")

	_, err := load(viper.New())
	require.Error(t, err)

	var cfgErr *apperrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "telegram", cfgErr.Section)
}

func TestLoadMissingBackendURL(t *testing.T) {
	t.Setenv("TG_TOKEN", "123:abc")
	t.Setenv("BACKEND_URL", "")

	_, err := load(viper.New())

	var cfgErr *apperrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "backend", cfgErr.Section)
}

func TestLoadRejectsRedisWithoutAddress(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STATE_BACKEND", "redis")
	t.Setenv("REDIS_ADDR", "")

	_, err := load(viper.New())

	var cfgErr *apperrors.ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Contains(t, cfgErr.Section, "redisaddr")
}

func TestLoadRejectsUnknownStateBackend(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STATE_BACKEND", "etcd")

	_, err := load(viper.New())
	assert.Error(t, err)
}
