package config_test

import (
	"testing"
	"time"

	"dhl-location-service/internal/config"

	"github.com/stretchr/testify/require"
)

func clearServerEnv(t *testing.T) {
	for _, k := range []string{
		"BIND_ADDR", "APP_ENV", "LOG_LEVEL", "LOG_FILE", "KEY_SOURCE", "KEY_ENV_PREFIX",
		"SEARCH_TIMEOUT", "SEARCH_RATE_LIMIT", "SEARCH_RATE_BURST", "ADMIN_TOKEN",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadServerDefaults(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/dhl")

	cfg, err := config.LoadServer()
	require.NoError(t, err)

	require.Equal(t, ":8080", cfg.BindAddr)
	require.Equal(t, "postgres://localhost/dhl", cfg.DatabaseURL)
	require.False(t, cfg.Development)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "logs/app.log", cfg.LogFile)
	require.Equal(t, "db", cfg.KeySource)
	require.Equal(t, "KEY_", cfg.KeyEnvPrefix)
	require.Equal(t, 15*time.Second, cfg.SearchTimeout)
	require.InDelta(t, 5.0, cfg.SearchRateLimit, 0.0001)
	require.Equal(t, 10, cfg.SearchRateBurst)
	require.Empty(t, cfg.AdminToken)
}

func TestLoadServerOverrides(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db/dhl")
	t.Setenv("BIND_ADDR", ":9090")
	t.Setenv("APP_ENV", "Development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("KEY_SOURCE", "ENV")
	t.Setenv("SEARCH_TIMEOUT", "3s")
	t.Setenv("SEARCH_RATE_LIMIT", "0.5")
	t.Setenv("SEARCH_RATE_BURST", "2")
	t.Setenv("ADMIN_TOKEN", " secret ")

	cfg, err := config.LoadServer()
	require.NoError(t, err)

	require.Equal(t, ":9090", cfg.BindAddr)
	require.True(t, cfg.Development)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "env", cfg.KeySource)
	require.Equal(t, 3*time.Second, cfg.SearchTimeout)
	require.InDelta(t, 0.5, cfg.SearchRateLimit, 0.0001)
	require.Equal(t, 2, cfg.SearchRateBurst)
	require.Equal(t, "secret", cfg.AdminToken)
}

func TestLoadServerRequiresDatabaseURL(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "")

	_, err := config.LoadServer()
	require.Error(t, err)
}

func TestLoadServerRejectsUnknownKeySource(t *testing.T) {
	clearServerEnv(t)
	t.Setenv("DATABASE_URL", "postgres://db/dhl")
	t.Setenv("KEY_SOURCE", "vault")

	_, err := config.LoadServer()
	require.Error(t, err)
}

func TestGetDurationFallsBackOnGarbage(t *testing.T) {
	t.Setenv("SOME_TIMEOUT", "soon")
	require.Equal(t, 2*time.Second, config.GetDuration("SOME_TIMEOUT", "2s"))
}
