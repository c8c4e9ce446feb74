package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8000", cfg.Server.Port)
	assert.Equal(t, "127.0.0.1", cfg.Server.Host)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Logging.Development)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 32, cfg.Transform.MaxDepth)
	assert.False(t, cfg.Transform.PadLines)
	assert.Equal(t, 512, cfg.Build.CacheSize)
	assert.NoError(t, cfg.Validate())
}

func TestLoadWithEnvironmentVariables(t *testing.T) {
	envVars := map[string]string{
		"PORT":               "9000",
		"HOST":               "0.0.0.0",
		"LOG_LEVEL":          "debug",
		"LOG_DEV":            "true",
		"RATE_LIMIT_RPS":     "5",
		"RATE_LIMIT_BURST":   "10",
		"RATE_LIMIT_ENABLED": "false",
		"SFCX_MAX_DEPTH":     "4",
		"SFCX_PAD_LINES":     "true",
		"SFCX_ROOT":          "/srv/app",
		"SFCX_WORKERS":       "3",
		"SFCX_CACHE_SIZE":    "16",
	}
	for key, value := range envVars {
		t.Setenv(key, value)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
	assert.Equal(t, 5, cfg.RateLimit.RequestsPerSecond)
	assert.Equal(t, 10, cfg.RateLimit.Burst)
	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 4, cfg.Transform.MaxDepth)
	assert.True(t, cfg.Transform.PadLines)
	assert.Equal(t, "/srv/app", cfg.Transform.Root)
	assert.Equal(t, 3, cfg.Build.Workers)
	assert.Equal(t, 16, cfg.Build.CacheSize)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "zero depth", key: "SFCX_MAX_DEPTH", value: "0"},
		{name: "zero cache", key: "SFCX_CACHE_SIZE", value: "0"},
		{name: "negative workers", key: "SFCX_WORKERS", value: "-1"},
		{name: "not a number", key: "SFCX_MAX_DEPTH", value: "deep"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)

			// LoadOrDefault falls back instead of failing.
			assert.Equal(t, Default(), LoadOrDefault())
		})
	}
}
