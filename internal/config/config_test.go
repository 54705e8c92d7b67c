package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "templates", cfg.TemplateDir)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("GIN_MODE", "release")
	t.Setenv("PORTFOLIO_LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"gin mode", "GIN_MODE", "prod", "invalid GIN_MODE"},
		{"log level", "PORTFOLIO_LOG_LEVEL", "loud", "invalid PORTFOLIO_LOG_LEVEL"},
		{"empty port", "PORT", " ", "PORT is required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
