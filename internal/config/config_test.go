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

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, StoreFile, cfg.Store)
	assert.Equal(t, "save.json", cfg.SavePath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 78, cfg.WrapWidth)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DRIFTSHELL_STORE", "redis")
	t.Setenv("DRIFTSHELL_REDIS_ADDR", "10.0.0.5:6380")
	t.Setenv("DRIFTSHELL_SAVE_SLOT", "wren")
	t.Setenv("DRIFTSHELL_WIDTH", "60")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, StoreRedis, cfg.Store)
	assert.Equal(t, "10.0.0.5:6380", cfg.RedisAddr)
	assert.Equal(t, "wren", cfg.SaveSlot)
	assert.Equal(t, 60, cfg.WrapWidth)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	t.Setenv("DRIFTSHELL_STORE", "punchcards")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown store backend")
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"garbage", slog.LevelInfo},
	}
	for _, tt := range tests {
		cfg := &Config{LogLevel: tt.in}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.in)
	}
}
