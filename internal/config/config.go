package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Store backends.
const (
	StoreFile  = "file"
	StoreRedis = "redis"
	StoreBolt  = "bolt"
)

type Config struct {
	Environment string `env:"DRIFTSHELL_ENV" envDefault:"development"`
	LogLevel    string `env:"DRIFTSHELL_LOG_LEVEL" envDefault:"info"`
	LogPath     string `env:"DRIFTSHELL_LOG_PATH" envDefault:"driftshell.log"`

	// Save persistence. The store target is always explicit config, never a
	// package-level constant, so tests can redirect storage.
	Store     string `env:"DRIFTSHELL_STORE" envDefault:"file"`
	SavePath  string `env:"DRIFTSHELL_SAVE_PATH" envDefault:"save.json"`
	BoltPath  string `env:"DRIFTSHELL_BOLT_PATH" envDefault:"driftshell.db"`
	RedisAddr string `env:"DRIFTSHELL_REDIS_ADDR" envDefault:"localhost:6379"`
	SaveSlot  string `env:"DRIFTSHELL_SAVE_SLOT" envDefault:"default"`

	// Rendering.
	WrapWidth int `env:"DRIFTSHELL_WIDTH" envDefault:"78"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	switch cfg.Store {
	case StoreFile, StoreRedis, StoreBolt:
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store)
	}
	return cfg, nil
}

// SlogLevel maps the configured level name to a slog level.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
