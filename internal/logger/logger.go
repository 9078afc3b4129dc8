package logger

import (
	"io"
	"log/slog"

	"github.com/ErebusAres/DriftShell/internal/config"
)

// Setup configures the logger based on environment. Production gets JSON,
// development gets text. Output is caller-provided: the console writes logs
// to a file so they never tear the UI.
func Setup(cfg *config.Config, out io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}

	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
