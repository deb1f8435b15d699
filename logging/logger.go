// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"

	"github.com/Akash-2201/Student-data-analysis/config"
)

// New builds a logger writing to w in the configured format and level
func New(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: ParseLevel(cfg.Level)}

	var handler slog.Handler
	if strings.EqualFold(cfg.Format, "text") {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}
	return slog.New(handler)
}

// Initialize builds the logger and installs it as the slog default
func Initialize(cfg config.LoggingConfig, w io.Writer) *slog.Logger {
	logger := New(cfg, w)
	slog.SetDefault(logger)
	return logger
}

// ParseLevel converts a level name to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
