// Package logger provides structured logging for the insertdatetime command.
// It uses Go's slog package with configurable level and format. Logs go to
// stderr so stdout stays clean for inserted text.
package logger

import (
	"log/slog"
	"os"
)

// New creates a new slog Logger with the specified level and format and sets
// it as the default logger. If jsonOutput is true, logs are formatted as
// JSON, otherwise as text.
func New(levelStr string, jsonOutput bool) *slog.Logger {
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if jsonOutput {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}
