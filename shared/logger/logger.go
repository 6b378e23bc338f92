package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Log is the default logger for clients built without one of their own.
// It is set once at init and never replaced.
var Log *slog.Logger

func init() {
	// Library default: quiet unless the caller asks for more.
	Log = New(os.Stderr, "warn", false)
}

// New builds a logger with the given level and format. It does not touch
// Log or slog's process-wide default; the host application owns those.
func New(w io.Writer, level string, useJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(level),
		AddSource: true,
	}

	var handler slog.Handler
	if useJSON {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	return slog.New(handler).With("component", "chatease")
}

// parseLevel converts string log level to slog.Level
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
