package dynarr

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with dynarr-specific helpers.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// WithLen adds a length field to the logger.
func (l *Logger) WithLen(n int) *Logger {
	return &Logger{
		Logger: l.Logger.With("len", n),
	}
}

// LogGrow logs a buffer reallocation.
func (l *Logger) LogGrow(oldCap, newCap, moved int) {
	l.Debug("buffer grown",
		"old_cap", oldCap,
		"new_cap", newCap,
		"moved", moved,
	)
}

// SetLogger attaches a logger to the array. Reallocation events are traced
// at debug level. Passing nil disables logging.
func (a *Array[T]) SetLogger(l *Logger) {
	a.logger = l
}
