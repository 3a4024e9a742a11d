package bitvec

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with the fields bit vectors report.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger with the given handler.
// If handler is nil, logging is disabled.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		return NoopLogger()
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewTextLogger creates a Logger that writes human-readable text to stderr.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NewJSONLogger creates a Logger that writes JSON to stderr.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{
		Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})),
	}
}

// NoopLogger creates a Logger that discards all output.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.Level(1000), // unreachable
		})),
	}
}

var noop = NoopLogger()

// logRealloc records a buffer reallocation.
func (l *Logger) logRealloc(oldElems, newElems, length int) {
	l.Debug("bit vector reallocated",
		"old_elements", oldElems,
		"new_elements", newElems,
		"len", length,
	)
}

// logReuse records a clone that fit into the existing buffer.
func (l *Logger) logReuse(elems, capElems, length int) {
	l.Debug("bit vector buffer reused",
		"elements", elems,
		"cap_elements", capElems,
		"len", length,
	)
}
