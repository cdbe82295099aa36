package logging

import (
	"errors"
	"io"
	"log/slog"
	"strings"
)

// ErrNoWriters is returned when New is called without any output.
var ErrNoWriters = errors.New("at least one log writer is required")

// Logger wraps slog.Logger and owns the writers that need closing.
type Logger struct {
	*slog.Logger
	closers []io.Closer
}

// New creates a Logger writing one text line per record to every writer.
func New(level string, writers ...io.Writer) (*Logger, error) {
	if len(writers) == 0 {
		return nil, ErrNoWriters
	}
	var closerList []io.Closer
	var output io.Writer
	if len(writers) == 1 {
		output = writers[0]
	} else {
		output = io.MultiWriter(writers...)
	}
	for _, w := range writers {
		if c, ok := w.(io.Closer); ok && !isStdStream(w) {
			closerList = append(closerList, c)
		}
	}
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return &Logger{
		Logger:  slog.New(handler),
		closers: closerList,
	}, nil
}

// Close closes every owned writer and returns the last error.
func (l *Logger) Close() error {
	var lastErr error
	for _, c := range l.closers {
		if err := c.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

// ParseLevel maps debug/info/warn/error to a slog level; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
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

// ValidLevel reports whether level is one ParseLevel recognizes.
func ValidLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug", "info", "warn", "warning", "error":
		return true
	}
	return false
}
