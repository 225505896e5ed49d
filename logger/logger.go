package logger

import (
	"fmt"
	"strings"
)

// Level is the severity at which call records are emitted.
type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	}
	return fmt.Sprintf("level(%d)", int8(l))
}

// ParseLevel parses a level name as it appears in configuration files.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelDebug, fmt.Errorf("logger: unknown level %q", s)
}

// Logger is a minimal structured logging interface used by the call wrapper.
// Implementations should accept alternating key/value pairs as variadic
// arguments. This keeps the interface small and easy to mock in tests.
type Logger interface {
	Debug(msg string, keyvals ...any)
	Info(msg string, keyvals ...any)
	Warn(msg string, keyvals ...any)
	Error(msg string, keyvals ...any)
}

// TraceIDFunc generates a correlation/trace ID string for each wrapped call.
// It should be cheap and safe for concurrent calls.
type TraceIDFunc func() string

// Emit dispatches msg and keyvals to the method of l matching level.
// A nil Logger drops the record.
func Emit(l Logger, level Level, msg string, keyvals ...any) {
	if l == nil {
		return
	}
	switch level {
	case LevelInfo:
		l.Info(msg, keyvals...)
	case LevelWarn:
		l.Warn(msg, keyvals...)
	case LevelError:
		l.Error(msg, keyvals...)
	default:
		l.Debug(msg, keyvals...)
	}
}
