package logger

import (
	"fmt"
	"time"

	phlog "github.com/oarkflow/log"
)

// PhusluLogger wraps a phuslu-style phlog logger instance.
type PhusluLogger struct {
	l *phlog.Logger
}

// NewPhusluLogger wraps l; nil falls back to the package default logger.
func NewPhusluLogger(l *phlog.Logger) *PhusluLogger {
	if l == nil {
		l = &phlog.DefaultLogger
	}
	return &PhusluLogger{l: l}
}

func (p *PhusluLogger) Debug(msg string, keyvals ...any) {
	emitPhuslu(p.l.Debug(), msg, keyvals)
}

func (p *PhusluLogger) Info(msg string, keyvals ...any) {
	emitPhuslu(p.l.Info(), msg, keyvals)
}

func (p *PhusluLogger) Warn(msg string, keyvals ...any) {
	emitPhuslu(p.l.Warn(), msg, keyvals)
}

func (p *PhusluLogger) Error(msg string, keyvals ...any) {
	emitPhuslu(p.l.Error(), msg, keyvals)
}

func emitPhuslu(b *phlog.Entry, msg string, keyvals []any) {
	for i := 0; i < len(keyvals)-1; i += 2 {
		ks := fmt.Sprint(keyvals[i])
		switch vv := keyvals[i+1].(type) {
		case string:
			b = b.Str(ks, vv)
		case bool:
			b = b.Bool(ks, vv)
		case int:
			b = b.Int(ks, vv)
		case time.Duration:
			b = b.Dur(ks, vv)
		default:
			b = b.Any(ks, vv)
		}
	}
	b.Msg(msg)
}
