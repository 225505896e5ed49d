// Package logcall wraps functions so that every invocation emits a
// correlated pair of structured log records: one before the call carrying
// the rendered arguments and the call site, one after carrying the outcome
// and the elapsed time. It is meant for ad-hoc tracing during development,
// not as a permanent observability layer.
//
// A function can be wrapped three ways:
//
//	wrapped := logcall.Wrap(fn)                                // defaults
//	wrapped := logcall.Wrap(fn, logcall.WithLevel(logger.LevelWarn))
//	d := logcall.New(opts...)                                  // reusable
//	wrapped := logcall.Apply(d, fn)
//
// The wrapper has exactly the signature of the target, so call sites do not
// change. Records are written through the pluggable logger package; by
// default they go to the phuslu-backed adapter.
package logcall

import (
	"reflect"

	"github.com/llskyhi/log-call/logger"
)

const (
	// DefaultArgLimit bounds the rendered form of a single argument,
	// result or panic value.
	DefaultArgLimit = 256
	// DefaultStackLimit bounds the number of frames in a one-line stack.
	DefaultStackLimit = 32
)

// Logger is re-exported for convenience.
type Logger = logger.Logger

// TraceIDFunc is re-exported for convenience.
type TraceIDFunc = logger.TraceIDFunc

// Decorator holds decoration-time configuration. It is immutable after New
// returns and safe for concurrent use; one Decorator may wrap any number of
// functions.
type Decorator struct {
	logger     logger.Logger
	level      logger.Level
	traceID    TraceIDFunc
	callerInfo bool
	argLimit   int
	stackLimit int
	name       string
}

// Option configures a Decorator.
type Option func(*Decorator)

// WithLevel sets the severity at which both records of a call are emitted.
// The default is LevelDebug.
func WithLevel(level logger.Level) Option {
	return func(d *Decorator) { d.level = level }
}

// WithLogger installs the destination logger. A nil logger drops all
// records.
func WithLogger(l logger.Logger) Option {
	return func(d *Decorator) { d.logger = l }
}

// WithTraceIDFunc replaces the default serial-counter correlation IDs.
// IDs must be unique across overlapping invocations within one process run.
func WithTraceIDFunc(f TraceIDFunc) Option {
	return func(d *Decorator) {
		if f != nil {
			d.traceID = f
		}
	}
}

// WithCallerInfo controls whether the before record carries the immediate
// caller of the wrapped function. Enabled by default.
func WithCallerInfo(enabled bool) Option {
	return func(d *Decorator) { d.callerInfo = enabled }
}

// WithArgLimit bounds the rendered form of each argument and result.
// Zero or negative disables truncation.
func WithArgLimit(n int) Option {
	return func(d *Decorator) { d.argLimit = n }
}

// WithStackLimit bounds the number of frames rendered in the one-line stack
// of a panic record.
func WithStackLimit(n int) Option {
	return func(d *Decorator) { d.stackLimit = n }
}

// WithName overrides the callable name resolved from the function's symbol.
// Useful when the target has no useful symbol name, e.g. a function built
// with reflect.MakeFunc.
func WithName(name string) Option {
	return func(d *Decorator) { d.name = name }
}

// New builds a Decorator from opts, filling everything else with defaults.
func New(opts ...Option) *Decorator {
	d := &Decorator{
		logger:     logger.NewPhusluLogger(nil),
		level:      logger.LevelDebug,
		traceID:    nextSerial,
		callerInfo: true,
		argLimit:   DefaultArgLimit,
		stackLimit: DefaultStackLimit,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(d)
		}
	}
	return d
}

// Wrap returns a wrapper with the exact signature of fn that logs a
// before/after record pair around every invocation. It panics if fn is not
// a function or is nil.
func Wrap[F any](fn F, opts ...Option) F {
	return Apply(New(opts...), fn)
}

// Apply wraps fn with d, preserving fn's static type.
func Apply[F any](d *Decorator, fn F) F {
	return d.wrapValue(reflect.ValueOf(fn)).Interface().(F)
}

// Wrap is the dynamic counterpart of Apply for callers that only hold the
// function as an any value; the result must be type-asserted back.
func (d *Decorator) Wrap(fn any) any {
	return d.wrapValue(reflect.ValueOf(fn)).Interface()
}
