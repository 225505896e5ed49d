package logcall

import (
	"fmt"
	"reflect"
	"time"

	"github.com/llskyhi/log-call/logger"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// wrapValue builds the instrumented wrapper around fv. The call-shape
// decision (which entry point produced the Decorator) is resolved before
// this point; the wrapper behaves identically regardless.
func (d *Decorator) wrapValue(fv reflect.Value) reflect.Value {
	if fv.Kind() != reflect.Func {
		panic(fmt.Sprintf("logcall: Wrap expects a function, got %v", fv.Kind()))
	}
	if fv.IsNil() {
		panic("logcall: Wrap called with a nil function")
	}
	name := d.name
	if name == "" {
		name = funcName(fv.Pointer())
	}
	ft := fv.Type()
	variadic := ft.IsVariadic()
	errIdx := -1
	if n := ft.NumOut(); n > 0 && ft.Out(n-1) == errorType {
		errIdx = n - 1
	}
	return reflect.MakeFunc(ft, func(args []reflect.Value) (out []reflect.Value) {
		id := d.traceID()
		d.logEnter(id, name, args, variadic)
		start := time.Now()
		done := false
		defer func() {
			if done {
				return
			}
			elapsed := time.Since(start)
			if r := recover(); r != nil {
				d.logPanic(id, name, r, elapsed)
				panic(r)
			}
			// recover returned nil while the call never completed: the
			// goroutine is unwinding via runtime.Goexit. That is not a
			// failure of the callable, so it passes through without an
			// after record.
		}()
		if variadic {
			out = fv.CallSlice(args)
		} else {
			out = fv.Call(args)
		}
		done = true
		d.logExit(id, name, out, errIdx, time.Since(start))
		return out
	})
}

func (d *Decorator) logEnter(id, name string, args []reflect.Value, variadic bool) {
	keyvals := []any{"id", id}
	if d.callerInfo {
		keyvals = append(keyvals, "caller", callSite())
	}
	if depth := wrapperDepth(); depth > 1 {
		keyvals = append(keyvals, "depth", depth)
	}
	msg := fmt.Sprintf("%s(%s) started", name, renderArgs(args, variadic, d.argLimit))
	logger.Emit(d.logger, d.level, msg, keyvals...)
}

func (d *Decorator) logExit(id, name string, out []reflect.Value, errIdx int, elapsed time.Duration) {
	keyvals := []any{"id", id, "elapsed", elapsed}
	if errIdx >= 0 && !out[errIdx].IsNil() {
		err := out[errIdx].Interface().(error)
		keyvals = append(keyvals, "error", renderError(err, d.argLimit))
		logger.Emit(d.logger, d.level, name+" failed", keyvals...)
		return
	}
	if returned := renderResults(out, errIdx, d.argLimit); returned != "" {
		keyvals = append(keyvals, "returned", returned)
	}
	logger.Emit(d.logger, d.level, name+" finished", keyvals...)
}

func (d *Decorator) logPanic(id, name string, recovered any, elapsed time.Duration) {
	logger.Emit(d.logger, d.level, name+" panicked",
		"id", id,
		"elapsed", elapsed,
		"panic", renderAny(recovered, d.argLimit),
		"stack", oneLineStack(d.stackLimit),
	)
}
