package logcall

import (
	"runtime"
	"strconv"
	"strings"
)

// pkgPrefix is this module's import-path prefix. Frames below it, and the
// reflect/runtime plumbing between the wrapper and the target, are skipped
// when resolving the user's call site.
const pkgPrefix = "github.com/llskyhi/log-call"

func internalFrame(fn string) bool {
	return strings.HasPrefix(fn, pkgPrefix+".") ||
		strings.HasPrefix(fn, pkgPrefix+"/") ||
		strings.HasPrefix(fn, "reflect.") ||
		strings.HasPrefix(fn, "runtime.")
}

// userFrames collects up to max stack frames that belong to user code,
// innermost first.
func userFrames(max int) []runtime.Frame {
	if max <= 0 {
		max = DefaultStackLimit
	}
	pcs := make([]uintptr, max+32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	var out []runtime.Frame
	for {
		f, more := frames.Next()
		if f.Function != "" && !internalFrame(f.Function) {
			out = append(out, f)
			if len(out) >= max {
				break
			}
		}
		if !more {
			break
		}
	}
	return out
}

// callSite describes the immediate caller of the wrapper as "pkg.Func:line".
func callSite() string {
	fs := userFrames(1)
	if len(fs) == 0 {
		return "(unknown caller)"
	}
	return frameString(fs[0])
}

// oneLineStack renders the current call stack as a single line, innermost
// call first. A one-line stack reads better than a full traceback when the
// panic is caught further up, and keeps nested wrapped calls from flooding
// the log.
func oneLineStack(limit int) string {
	fs := userFrames(limit)
	if len(fs) == 0 {
		return "(unknown stack)"
	}
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = frameString(f)
	}
	return strings.Join(parts, " <- ")
}

func frameString(f runtime.Frame) string {
	return shortFuncName(f.Function) + ":" + strconv.Itoa(f.Line)
}

// shortFuncName trims the import-path directories from a runtime function
// name, leaving "pkg.Func".
func shortFuncName(fn string) string {
	if i := strings.LastIndex(fn, "/"); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

// wrapperDepth counts wrapper frames on the current stack, giving the
// nesting level of wrapped calls on this goroutine: 1 for a top-level
// wrapped call, 2 when a wrapped function calls another wrapped function,
// and so on.
func wrapperDepth() int {
	pcs := make([]uintptr, 256)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])
	depth := 0
	for {
		f, more := frames.Next()
		if strings.HasPrefix(f.Function, pkgPrefix+".") && strings.Contains(f.Function, "wrapValue") {
			depth++
		}
		if !more {
			break
		}
	}
	return depth
}
