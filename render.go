package logcall

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

// renderAny formats a single value with its preferred representation:
// strings are quoted, everything else goes through fmt, which honours
// fmt.Stringer and error. fmt already contains panics raised inside String
// methods; the recover guard catches anything that still escapes so that
// rendering can never change the outcome of the wrapped call.
func renderAny(x any, limit int) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("(%T instance)", x)
		}
	}()
	switch v := x.(type) {
	case nil:
		s = "<nil>"
	case string:
		// Truncate the content, not the quoted form, so the closing
		// quote survives and the ellipsis lands inside it.
		s = fmt.Sprintf("%q", truncate(v, limit))
	default:
		s = truncate(fmt.Sprint(x), limit)
	}
	return s
}

func renderValue(v reflect.Value, limit int) string {
	if !v.IsValid() {
		return "<nil>"
	}
	if !v.CanInterface() {
		return "(" + v.Type().String() + " value)"
	}
	return renderAny(v.Interface(), limit)
}

// renderArgs renders the argument list of an invocation. The variadic tail
// is expanded element-wise so the log reads like the call site.
func renderArgs(args []reflect.Value, variadic bool, limit int) string {
	parts := make([]string, 0, len(args))
	for i, a := range args {
		if variadic && i == len(args)-1 {
			for j := 0; j < a.Len(); j++ {
				parts = append(parts, renderValue(a.Index(j), limit))
			}
			continue
		}
		parts = append(parts, renderValue(a, limit))
	}
	return strings.Join(parts, ", ")
}

// renderResults renders return values, skipping the trailing error slot,
// which is reported separately.
func renderResults(out []reflect.Value, errIdx int, limit int) string {
	parts := make([]string, 0, len(out))
	for i, v := range out {
		if i == errIdx {
			continue
		}
		parts = append(parts, renderValue(v, limit))
	}
	return strings.Join(parts, ", ")
}

// renderError renders an error as "type: message".
func renderError(err error, limit int) (s string) {
	defer func() {
		if recover() != nil {
			s = fmt.Sprintf("(%T instance)", err)
		}
	}()
	return truncate(fmt.Sprintf("%T: %s", err, err.Error()), limit)
}

// truncate cuts s to at most limit bytes without splitting a rune.
// Non-positive limits disable truncation.
func truncate(s string, limit int) string {
	if limit <= 0 || len(s) <= limit {
		return s
	}
	cut := limit
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
