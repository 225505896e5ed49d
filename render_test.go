package logcall

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

type loud struct{}

func (loud) String() string { return "LOUD" }

type broken struct{}

func (broken) String() string { panic("no rendering for you") }

func TestRenderAny(t *testing.T) {
	if got := renderAny("hi", 0); got != `"hi"` {
		t.Fatalf("strings must be quoted, got %q", got)
	}
	if got := renderAny(42, 0); got != "42" {
		t.Fatalf("expected 42, got %q", got)
	}
	if got := renderAny(nil, 0); got != "<nil>" {
		t.Fatalf("expected <nil>, got %q", got)
	}
	if got := renderAny(loud{}, 0); got != "LOUD" {
		t.Fatalf("fmt.Stringer must be honoured, got %q", got)
	}
}

func TestRenderAnyPanickingStringer(t *testing.T) {
	// fmt contains the panic itself and reports it inline.
	got := renderAny(broken{}, 0)
	if !strings.Contains(got, "PANIC") {
		t.Fatalf("panicking String must degrade to a placeholder, got %q", got)
	}
}

func TestRenderAnyTruncates(t *testing.T) {
	got := renderAny(strings.Repeat("x", 100), 10)
	if got != `"`+strings.Repeat("x", 10)+`..."` {
		t.Fatalf("expected the content cut at 10 bytes inside the quotes, got %q", got)
	}
	if got := renderAny(1234567890, 5); got != "12345..." {
		t.Fatalf("non-string values truncate on the rendered form, got %q", got)
	}
}

func TestTruncateKeepsRunesWhole(t *testing.T) {
	if got := truncate("ééé", 3); got != "é..." {
		t.Fatalf("truncation must not split a rune, got %q", got)
	}
	if got := truncate("abc", 0); got != "abc" {
		t.Fatalf("non-positive limit must disable truncation, got %q", got)
	}
}

func TestRenderArgsExpandsVariadicTail(t *testing.T) {
	fn := func(prefix string, xs ...int) {}
	ft := reflect.TypeOf(fn)
	args := []reflect.Value{
		reflect.ValueOf("p"),
		reflect.ValueOf([]int{1, 2, 3}),
	}
	got := renderArgs(args, ft.IsVariadic(), 0)
	if got != `"p", 1, 2, 3` {
		t.Fatalf("variadic tail must be expanded, got %q", got)
	}
}

func TestRenderResultsSkipsErrorSlot(t *testing.T) {
	out := []reflect.Value{
		reflect.ValueOf(7),
		reflect.ValueOf(errors.New("boom")),
	}
	if got := renderResults(out, 1, 0); got != "7" {
		t.Fatalf("error slot must be skipped, got %q", got)
	}
	if got := renderResults(out[:1], -1, 0); got != "7" {
		t.Fatalf("expected 7, got %q", got)
	}
}

func TestRenderError(t *testing.T) {
	got := renderError(errors.New("boom"), 0)
	if !strings.Contains(got, "errorString") || !strings.Contains(got, "boom") {
		t.Fatalf("error rendering must carry type and message, got %q", got)
	}
}
