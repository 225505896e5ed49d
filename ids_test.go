package logcall

import "testing"

func TestSerialIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := nextSerial()
		if seen[id] {
			t.Fatalf("duplicate serial id %q", id)
		}
		seen[id] = true
	}
}

func TestTraceIDHelpers(t *testing.T) {
	for name, fn := range map[string]func() string{
		"random":  RandomTraceID,
		"compact": CompactTraceID,
	} {
		seen := map[string]bool{}
		for i := 0; i < 100; i++ {
			id := fn()
			if id == "" {
				t.Fatalf("%s: empty trace id", name)
			}
			if seen[id] {
				t.Fatalf("%s: duplicate trace id %q", name, id)
			}
			seen[id] = true
		}
	}
}
