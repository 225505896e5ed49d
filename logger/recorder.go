package logger

import (
	"fmt"
	"sync"
)

// Record is a single captured log record.
type Record struct {
	Level   Level
	Msg     string
	Keyvals []any
}

// Get returns the value following the first occurrence of key in Keyvals.
func (r Record) Get(key string) (any, bool) {
	for i := 0; i+1 < len(r.Keyvals); i += 2 {
		if fmt.Sprint(r.Keyvals[i]) == key {
			return r.Keyvals[i+1], true
		}
	}
	return nil, false
}

// Recorder is a Logger that captures records in memory. It is safe for
// concurrent use and meant for tests.
type Recorder struct {
	mu      sync.Mutex
	records []Record
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) Debug(msg string, keyvals ...any) { r.append(LevelDebug, msg, keyvals) }
func (r *Recorder) Info(msg string, keyvals ...any)  { r.append(LevelInfo, msg, keyvals) }
func (r *Recorder) Warn(msg string, keyvals ...any)  { r.append(LevelWarn, msg, keyvals) }
func (r *Recorder) Error(msg string, keyvals ...any) { r.append(LevelError, msg, keyvals) }

func (r *Recorder) append(level Level, msg string, keyvals []any) {
	kv := make([]any, len(keyvals))
	copy(kv, keyvals)
	r.mu.Lock()
	r.records = append(r.records, Record{Level: level, Msg: msg, Keyvals: kv})
	r.mu.Unlock()
}

// Records returns a snapshot of everything captured so far.
func (r *Recorder) Records() []Record {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out
}

// Len reports the number of captured records.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.records)
}

// Reset discards all captured records.
func (r *Recorder) Reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}
