package logcall

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/oarkflow/xid"
)

// callSerial is the process-wide invocation counter backing the default
// correlation IDs: initialized at process start, incremented atomically per
// wrapped call, never reset. Two overlapping invocations can therefore
// never observe the same ID within one process run.
var callSerial atomic.Uint64

func nextSerial() string {
	return strconv.FormatUint(callSerial.Add(1), 10)
}

// RandomTraceID is a TraceIDFunc producing random UUIDs, for when
// correlation IDs must stay unique across processes, e.g. in aggregated
// logs.
func RandomTraceID() string {
	return uuid.NewString()
}

// CompactTraceID is a TraceIDFunc producing short, sortable xid tokens.
func CompactTraceID() string {
	return xid.New().String()
}
