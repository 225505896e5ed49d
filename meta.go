package logcall

import (
	"runtime"
	"strings"

	"github.com/dgraph-io/ristretto"
)

// nameCache memoizes entry-PC to qualified-name lookups. The same function
// is often wrapped more than once (per request, per call site, in loops),
// and runtime.FuncForPC walks the module's function table each time, so the
// resolved names are kept in a small process-wide cache.
var nameCache *ristretto.Cache

func init() {
	c, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: 1 << 12,
		MaxCost:     1 << 10,
		BufferItems: 64,
	})
	if err != nil {
		panic("logcall: name cache: " + err.Error())
	}
	nameCache = c
}

// funcName resolves the qualified "pkg.Func" name of the function whose
// entry point is pc.
func funcName(pc uintptr) string {
	if v, ok := nameCache.Get(uint64(pc)); ok {
		return v.(string)
	}
	name := "(unknown)"
	if rf := runtime.FuncForPC(pc); rf != nil {
		// Method values resolve to the compiler's bound-method wrapper,
		// whose symbol carries a "-fm" suffix.
		name = strings.TrimSuffix(shortFuncName(rf.Name()), "-fm")
	}
	nameCache.Set(uint64(pc), name, 1)
	return name
}
