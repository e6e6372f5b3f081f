package ast

import (
	"fmt"
	"runtime"
)

// Assertf panics with caller file/line context when cond is false. Reserved
// for structurally impossible conditions — a scope missing a required
// parent, a symbol kind mismatch the passes should have prevented — never
// for user-facing diagnostics, which go through diag.Stream instead.
func Assertf(cond bool, format string, args ...any) {
	if cond {
		return
	}
	_, file, line, ok := runtime.Caller(1)
	if !ok {
		file, line = "unknown", 0
	}
	panic(fmt.Sprintf("%s:%d: internal invariant violated: %s", file, line, fmt.Sprintf(format, args...)))
}
