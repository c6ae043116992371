package hwy

import (
	"fmt"
	"log/slog"
)

// assertf checks a caller contract. It is a no-op unless the package is
// built with the hwy_debug tag, in which case a violation is logged and
// turned into a panic.
func assertf(cond bool, op, format string, args ...any) {
	if !debugChecks || cond {
		return
	}
	detail := fmt.Sprintf(format, args...)
	Logger().Error("packet contract violated",
		slog.String("op", op),
		slog.String("detail", detail))
	panic("hwy: " + op + ": " + detail)
}

// DebugChecks reports whether contract assertions are compiled in.
func DebugChecks() bool {
	return debugChecks
}
