//go:build !(js && wasm)

package console

import (
	"fmt"
	"log/slog"
	"strings"
)

// Native builds have no browser console; messages go to the default slog
// logger instead. Log maps to debug so test output stays quiet.

// Log writes a debug record.
func Log(args ...any) {
	slog.Debug(join(args))
}

// Warn writes a warning record.
func Warn(args ...any) {
	slog.Warn(join(args))
}

// Error writes an error record.
func Error(args ...any) {
	slog.Error(join(args))
}

// join mimics the browser console, which separates arguments with spaces.
func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}
