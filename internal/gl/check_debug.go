//go:build gldebug

package gl

import (
	"path/filepath"
	"runtime"
)

// DebugChecks reports whether the binary was built with -tags gldebug.
// Programming-error assertions and per-call error checks key off it.
const DebugChecks = true

// Check reads the GL error flag after op and logs the caller's
// position and the code. It never fails the call.
func Check(f Functions, op string) {
	code := f.GetError()
	if code == NO_ERROR {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	slogger().Error("gl: call failed",
		"op", op,
		"code", ErrorString(code),
		"file", filepath.Base(file),
		"line", line,
	)
}
