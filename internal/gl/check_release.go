//go:build !gldebug

package gl

// DebugChecks reports whether the binary was built with -tags gldebug.
const DebugChecks = false

// Check is compiled out in release builds.
func Check(Functions, string) {}
