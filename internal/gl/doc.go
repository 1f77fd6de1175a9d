// Package gl is the native OpenGL 4.6 binding used by the opengl backend.
//
// Entry points are listed once in a declarative table (procs.go) and
// resolved together by [Resolve]; a driver missing any of them cannot be
// used. On Linux, [Load] wraps the resolved table in a [Context] that
// calls through goffi, so no cgo is involved.
//
// Build with -tags gldebug to follow every native call with a
// glGetError check that logs the failing call site.
package gl
