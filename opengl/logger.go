package opengl

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/glgpu/internal/gl"
)

// nopHandler silently discards all log records.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// loggerPtr stores the active logger. Accessed atomically for thread safety.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(slog.New(nopHandler{}))
}

// slogger returns the current package logger.
// All logging in opengl goes through this function.
func slogger() *slog.Logger { return loggerPtr.Load() }

// Logger returns the logger set by SetLogger. Platform packages log
// through it so one call configures the whole stack.
func Logger() *slog.Logger { return loggerPtr.Load() }

// SetLogger sets the logger for the backend and the native binding
// beneath it. Pass nil to restore silent behavior.
//
// Called from glgpu.SetLogger; applications normally configure logging
// there instead.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(nopHandler{})
	}
	loggerPtr.Store(l)
	gl.SetLogger(l)
}
