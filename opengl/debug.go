package opengl

import (
	"context"
	"log/slog"

	"github.com/gogpu/glgpu/internal/gl"
)

var debugSources = map[uint32]string{
	gl.DEBUG_SOURCE_API:             "api",
	gl.DEBUG_SOURCE_WINDOW_SYSTEM:   "window system",
	gl.DEBUG_SOURCE_SHADER_COMPILER: "shader compiler",
	gl.DEBUG_SOURCE_THIRD_PARTY:     "third party",
	gl.DEBUG_SOURCE_APPLICATION:     "application",
	gl.DEBUG_SOURCE_OTHER:           "other",
}

var debugTypes = map[uint32]string{
	gl.DEBUG_TYPE_ERROR:               "error",
	gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR: "deprecated behavior",
	gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:  "undefined behavior",
	gl.DEBUG_TYPE_PORTABILITY:         "portability",
	gl.DEBUG_TYPE_PERFORMANCE:         "performance",
	gl.DEBUG_TYPE_OTHER:               "other",
	gl.DEBUG_TYPE_MARKER:              "marker",
	gl.DEBUG_TYPE_PUSH_GROUP:          "push group",
	gl.DEBUG_TYPE_POP_GROUP:           "pop group",
}

// debugLevel maps a KHR_debug severity to a log level.
func debugLevel(severity uint32) (slog.Level, string) {
	switch severity {
	case gl.DEBUG_SEVERITY_HIGH:
		return slog.LevelError, "high"
	case gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelWarn, "medium"
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelInfo, "low"
	}
	return slog.LevelDebug, "notification"
}

func debugName(names map[uint32]string, v uint32) string {
	if s, ok := names[v]; ok {
		return s
	}
	return "unknown"
}

// debugMessage is installed with glDebugMessageCallback.
func debugMessage(source, typ, id, severity uint32, message string) {
	level, sev := debugLevel(severity)
	log := slogger()
	if !log.Enabled(context.Background(), level) {
		return
	}
	log.Log(context.Background(), level, "opengl: driver message",
		"source", debugName(debugSources, source),
		"type", debugName(debugTypes, typ),
		"id", id,
		"severity", sev,
		"message", message,
	)
}

// label attaches a debug label to a native object. Empty labels are skipped.
func (d *Device) label(identifier, name uint32, label string) {
	if label == "" || name == 0 {
		return
	}
	d.fns.ObjectLabel(identifier, name, label)
}

func (d *Device) pushGroup(prefix, label string) {
	d.fns.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, prefix+label)
}

func (d *Device) popGroup() {
	d.fns.PopDebugGroup()
}
