package opengl

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/gogpu/glgpu/internal/gl"
)

// Device and capability errors.
var (
	// ErrUnsupported is returned by operations this backend does not implement.
	ErrUnsupported = errors.New("opengl: unsupported")

	// ErrVersion is returned when the driver reports a version below 4.6.
	ErrVersion = errors.New("opengl: version too old")

	// ErrMissingProc is returned when a required entry point cannot be resolved.
	ErrMissingProc = gl.ErrMissingProc

	// ErrNilPlatform is returned by NewDevice without a platform.
	ErrNilPlatform = errors.New("opengl: platform is nil")

	// ErrDeviceDestroyed is returned by operations on a destroyed device.
	ErrDeviceDestroyed = errors.New("opengl: device destroyed")

	// ErrCreateFailed is returned when the driver hands back a zero name.
	ErrCreateFailed = errors.New("opengl: native object creation failed")

	// ErrNoSurface is returned by Present before a window has been claimed.
	ErrNoSurface = errors.New("opengl: no window claimed")

	// ErrWrongBackbuffer is returned when Present gets a texture other than
	// the one handed out by GetBackbuffer.
	ErrWrongBackbuffer = errors.New("opengl: texture is not the device backbuffer")

	// ErrSurfaceFormat is returned when a surface reports a pixel format the
	// backbuffer cannot mirror.
	ErrSurfaceFormat = errors.New("opengl: invalid surface pixel format")
)

// Resource errors.
var (
	ErrBufferTooLarge      = errors.New("opengl: buffer too large")
	ErrInvalidSize         = errors.New("opengl: invalid size")
	ErrAlreadyLocked       = errors.New("opengl: buffer already locked")
	ErrNotLocked           = errors.New("opengl: buffer not locked")
	ErrMapFailed           = errors.New("opengl: buffer map failed")
	ErrFormatNotRenderable = errors.New("opengl: pixel format not renderable")
	ErrTextureTooBig       = errors.New("opengl: texture too big")
	ErrTooManyMipLevels    = errors.New("opengl: too many mip levels")
	ErrMissingStageMarker  = errors.New("opengl: shader source lacks a // vert or // frag marker")
	ErrShaderCompile       = errors.New("opengl: shader compilation failed")
	ErrProgramLink         = errors.New("opengl: program link failed")
	ErrProgramValidate     = errors.New("opengl: program validation failed")
	ErrTooManyAttributes   = errors.New("opengl: too many vertex attributes")
	ErrNilShader           = errors.New("opengl: shader is nil")
	ErrShaderStage         = errors.New("opengl: shader has the wrong stage")
)

// Pass and command buffer errors.
var (
	// ErrNestedPass is returned when a pass begins while another is open.
	ErrNestedPass = errors.New("opengl: a pass is already open")

	// ErrPassEnded is returned when operations are called on an ended pass.
	ErrPassEnded = errors.New("opengl: pass has already ended")

	// ErrPassOpen is returned by Submit while a pass is still recording.
	ErrPassOpen = errors.New("opengl: pass still open")

	// ErrTooManyAttachments is returned for more than MaxColorAttachments colors.
	ErrTooManyAttachments = errors.New("opengl: too many color attachments")

	// ErrNoAttachments is returned for a render pass without any target.
	ErrNoAttachments = errors.New("opengl: render pass has no attachments")

	// ErrNilResource is returned when a nil or destroyed resource reaches a bind, draw or copy.
	ErrNilResource = errors.New("opengl: nil resource")

	// ErrZeroStride is returned by SetMeshBuffer when the bound pipeline has no stride.
	ErrZeroStride = errors.New("opengl: mesh stride is zero")

	// ErrNoPipeline is returned by draws and SetMeshBuffer before SetPipeline.
	ErrNoPipeline = errors.New("opengl: no pipeline bound")

	// ErrCommandOverflow is returned when an arena size computation overflows.
	ErrCommandOverflow = errors.New("opengl: command arena size overflow")

	// ErrCommandBufferTooLarge is returned when the arena would exceed MaxArenaSize.
	ErrCommandBufferTooLarge = errors.New("opengl: command buffer too large")

	// ErrCorruptCommand is returned when replay meets an unknown tag or a truncated record.
	ErrCorruptCommand = errors.New("opengl: corrupt command")

	// ErrSubmitted is returned by operations on a submitted command buffer.
	ErrSubmitted = errors.New("opengl: command buffer already submitted")

	// ErrAbandoned is returned by operations on an abandoned command buffer.
	ErrAbandoned = errors.New("opengl: command buffer abandoned")
)

// Framebuffer completeness errors, matched by *FramebufferError.
var (
	ErrIncompleteAttachment        = errors.New("opengl: framebuffer incomplete: attachment")
	ErrIncompleteMissingAttachment = errors.New("opengl: framebuffer incomplete: missing attachment")
	ErrIncompleteDrawBuffer        = errors.New("opengl: framebuffer incomplete: draw buffer")
	ErrIncompleteReadBuffer        = errors.New("opengl: framebuffer incomplete: read buffer")
	ErrFramebufferUnsupported      = errors.New("opengl: framebuffer incomplete: unsupported")
	ErrIncompleteMultisample       = errors.New("opengl: framebuffer incomplete: multisample")
	ErrIncompleteLayerTargets      = errors.New("opengl: framebuffer incomplete: layer targets")
	ErrFramebufferUndefined        = errors.New("opengl: framebuffer incomplete: undefined")
)

var framebufferStatusErrors = map[uint32]error{
	gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:         ErrIncompleteAttachment,
	gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT: ErrIncompleteMissingAttachment,
	gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:        ErrIncompleteDrawBuffer,
	gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:        ErrIncompleteReadBuffer,
	gl.FRAMEBUFFER_UNSUPPORTED:                   ErrFramebufferUnsupported,
	gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:        ErrIncompleteMultisample,
	gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:      ErrIncompleteLayerTargets,
	gl.FRAMEBUFFER_UNDEFINED:                     ErrFramebufferUndefined,
}

// FramebufferError reports a failed completeness check.
type FramebufferError struct {
	// Status is the value returned by glCheckNamedFramebufferStatus.
	Status uint32
}

func (e *FramebufferError) Error() string {
	if err, ok := framebufferStatusErrors[e.Status]; ok {
		return err.Error()
	}
	return fmt.Sprintf("opengl: framebuffer incomplete: status 0x%04X", e.Status)
}

// Is matches the per-status sentinel.
func (e *FramebufferError) Is(target error) bool {
	err, ok := framebufferStatusErrors[e.Status]
	return ok && err == target
}

// checkFramebuffer returns nil for a complete framebuffer.
func checkFramebuffer(fns gl.Functions, fbo, target uint32) error {
	status := fns.CheckNamedFramebufferStatus(fbo, target)
	if status == gl.FRAMEBUFFER_COMPLETE {
		return nil
	}
	return &FramebufferError{Status: status}
}

type errorBox struct{ err error }

var lastErr atomic.Pointer[errorBox]

// LastError returns the most recent failure recorded by any operation in
// this package, or nil. Each failure overwrites the previous one.
func LastError() error {
	if b := lastErr.Load(); b != nil {
		return b.err
	}
	return nil
}

// ClearLastError resets LastError to nil.
func ClearLastError() { lastErr.Store(nil) }

// fail records err as the last error and returns it unchanged.
func fail(err error) error {
	if err == nil {
		return nil
	}
	lastErr.Store(&errorBox{err: err})
	slogger().Error("opengl: operation failed", "err", err)
	return err
}

// violation reports a broken caller contract: a panic under -tags gldebug,
// a recorded error otherwise.
func violation(err error) error {
	if gl.DebugChecks {
		panic(err)
	}
	return fail(err)
}
