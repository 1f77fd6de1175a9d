package opengl

import (
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// ContextConfig is what the device asks the platform for.
type ContextConfig struct {
	Major, Minor int
	// Debug requests a debug context so KHR_debug output is available.
	Debug bool
}

// Platform creates native GL contexts and resolves entry points.
type Platform interface {
	CreateContext(cfg ContextConfig) (NativeContext, error)
	GetProcAddress(name string) unsafe.Pointer
}

// NativeContext is a GL context together with the hidden surface it is
// made current on before any window is claimed.
type NativeContext interface {
	// HiddenSurface returns the context's offscreen fallback surface.
	HiddenSurface() Surface
	// MakeCurrent binds the context to s on the calling thread. A nil
	// surface selects the hidden surface.
	MakeCurrent(s Surface) error
	SwapInterval(interval int) error
	Destroy()
}

// Surface is a presentable window surface.
type Surface interface {
	// Size returns the drawable size in pixels.
	Size() (width, height int)
	PixelFormat() gputypes.TextureFormat
	// Configure prepares the surface for GL rendering. It may be a no-op.
	Configure() error
	// Unconfigure releases what Configure set up, leaving the native
	// window untouched. It is called when a claim fails after Configure.
	Unconfigure()
	Swap() error
	// Events returns the surface's event source, or nil.
	Events() gpucontext.EventSource
	Destroy()
}
