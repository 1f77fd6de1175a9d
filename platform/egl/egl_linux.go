//go:build linux

package egl

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/gles/egl"

	"github.com/gogpu/glgpu/opengl"
)

var (
	initOnce sync.Once
	initErr  error
)

// Platform creates EGL contexts for opengl devices.
type Platform struct {
	mu  sync.Mutex
	ctx *Context
}

var _ opengl.Platform = (*Platform)(nil)

// NewPlatform loads libEGL. The library is loaded once per process.
func NewPlatform() (*Platform, error) {
	initOnce.Do(func() {
		if err := egl.Init(); err != nil {
			initErr = fmt.Errorf("%w: %w", ErrUnavailable, err)
		}
	})
	if initErr != nil {
		return nil, initErr
	}
	return &Platform{}, nil
}

// CreateContext creates a desktop GL core context of the requested
// version. Window surfaces created afterwards attach to it.
func (p *Platform) CreateContext(cfg opengl.ContextConfig) (opengl.NativeContext, error) {
	ec, err := egl.NewContext(egl.ContextConfig{
		GLVersionMajor: cfg.Major,
		GLVersionMinor: cfg.Minor,
		CoreProfile:    true,
		Debug:          cfg.Debug,
	})
	if err != nil {
		return nil, fmt.Errorf("egl: create context %d.%d: %w", cfg.Major, cfg.Minor, err)
	}
	c := &Context{ec: ec, platform: p}
	c.hidden = &hiddenSurface{ctx: c}

	p.mu.Lock()
	p.ctx = c
	p.mu.Unlock()

	opengl.Logger().Debug("egl: context created",
		"version", fmt.Sprintf("%d.%d", cfg.Major, cfg.Minor),
		"debug", cfg.Debug,
		"window system", ec.WindowKind().String())
	return c, nil
}

// GetProcAddress resolves a GL entry point through eglGetProcAddress.
func (p *Platform) GetProcAddress(name string) unsafe.Pointer {
	return egl.GetGLProcAddress(name)
}

func (p *Platform) context() *Context {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ctx
}

// Context is an EGL context with its pbuffer.
type Context struct {
	ec       *egl.Context
	platform *Platform
	hidden   *hiddenSurface
}

// HiddenSurface returns the context's pbuffer surface.
func (c *Context) HiddenSurface() opengl.Surface { return c.hidden }

// MakeCurrent binds the context to s. A nil surface or the hidden one
// selects the pbuffer.
func (c *Context) MakeCurrent(s opengl.Surface) error {
	switch s := s.(type) {
	case nil, *hiddenSurface:
		return c.ec.MakeCurrent()
	case *WindowSurface:
		if s.surface == egl.NoSurface {
			return fmt.Errorf("egl: make current: window surface not configured")
		}
		if egl.MakeCurrent(c.ec.Display(), s.surface, s.surface, c.ec.EGLContext()) == egl.False {
			return fmt.Errorf("eglMakeCurrent failed: error 0x%x", egl.GetError())
		}
		return nil
	default:
		return fmt.Errorf("%w: %T", ErrForeignSurface, s)
	}
}

// SwapInterval applies to the surface currently bound.
func (c *Context) SwapInterval(interval int) error {
	if egl.SwapInterval(c.ec.Display(), egl.EGLInt(interval)) == egl.False {
		return fmt.Errorf("eglSwapInterval(%d) failed: error 0x%x", interval, egl.GetError())
	}
	return nil
}

// Destroy releases the context, its pbuffer and the display.
func (c *Context) Destroy() {
	p := c.platform
	p.mu.Lock()
	if p.ctx == c {
		p.ctx = nil
	}
	p.mu.Unlock()
	c.ec.Destroy()
}

func (c *Context) pixelFormat() gputypes.TextureFormat {
	var red, alpha egl.EGLInt
	egl.GetConfigAttrib(c.ec.Display(), c.ec.Config(), egl.RedSize, &red)
	egl.GetConfigAttrib(c.ec.Display(), c.ec.Config(), egl.AlphaSize, &alpha)
	return pixelFormat(int(red), int(alpha))
}

// hiddenSurface is the pbuffer created with the context. The context
// owns it, so Destroy only detaches it.
type hiddenSurface struct {
	ctx *Context
}

func (h *hiddenSurface) Size() (int, int) { return 16, 16 }

func (h *hiddenSurface) PixelFormat() gputypes.TextureFormat { return h.ctx.pixelFormat() }

func (h *hiddenSurface) Configure() error { return nil }

func (h *hiddenSurface) Unconfigure() {}

func (h *hiddenSurface) Swap() error { return nil }

func (h *hiddenSurface) Events() gpucontext.EventSource { return nil }

func (h *hiddenSurface) Destroy() {}

// WindowSurface presents to a native window.
type WindowSurface struct {
	platform *Platform
	native   uintptr
	window   gpucontext.WindowProvider
	events   gpucontext.EventSource

	ctx     *Context
	surface egl.EGLSurface
}

// NewWindowSurface wraps a native window handle: an X11 Window or a
// wl_egl_window pointer, matching the display EGL picked. window reports
// the size; events may be nil.
func (p *Platform) NewWindowSurface(native uintptr, window gpucontext.WindowProvider, events gpucontext.EventSource) *WindowSurface {
	return &WindowSurface{platform: p, native: native, window: window, events: events}
}

// Size returns the window size in pixels.
func (w *WindowSurface) Size() (int, int) {
	lw, lh := w.window.Size()
	return physicalSize(lw, lh, w.window.ScaleFactor())
}

// PixelFormat reports the format of the context's EGL config, or
// Undefined before Configure.
func (w *WindowSurface) PixelFormat() gputypes.TextureFormat {
	if w.ctx == nil {
		return gputypes.TextureFormatUndefined
	}
	return w.ctx.pixelFormat()
}

// Configure creates the EGL window surface on the platform's current
// context. It is a no-op once the surface exists.
func (w *WindowSurface) Configure() error {
	if w.surface != egl.NoSurface {
		return nil
	}
	c := w.platform.context()
	if c == nil {
		return ErrNoContext
	}
	if width, height := w.Size(); width <= 0 || height <= 0 {
		return ErrZeroArea
	}
	attribs := []egl.EGLInt{egl.None}
	s := egl.CreateWindowSurface(c.ec.Display(), c.ec.Config(), egl.EGLNativeWindowType(w.native), &attribs[0])
	if s == egl.NoSurface {
		return fmt.Errorf("eglCreateWindowSurface failed: error 0x%x", egl.GetError())
	}
	w.ctx, w.surface = c, s
	opengl.Logger().Debug("egl: window surface created", "window", w.native)
	return nil
}

// Swap presents the back buffer.
func (w *WindowSurface) Swap() error {
	if w.surface == egl.NoSurface {
		return ErrNoContext
	}
	if egl.SwapBuffers(w.ctx.ec.Display(), w.surface) == egl.False {
		return fmt.Errorf("eglSwapBuffers failed: error 0x%x", egl.GetError())
	}
	return nil
}

// Events returns the event source given to NewWindowSurface.
func (w *WindowSurface) Events() gpucontext.EventSource { return w.events }

// Destroy releases the EGL surface. The native window is left alone.
func (w *WindowSurface) Destroy() { w.Unconfigure() }

// Unconfigure releases the EGL surface created by Configure. A later
// Configure creates a new one.
func (w *WindowSurface) Unconfigure() {
	if w.surface == egl.NoSurface {
		return
	}
	egl.DestroySurface(w.ctx.ec.Display(), w.surface)
	w.surface = egl.NoSurface
	w.ctx = nil
}
