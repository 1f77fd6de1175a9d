package opengl

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

// Default device options.
const (
	DefaultMaxBufferSize    = 128 << 20
	DefaultCommandArenaSize = 4 << 10
	DefaultMaxArenaSize     = 256 << 20
)

// DeviceOptions configures NewDevice. Zero values select the defaults.
type DeviceOptions struct {
	Label string

	// Debug requests a debug context and enables synchronous driver
	// messages.
	Debug bool

	// SwapInterval is applied when a window is claimed. Present may
	// change it later.
	SwapInterval int

	MaxBufferSize uint64

	// CommandArenaSize is the initial arena capacity of a command buffer.
	CommandArenaSize uint64
	// MaxArenaSize caps arena growth.
	MaxArenaSize uint64
}

func (o *DeviceOptions) normalize() {
	if o.MaxBufferSize == 0 {
		o.MaxBufferSize = DefaultMaxBufferSize
	}
	if o.CommandArenaSize == 0 {
		o.CommandArenaSize = DefaultCommandArenaSize
	}
	if o.MaxArenaSize == 0 {
		o.MaxArenaSize = DefaultMaxArenaSize
	}
	o.CommandArenaSize = min(o.CommandArenaSize, o.MaxArenaSize)
}

// Limits are the capabilities queried at device creation.
type Limits struct {
	MaxBufferSize       uint64
	MaxTextureSize      uint32
	MaxTextureDepth     uint32
	MaxArrayLayers      uint32
	MaxVertexAttributes uint32
	MaxColorAttachments uint32
	MaxAnisotropy       float32
}

// ToGPUTypes returns the limits in backend-neutral form. Fields the
// device does not query keep their gputypes defaults.
func (l Limits) ToGPUTypes() gputypes.Limits {
	out := gputypes.DefaultLimits()
	out.MaxTextureDimension1D = l.MaxTextureSize
	out.MaxTextureDimension2D = l.MaxTextureSize
	out.MaxTextureDimension3D = l.MaxTextureDepth
	out.MaxTextureArrayLayers = l.MaxArrayLayers
	out.MaxBufferSize = l.MaxBufferSize
	out.MaxVertexAttributes = l.MaxVertexAttributes
	out.MaxVertexBuffers = 1
	out.MaxColorAttachments = l.MaxColorAttachments
	return out
}

// Device owns a GL context, the offscreen backbuffer and the framebuffer
// used to present it. Every method must be called on the thread that
// created the device.
type Device struct {
	mu sync.Mutex

	ctx    NativeContext
	fns    gl.Functions
	opts   DeviceOptions
	limits Limits
	info   gpucontext.AdapterInfo

	// hidden is the context's fallback surface, nil once a window is
	// claimed.
	hidden  Surface
	surface Surface
	claimed bool

	backFBO    uint32
	backbuffer *Texture
	resized    atomic.Bool

	swapInterval int
	swapApplied  bool

	destroyed atomic.Bool
}

type loadFunc func(gl.ProcAddressFunc) (gl.Functions, error)

// NewDevice creates a GL 4.6 context through p and prepares it for
// rendering. On failure everything created so far is released.
func NewDevice(p Platform, opts DeviceOptions) (*Device, error) {
	return newDevice(p, gl.Load, opts)
}

func newDevice(p Platform, load loadFunc, opts DeviceOptions) (dev *Device, err error) {
	if p == nil {
		return nil, fail(ErrNilPlatform)
	}
	opts.normalize()

	var undo []func()
	defer func() {
		if err == nil {
			return
		}
		for i := len(undo) - 1; i >= 0; i-- {
			undo[i]()
		}
		dev = nil
		err = fail(fmt.Errorf("create device %q: %w", opts.Label, err))
	}()

	ctx, err := p.CreateContext(ContextConfig{Major: 4, Minor: 6, Debug: opts.Debug})
	if err != nil {
		return nil, err
	}
	undo = append(undo, ctx.Destroy)
	hidden := ctx.HiddenSurface()
	if hidden != nil {
		undo = append(undo, hidden.Destroy)
	}
	if err := ctx.MakeCurrent(nil); err != nil {
		return nil, err
	}

	fns, err := load(p.GetProcAddress)
	if err != nil {
		return nil, err
	}

	d := &Device{ctx: ctx, fns: fns, opts: opts, hidden: hidden, surface: hidden}
	if err := d.checkVersion(); err != nil {
		return nil, err
	}

	fns.DebugMessageCallback(debugMessage)
	if opts.Debug {
		fns.Enable(gl.DEBUG_OUTPUT)
		fns.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
		fns.DebugMessageControl(gl.DONT_CARE, gl.DONT_CARE, gl.DONT_CARE, true)
	}

	fns.Enable(gl.BLEND)
	fns.Enable(gl.DEPTH_TEST)
	fns.Enable(gl.SCISSOR_TEST)
	fns.Enable(gl.STENCIL_TEST)

	d.limits = queryLimits(fns, opts.MaxBufferSize)
	fns.ClipControl(gl.UPPER_LEFT, gl.ZERO_TO_ONE)
	gl.Check(fns, "glClipControl")

	d.backFBO = fns.CreateFramebuffers()
	if d.backFBO == 0 {
		return nil, fmt.Errorf("back framebuffer: %w", ErrCreateFailed)
	}
	undo = append(undo, func() { fns.DeleteFramebuffers(d.backFBO) })
	d.label(gl.FRAMEBUFFER, d.backFBO, "fake back fbo")
	fns.NamedFramebufferDrawBuffers(d.backFBO, []uint32{gl.COLOR_ATTACHMENT0})
	fns.NamedFramebufferReadBuffer(d.backFBO, gl.COLOR_ATTACHMENT0)

	if hidden == nil {
		return nil, fmt.Errorf("hidden surface: %w", ErrNoSurface)
	}
	if err := d.recreateBackbuffer(hidden); err != nil {
		return nil, err
	}
	undo = append(undo, func() { d.backbuffer.release() })

	renderer := fns.GetString(gl.RENDERER)
	d.info = gpucontext.AdapterInfo{Name: renderer, Type: adapterType(renderer)}
	d.swapInterval = opts.SwapInterval
	return d, nil
}

func (d *Device) checkVersion() error {
	var major, minor int32
	d.fns.GetIntegerv(gl.MAJOR_VERSION, &major)
	d.fns.GetIntegerv(gl.MINOR_VERSION, &minor)
	if major < 4 || major == 4 && minor < 6 {
		return fmt.Errorf("opengl version %d.%d < 4.6: %w", major, minor, ErrVersion)
	}
	slogger().Debug("opengl: context",
		"vendor", d.fns.GetString(gl.VENDOR),
		"renderer", d.fns.GetString(gl.RENDERER),
		"version", d.fns.GetString(gl.VERSION),
		"glsl", d.fns.GetString(gl.SHADING_LANGUAGE_VERSION),
	)
	return nil
}

func queryLimits(fns gl.Functions, maxBuffer uint64) Limits {
	geti := func(pname uint32) uint32 {
		var v int32
		fns.GetIntegerv(pname, &v)
		return uint32(max(v, 0))
	}
	var anisotropy float32
	fns.GetFloatv(gl.MAX_TEXTURE_MAX_ANISOTROPY, &anisotropy)
	return Limits{
		MaxBufferSize:       maxBuffer,
		MaxAnisotropy:       anisotropy,
		MaxVertexAttributes: geti(gl.MAX_VERTEX_ATTRIBS),
		MaxTextureSize:      geti(gl.MAX_TEXTURE_SIZE),
		MaxTextureDepth:     geti(gl.MAX_3D_TEXTURE_SIZE),
		MaxArrayLayers:      geti(gl.MAX_ARRAY_TEXTURE_LAYERS),
		MaxColorAttachments: min(geti(gl.MAX_COLOR_ATTACHMENTS), MaxColorAttachments),
	}
}

func adapterType(renderer string) gpucontext.AdapterType {
	r := strings.ToLower(renderer)
	for _, sw := range []string{"llvmpipe", "softpipe", "swrast"} {
		if strings.Contains(r, sw) {
			return gpucontext.AdapterTypeSoftware
		}
	}
	return gpucontext.AdapterTypeUnknown
}

func (d *Device) alive() error {
	if d == nil || d.destroyed.Load() {
		return ErrDeviceDestroyed
	}
	return nil
}

// Destroy releases the backbuffer, the back framebuffer, the context and
// the hidden surface, in that order. Calling it more than once is a
// no-op.
func (d *Device) Destroy() {
	if d == nil || !d.destroyed.CompareAndSwap(false, true) {
		return
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.backbuffer != nil {
		d.backbuffer.release()
	}
	if d.backFBO != 0 {
		d.fns.DeleteFramebuffers(d.backFBO)
		d.backFBO = 0
	}
	d.ctx.Destroy()
	if d.hidden != nil {
		d.hidden.Destroy()
		d.hidden = nil
	}
}

// Limits returns the capabilities queried at creation.
func (d *Device) Limits() Limits { return d.limits }

// Info describes the adapter behind the context.
func (d *Device) Info() gpucontext.AdapterInfo { return d.info }

// Label returns the device label.
func (d *Device) Label() string { return d.opts.Label }

// ClaimWindow makes s the presentation surface. Claiming the current
// surface again is a no-op. If s cannot be made current the previous
// surface stays current and the device is unchanged.
func (d *Device) ClaimWindow(s Surface) error {
	if err := d.alive(); err != nil {
		return fail(err)
	}
	if s == nil {
		return fail(fmt.Errorf("claim window: %w", ErrNoSurface))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.claimed && d.surface == s {
		return nil
	}

	if err := s.Configure(); err != nil {
		return fail(fmt.Errorf("claim window: configure: %w", err))
	}
	if err := d.ctx.MakeCurrent(s); err != nil {
		var previous Surface
		if d.claimed {
			previous = d.surface
		}
		if rerr := d.ctx.MakeCurrent(previous); rerr != nil {
			err = errors.Join(err, rerr)
		}
		s.Unconfigure()
		return fail(fmt.Errorf("claim window: %w", err))
	}

	if d.hidden != nil {
		d.hidden.Destroy()
		d.hidden = nil
	}
	d.surface = s
	d.claimed = true
	d.WatchResize(s.Events())
	d.resized.Store(true)
	d.applySwapInterval(d.swapInterval, true)
	return nil
}

// WatchResize marks the backbuffer stale whenever src reports a resize.
// A nil source is ignored.
func (d *Device) WatchResize(src gpucontext.EventSource) {
	if src == nil {
		return
	}
	src.OnResize(func(int, int) { d.NotifyResized() })
}

// NotifyResized marks the backbuffer stale. The next GetBackbuffer
// recreates it at the surface's current size. Safe for concurrent use.
func (d *Device) NotifyResized() { d.resized.Store(true) }

// GetBackbuffer returns the texture Present copies to the window,
// recreating it first if the surface was resized.
func (d *Device) GetBackbuffer() (*Texture, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.resized.CompareAndSwap(true, false) {
		if err := d.recreateBackbuffer(d.surface); err != nil {
			d.resized.Store(true)
			slogger().Warn("opengl: backbuffer recreation failed, will retry", "err", err)
			return nil, fail(fmt.Errorf("get backbuffer: %w", err))
		}
	}
	return d.backbuffer, nil
}

// Present copies bb to the claimed window and swaps. bb must be the
// texture returned by GetBackbuffer.
//
// A swap interval that differs from the last one is applied first. If
// adaptive sync (-1) is rejected, 1 is used instead. The requested value
// is remembered even when it fails, so it is not retried every frame.
func (d *Device) Present(bb *Texture, swapInterval int) error {
	if err := d.alive(); err != nil {
		return fail(err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.claimed {
		return fail(ErrNoSurface)
	}
	if bb == nil || bb != d.backbuffer {
		return violation(ErrWrongBackbuffer)
	}

	fns := d.fns
	if d.opts.Label != "" {
		d.pushGroup("Present device: ", d.opts.Label)
		defer d.popGroup()
	}
	d.applySwapInterval(swapInterval, false)

	w, h := int32(bb.Width()), int32(bb.Height())
	fns.Viewport(0, 0, w, h)
	fns.Disable(gl.SCISSOR_TEST)
	fns.BlitNamedFramebuffer(d.backFBO, 0, 0, 0, w, h, 0, 0, w, h, gl.COLOR_BUFFER_BIT, gl.NEAREST)
	gl.Check(fns, "glBlitNamedFramebuffer")
	fns.Enable(gl.SCISSOR_TEST)
	if err := d.surface.Swap(); err != nil {
		return fail(fmt.Errorf("present: swap: %w", err))
	}
	return nil
}

func (d *Device) applySwapInterval(interval int, force bool) {
	if d.swapApplied && !force && interval == d.swapInterval {
		return
	}
	err := d.ctx.SwapInterval(interval)
	if err != nil && interval == -1 {
		slogger().Warn("opengl: adaptive swap interval rejected, using 1", "err", err)
		err = d.ctx.SwapInterval(1)
	}
	if err != nil {
		slogger().Warn("opengl: swap interval not applied", "interval", interval, "err", err)
	}
	d.swapInterval = interval
	d.swapApplied = true
}

// NewCommandBuffer returns an empty command buffer recording against d.
func (d *Device) NewCommandBuffer() *CommandBuffer {
	return newCommandBuffer(d, d.opts.CommandArenaSize, d.opts.MaxArenaSize)
}

// Submit replays cb on the device and returns the first execution error.
func (d *Device) Submit(cb *CommandBuffer) error {
	if err := d.alive(); err != nil {
		return fail(err)
	}
	if cb == nil {
		return violation(fmt.Errorf("submit: %w", ErrNilResource))
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	return cb.submit()
}
