package opengl

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
	"github.com/gogpu/glgpu/internal/gl/gltest"
)

var errFake = errors.New("fake platform failure")

type fakeEvents struct {
	gpucontext.NullEventSource
	resize func(w, h int)
}

func (e *fakeEvents) OnResize(fn func(w, h int)) { e.resize = fn }

type fakeSurface struct {
	w, h   int
	format gputypes.TextureFormat
	events *fakeEvents

	configureErr error
	swapErr      error
	configures   int
	unconfigures int
	swaps        int
	destroyed    bool
}

func newFakeSurface(w, h int) *fakeSurface {
	return &fakeSurface{w: w, h: h, format: gputypes.TextureFormatBGRA8Unorm, events: &fakeEvents{}}
}

func (s *fakeSurface) Size() (int, int)                    { return s.w, s.h }
func (s *fakeSurface) PixelFormat() gputypes.TextureFormat { return s.format }
func (s *fakeSurface) Configure() error                    { s.configures++; return s.configureErr }
func (s *fakeSurface) Unconfigure()                        { s.unconfigures++ }
func (s *fakeSurface) Swap() error                         { s.swaps++; return s.swapErr }
func (s *fakeSurface) Destroy()                            { s.destroyed = true }

func (s *fakeSurface) Events() gpucontext.EventSource {
	if s.events == nil {
		return nil
	}
	return s.events
}

// resize changes the drawable size and notifies the registered observer.
func (s *fakeSurface) resize(w, h int) {
	s.w, s.h = w, h
	if s.events.resize != nil {
		s.events.resize(w, h)
	}
}

type fakeContext struct {
	hidden  *fakeSurface
	current Surface

	failOn       Surface
	makeCurrents []Surface

	intervals []int
	reject    map[int]bool
	destroyed bool
}

func (c *fakeContext) HiddenSurface() Surface {
	if c.hidden == nil {
		return nil
	}
	return c.hidden
}

func (c *fakeContext) MakeCurrent(s Surface) error {
	c.makeCurrents = append(c.makeCurrents, s)
	if s != nil && s == c.failOn {
		return errFake
	}
	c.current = s
	return nil
}

func (c *fakeContext) SwapInterval(interval int) error {
	c.intervals = append(c.intervals, interval)
	if c.reject[interval] {
		return errFake
	}
	return nil
}

func (c *fakeContext) Destroy() { c.destroyed = true }

type fakePlatform struct {
	fake      *gltest.Fake
	ctx       *fakeContext
	cfg       ContextConfig
	createErr error
}

func newFakePlatform() *fakePlatform {
	return &fakePlatform{
		fake: gltest.New(),
		ctx:  &fakeContext{hidden: newFakeSurface(1, 1), reject: make(map[int]bool)},
	}
}

func (p *fakePlatform) CreateContext(cfg ContextConfig) (NativeContext, error) {
	p.cfg = cfg
	if p.createErr != nil {
		return nil, p.createErr
	}
	return p.ctx, nil
}

func (p *fakePlatform) GetProcAddress(name string) unsafe.Pointer { return p.fake.ProcAddress(name) }

// newTestDevice creates a device on a fresh fake and clears the call log.
func newTestDevice(t *testing.T, opts DeviceOptions) (*Device, *gltest.Fake, *fakePlatform) {
	t.Helper()
	p := newFakePlatform()
	d, err := newDevice(p, p.fake.Load, opts)
	if err != nil {
		t.Fatalf("newDevice() error = %v", err)
	}
	t.Cleanup(d.Destroy)
	p.fake.Reset()
	return d, p.fake, p
}

const (
	testVertexSource   = "// vert\n#version 460\nvoid main() {}\n"
	testFragmentSource = "// frag\n#version 460\nvoid main() {}\n"
)

// newTestPipeline builds a pipeline from trivial shaders.
func newTestPipeline(t *testing.T, d *Device, desc PipelineDescriptor) *Pipeline {
	t.Helper()
	vs, err := d.CreateShader(testVertexSource, "vs")
	if err != nil {
		t.Fatalf("CreateShader(vert) error = %v", err)
	}
	fs, err := d.CreateShader(testFragmentSource, "fs")
	if err != nil {
		t.Fatalf("CreateShader(frag) error = %v", err)
	}
	desc.Vertex, desc.Fragment = vs, fs
	p, err := d.CreatePipeline(desc)
	if err != nil {
		t.Fatalf("CreatePipeline() error = %v", err)
	}
	return p
}

func newTestTexture(t *testing.T, d *Device, desc TextureDescriptor) *Texture {
	t.Helper()
	tex, err := d.CreateTexture(desc)
	if err != nil {
		t.Fatalf("CreateTexture(%q) error = %v", desc.Label, err)
	}
	return tex
}

func renderTarget(label string, w, h uint32) TextureDescriptor {
	return TextureDescriptor{
		Label:  label,
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  TextureUsageRenderTarget | TextureUsageShaderRead,
		Width:  w,
		Height: h,
	}
}

// expectViolation runs fn and checks it reports a broken contract
// matching target: a panic under gldebug, an error otherwise.
func expectViolation(t *testing.T, target error, fn func() error) {
	t.Helper()
	if gl.DebugChecks {
		defer func() {
			r := recover()
			err, _ := r.(error)
			if !errors.Is(err, target) {
				t.Errorf("panic = %v, want %v", r, target)
			}
		}()
	}
	if err := fn(); !errors.Is(err, target) {
		t.Errorf("error = %v, want %v", err, target)
	}
}
