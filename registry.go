package glgpu

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/gogpu/gpucontext"

	"github.com/gogpu/glgpu/opengl"
)

// BackendOpenGL is the registry name of the OpenGL 4.6 backend.
const BackendOpenGL = "opengl"

// ErrUnknownBackend is returned by Open when the configured backend is
// not registered.
var ErrUnknownBackend = errors.New("glgpu: unknown backend")

// Backend opens devices on one native API.
type Backend interface {
	Name() string
	Open(p opengl.Platform, cfg Config) (*opengl.Device, error)
}

// loggerSetter is implemented by backends that keep their own logger.
type loggerSetter interface {
	SetLogger(*slog.Logger)
}

var backends = gpucontext.NewRegistry[Backend](gpucontext.WithPriority(BackendOpenGL))

func init() {
	Register(BackendOpenGL, func() Backend { return openglBackend{} })
}

// Register adds a backend factory under name, replacing any previous one.
func Register(name string, factory func() Backend) {
	backends.Register(name, factory)
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	names := backends.Available()
	slices.Sort(names)
	return names
}

// Open creates a device on p with the backend selected by the options.
// An empty backend name selects the highest-priority registered one.
func Open(p opengl.Platform, opts ...Option) (*opengl.Device, error) {
	cfg := NewConfig(opts...)

	var b Backend
	if cfg.Backend == "" {
		b = backends.Best()
	} else {
		b = backends.Get(cfg.Backend)
	}
	if b == nil {
		return nil, fmt.Errorf("%w: %q (have %v)", ErrUnknownBackend, cfg.Backend, Backends())
	}
	if ls, ok := b.(loggerSetter); ok {
		ls.SetLogger(Logger())
	}
	Logger().Debug("glgpu: opening device", "backend", b.Name(), "label", cfg.Label, "debug", cfg.Debug)
	return b.Open(p, cfg)
}

type openglBackend struct{}

func (openglBackend) Name() string { return BackendOpenGL }

func (openglBackend) Open(p opengl.Platform, cfg Config) (*opengl.Device, error) {
	return opengl.NewDevice(p, cfg.DeviceOptions())
}
