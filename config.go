package glgpu

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/glgpu/opengl"
)

// ErrUnknownConfigKey is returned by LoadConfig for keys Config does not
// define.
var ErrUnknownConfigKey = errors.New("glgpu: unknown config key")

// Config holds device creation settings. It round-trips through TOML:
//
//	backend = "opengl"
//	debug = true
//	swap_interval = 1
//	max_buffer_size = 134217728
//	command_arena_size = 4096
//	label = "main"
type Config struct {
	// Backend is the registry name of the backend to open.
	Backend string `toml:"backend"`

	Debug        bool `toml:"debug"`
	SwapInterval int  `toml:"swap_interval"`

	MaxBufferSize    uint64 `toml:"max_buffer_size"`
	CommandArenaSize uint64 `toml:"command_arena_size"`
	// MaxArenaSize is optional; zero selects the backend default and is
	// not encoded.
	MaxArenaSize uint64 `toml:"max_arena_size,omitzero"`

	Label string `toml:"label,omitempty"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		Backend:          BackendOpenGL,
		SwapInterval:     1,
		MaxBufferSize:    opengl.DefaultMaxBufferSize,
		CommandArenaSize: opengl.DefaultCommandArenaSize,
	}
}

// NewConfig applies opts over DefaultConfig.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// LoadConfig reads a TOML file over DefaultConfig. Keys missing from the
// file keep their defaults; keys Config does not define are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("glgpu: load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w in %s: %s", ErrUnknownConfigKey, path, strings.Join(keys, ", "))
	}
	return cfg, nil
}

// WriteTo encodes c as TOML.
func (c Config) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	if err := toml.NewEncoder(cw).Encode(c); err != nil {
		return cw.n, fmt.Errorf("glgpu: encode config: %w", err)
	}
	return cw.n, nil
}

// DeviceOptions converts c to the backend's device options.
func (c Config) DeviceOptions() opengl.DeviceOptions {
	return opengl.DeviceOptions{
		Label:            c.Label,
		Debug:            c.Debug,
		SwapInterval:     c.SwapInterval,
		MaxBufferSize:    c.MaxBufferSize,
		CommandArenaSize: c.CommandArenaSize,
		MaxArenaSize:     c.MaxArenaSize,
	}
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
