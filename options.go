package glgpu

// Option configures a Config. Options are applied in order over
// DefaultConfig, so later options win.
//
// Example:
//
//	dev, err := glgpu.Open(platform,
//	    glgpu.WithDebug(true),
//	    glgpu.WithSwapInterval(0),
//	)
type Option func(*Config)

// WithBackend selects a registered backend by name.
func WithBackend(name string) Option {
	return func(c *Config) {
		c.Backend = name
	}
}

// WithDebug requests a debug context with driver message output.
func WithDebug(debug bool) Option {
	return func(c *Config) {
		c.Debug = debug
	}
}

// WithSwapInterval sets the swap interval applied when a window is
// claimed. -1 requests adaptive vsync.
func WithSwapInterval(interval int) Option {
	return func(c *Config) {
		c.SwapInterval = interval
	}
}

// WithMaxBufferSize caps the size of a single GPU buffer.
func WithMaxBufferSize(size uint64) Option {
	return func(c *Config) {
		c.MaxBufferSize = size
	}
}

// WithCommandArenaSize sets the initial arena capacity of new command
// buffers.
func WithCommandArenaSize(size uint64) Option {
	return func(c *Config) {
		c.CommandArenaSize = size
	}
}

// WithMaxArenaSize caps command buffer arena growth.
func WithMaxArenaSize(size uint64) Option {
	return func(c *Config) {
		c.MaxArenaSize = size
	}
}

// WithLabel sets the device label used in debug groups.
func WithLabel(label string) Option {
	return func(c *Config) {
		c.Label = label
	}
}

// WithConfig replaces the whole configuration, typically one returned
// by LoadConfig. Options after it still apply.
func WithConfig(cfg Config) Option {
	return func(c *Config) {
		*c = cfg
	}
}
