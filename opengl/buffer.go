package opengl

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/gogpu/glgpu/internal/gl"
)

// BufferDescriptor describes a CPU or GPU buffer to create.
type BufferDescriptor struct {
	// Label is an optional debug name attached with glObjectLabel.
	Label string

	// Size is the buffer size in bytes.
	Size uint64

	// Data, when non-nil, initializes the first len(Data) bytes.
	Data []byte
}

// BufferResource is implemented by both buffer kinds so blit copies can
// take any mix of them.
type BufferResource interface {
	// Handle returns the native buffer name, 0 once destroyed.
	Handle() uint32
	// Len returns the size in bytes.
	Len() uint64
}

// CPUBuffer is host-mappable storage used for uploads and readbacks.
//
// Lock maps the whole buffer and returns it as a byte slice that stays
// valid until Unlock. A buffer must be unlocked before a submitted
// command buffer touches it.
type CPUBuffer struct {
	mu     sync.Mutex
	dev    *Device
	handle uint32
	size   uint64
	label  string
	mapped []byte
}

// Buffer is device-local storage bound to shaders as a storage buffer,
// used as a mesh or index source, or as a copy endpoint.
type Buffer struct {
	dev    *Device
	handle uint32
	size   uint64
	label  string
}

var (
	_ BufferResource = (*CPUBuffer)(nil)
	_ BufferResource = (*Buffer)(nil)
)

func (d *Device) createBufferStorage(kind string, desc BufferDescriptor, flags uint32) (uint32, error) {
	if desc.Size == 0 {
		return 0, fmt.Errorf("create %s %q: %w", kind, desc.Label, ErrInvalidSize)
	}
	if desc.Size > d.limits.MaxBufferSize {
		return 0, fmt.Errorf("create %s %q: %d bytes > %d: %w",
			kind, desc.Label, desc.Size, d.limits.MaxBufferSize, ErrBufferTooLarge)
	}
	if uint64(len(desc.Data)) > desc.Size {
		return 0, fmt.Errorf("create %s %q: %d initial bytes: %w", kind, desc.Label, len(desc.Data), ErrInvalidSize)
	}
	name := d.fns.CreateBuffers()
	if name == 0 {
		return 0, fmt.Errorf("create %s %q: %w", kind, desc.Label, ErrCreateFailed)
	}
	var data unsafe.Pointer
	if len(desc.Data) > 0 {
		init := desc.Data
		if uint64(len(init)) < desc.Size {
			init = make([]byte, desc.Size)
			copy(init, desc.Data)
		}
		data = unsafe.Pointer(&init[0])
	}
	d.fns.NamedBufferStorage(name, int(desc.Size), data, flags)
	gl.Check(d.fns, "glNamedBufferStorage")
	d.label(gl.BUFFER, name, desc.Label)
	return name, nil
}

// CreateCPUBuffer allocates mappable storage of desc.Size bytes.
func (d *Device) CreateCPUBuffer(desc BufferDescriptor) (*CPUBuffer, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	name, err := d.createBufferStorage("cpu buffer", desc, gl.MAP_READ_BIT|gl.MAP_WRITE_BIT|gl.DYNAMIC_STORAGE_BIT)
	if err != nil {
		return nil, fail(err)
	}
	return &CPUBuffer{dev: d, handle: name, size: desc.Size, label: desc.Label}, nil
}

// CreateBuffer allocates GPU-only storage of desc.Size bytes.
func (d *Device) CreateBuffer(desc BufferDescriptor) (*Buffer, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	name, err := d.createBufferStorage("buffer", desc, gl.DYNAMIC_STORAGE_BIT)
	if err != nil {
		return nil, fail(err)
	}
	return &Buffer{dev: d, handle: name, size: desc.Size, label: desc.Label}, nil
}

// Handle returns the native buffer name.
func (b *CPUBuffer) Handle() uint32 {
	if b == nil {
		return 0
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.handle
}

// Len returns the size in bytes.
func (b *CPUBuffer) Len() uint64 { return b.size }

// Label returns the debug label given at creation.
func (b *CPUBuffer) Label() string { return b.label }

// Locked reports whether the buffer is currently mapped.
func (b *CPUBuffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mapped != nil
}

// Lock maps the buffer for reading and writing.
func (b *CPUBuffer) Lock() ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handle == 0 {
		return nil, fail(fmt.Errorf("lock cpu buffer %q: %w", b.label, ErrNilResource))
	}
	if b.mapped != nil {
		return nil, fail(fmt.Errorf("lock cpu buffer %q: %w", b.label, ErrAlreadyLocked))
	}
	p := b.dev.fns.MapNamedBufferRange(b.handle, 0, int(b.size), gl.MAP_READ_BIT|gl.MAP_WRITE_BIT)
	gl.Check(b.dev.fns, "glMapNamedBufferRange")
	if p == nil {
		return nil, fail(fmt.Errorf("lock cpu buffer %q: %w", b.label, ErrMapFailed))
	}
	b.mapped = unsafe.Slice((*byte)(p), int(b.size))
	return b.mapped, nil
}

// Unlock unmaps the buffer. The slice returned by Lock must not be used
// afterwards.
func (b *CPUBuffer) Unlock() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mapped == nil {
		return fail(fmt.Errorf("unlock cpu buffer %q: %w", b.label, ErrNotLocked))
	}
	b.mapped = nil
	ok := b.dev.fns.UnmapNamedBuffer(b.handle)
	gl.Check(b.dev.fns, "glUnmapNamedBuffer")
	if !ok {
		// The store was corrupted while mapped; contents are undefined.
		return fail(fmt.Errorf("unlock cpu buffer %q: %w", b.label, ErrMapFailed))
	}
	return nil
}

// Destroy releases the native buffer, unmapping it first if needed.
// Calling it more than once is a no-op.
func (b *CPUBuffer) Destroy() {
	if b == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.handle == 0 {
		return
	}
	if b.mapped != nil {
		b.dev.fns.UnmapNamedBuffer(b.handle)
		b.mapped = nil
	}
	b.dev.fns.DeleteBuffers(b.handle)
	gl.Check(b.dev.fns, "glDeleteBuffers")
	b.handle = 0
}

// Handle returns the native buffer name.
func (b *Buffer) Handle() uint32 {
	if b == nil {
		return 0
	}
	return b.handle
}

// Len returns the size in bytes.
func (b *Buffer) Len() uint64 { return b.size }

// Label returns the debug label given at creation.
func (b *Buffer) Label() string { return b.label }

// Destroy releases the native buffer. Calling it more than once is a no-op.
func (b *Buffer) Destroy() {
	if b == nil || b.handle == 0 {
		return
	}
	b.dev.fns.DeleteBuffers(b.handle)
	gl.Check(b.dev.fns, "glDeleteBuffers")
	b.handle = 0
}

func handleOf(r BufferResource) uint32 {
	if r == nil {
		return 0
	}
	return r.Handle()
}
