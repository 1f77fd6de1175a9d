package opengl

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

// TextureUsage is a bitmask of the ways a texture will be used.
type TextureUsage uint8

const (
	// TextureUsageShaderRead allows sampling from shaders.
	TextureUsageShaderRead TextureUsage = 1 << iota
	// TextureUsageShaderWrite allows image stores from shaders.
	TextureUsageShaderWrite
	// TextureUsageRenderTarget allows use as a pass attachment.
	TextureUsageRenderTarget
)

// TextureDescriptor describes a texture to create.
type TextureDescriptor struct {
	Label string

	// Type selects the texture target. Undefined is treated as 2D.
	Type gputypes.TextureViewDimension

	Format gputypes.TextureFormat
	Usage  TextureUsage

	Width  uint32
	Height uint32
	// DepthOrSlices is the depth of a 3D texture or the slice count of an
	// array texture. Zero means 1.
	DepthOrSlices uint32
	// MipLevels is the number of mip levels. Zero means 1.
	MipLevels uint32
}

func (desc *TextureDescriptor) normalize() {
	if desc.Type == gputypes.TextureViewDimensionUndefined {
		desc.Type = gputypes.TextureViewDimension2D
	}
	if desc.Height == 0 {
		desc.Height = 1
	}
	if desc.DepthOrSlices == 0 {
		desc.DepthOrSlices = 1
	}
	if desc.MipLevels == 0 {
		desc.MipLevels = 1
	}
}

// Texture is an immutable-storage texture.
type Texture struct {
	mu     sync.Mutex
	dev    *Device
	handle uint32
	target uint32
	desc   TextureDescriptor

	// backbuffer textures belong to the device and ignore Destroy.
	backbuffer bool
}

// CreateTexture validates desc against the device limits and allocates
// the texture storage. Contents are undefined until written.
func (d *Device) CreateTexture(desc TextureDescriptor) (*Texture, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	desc.normalize()
	if err := d.validateTexture(&desc); err != nil {
		return nil, fail(fmt.Errorf("create texture %q: %w", desc.Label, err))
	}
	t, err := d.allocTexture(desc)
	if err != nil {
		return nil, fail(fmt.Errorf("create texture %q: %w", desc.Label, err))
	}
	return t, nil
}

func (d *Device) validateTexture(desc *TextureDescriptor) error {
	colorRenderable := IsColorRenderable(desc.Format)
	if desc.Usage&TextureUsageShaderWrite != 0 && !colorRenderable {
		return fmt.Errorf("%v for shader write: %w", desc.Format, ErrFormatNotRenderable)
	}
	if desc.Usage&TextureUsageRenderTarget != 0 &&
		!colorRenderable && !IsDepthFormat(desc.Format) && !IsStencilFormat(desc.Format) {
		return fmt.Errorf("%v as render target: %w", desc.Format, ErrFormatNotRenderable)
	}

	depthLimit := d.limits.MaxTextureDepth
	if isLayered(desc.Type) {
		depthLimit = d.limits.MaxArrayLayers
	}
	if desc.Width > d.limits.MaxTextureSize || desc.Height > d.limits.MaxTextureSize || desc.DepthOrSlices > depthLimit {
		return fmt.Errorf("%dx%dx%d: %w", desc.Width, desc.Height, desc.DepthOrSlices, ErrTextureTooBig)
	}
	if desc.Width == 0 {
		return fmt.Errorf("zero width: %w", ErrInvalidSize)
	}

	mipDepth := uint32(1)
	if desc.Type == gputypes.TextureViewDimension3D {
		mipDepth = desc.DepthOrSlices
	}
	if limit := maxMipLevels(desc.Width, desc.Height, mipDepth); desc.MipLevels > limit {
		return fmt.Errorf("%d levels > %d: %w", desc.MipLevels, limit, ErrTooManyMipLevels)
	}

	if _, _, _, ok := PixelFormatInfo(desc.Format); !ok {
		return fmt.Errorf("pixel format %v: %w", desc.Format, ErrUnsupported)
	}
	if TextureTarget(desc.Type) == 0 {
		return fmt.Errorf("texture type %v: %w", desc.Type, ErrUnsupported)
	}
	return nil
}

// allocTexture issues the storage sequence for an already validated desc.
func (d *Device) allocTexture(desc TextureDescriptor) (*Texture, error) {
	internalFormat, _, _, _ := PixelFormatInfo(desc.Format)
	target := TextureTarget(desc.Type)

	fns := d.fns
	name := fns.CreateTextures(target)
	if name == 0 {
		return nil, ErrCreateFailed
	}
	gl.Check(fns, "glCreateTextures")
	d.label(gl.TEXTURE, name, desc.Label)
	fns.BindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)

	levels := int32(desc.MipLevels)
	fns.TextureParameteri(name, gl.TEXTURE_BASE_LEVEL, 0)
	fns.TextureParameteri(name, gl.TEXTURE_MAX_LEVEL, levels-1)
	fns.TextureParameteri(name, gl.TEXTURE_COMPARE_MODE, gl.NONE)

	w, h, depth := int32(desc.Width), int32(desc.Height), int32(desc.DepthOrSlices)
	switch TextureDimensions(desc.Type) {
	case 1:
		fns.TextureStorage1D(name, levels, internalFormat, w)
	case 2:
		fns.TextureStorage2D(name, levels, internalFormat, w, h)
	case 3:
		fns.TextureStorage3D(name, levels, internalFormat, w, h, depth)
	}
	gl.Check(fns, "glTextureStorage")

	return &Texture{dev: d, handle: name, target: target, desc: desc}, nil
}

// Handle returns the native texture name, 0 once destroyed.
func (t *Texture) Handle() uint32 {
	if t == nil {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.handle
}

// Descriptor returns the creation parameters.
func (t *Texture) Descriptor() TextureDescriptor { return t.desc }

// Width returns the width of mip level 0.
func (t *Texture) Width() uint32 { return t.desc.Width }

// Height returns the height of mip level 0.
func (t *Texture) Height() uint32 { return t.desc.Height }

// Format returns the pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.desc.Format }

// Target returns the native bind target.
func (t *Texture) Target() uint32 { return t.target }

// Label returns the debug label given at creation.
func (t *Texture) Label() string { return t.desc.Label }

// Destroy releases the texture. Calling it more than once is a no-op.
// Destroying the device backbuffer is ignored.
func (t *Texture) Destroy() {
	if t == nil || t.backbuffer {
		return
	}
	t.release()
}

func (t *Texture) release() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.handle == 0 {
		return
	}
	t.dev.fns.DeleteTextures(t.handle)
	gl.Check(t.dev.fns, "glDeleteTextures")
	t.handle = 0
}
