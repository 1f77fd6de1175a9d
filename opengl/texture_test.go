package opengl

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
	"github.com/gogpu/glgpu/internal/gl/gltest"
)

func TestCreateTexture(t *testing.T) {
	tests := []struct {
		name    string
		desc    TextureDescriptor
		target  uint32
		storage string
		w, h, d int32
		levels  int32
	}{
		{
			name:    "default 2d",
			desc:    TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 16},
			target:  gl.TEXTURE_2D,
			storage: "glTextureStorage2D",
			w:       16, h: 1, d: 1, levels: 1,
		},
		{
			name:    "1d",
			desc:    TextureDescriptor{Type: gputypes.TextureViewDimension1D, Format: gputypes.TextureFormatR8Unorm, Width: 64, MipLevels: 7},
			target:  gl.TEXTURE_1D,
			storage: "glTextureStorage1D",
			w:       64, h: 1, d: 1, levels: 7,
		},
		{
			name:    "2d array",
			desc:    TextureDescriptor{Type: gputypes.TextureViewDimension2DArray, Format: gputypes.TextureFormatRG16Float, Width: 8, Height: 8, DepthOrSlices: 6},
			target:  gl.TEXTURE_2D_ARRAY,
			storage: "glTextureStorage3D",
			w:       8, h: 8, d: 6, levels: 1,
		},
		{
			name:    "cube",
			desc:    TextureDescriptor{Type: gputypes.TextureViewDimensionCube, Format: gputypes.TextureFormatRGBA16Float, Width: 32, Height: 32, MipLevels: 6},
			target:  gl.TEXTURE_CUBE_MAP,
			storage: "glTextureStorage2D",
			w:       32, h: 32, d: 1, levels: 6,
		},
		{
			name:    "3d",
			desc:    TextureDescriptor{Type: gputypes.TextureViewDimension3D, Format: gputypes.TextureFormatR32Float, Width: 4, Height: 4, DepthOrSlices: 16, MipLevels: 5},
			target:  gl.TEXTURE_3D,
			storage: "glTextureStorage3D",
			w:       4, h: 4, d: 16, levels: 5,
		},
		{
			name:    "depth stencil target",
			desc:    TextureDescriptor{Format: gputypes.TextureFormatDepth24PlusStencil8, Usage: TextureUsageRenderTarget, Width: 20, Height: 10},
			target:  gl.TEXTURE_2D,
			storage: "glTextureStorage2D",
			w:       20, h: 10, d: 1, levels: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, f, _ := newTestDevice(t, DeviceOptions{})
			tt.desc.Label = tt.name
			tex, err := d.CreateTexture(tt.desc)
			if err != nil {
				t.Fatalf("CreateTexture() error = %v", err)
			}
			if tex.Target() != tt.target {
				t.Errorf("Target() = %#x, want %#x", tex.Target(), tt.target)
			}
			if f.Count(tt.storage) != 1 {
				t.Errorf("calls = %v, want one %s", f.Names(), tt.storage)
			}
			info := f.TextureInfo(tex.Handle())
			if info == nil {
				t.Fatal("fake has no texture record")
			}
			if info.Width != tt.w || info.Height != tt.h || info.Depth != tt.d || info.Levels != tt.levels {
				t.Errorf("storage = %dx%dx%d, %d levels, want %dx%dx%d, %d levels",
					info.Width, info.Height, info.Depth, info.Levels, tt.w, tt.h, tt.d, tt.levels)
			}
			internal, _, _, _ := PixelFormatInfo(tt.desc.Format)
			if info.InternalFormat != internal {
				t.Errorf("internal format = %#x, want %#x", info.InternalFormat, internal)
			}
			if info.Params[gl.TEXTURE_BASE_LEVEL] != 0 || info.Params[gl.TEXTURE_MAX_LEVEL] != tt.levels-1 {
				t.Errorf("level range = %d..%d", info.Params[gl.TEXTURE_BASE_LEVEL], info.Params[gl.TEXTURE_MAX_LEVEL])
			}
			if info.Params[gl.TEXTURE_COMPARE_MODE] != gl.NONE {
				t.Errorf("compare mode = %#x, want NONE", info.Params[gl.TEXTURE_COMPARE_MODE])
			}
			if f.Label(tex.Handle()) != tt.name {
				t.Errorf("label = %q, want %q", f.Label(tex.Handle()), tt.name)
			}
			if got := tex.Descriptor(); got.Height == 0 || got.DepthOrSlices == 0 || got.MipLevels == 0 {
				t.Errorf("Descriptor() not normalized: %+v", got)
			}
		})
	}
}

func TestCreateTextureErrors(t *testing.T) {
	rgba := gputypes.TextureFormatRGBA8Unorm
	tests := []struct {
		name string
		desc TextureDescriptor
		want error
	}{
		{"zero width", TextureDescriptor{Format: rgba}, ErrInvalidSize},
		{"too wide", TextureDescriptor{Format: rgba, Width: 16385}, ErrTextureTooBig},
		{"too tall", TextureDescriptor{Format: rgba, Width: 1, Height: 16385}, ErrTextureTooBig},
		{"3d too deep", TextureDescriptor{Type: gputypes.TextureViewDimension3D, Format: rgba, Width: 1, DepthOrSlices: 2049}, ErrTextureTooBig},
		{"too many slices", TextureDescriptor{Type: gputypes.TextureViewDimension2DArray, Format: rgba, Width: 1, DepthOrSlices: 2049}, ErrTextureTooBig},
		{"too many mips", TextureDescriptor{Format: rgba, Width: 8, Height: 8, MipLevels: 5}, ErrTooManyMipLevels},
		{"2d mips ignore slices", TextureDescriptor{Type: gputypes.TextureViewDimension2DArray, Format: rgba, Width: 2, Height: 2, DepthOrSlices: 64, MipLevels: 3}, ErrTooManyMipLevels},
		{"snorm render target", TextureDescriptor{Format: gputypes.TextureFormatRGBA8Snorm, Usage: TextureUsageRenderTarget, Width: 1}, ErrFormatNotRenderable},
		{"depth shader write", TextureDescriptor{Format: gputypes.TextureFormatDepth32Float, Usage: TextureUsageShaderWrite, Width: 1}, ErrFormatNotRenderable},
		{"compressed", TextureDescriptor{Format: gputypes.TextureFormatBC1RGBAUnorm, Width: 4}, ErrUnsupported},
		{"unknown type", TextureDescriptor{Type: gputypes.TextureViewDimension(99), Format: rgba, Width: 1}, ErrUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, f, _ := newTestDevice(t, DeviceOptions{})
			if _, err := d.CreateTexture(tt.desc); !errors.Is(err, tt.want) {
				t.Errorf("CreateTexture() error = %v, want %v", err, tt.want)
			}
			if len(f.Calls) != 0 {
				t.Errorf("validation failure issued calls: %v", f.Names())
			}
		})
	}
}

func TestCreateTextureAtLimits(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	desc := TextureDescriptor{Format: gputypes.TextureFormatR8Unorm, Width: 16384, Height: 16384, MipLevels: 15}
	if _, err := d.CreateTexture(desc); err != nil {
		t.Errorf("CreateTexture() at the size limit error = %v", err)
	}
	desc = TextureDescriptor{Type: gputypes.TextureViewDimension3D, Format: gputypes.TextureFormatR8Unorm, Width: 1, Height: 1, DepthOrSlices: 1024, MipLevels: 11}
	if _, err := d.CreateTexture(desc); err != nil {
		t.Errorf("CreateTexture() 3D mips from depth error = %v", err)
	}
}

func TestCreateTextureFailure(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	f.FailCreate["CreateTextures"] = true
	if _, err := d.CreateTexture(renderTarget("rt", 4, 4)); !errors.Is(err, ErrCreateFailed) {
		t.Errorf("CreateTexture() error = %v, want ErrCreateFailed", err)
	}
}

func TestTextureDestroy(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	live := f.Live(gltest.KindTexture)
	tex := newTestTexture(t, d, renderTarget("rt", 4, 4))
	tex.Destroy()
	tex.Destroy()
	if tex.Handle() != 0 {
		t.Error("Handle() after Destroy != 0")
	}
	if n := f.Count("glDeleteTextures"); n != 1 {
		t.Errorf("glDeleteTextures calls = %d, want 1", n)
	}
	if n := f.Live(gltest.KindTexture); n != live {
		t.Errorf("live textures = %d, want %d", n, live)
	}

	var nilTex *Texture
	nilTex.Destroy()
	if nilTex.Handle() != 0 {
		t.Error("nil Texture Handle() != 0")
	}
}

func TestBackbufferIgnoresDestroy(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	bb, err := d.GetBackbuffer()
	if err != nil {
		t.Fatalf("GetBackbuffer() error = %v", err)
	}
	bb.Destroy()
	if bb.Handle() == 0 || f.Count("glDeleteTextures") != 0 {
		t.Error("Destroy() released the device backbuffer")
	}
}
