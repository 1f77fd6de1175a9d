package opengl

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

func newBlit(t *testing.T, d *Device, label string) *BlitPass {
	t.Helper()
	p, err := d.NewImmediateEncoder().BeginBlitPass(label)
	if err != nil {
		t.Fatalf("BeginBlitPass(%q) error = %v", label, err)
	}
	t.Cleanup(func() { p.End() })
	return p
}

func TestBlitPassDebugGroup(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})

	p := newBlit(t, d, "copy")
	if got := f.DebugGroups(); !reflect.DeepEqual(got, []string{"Start blit Pass: copy"}) {
		t.Errorf("debug groups = %v", got)
	}
	if err := p.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if len(f.DebugGroups()) != 0 {
		t.Errorf("debug groups left open: %v", f.DebugGroups())
	}

	f.Reset()
	q := newBlit(t, d, "")
	q.End()
	if len(f.Calls) != 0 {
		t.Errorf("unlabeled blit pass issued calls: %v", f.Names())
	}
}

func TestFillBuffer(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	buf, err := d.CreateBuffer(BufferDescriptor{Size: 16, Data: bytes.Repeat([]byte{1}, 16)})
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}
	p := newBlit(t, d, "")

	if err := p.FillBuffer(buf, 4, 8, 0xab); err != nil {
		t.Fatalf("FillBuffer() error = %v", err)
	}
	want := []byte{1, 1, 1, 1, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 0xab, 1, 1, 1, 1}
	if got := f.BufferData(buf.Handle()); !bytes.Equal(got, want) {
		t.Errorf("buffer = %x, want %x", got, want)
	}
	c := f.Find("glClearNamedBufferSubData")[0]
	if c.Args[1] != uint32(gl.R8) || c.Args[4] != uint32(gl.RED) || c.Args[5] != uint32(gl.UNSIGNED_BYTE) {
		t.Errorf("clear call = %v", c)
	}

	tests := []struct {
		name         string
		offset, size uint64
	}{
		{"past end", 10, 8},
		{"offset beyond", 17, 0},
		{"wrapping size", 8, ^uint64(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.FillBuffer(buf, tt.offset, tt.size, 0); !errors.Is(err, ErrInvalidSize) {
				t.Errorf("FillBuffer(%d, %d) error = %v, want ErrInvalidSize", tt.offset, tt.size, err)
			}
		})
	}
	expectViolation(t, ErrNilResource, func() error { return p.FillBuffer(nil, 0, 1, 0) })
}

func TestCopyBuffer(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	src, err := d.CreateCPUBuffer(BufferDescriptor{Size: 8, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}})
	if err != nil {
		t.Fatalf("CreateCPUBuffer() error = %v", err)
	}
	dst, err := d.CreateBuffer(BufferDescriptor{Size: 8})
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}
	p := newBlit(t, d, "")

	if err := p.CopyBuffer(src, 2, dst, 4, 4); err != nil {
		t.Fatalf("CopyBuffer() error = %v", err)
	}
	if got, want := f.BufferData(dst.Handle()), []byte{0, 0, 0, 0, 3, 4, 5, 6}; !bytes.Equal(got, want) {
		t.Errorf("dst = %v, want %v", got, want)
	}
	if err := p.CopyBuffer(src, 6, dst, 0, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("CopyBuffer() source overrun error = %v", err)
	}
	if err := p.CopyBuffer(src, 0, dst, 6, 4); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("CopyBuffer() destination overrun error = %v", err)
	}
	expectViolation(t, ErrNilResource, func() error { return p.CopyBuffer(src, 0, nil, 0, 1) })
}

func TestCopyTexture(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	array := newTestTexture(t, d, TextureDescriptor{
		Type: gputypes.TextureViewDimension2DArray, Format: gputypes.TextureFormatRGBA8Unorm,
		Usage: TextureUsageShaderRead, Width: 16, Height: 16, DepthOrSlices: 4,
	})
	volume := newTestTexture(t, d, TextureDescriptor{
		Type: gputypes.TextureViewDimension3D, Format: gputypes.TextureFormatRGBA8Unorm,
		Usage: TextureUsageShaderRead, Width: 16, Height: 16, DepthOrSlices: 8,
	})
	p := newBlit(t, d, "")
	f.Reset()

	err := p.CopyTexture(
		array, 0, 2, gputypes.Origin3D{X: 1, Y: 2, Z: 9},
		volume, 0, 7, gputypes.Origin3D{X: 3, Y: 4, Z: 5},
		gputypes.Extent3D{Width: 4},
	)
	if err != nil {
		t.Fatalf("CopyTexture() error = %v", err)
	}
	want := []any{
		array.Handle(), uint32(gl.TEXTURE_2D_ARRAY), int32(0), int32(1), int32(2), int32(2),
		volume.Handle(), uint32(gl.TEXTURE_3D), int32(0), int32(3), int32(4), int32(5),
		int32(4), int32(1), int32(1),
	}
	calls := f.Find("glCopyImageSubData")
	if len(calls) != 1 || !reflect.DeepEqual(calls[0].Args, want) {
		t.Errorf("glCopyImageSubData = %v\nwant %v", calls, want)
	}

	gone := newTestTexture(t, d, renderTarget("gone", 4, 4))
	gone.Destroy()
	expectViolation(t, ErrNilResource, func() error {
		return p.CopyTexture(gone, 0, 0, gputypes.Origin3D{}, volume, 0, 0, gputypes.Origin3D{}, gputypes.Extent3D{Width: 1})
	})
}

func TestCopyZ(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	origin := gputypes.Origin3D{Z: 5}
	tests := []struct {
		typ  gputypes.TextureViewDimension
		want int32
	}{
		{gputypes.TextureViewDimension1D, 0},
		{gputypes.TextureViewDimension2D, 0},
		{gputypes.TextureViewDimension2DArray, 3},
		{gputypes.TextureViewDimensionCube, 3},
		{gputypes.TextureViewDimensionCubeArray, 3},
		{gputypes.TextureViewDimension3D, 5},
	}
	for _, tt := range tests {
		tex := &Texture{dev: d, desc: TextureDescriptor{Type: tt.typ}}
		if got := copyZ(tex, 3, origin); got != tt.want {
			t.Errorf("copyZ(%v) = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestCopyBufferToTexture(t *testing.T) {
	tests := []struct {
		name   string
		desc   TextureDescriptor
		pitch  uint32
		origin gputypes.Origin3D
		size   gputypes.Extent3D
		want   []string
	}{
		{
			name:   "2d aligned",
			desc:   TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 8, Height: 8},
			pitch:  16,
			origin: gputypes.Origin3D{X: 1, Y: 2},
			size:   gputypes.Extent3D{Width: 4, Height: 3},
			want: []string{
				"glBindBuffer",
				"glTextureSubImage2D",
				"glBindBuffer",
			},
		},
		{
			name:   "2d padded rows",
			desc:   TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 8, Height: 8},
			pitch:  32,
			origin: gputypes.Origin3D{X: 1, Y: 2},
			size:   gputypes.Extent3D{Width: 4, Height: 3},
			want: []string{
				"glBindBuffer",
				"glTextureSubImage2D",
				"glTextureSubImage2D",
				"glTextureSubImage2D",
				"glBindBuffer",
			},
		},
		{
			name:  "2d aligned row size",
			desc:  TextureDescriptor{Format: gputypes.TextureFormatR8Unorm, Width: 8, Height: 8},
			pitch: 4,
			size:  gputypes.Extent3D{Width: 3, Height: 3},
			want: []string{
				"glBindBuffer",
				"glTextureSubImage2D",
				"glBindBuffer",
			},
		},
		{
			name:   "2d unaligned",
			desc:   TextureDescriptor{Format: gputypes.TextureFormatR8Unorm, Width: 8, Height: 8},
			pitch:  3,
			origin: gputypes.Origin3D{Y: 4},
			size:   gputypes.Extent3D{Width: 3, Height: 3},
			want: []string{
				"glBindBuffer",
				"glTextureSubImage2D",
				"glTextureSubImage2D",
				"glTextureSubImage2D",
				"glBindBuffer",
			},
		},
		{
			name: "1d",
			desc: TextureDescriptor{Type: gputypes.TextureViewDimension1D, Format: gputypes.TextureFormatRGBA8Unorm, Width: 8},
			size: gputypes.Extent3D{Width: 8},
			want: []string{
				"glBindBuffer",
				"glTextureSubImage1D",
				"glBindBuffer",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, f, _ := newTestDevice(t, DeviceOptions{})
			src, err := d.CreateCPUBuffer(BufferDescriptor{Size: 256})
			if err != nil {
				t.Fatalf("CreateCPUBuffer() error = %v", err)
			}
			tt.desc.Usage = TextureUsageShaderRead
			dst := newTestTexture(t, d, tt.desc)
			p := newBlit(t, d, "")
			f.Reset()

			if err := p.CopyBufferToTexture(src, 16, tt.pitch, dst, 0, 0, tt.origin, tt.size); err != nil {
				t.Fatalf("CopyBufferToTexture() error = %v", err)
			}
			if !reflect.DeepEqual(f.Names(), tt.want) {
				t.Errorf("calls = %v, want %v", f.Names(), tt.want)
			}
			if f.BoundBuffer(gl.PIXEL_UNPACK_BUFFER) != 0 {
				t.Error("pixel unpack buffer left bound")
			}
			if f.Calls[0].Args[1] != src.Handle() {
				t.Errorf("unpack binding = %v, want %d", f.Calls[0].Args[1], src.Handle())
			}
		})
	}
}

func TestCopyBufferToTextureRows(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	src, err := d.CreateCPUBuffer(BufferDescriptor{Size: 64})
	if err != nil {
		t.Fatalf("CreateCPUBuffer() error = %v", err)
	}
	dst := newTestTexture(t, d, TextureDescriptor{
		Format: gputypes.TextureFormatR8Unorm, Usage: TextureUsageShaderRead, Width: 8, Height: 8,
	})
	p := newBlit(t, d, "")
	f.Reset()

	if err := p.CopyBufferToTexture(src, 10, 5, dst, 0, 0, gputypes.Origin3D{X: 2, Y: 1}, gputypes.Extent3D{Width: 5, Height: 2}); err != nil {
		t.Fatalf("CopyBufferToTexture() error = %v", err)
	}
	rows := f.Find("glTextureSubImage2D")
	if len(rows) != 2 {
		t.Fatalf("row uploads = %d, want 2", len(rows))
	}
	for i, row := range rows {
		want := []any{dst.Handle(), int32(0), int32(2), int32(1 + i), int32(5), int32(1),
			uint32(gl.RED), uint32(gl.UNSIGNED_BYTE), uintptr(10 + 5*i)}
		if !reflect.DeepEqual(row.Args, want) {
			t.Errorf("row %d = %v, want %v", i, row.Args, want)
		}
	}
}

func TestCopyBufferToTextureSourceRange(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	src, err := d.CreateCPUBuffer(BufferDescriptor{Size: 64})
	if err != nil {
		t.Fatalf("CreateCPUBuffer() error = %v", err)
	}
	dst := newTestTexture(t, d, TextureDescriptor{
		Format: gputypes.TextureFormatRGBA8Unorm, Usage: TextureUsageShaderRead, Width: 8, Height: 8,
	})
	p := newBlit(t, d, "")
	f.Reset()

	tests := []struct {
		name   string
		offset uint64
		pitch  uint32
		size   gputypes.Extent3D
	}{
		{"past end", 16, 16, gputypes.Extent3D{Width: 4, Height: 4}},
		{"padded past end", 0, 32, gputypes.Extent3D{Width: 4, Height: 3}},
		{"offset past end", 65, 16, gputypes.Extent3D{Width: 1, Height: 1}},
		{"pitch below row", 0, 8, gputypes.Extent3D{Width: 4, Height: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.CopyBufferToTexture(src, tt.offset, tt.pitch, dst, 0, 0, gputypes.Origin3D{}, tt.size)
			if !errors.Is(err, ErrInvalidSize) {
				t.Errorf("CopyBufferToTexture() error = %v, want ErrInvalidSize", err)
			}
		})
	}
	if n := f.Count("glTextureSubImage2D"); n != 0 {
		t.Errorf("rejected copies issued %d uploads", n)
	}
	if err := p.CopyBufferToTexture(src, 0, 16, dst, 0, 0, gputypes.Origin3D{}, gputypes.Extent3D{Width: 4, Height: 4}); err != nil {
		t.Errorf("CopyBufferToTexture(exact fit) error = %v", err)
	}
}

func TestCopyBufferToTextureUnsupported(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	src, err := d.CreateCPUBuffer(BufferDescriptor{Size: 64})
	if err != nil {
		t.Fatalf("CreateCPUBuffer() error = %v", err)
	}
	volume := newTestTexture(t, d, TextureDescriptor{
		Type: gputypes.TextureViewDimension3D, Format: gputypes.TextureFormatRGBA8Unorm,
		Usage: TextureUsageShaderRead, Width: 2, Height: 2, DepthOrSlices: 2,
	})
	p := newBlit(t, d, "")
	err = p.CopyBufferToTexture(src, 0, 8, volume, 0, 0, gputypes.Origin3D{}, gputypes.Extent3D{Width: 2, Height: 2})
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("CopyBufferToTexture(3D) error = %v, want ErrUnsupported", err)
	}
	err = p.CopyTextureToBuffer(volume, 0, 0, gputypes.Origin3D{}, gputypes.Extent3D{Width: 1}, src, 0, 8)
	if !errors.Is(err, ErrUnsupported) {
		t.Errorf("CopyTextureToBuffer() error = %v, want ErrUnsupported", err)
	}
}

func TestGenerateMipmaps(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	tex := newTestTexture(t, d, TextureDescriptor{
		Format: gputypes.TextureFormatRGBA8Unorm, Usage: TextureUsageShaderRead,
		Width: 16, Height: 16, MipLevels: 5,
	})
	p := newBlit(t, d, "")
	f.Reset()
	if err := p.GenerateMipmaps(tex); err != nil {
		t.Fatalf("GenerateMipmaps() error = %v", err)
	}
	if calls := f.Find("glGenerateTextureMipmap"); len(calls) != 1 || calls[0].Args[0] != tex.Handle() {
		t.Errorf("glGenerateTextureMipmap calls = %v", calls)
	}
	expectViolation(t, ErrNilResource, func() error { return p.GenerateMipmaps(nil) })
}

func TestBlitPassEnded(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	buf, err := d.CreateBuffer(BufferDescriptor{Size: 4})
	if err != nil {
		t.Fatalf("CreateBuffer() error = %v", err)
	}
	p := newBlit(t, d, "done")
	if p.State() != PassStateRecording {
		t.Errorf("State() = %v", p.State())
	}
	if err := p.End(); err != nil {
		t.Fatalf("End() error = %v", err)
	}
	if err := p.End(); err != nil {
		t.Errorf("second End() error = %v", err)
	}
	if err := p.FillBuffer(buf, 0, 4, 1); !errors.Is(err, ErrPassEnded) {
		t.Errorf("FillBuffer() after End error = %v, want ErrPassEnded", err)
	}
}
