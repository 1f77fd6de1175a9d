package opengl

import (
	"fmt"
	"sync"

	"github.com/gogpu/gputypes"
)

// BlitPass records copy, fill and mipmap commands. It only scopes them
// under one debug group.
type BlitPass struct {
	mu    sync.Mutex
	rec   recorder
	state PassState
}

func beginBlitPass(rec recorder, label string) (*BlitPass, error) {
	if err := rec.begin(&StartBlitPassCommand{Label: label}); err != nil {
		return nil, err
	}
	return &BlitPass{rec: rec}, nil
}

// State returns the current pass state.
func (p *BlitPass) State() PassState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *BlitPass) record(cmd Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != PassStateRecording {
		return fail(ErrPassEnded)
	}
	return p.rec.record(cmd)
}

// copyZ returns the third copy coordinate: the slice for array and cube
// textures, the depth offset for 3D ones.
func copyZ(t *Texture, slice uint32, origin gputypes.Origin3D) int32 {
	switch t.desc.Type {
	case gputypes.TextureViewDimension3D:
		return int32(origin.Z)
	case gputypes.TextureViewDimension2DArray, gputypes.TextureViewDimensionCube,
		gputypes.TextureViewDimensionCubeArray:
		return int32(slice)
	}
	return 0
}

// CopyTexture copies a region between two textures. Formats must be
// copy-compatible; that is left to the caller.
func (p *BlitPass) CopyTexture(
	src *Texture, srcMip, srcSlice uint32, srcOrigin gputypes.Origin3D,
	dst *Texture, dstMip, dstSlice uint32, dstOrigin gputypes.Origin3D,
	size gputypes.Extent3D,
) error {
	sh, dh := src.Handle(), dst.Handle()
	if sh == 0 || dh == 0 {
		return violation(fmt.Errorf("copy texture: %w", ErrNilResource))
	}
	return p.record(&CopyTextureCommand{
		Src: TextureRegion{
			Texture: sh, Target: src.target, Level: int32(srcMip),
			X: int32(srcOrigin.X), Y: int32(srcOrigin.Y), Z: copyZ(src, srcSlice, srcOrigin),
		},
		Dst: TextureRegion{
			Texture: dh, Target: dst.target, Level: int32(dstMip),
			X: int32(dstOrigin.X), Y: int32(dstOrigin.Y), Z: copyZ(dst, dstSlice, dstOrigin),
		},
		Width:  int32(size.Width),
		Height: int32(max(size.Height, 1)),
		Depth:  int32(max(size.DepthOrArrayLayers, 1)),
	})
}

// checkRange reports whether [off, off+size) lies inside buf.
func checkRange(what string, buf BufferResource, off, size uint64) error {
	if off > buf.Len() || size > buf.Len()-off {
		return fmt.Errorf("%s: range [%d, +%d) outside %d bytes: %w", what, off, size, buf.Len(), ErrInvalidSize)
	}
	return nil
}

// FillBuffer sets size bytes of buf starting at offset to value.
func (p *BlitPass) FillBuffer(buf BufferResource, offset, size uint64, value byte) error {
	h := handleOf(buf)
	if h == 0 {
		return violation(fmt.Errorf("fill buffer: %w", ErrNilResource))
	}
	if err := checkRange("fill buffer", buf, offset, size); err != nil {
		return fail(err)
	}
	return p.record(&FillBufferCommand{Buffer: h, Offset: offset, Size: size, Value: value})
}

// GenerateMipmaps fills every mip level of t from level 0.
func (p *BlitPass) GenerateMipmaps(t *Texture) error {
	h := t.Handle()
	if h == 0 {
		return violation(fmt.Errorf("generate mipmaps: %w", ErrNilResource))
	}
	return p.record(&GenerateMipmapsCommand{Texture: h})
}

// CopyBuffer copies size bytes between any two buffers.
func (p *BlitPass) CopyBuffer(src BufferResource, srcOffset uint64, dst BufferResource, dstOffset, size uint64) error {
	sh, dh := handleOf(src), handleOf(dst)
	if sh == 0 || dh == 0 {
		return violation(fmt.Errorf("copy buffer: %w", ErrNilResource))
	}
	if err := checkRange("copy buffer source", src, srcOffset, size); err != nil {
		return fail(err)
	}
	if err := checkRange("copy buffer destination", dst, dstOffset, size); err != nil {
		return fail(err)
	}
	return p.record(&CopyBufferCommand{Src: sh, Dst: dh, SrcOffset: srcOffset, DstOffset: dstOffset, Size: size})
}

// CopyBufferToTexture uploads texels from src into one mip level of a 1D
// or 2D texture. pitch is the byte distance between source rows and must
// cover a tightly packed row.
func (p *BlitPass) CopyBufferToTexture(
	src BufferResource, srcOffset uint64, pitch uint32,
	dst *Texture, mip, slice uint32, origin gputypes.Origin3D, size gputypes.Extent3D,
) error {
	sh, dh := handleOf(src), dst.Handle()
	if sh == 0 || dh == 0 {
		return violation(fmt.Errorf("copy buffer to texture: %w", ErrNilResource))
	}
	_, format, dataType, ok := PixelFormatInfo(dst.Format())
	if !ok {
		return fail(fmt.Errorf("copy buffer to texture: format %v: %w", dst.Format(), ErrUnsupported))
	}

	rowBytes := uint64(size.Width) * uint64(FormatBytesPerPixel(dst.Format()))
	span := rowBytes
	cmd := &CopyBufferToTextureCommand{
		Buffer:   sh,
		Offset:   srcOffset,
		Texture:  dh,
		Level:    int32(mip),
		X:        int32(origin.X),
		Width:    int32(size.Width),
		Format:   format,
		DataType: dataType,
	}
	switch dst.desc.Type {
	case gputypes.TextureViewDimension1D:
		cmd.Dimensions = 1
	case gputypes.TextureViewDimension2D:
		rows := uint64(max(size.Height, 1))
		if rows > 1 && uint64(pitch) < rowBytes {
			return fail(fmt.Errorf("copy buffer to texture: pitch %d < row size %d: %w", pitch, rowBytes, ErrInvalidSize))
		}
		span = (rows-1)*uint64(pitch) + rowBytes
		cmd.Dimensions = 2
		cmd.Pitch = pitch
		cmd.RowBytes = uint32(rowBytes)
		cmd.Y = int32(origin.Y)
		cmd.Height = int32(rows)
	default:
		return fail(fmt.Errorf("copy buffer to %v texture: %w", dst.desc.Type, ErrUnsupported))
	}
	if err := checkRange("copy buffer to texture source", src, srcOffset, span); err != nil {
		return fail(err)
	}
	return p.record(cmd)
}

// CopyTextureToBuffer is not implemented.
func (p *BlitPass) CopyTextureToBuffer(src *Texture, mip, slice uint32, origin gputypes.Origin3D, size gputypes.Extent3D, dst BufferResource, dstOffset uint64, pitch uint32) error {
	return fail(fmt.Errorf("copy texture to buffer: %w", ErrUnsupported))
}

// End closes the pass. Calling End more than once is a no-op.
func (p *BlitPass) End() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PassStateEnded {
		return nil
	}
	p.state = PassStateEnded
	return p.rec.end(&EndBlitPassCommand{})
}
