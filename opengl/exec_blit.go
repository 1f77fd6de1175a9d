package opengl

import (
	"unsafe"

	"github.com/gogpu/glgpu/internal/gl"
)

func (s *execState) startBlitPass(c *StartBlitPassCommand) {
	s.popPass = c.Label != ""
	if s.popPass {
		s.pushGroup("Start blit Pass: ", c.Label)
	}
}

func (s *execState) endBlitPass() {
	if s.popPass {
		s.fns.PopDebugGroup()
		s.popPass = false
	}
}

func (s *execState) copyTexture(c *CopyTextureCommand) {
	src, dst := &c.Src, &c.Dst
	s.fns.CopyImageSubData(
		src.Texture, src.Target, src.Level, src.X, src.Y, src.Z,
		dst.Texture, dst.Target, dst.Level, dst.X, dst.Y, dst.Z,
		c.Width, c.Height, c.Depth,
	)
	gl.Check(s.fns, "glCopyImageSubData")
}

func (s *execState) fillBuffer(c *FillBufferCommand) {
	value := c.Value
	s.fns.ClearNamedBufferSubData(c.Buffer, gl.R8, int(c.Offset), int(c.Size),
		gl.RED, gl.UNSIGNED_BYTE, unsafe.Pointer(&value))
	gl.Check(s.fns, "glClearNamedBufferSubData")
}

func (s *execState) copyBuffer(c *CopyBufferCommand) {
	s.fns.CopyNamedBufferSubData(c.Src, c.Dst, int(c.SrcOffset), int(c.DstOffset), int(c.Size))
	gl.Check(s.fns, "glCopyNamedBufferSubData")
}

// copyBufferToTexture sources texels from the pixel unpack binding. With
// the default unpack alignment of 4 a single 2D call reads rows spaced by
// the row size rounded up to 4; any other pitch goes one row at a time.
func (s *execState) copyBufferToTexture(c *CopyBufferToTextureCommand) {
	fns := s.fns
	fns.BindBuffer(gl.PIXEL_UNPACK_BUFFER, c.Buffer)
	defer fns.BindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)

	if c.Dimensions == 1 {
		fns.TextureSubImage1D(c.Texture, c.Level, c.X, c.Width, c.Format, c.DataType, uintptr(c.Offset))
		gl.Check(fns, "glTextureSubImage1D")
		return
	}
	if c.Pitch == (c.RowBytes+3)&^3 {
		fns.TextureSubImage2D(c.Texture, c.Level, c.X, c.Y, c.Width, c.Height, c.Format, c.DataType, uintptr(c.Offset))
		gl.Check(fns, "glTextureSubImage2D")
		return
	}
	for i := int32(0); i < c.Height; i++ {
		off := c.Offset + uint64(i)*uint64(c.Pitch)
		fns.TextureSubImage2D(c.Texture, c.Level, c.X, c.Y+i, c.Width, 1, c.Format, c.DataType, uintptr(off))
	}
	gl.Check(fns, "glTextureSubImage2D")
}
