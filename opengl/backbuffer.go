package opengl

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

// backbufferFormat returns the texture format mirroring a surface
// format. Only 8-bit and 10-bit RGBA surfaces are accepted.
func backbufferFormat(f gputypes.TextureFormat) (gputypes.TextureFormat, error) {
	switch f {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatBGRA8Unorm:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case gputypes.TextureFormatRGB10A2Unorm:
		return gputypes.TextureFormatRGB10A2Unorm, nil
	}
	return gputypes.TextureFormatUndefined, fmt.Errorf("%v: %w", f, ErrSurfaceFormat)
}

// recreateBackbuffer resizes the backbuffer to match s. The new texture
// is attached and checked before the old one is released, so a failure
// leaves the previous backbuffer intact.
func (d *Device) recreateBackbuffer(s Surface) error {
	format, err := backbufferFormat(s.PixelFormat())
	if err != nil {
		return err
	}
	w, h := s.Size()
	width, height := uint32(max(w, 1)), uint32(max(h, 1))

	old := d.backbuffer
	if old != nil && old.Width() == width && old.Height() == height && old.Format() == format {
		return nil
	}

	tex, err := d.allocTexture(TextureDescriptor{
		Label:     "fake back texture",
		Type:      gputypes.TextureViewDimension2D,
		Format:    format,
		Usage:     TextureUsageRenderTarget,
		Width:     width,
		Height:    height,
		MipLevels: 1,
	})
	if err != nil {
		return fmt.Errorf("backbuffer %dx%d: %w", width, height, err)
	}
	tex.backbuffer = true

	fns := d.fns
	fns.NamedFramebufferTexture(d.backFBO, gl.COLOR_ATTACHMENT0, tex.handle, 0)
	if err := checkFramebuffer(fns, d.backFBO, gl.READ_FRAMEBUFFER); err != nil {
		prev := uint32(0)
		if old != nil {
			prev = old.handle
		}
		fns.NamedFramebufferTexture(d.backFBO, gl.COLOR_ATTACHMENT0, prev, 0)
		tex.release()
		slogger().Error("opengl: backbuffer framebuffer incomplete", "err", err)
		return fmt.Errorf("backbuffer %dx%d: %w", width, height, err)
	}

	if old != nil {
		old.release()
	}
	d.backbuffer = tex
	slogger().Debug("opengl: backbuffer recreated", "width", width, "height", height, "format", format)
	return nil
}
