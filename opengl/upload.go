package opengl

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// UploadImage writes img into mip level 0 of a 2D RGBA8 texture. An image
// whose size differs from the texture is scaled with Catmull-Rom. Pixels
// are stored premultiplied, as image.RGBA holds them.
//
// The copy runs immediately through a staging CPU buffer.
func UploadImage(d *Device, t *Texture, img image.Image) error {
	if t.Handle() == 0 || img == nil {
		return violation(fmt.Errorf("upload image: %w", ErrNilResource))
	}
	switch t.Format() {
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb:
	default:
		return fail(fmt.Errorf("upload image to %v texture: %w", t.Format(), ErrUnsupported))
	}
	if t.desc.Type != gputypes.TextureViewDimension2D {
		return fail(fmt.Errorf("upload image to %v texture: %w", t.desc.Type, ErrUnsupported))
	}

	w, h := int(t.Width()), int(t.Height())
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	src := img.Bounds()
	if src.Dx() == w && src.Dy() == h {
		draw.Draw(rgba, rgba.Bounds(), img, src.Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(rgba, rgba.Bounds(), img, src, draw.Src, nil)
	}

	staging, err := d.CreateCPUBuffer(BufferDescriptor{
		Label: "upload staging",
		Size:  uint64(len(rgba.Pix)),
	})
	if err != nil {
		return err
	}
	defer staging.Destroy()

	mapped, err := staging.Lock()
	if err != nil {
		return err
	}
	copy(mapped, rgba.Pix)
	if err := staging.Unlock(); err != nil {
		return err
	}

	pass, err := d.NewImmediateEncoder().BeginBlitPass("upload " + t.Label())
	if err != nil {
		return err
	}
	err = pass.CopyBufferToTexture(staging, 0, uint32(rgba.Stride), t, 0, 0,
		gputypes.Origin3D{}, gputypes.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: 1})
	if endErr := pass.End(); err == nil {
		err = endErr
	}
	return err
}
