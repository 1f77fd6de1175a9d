package opengl

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
	"github.com/gogpu/glgpu/internal/gl/gltest"
)

func TestUploadImage(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	tex := newTestTexture(t, d, TextureDescriptor{
		Label:  "sprite",
		Format: gputypes.TextureFormatRGBA8Unorm,
		Usage:  TextureUsageShaderRead,
		Width:  3,
		Height: 2,
	})
	img := image.NewRGBA(image.Rect(10, 10, 13, 12))
	for i := range img.Pix {
		img.Pix[i] = byte(i * 7)
	}
	f.Reset()

	if err := UploadImage(d, tex, img); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	uploads := f.TextureInfo(tex.Handle()).Uploads
	if len(uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(uploads))
	}
	u := uploads[0]
	if u.Width != 3 || u.Height != 2 || u.X != 0 || u.Y != 0 || u.Level != 0 {
		t.Errorf("upload region = %+v", u)
	}
	if !bytes.Equal(u.Data, img.Pix) {
		t.Errorf("uploaded texels = %v, want %v", u.Data, img.Pix)
	}
	if got := f.Find("glPushDebugGroup"); len(got) != 1 || got[0].Args[2] != "Start blit Pass: upload sprite" {
		t.Errorf("debug groups = %v", got)
	}
	if n := f.Live(gltest.KindBuffer); n != 0 {
		t.Errorf("staging buffer leaked: %d live buffers", n)
	}
	if f.BoundBuffer(gl.PIXEL_UNPACK_BUFFER) != 0 {
		t.Error("unpack buffer left bound")
	}
}

func TestUploadImageScaled(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	tex := newTestTexture(t, d, TextureDescriptor{Format: gputypes.TextureFormatRGBA8UnormSrgb, Width: 4, Height: 4})

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for y := range 2 {
		for x := range 2 {
			img.SetNRGBA(x, y, color.NRGBA{R: 255, A: 255})
		}
	}
	if err := UploadImage(d, tex, img); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	uploads := f.TextureInfo(tex.Handle()).Uploads
	if len(uploads) != 1 || len(uploads[0].Data) != 4*4*4 {
		t.Fatalf("uploads = %+v", uploads)
	}
	data := uploads[0].Data
	for i := 0; i < len(data); i += 4 {
		if px := data[i : i+4]; !bytes.Equal(px, []byte{255, 0, 0, 255}) {
			t.Fatalf("pixel %d = %v, want opaque red", i/4, px)
		}
	}
}

func TestUploadImagePremultiplies(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	tex := newTestTexture(t, d, TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 1, Height: 1})
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, G: 255, B: 255, A: 128})

	if err := UploadImage(d, tex, img); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}
	want := []byte{128, 128, 128, 128}
	if got := f.TextureInfo(tex.Handle()).Uploads[0].Data; !bytes.Equal(got, want) {
		t.Errorf("texel = %v, want %v", got, want)
	}
}

func TestUploadImageErrors(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))

	float := newTestTexture(t, d, TextureDescriptor{Format: gputypes.TextureFormatRGBA16Float, Width: 1})
	if err := UploadImage(d, float, img); !errors.Is(err, ErrUnsupported) {
		t.Errorf("UploadImage(float texture) error = %v, want ErrUnsupported", err)
	}
	array := newTestTexture(t, d, TextureDescriptor{
		Type:          gputypes.TextureViewDimension2DArray,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Width:         1,
		DepthOrSlices: 2,
	})
	if err := UploadImage(d, array, img); !errors.Is(err, ErrUnsupported) {
		t.Errorf("UploadImage(array texture) error = %v, want ErrUnsupported", err)
	}

	tex := newTestTexture(t, d, TextureDescriptor{Format: gputypes.TextureFormatRGBA8Unorm, Width: 1})
	expectViolation(t, ErrNilResource, func() error { return UploadImage(d, tex, nil) })
	tex.Destroy()
	expectViolation(t, ErrNilResource, func() error { return UploadImage(d, tex, img) })
}
