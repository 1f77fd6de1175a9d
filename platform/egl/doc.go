// Package egl implements opengl.Platform on EGL for Linux.
//
// A Platform creates one desktop GL core context per device. Each
// context carries a 16x16 pbuffer that the device renders through until
// a window is claimed. Window surfaces wrap a native window handle and
// create their EGL surface when the device configures them.
//
// The package calls libEGL through goffi and requires CGO_ENABLED=0.
// On other platforms NewPlatform returns ErrUnavailable.
package egl

import (
	"errors"

	"github.com/gogpu/gputypes"
)

// Platform errors.
var (
	// ErrUnavailable is returned by NewPlatform where EGL cannot be loaded.
	ErrUnavailable = errors.New("egl: platform unavailable")

	// ErrNoContext is returned when a window surface is configured before
	// the platform has created a context.
	ErrNoContext = errors.New("egl: no context created")

	// ErrForeignSurface is returned by MakeCurrent for surfaces this
	// package did not create.
	ErrForeignSurface = errors.New("egl: surface belongs to another platform")

	// ErrZeroArea is returned by Configure for a window with no area.
	ErrZeroArea = errors.New("egl: window has zero area")
)

// pixelFormat maps the channel depths of an EGL config to a texture
// format.
func pixelFormat(red, alpha int) gputypes.TextureFormat {
	switch {
	case red == 8 && alpha == 8:
		return gputypes.TextureFormatRGBA8Unorm
	case red == 10 && alpha == 2:
		return gputypes.TextureFormatRGB10A2Unorm
	}
	return gputypes.TextureFormatUndefined
}

// physicalSize converts a logical window size to pixels.
func physicalSize(w, h int, scale float64) (int, int) {
	if scale <= 0 {
		scale = 1
	}
	return int(float64(w)*scale + 0.5), int(float64(h)*scale + 0.5)
}
