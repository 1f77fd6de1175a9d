package egl

import (
	"testing"

	"github.com/gogpu/gputypes"
)

func TestPixelFormat(t *testing.T) {
	tests := []struct {
		red, alpha int
		want       gputypes.TextureFormat
	}{
		{8, 8, gputypes.TextureFormatRGBA8Unorm},
		{10, 2, gputypes.TextureFormatRGB10A2Unorm},
		{8, 0, gputypes.TextureFormatUndefined},
		{5, 1, gputypes.TextureFormatUndefined},
	}
	for _, tt := range tests {
		if got := pixelFormat(tt.red, tt.alpha); got != tt.want {
			t.Errorf("pixelFormat(%d, %d) = %v, want %v", tt.red, tt.alpha, got, tt.want)
		}
	}
}

func TestPhysicalSize(t *testing.T) {
	tests := []struct {
		w, h  int
		scale float64
		wantW int
		wantH int
	}{
		{800, 600, 1, 800, 600},
		{800, 600, 2, 1600, 1200},
		{801, 601, 1.5, 1202, 902},
		{640, 480, 0, 640, 480},
	}
	for _, tt := range tests {
		w, h := physicalSize(tt.w, tt.h, tt.scale)
		if w != tt.wantW || h != tt.wantH {
			t.Errorf("physicalSize(%d, %d, %v) = %d, %d, want %d, %d", tt.w, tt.h, tt.scale, w, h, tt.wantW, tt.wantH)
		}
	}
}
