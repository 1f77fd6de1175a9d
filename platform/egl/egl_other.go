//go:build !linux

package egl

import (
	"unsafe"

	"github.com/gogpu/glgpu/opengl"
)

// Platform is unavailable in this build.
type Platform struct{}

var _ opengl.Platform = (*Platform)(nil)

// NewPlatform reports that EGL is unavailable: the binding is Linux only.
func NewPlatform() (*Platform, error) { return nil, ErrUnavailable }

func (*Platform) CreateContext(opengl.ContextConfig) (opengl.NativeContext, error) {
	return nil, ErrUnavailable
}

func (*Platform) GetProcAddress(string) unsafe.Pointer { return nil }
