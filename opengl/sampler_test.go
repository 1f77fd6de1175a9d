package opengl

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
	"github.com/gogpu/glgpu/internal/gl/gltest"
)

func TestCreateSampler(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	desc := SamplerDescriptor{
		SamplerDescriptor: gputypes.SamplerDescriptor{
			Label:         "shadow",
			AddressModeU:  gputypes.AddressModeRepeat,
			AddressModeV:  gputypes.AddressModeMirrorRepeat,
			MagFilter:     gputypes.FilterModeLinear,
			MinFilter:     gputypes.FilterModeLinear,
			MipmapFilter:  gputypes.MipmapFilterModeLinear,
			LodMinClamp:   1,
			LodMaxClamp:   4,
			Compare:       gputypes.CompareFunctionLessEqual,
			MaxAnisotropy: 8,
		},
		Border: BorderOpaqueWhite,
	}
	s, err := d.CreateSampler(desc)
	if err != nil {
		t.Fatalf("CreateSampler() error = %v", err)
	}
	h := s.Handle()
	if f.Label(h) != "shadow" {
		t.Errorf("label = %q", f.Label(h))
	}
	want := map[uint32]any{
		gl.TEXTURE_MIN_FILTER:     int32(gl.LINEAR_MIPMAP_LINEAR),
		gl.TEXTURE_MAG_FILTER:     int32(gl.LINEAR),
		gl.TEXTURE_WRAP_S:         int32(gl.REPEAT),
		gl.TEXTURE_WRAP_T:         int32(gl.MIRRORED_REPEAT),
		gl.TEXTURE_WRAP_R:         int32(gl.CLAMP_TO_EDGE),
		gl.TEXTURE_BORDER_COLOR:   []float32{1, 1, 1, 1},
		gl.TEXTURE_MAX_ANISOTROPY: float32(8),
		gl.TEXTURE_MIN_LOD:        float32(1),
		gl.TEXTURE_MAX_LOD:        float32(4),
		gl.TEXTURE_COMPARE_MODE:   int32(gl.COMPARE_REF_TO_TEXTURE),
		gl.TEXTURE_COMPARE_FUNC:   int32(gl.LEQUAL),
	}
	for pname, v := range want {
		if got := f.SamplerParam(h, pname); !reflect.DeepEqual(got, v) {
			t.Errorf("param %#x = %v (%T), want %v (%T)", pname, got, got, v, v)
		}
	}
	if got := s.Descriptor(); got != desc {
		t.Errorf("Descriptor() = %+v, want %+v", got, desc)
	}

	s.Destroy()
	s.Destroy()
	if s.Handle() != 0 || f.Count("glDeleteSamplers") != 1 || f.Live(gltest.KindSampler) != 0 {
		t.Error("Destroy() did not release the sampler exactly once")
	}
}

func TestCreateSamplerDefaults(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	s, err := d.CreateSampler(SamplerDescriptor{})
	if err != nil {
		t.Fatalf("CreateSampler() error = %v", err)
	}
	h := s.Handle()
	for _, pname := range []uint32{gl.TEXTURE_MIN_LOD, gl.TEXTURE_MAX_LOD, gl.TEXTURE_COMPARE_MODE, gl.TEXTURE_COMPARE_FUNC} {
		if v := f.SamplerParam(h, pname); v != nil {
			t.Errorf("param %#x = %v, want unset", pname, v)
		}
	}
	if v := f.SamplerParam(h, gl.TEXTURE_MAX_ANISOTROPY); v != float32(1) {
		t.Errorf("anisotropy = %v, want 1", v)
	}
	if v := f.SamplerParam(h, gl.TEXTURE_MIN_FILTER); v != int32(gl.NEAREST) {
		t.Errorf("min filter = %v, want NEAREST", v)
	}
	if v := f.SamplerParam(h, gl.TEXTURE_BORDER_COLOR); !reflect.DeepEqual(v, []float32{0, 0, 0, 0}) {
		t.Errorf("border = %v, want transparent black", v)
	}
	if f.Count("glObjectLabel") != 0 {
		t.Error("unlabeled sampler was labeled")
	}
}

func TestClampAnisotropy(t *testing.T) {
	tests := []struct {
		requested uint16
		limit     float32
		want      float32
	}{
		{0, 16, 1},
		{1, 16, 1},
		{8, 16, 8},
		{64, 16, 16},
		{4, 0, 4},
		{0, 0, 1},
	}
	for _, tt := range tests {
		if got := clampAnisotropy(tt.requested, tt.limit); got != tt.want {
			t.Errorf("clampAnisotropy(%d, %v) = %v, want %v", tt.requested, tt.limit, got, tt.want)
		}
	}
}

func TestCreateSamplerFailure(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	f.FailCreate["CreateSamplers"] = true
	if _, err := d.CreateSampler(SamplerDescriptor{}); !errors.Is(err, ErrCreateFailed) {
		t.Errorf("CreateSampler() error = %v, want ErrCreateFailed", err)
	}
	d.Destroy()
	if _, err := d.CreateSampler(SamplerDescriptor{}); !errors.Is(err, ErrDeviceDestroyed) {
		t.Errorf("CreateSampler() after Destroy error = %v, want ErrDeviceDestroyed", err)
	}
}

func TestFence(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	fence := d.CreateFence()
	if !fence.Signaled() {
		t.Error("new fence not signaled")
	}
	fence.Reset()
	if !fence.Signaled() {
		t.Error("fence not signaled after Reset")
	}
	if err := fence.Wait(context.Background()); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := fence.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait(canceled) error = %v, want context.Canceled", err)
	}
	fence.Destroy()
	if len(f.Calls) != 0 {
		t.Errorf("fences issued calls: %v", f.Names())
	}
}
