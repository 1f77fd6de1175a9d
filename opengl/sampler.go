package opengl

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

// SamplerDescriptor extends the backend-neutral sampler description with
// a border color.
type SamplerDescriptor struct {
	gputypes.SamplerDescriptor

	Border BorderColor
}

// Sampler holds immutable filtering and addressing state.
type Sampler struct {
	dev    *Device
	handle uint32
	desc   SamplerDescriptor
}

// CreateSampler allocates a sampler object. Anisotropy is clamped to
// [1, Limits.MaxAnisotropy].
func (d *Device) CreateSampler(desc SamplerDescriptor) (*Sampler, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	fns := d.fns
	name := fns.CreateSamplers()
	if name == 0 {
		return nil, fail(fmt.Errorf("create sampler %q: %w", desc.Label, ErrCreateFailed))
	}
	d.label(gl.SAMPLER, name, desc.Label)

	fns.SamplerParameteri(name, gl.TEXTURE_MIN_FILTER, int32(MinFilterGL(desc.MinFilter, desc.MipmapFilter)))
	fns.SamplerParameteri(name, gl.TEXTURE_MAG_FILTER, int32(MagFilterGL(desc.MagFilter)))
	fns.SamplerParameteri(name, gl.TEXTURE_WRAP_S, int32(WrapGL(desc.AddressModeU)))
	fns.SamplerParameteri(name, gl.TEXTURE_WRAP_T, int32(WrapGL(desc.AddressModeV)))
	fns.SamplerParameteri(name, gl.TEXTURE_WRAP_R, int32(WrapGL(desc.AddressModeW)))
	border := BorderColorGL(desc.Border)
	fns.SamplerParameterfv(name, gl.TEXTURE_BORDER_COLOR, border[:])
	fns.SamplerParameterf(name, gl.TEXTURE_MAX_ANISOTROPY, clampAnisotropy(desc.MaxAnisotropy, d.limits.MaxAnisotropy))

	if desc.LodMaxClamp != 0 {
		fns.SamplerParameterf(name, gl.TEXTURE_MIN_LOD, desc.LodMinClamp)
		fns.SamplerParameterf(name, gl.TEXTURE_MAX_LOD, desc.LodMaxClamp)
	}
	if desc.Compare != gputypes.CompareFunctionUndefined {
		fns.SamplerParameteri(name, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
		fns.SamplerParameteri(name, gl.TEXTURE_COMPARE_FUNC, int32(CompareFunc(desc.Compare)))
	}
	gl.Check(fns, "glSamplerParameter")

	return &Sampler{dev: d, handle: name, desc: desc}, nil
}

func clampAnisotropy(requested uint16, limit float32) float32 {
	a := max(float32(requested), 1)
	if limit >= 1 {
		a = min(a, limit)
	}
	return a
}

// Handle returns the native sampler name, 0 once destroyed.
func (s *Sampler) Handle() uint32 {
	if s == nil {
		return 0
	}
	return s.handle
}

// Descriptor returns the creation parameters.
func (s *Sampler) Descriptor() SamplerDescriptor { return s.desc }

// Destroy releases the sampler. Calling it more than once is a no-op.
func (s *Sampler) Destroy() {
	if s == nil || s.handle == 0 {
		return
	}
	s.dev.fns.DeleteSamplers(s.handle)
	gl.Check(s.dev.fns, "glDeleteSamplers")
	s.handle = 0
}
