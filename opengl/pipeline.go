package opengl

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

// MaxColorAttachments is the number of color slots a pass or pipeline
// can describe.
const MaxColorAttachments = 8

// VertexAttribute describes one vertex input. Attribute i is bound to
// shader location i and reads from vertex buffer binding 0.
type VertexAttribute struct {
	Format gputypes.VertexFormat
	// Offset is the byte offset of the attribute inside one vertex.
	Offset uint32
	// Stride is the distance between vertices. Only attribute 0's stride
	// is used, for the mesh buffer binding.
	Stride uint32
}

// ColorTarget is the blend and write state of one color slot.
type ColorTarget struct {
	BlendEnabled bool
	Blend        gputypes.BlendState
	WriteMask    gputypes.ColorWriteMask
}

// PipelineDescriptor describes a render pipeline.
type PipelineDescriptor struct {
	Label string

	Vertex   *Shader
	Fragment *Shader

	Attributes []VertexAttribute
	Colors     []ColorTarget

	DepthStencil gputypes.DepthStencilState
	// StencilReference is the reference value for both faces.
	StencilReference uint32

	FillMode  FillMode
	Cull      gputypes.CullMode
	FrontFace gputypes.FrontFace
	Topology  gputypes.PrimitiveTopology
}

// blendSlot is the native blend and color mask state of one draw buffer.
type blendSlot struct {
	enabled  bool
	eqRGB    uint32
	eqAlpha  uint32
	srcRGB   uint32
	dstRGB   uint32
	srcAlpha uint32
	dstAlpha uint32
	mask     gputypes.ColorWriteMask
}

type stencilFace struct {
	fn        uint32
	ref       int32
	readMask  uint32
	writeMask uint32
	fail      uint32
	depthFail uint32
	pass      uint32
}

// pipelineState is every piece of global state a pipeline bind writes,
// already translated to native enums. It is copied into the command
// stream so replay needs no access to the Pipeline object.
type pipelineState struct {
	vertexArray uint32
	program     uint32

	blend [MaxColorAttachments]blendSlot

	depthWrite bool
	depthFunc  uint32
	// bias holds the glPolygonOffsetClamp arguments: factor, units, clamp.
	bias [3]float32

	front stencilFace
	back  stencilFace

	polygonMode uint32
	cull        bool
	cullFace    uint32
	frontFace   uint32

	primitive uint32
	stride    uint32
}

// Pipeline pairs a vertex array object with a program pipeline and keeps
// the description it was created from.
type Pipeline struct {
	dev         *Device
	vertexArray uint32
	program     uint32
	desc        PipelineDescriptor
	state       pipelineState
}

// CreatePipeline builds the vertex layout and links the two shader stages
// into a program pipeline.
func (d *Device) CreatePipeline(desc PipelineDescriptor) (*Pipeline, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	if err := d.validatePipeline(&desc); err != nil {
		return nil, fail(fmt.Errorf("create pipeline %q: %w", desc.Label, err))
	}
	if desc.Label != "" {
		d.pushGroup("create pipeline: ", desc.Label)
		defer d.popGroup()
	}

	fns := d.fns
	vao := fns.CreateVertexArrays()
	if vao == 0 {
		return nil, fail(fmt.Errorf("create pipeline %q: vertex array: %w", desc.Label, ErrCreateFailed))
	}
	d.label(gl.VERTEX_ARRAY, vao, desc.Label)
	for i, attr := range desc.Attributes {
		index := uint32(i)
		size, typ, normalized, integer := VertexFormatInfo(attr.Format)
		fns.EnableVertexArrayAttrib(vao, index)
		if integer {
			fns.VertexArrayAttribIFormat(vao, index, size, typ, attr.Offset)
		} else {
			fns.VertexArrayAttribFormat(vao, index, size, typ, normalized, attr.Offset)
		}
		fns.VertexArrayAttribBinding(vao, index, 0)
		gl.Check(fns, "glVertexArrayAttribFormat")
	}

	program := fns.CreateProgramPipelines()
	if program == 0 {
		fns.DeleteVertexArrays(vao)
		return nil, fail(fmt.Errorf("create pipeline %q: program pipeline: %w", desc.Label, ErrCreateFailed))
	}
	fns.UseProgramStages(program, gl.VERTEX_SHADER_BIT, desc.Vertex.Handle())
	fns.UseProgramStages(program, gl.FRAGMENT_SHADER_BIT, desc.Fragment.Handle())
	d.label(gl.PROGRAM_PIPELINE, program, desc.Label)
	fns.ValidateProgramPipeline(program)
	if err := d.pipelineStatus(program, desc.Label); err != nil {
		fns.DeleteProgramPipelines(program)
		fns.DeleteVertexArrays(vao)
		return nil, fail(fmt.Errorf("create pipeline %q: %w", desc.Label, err))
	}
	gl.Check(fns, "glValidateProgramPipeline")

	desc.Attributes = append([]VertexAttribute(nil), desc.Attributes...)
	desc.Colors = append([]ColorTarget(nil), desc.Colors...)
	p := &Pipeline{dev: d, vertexArray: vao, program: program, desc: desc}
	p.state = buildPipelineState(vao, program, &desc)
	return p, nil
}

func (d *Device) validatePipeline(desc *PipelineDescriptor) error {
	if uint32(len(desc.Attributes)) > d.limits.MaxVertexAttributes {
		return fmt.Errorf("%d attributes > %d: %w", len(desc.Attributes), d.limits.MaxVertexAttributes, ErrTooManyAttributes)
	}
	if len(desc.Colors) > MaxColorAttachments {
		return fmt.Errorf("%d color targets: %w", len(desc.Colors), ErrTooManyAttachments)
	}
	for i, attr := range desc.Attributes {
		if n, _, _, _ := VertexFormatInfo(attr.Format); n == 0 {
			return fmt.Errorf("attribute %d: vertex format %v: %w", i, attr.Format, ErrUnsupported)
		}
	}
	switch {
	case desc.Vertex.Handle() == 0:
		return fmt.Errorf("vertex stage: %w", ErrNilShader)
	case desc.Fragment.Handle() == 0:
		return fmt.Errorf("fragment stage: %w", ErrNilShader)
	case desc.Vertex.Stage() != ShaderStageVertex:
		return fmt.Errorf("vertex stage holds a %v shader: %w", desc.Vertex.Stage(), ErrShaderStage)
	case desc.Fragment.Stage() != ShaderStageFragment:
		return fmt.Errorf("fragment stage holds a %v shader: %w", desc.Fragment.Stage(), ErrShaderStage)
	}
	return nil
}

func (d *Device) pipelineStatus(program uint32, label string) error {
	var status int32
	d.fns.GetProgramPipelineiv(program, gl.VALIDATE_STATUS, &status)
	infoLog := d.fns.GetProgramPipelineInfoLog(program)
	if status == gl.FALSE {
		slogger().Error("opengl: program pipeline log", "label", label, "log", infoLog)
		return fmt.Errorf("%w: %s", ErrProgramValidate, infoLog)
	}
	if infoLog != "" {
		slogger().Info("opengl: program pipeline log", "label", label, "log", infoLog)
	}
	return nil
}

func buildPipelineState(vao, program uint32, desc *PipelineDescriptor) pipelineState {
	s := pipelineState{
		vertexArray: vao,
		program:     program,
		depthWrite:  desc.DepthStencil.DepthWriteEnabled,
		depthFunc:   CompareFunc(desc.DepthStencil.DepthCompare),
		bias: [3]float32{
			desc.DepthStencil.DepthBiasSlopeScale,
			float32(desc.DepthStencil.DepthBias),
			desc.DepthStencil.DepthBiasClamp,
		},
		polygonMode: PolygonModeGL(desc.FillMode),
		frontFace:   FrontFaceGL(desc.FrontFace),
		primitive:   PrimitiveGL(desc.Topology),
	}
	s.cullFace, s.cull = CullFaceGL(desc.Cull)
	if len(desc.Attributes) > 0 {
		s.stride = desc.Attributes[0].Stride
	}

	for i := range s.blend {
		if i >= len(desc.Colors) {
			s.blend[i] = blendSlot{
				eqRGB: gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
				srcRGB: gl.ONE, dstRGB: gl.ZERO, srcAlpha: gl.ONE, dstAlpha: gl.ZERO,
				mask: gputypes.ColorWriteMaskAll,
			}
			continue
		}
		c := desc.Colors[i]
		s.blend[i] = blendSlot{
			enabled:  c.BlendEnabled,
			eqRGB:    BlendOpGL(c.Blend.Color.Operation),
			eqAlpha:  BlendOpGL(c.Blend.Alpha.Operation),
			srcRGB:   BlendFactorGL(c.Blend.Color.SrcFactor),
			dstRGB:   BlendFactorGL(c.Blend.Color.DstFactor),
			srcAlpha: BlendFactorGL(c.Blend.Alpha.SrcFactor),
			dstAlpha: BlendFactorGL(c.Blend.Alpha.DstFactor),
			mask:     c.WriteMask,
		}
	}

	ds := &desc.DepthStencil
	face := func(f gputypes.StencilFaceState) stencilFace {
		return stencilFace{
			fn:        CompareFunc(f.Compare),
			ref:       int32(desc.StencilReference),
			readMask:  ds.StencilReadMask,
			writeMask: ds.StencilWriteMask,
			fail:      StencilOpGL(f.FailOp),
			depthFail: StencilOpGL(f.DepthFailOp),
			pass:      StencilOpGL(f.PassOp),
		}
	}
	s.front = face(ds.StencilFront)
	s.back = face(ds.StencilBack)
	return s
}

// Descriptor returns a copy of the creation parameters.
func (p *Pipeline) Descriptor() PipelineDescriptor {
	desc := p.desc
	desc.Attributes = append([]VertexAttribute(nil), p.desc.Attributes...)
	desc.Colors = append([]ColorTarget(nil), p.desc.Colors...)
	return desc
}

// VertexArray returns the vertex array object name.
func (p *Pipeline) VertexArray() uint32 { return p.vertexArray }

// Program returns the program pipeline name.
func (p *Pipeline) Program() uint32 { return p.program }

// Stride returns the stride of attribute 0, used for mesh bindings.
func (p *Pipeline) Stride() uint32 { return p.state.stride }

// Label returns the debug label given at creation.
func (p *Pipeline) Label() string { return p.desc.Label }

// Destroy releases both native objects. Calling it more than once is a
// no-op.
func (p *Pipeline) Destroy() {
	if p == nil || p.program == 0 && p.vertexArray == 0 {
		return
	}
	fns := p.dev.fns
	if p.program != 0 {
		fns.DeleteProgramPipelines(p.program)
		p.program = 0
	}
	if p.vertexArray != 0 {
		fns.DeleteVertexArrays(p.vertexArray)
		p.vertexArray = 0
	}
	gl.Check(fns, "glDeleteProgramPipelines")
}

func (p *Pipeline) alive() bool { return p != nil && p.program != 0 && p.vertexArray != 0 }
