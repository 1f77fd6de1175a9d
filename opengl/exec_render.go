package opengl

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
)

func (s *execState) pushGroup(prefix, label string) {
	s.fns.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, prefix+label)
}

// startRenderPass creates the pass framebuffer, attaches every target and
// runs its load action. Clears ignore scissor and color masks, so both
// are reset first.
func (s *execState) startRenderPass(c *StartRenderPassCommand) error {
	fns := s.fns
	s.popPass = c.Label != ""
	if s.popPass {
		s.pushGroup("Start Render Pass: ", c.Label)
	}

	fbo := fns.CreateFramebuffers()
	if fbo == 0 {
		return fmt.Errorf("start render pass %q: framebuffer: %w", c.Label, ErrCreateFailed)
	}
	if c.Label != "" {
		fns.ObjectLabel(gl.FRAMEBUFFER, fbo, c.Label)
	}
	fns.BindFramebuffer(gl.DRAW_FRAMEBUFFER, fbo)
	fns.Disable(gl.SCISSOR_TEST)

	var drawBuffers [MaxColorAttachments]uint32
	for i := range drawBuffers {
		drawBuffers[i] = gl.NONE
		if uint32(i) < c.ColorCount && c.Colors[i].Texture != 0 {
			drawBuffers[i] = gl.COLOR_ATTACHMENT0 + uint32(i)
		}
	}
	fns.NamedFramebufferDrawBuffers(fbo, drawBuffers[:])

	invalid := make([]uint32, 0, MaxColorAttachments+2)
	for i := uint32(0); i < c.ColorCount; i++ {
		a := &c.Colors[i]
		if a.Texture == 0 {
			continue
		}
		fns.ColorMaski(i, true, true, true, true)
		fns.NamedFramebufferTexture(fbo, gl.COLOR_ATTACHMENT0+i, a.Texture, 0)
		switch a.Load {
		case LoadActionClear:
			fns.ClearNamedFramebufferfv(fbo, gl.COLOR, int32(i), a.Clear[:])
		case LoadActionUndefined:
			invalid = append(invalid, gl.COLOR_ATTACHMENT0+i)
		}
		gl.Check(fns, "glNamedFramebufferTexture")
	}

	if c.Depth != 0 {
		fns.NamedFramebufferTexture(fbo, gl.DEPTH_ATTACHMENT, c.Depth, 0)
		switch c.DepthLoad {
		case LoadActionClear:
			fns.DepthMask(true)
			fns.ClearNamedFramebufferfv(fbo, gl.DEPTH, 0, []float32{c.DepthClear})
		case LoadActionUndefined:
			invalid = append(invalid, gl.DEPTH_ATTACHMENT)
		}
		gl.Check(fns, "glNamedFramebufferTexture")
	}

	if c.Stencil != 0 {
		fns.NamedFramebufferTexture(fbo, gl.STENCIL_ATTACHMENT, c.Stencil, 0)
		switch c.StencilLoad {
		case LoadActionClear:
			// Stencil clears honor the write mask of the last pipeline.
			fns.StencilMaskSeparate(gl.FRONT_AND_BACK, 0xFFFFFFFF)
			fns.ClearNamedFramebufferiv(fbo, gl.STENCIL, 0, []int32{int32(c.StencilClear)})
		case LoadActionUndefined:
			invalid = append(invalid, gl.STENCIL_ATTACHMENT)
		}
		fns.Enable(gl.STENCIL_TEST)
		gl.Check(fns, "glNamedFramebufferTexture")
	} else {
		fns.Disable(gl.STENCIL_TEST)
	}

	if len(invalid) != 0 {
		fns.InvalidateNamedFramebufferData(fbo, invalid)
		gl.Check(fns, "glInvalidateNamedFramebufferData")
	}
	fns.Enable(gl.SCISSOR_TEST)

	if err := checkFramebuffer(fns, fbo, gl.DRAW_FRAMEBUFFER); err != nil {
		fns.DeleteFramebuffers(fbo)
		slogger().Error("opengl: render pass framebuffer incomplete", "label", c.Label, "err", err)
		return fmt.Errorf("start render pass %q: %w", c.Label, err)
	}
	s.fbo = fbo
	s.colorCount = c.ColorCount
	return nil
}

func (s *execState) endRenderPass() {
	fns := s.fns
	if s.popPipeline {
		fns.PopDebugGroup()
		s.popPipeline = false
	}
	if s.fbo != 0 {
		fns.DeleteFramebuffers(s.fbo)
	}
	if s.popPass {
		fns.PopDebugGroup()
		s.popPass = false
	}
	gl.Check(fns, "glDeleteFramebuffers")
	s.fbo = 0
	s.colorCount = 0
}

// setPipeline writes every global state the pipeline owns. Blend and
// color mask are set only for the pass's color slots.
func (s *execState) setPipeline(c *SetPipelineCommand) {
	fns := s.fns
	if s.popPipeline {
		fns.PopDebugGroup()
	}
	s.popPipeline = c.Label != ""
	if s.popPipeline {
		s.pushGroup("Pipeline: ", c.Label)
	}

	st := &c.state
	fns.BindVertexArray(st.vertexArray)
	fns.BindProgramPipeline(st.program)
	gl.Check(fns, "glBindProgramPipeline")

	for i := uint32(0); i < s.colorCount && i < MaxColorAttachments; i++ {
		b := &st.blend[i]
		if b.enabled {
			fns.Enablei(gl.BLEND, i)
			fns.BlendEquationSeparatei(i, b.eqRGB, b.eqAlpha)
			fns.BlendFuncSeparatei(i, b.srcRGB, b.dstRGB, b.srcAlpha, b.dstAlpha)
		} else {
			fns.Disablei(gl.BLEND, i)
		}
		fns.ColorMaski(i,
			b.mask&gputypes.ColorWriteMaskRed != 0,
			b.mask&gputypes.ColorWriteMaskGreen != 0,
			b.mask&gputypes.ColorWriteMaskBlue != 0,
			b.mask&gputypes.ColorWriteMaskAlpha != 0,
		)
		gl.Check(fns, "glColorMaski")
	}

	fns.DepthMask(st.depthWrite)
	fns.DepthFunc(st.depthFunc)
	fns.PolygonOffsetClamp(st.bias[0], st.bias[1], st.bias[2])

	for _, f := range [...]struct {
		face uint32
		st   *stencilFace
	}{{gl.FRONT, &st.front}, {gl.BACK, &st.back}} {
		fns.StencilFuncSeparate(f.face, f.st.fn, f.st.ref, f.st.readMask)
		fns.StencilMaskSeparate(f.face, f.st.writeMask)
		fns.StencilOpSeparate(f.face, f.st.fail, f.st.depthFail, f.st.pass)
	}

	fns.PolygonMode(gl.FRONT_AND_BACK, st.polygonMode)
	if st.cull {
		fns.Enable(gl.CULL_FACE)
		fns.FrontFace(st.frontFace)
		fns.CullFace(st.cullFace)
	} else {
		fns.Disable(gl.CULL_FACE)
	}
	gl.Check(fns, "glPolygonMode")
}

func (s *execState) setBuffer(c *SetBufferCommand) {
	s.fns.BindBufferRange(gl.SHADER_STORAGE_BUFFER, c.Slot, c.Buffer, int(c.Offset), int(c.Size))
	gl.Check(s.fns, "glBindBufferRange")
}

func (s *execState) setMesh(c *SetMeshCommand) error {
	if c.Stride == 0 {
		return violation(fmt.Errorf("set mesh buffer %d: %w", c.Buffer, ErrZeroStride))
	}
	s.fns.BindVertexBuffer(0, c.Buffer, int(c.Offset), int32(c.Stride))
	gl.Check(s.fns, "glBindVertexBuffer")
	return nil
}

func (s *execState) drawIndexed(c *DrawIndexedCommand) {
	s.fns.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, c.IndexBuffer)
	s.fns.DrawElements(c.Mode, int32(c.Count), c.IndexType, uintptr(c.Offset))
	gl.Check(s.fns, "glDrawElements")
}
