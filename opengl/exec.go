package opengl

import (
	"encoding/binary"
	"fmt"

	"github.com/gogpu/glgpu/internal/gl"
)

// execState is the GL-side state carried between commands during
// execution. Replay and ImmediateEncoder share it.
type execState struct {
	fns gl.Functions

	fbo        uint32
	colorCount uint32

	// popPipeline and popPass track debug groups pushed for labeled
	// pipelines and passes.
	popPipeline bool
	popPass     bool
}

func (s *execState) reset() { *s = execState{fns: s.fns} }

// exec runs one command.
func (s *execState) exec(cmd Command) error {
	switch c := cmd.(type) {
	case *StartRenderPassCommand:
		return s.startRenderPass(c)
	case *EndRenderPassCommand:
		s.endRenderPass()
	case *SetPipelineCommand:
		s.setPipeline(c)
	case *SetViewportCommand:
		s.fns.Viewport(c.X, c.Y, c.Width, c.Height)
		gl.Check(s.fns, "glViewport")
	case *SetScissorCommand:
		s.fns.Scissor(c.X, c.Y, c.Width, c.Height)
		gl.Check(s.fns, "glScissor")
	case *SetBlendConstantCommand:
		s.fns.BlendColor(c.Color[0], c.Color[1], c.Color[2], c.Color[3])
		gl.Check(s.fns, "glBlendColor")
	case *SetBufferCommand:
		s.setBuffer(c)
	case *SetSamplerCommand:
		s.fns.BindSampler(c.Unit, c.Sampler)
		gl.Check(s.fns, "glBindSampler")
	case *SetTextureCommand:
		s.fns.BindTextureUnit(c.Unit, c.Texture)
		gl.Check(s.fns, "glBindTextureUnit")
	case *SetMeshCommand:
		return s.setMesh(c)
	case *DrawCommand:
		s.fns.DrawArrays(c.Mode, int32(c.First), int32(c.Count))
		gl.Check(s.fns, "glDrawArrays")
	case *DrawIndexedCommand:
		s.drawIndexed(c)
	case *StartBlitPassCommand:
		s.startBlitPass(c)
	case *EndBlitPassCommand:
		s.endBlitPass()
	case *CopyTextureCommand:
		s.copyTexture(c)
	case *FillBufferCommand:
		s.fillBuffer(c)
	case *GenerateMipmapsCommand:
		s.fns.GenerateTextureMipmap(c.Texture)
		gl.Check(s.fns, "glGenerateTextureMipmap")
	case *CopyBufferCommand:
		s.copyBuffer(c)
	case *CopyBufferToTextureCommand:
		s.copyBufferToTexture(c)
	case *EndOfCommands:
	default:
		return violation(fmt.Errorf("exec %T: %w", cmd, ErrCorruptCommand))
	}
	return nil
}

// replay executes an arena from offset 0 and returns the first execution
// error. A render pass whose start fails is skipped up to its end record;
// replay then continues with the next pass. Every label is released once
// its record has been visited.
func replay(fns gl.Functions, arena []byte, labels *labelTable) error {
	st := execState{fns: fns}
	defer st.reset()

	var first error
	skipTo := -1
	err := walk(arena, func(off int, tag CommandType, payload []byte) error {
		if tag.labeled() {
			defer labels.release(binary.LittleEndian.Uint32(payload))
		}
		if off < skipTo {
			return nil
		}
		cmd := newCommand(tag)
		cmd.decode(&reader{b: payload, lookup: labels.lookup})
		err := st.exec(cmd)
		if err == nil {
			return nil
		}
		if first == nil {
			first = err
		}
		if start, ok := cmd.(*StartRenderPassCommand); ok {
			if int(start.End) <= off {
				return fmt.Errorf("offset %d: render pass end %d: %w", off, start.End, ErrCorruptCommand)
			}
			skipTo = int(start.End)
		}
		return nil
	})
	if err != nil {
		if gl.DebugChecks {
			panic(err)
		}
		return err
	}
	return first
}
