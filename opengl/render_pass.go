package opengl

import (
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gputypes"
)

// LoadAction is what happens to an attachment's contents when a pass
// starts.
type LoadAction uint8

const (
	// LoadActionUndefined discards the contents.
	LoadActionUndefined LoadAction = iota
	// LoadActionLoad preserves the contents.
	LoadActionLoad
	// LoadActionClear clears to the attachment's clear value.
	LoadActionClear
)

// String returns the string representation of LoadAction.
func (a LoadAction) String() string {
	switch a {
	case LoadActionUndefined:
		return "Undefined"
	case LoadActionLoad:
		return "Load"
	case LoadActionClear:
		return "Clear"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// ColorAttachment binds a texture to one color slot.
type ColorAttachment struct {
	Texture *Texture
	Load    LoadAction
	Clear   gputypes.Color
}

// DepthAttachment binds the depth target.
type DepthAttachment struct {
	Texture *Texture
	Load    LoadAction
	Clear   float32
}

// StencilAttachment binds the stencil target. A combined depth-stencil
// texture may be given as both the depth and the stencil attachment.
type StencilAttachment struct {
	Texture *Texture
	Load    LoadAction
	Clear   uint32
}

// RenderPassDescriptor describes the attachments of a render pass.
// Colors[i] is written by fragment output i.
type RenderPassDescriptor struct {
	Label   string
	Colors  []ColorAttachment
	Depth   *DepthAttachment
	Stencil *StencilAttachment
}

// PassState is the state of a render or blit pass.
type PassState int

const (
	// PassStateRecording means the pass accepts commands.
	PassStateRecording PassState = iota
	// PassStateEnded means End has been called.
	PassStateEnded
)

// String returns the string representation of PassState.
func (s PassState) String() string {
	switch s {
	case PassStateRecording:
		return "Recording"
	case PassStateEnded:
		return "Ended"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// RenderPass records draw commands against one set of attachments.
//
// Viewport and scissor rectangles use a top-left origin. They are flipped
// to the native bottom-left origin with the pass's render target height,
// the smallest height among its attachments.
//
// RenderPass is NOT safe for concurrent use with its command buffer's
// other passes; only one pass per command buffer is open at a time.
//
// State Machine:
//
//	Recording -> End() -> Ended
type RenderPass struct {
	mu  sync.Mutex
	rec recorder

	state  PassState
	height int32

	// pipeline state captured by SetPipeline for SetMeshBuffer and draws.
	hasPipeline bool
	primitive   uint32
	stride      uint32
}

func buildStartRenderPass(desc *RenderPassDescriptor) (*StartRenderPassCommand, error) {
	if len(desc.Colors) > MaxColorAttachments {
		return nil, fmt.Errorf("%d colors > %d: %w", len(desc.Colors), MaxColorAttachments, ErrTooManyAttachments)
	}
	cmd := &StartRenderPassCommand{
		Label:      desc.Label,
		ColorCount: uint32(len(desc.Colors)),
	}
	height := uint32(math.MaxInt32)
	attach := func(what string, t *Texture) (uint32, error) {
		if t == nil {
			return 0, nil
		}
		h := t.Handle()
		if h == 0 {
			return 0, violation(fmt.Errorf("%s texture %q destroyed: %w", what, t.Label(), ErrNilResource))
		}
		height = min(height, t.Height())
		return h, nil
	}

	for i, c := range desc.Colors {
		h, err := attach(fmt.Sprintf("color %d", i), c.Texture)
		if err != nil {
			return nil, err
		}
		cmd.Colors[i] = ColorAttachmentCommand{
			Texture: h,
			Load:    c.Load,
			Clear:   [4]float32{float32(c.Clear.R), float32(c.Clear.G), float32(c.Clear.B), float32(c.Clear.A)},
		}
	}
	if d := desc.Depth; d != nil {
		h, err := attach("depth", d.Texture)
		if err != nil {
			return nil, err
		}
		cmd.Depth, cmd.DepthLoad, cmd.DepthClear = h, d.Load, d.Clear
	}
	if s := desc.Stencil; s != nil {
		h, err := attach("stencil", s.Texture)
		if err != nil {
			return nil, err
		}
		cmd.Stencil, cmd.StencilLoad, cmd.StencilClear = h, s.Load, s.Clear
	}
	if height == math.MaxInt32 {
		return nil, ErrNoAttachments
	}
	cmd.Height = int32(height)
	return cmd, nil
}

func beginRenderPass(rec recorder, desc RenderPassDescriptor) (*RenderPass, error) {
	start, err := buildStartRenderPass(&desc)
	if err != nil {
		return nil, fail(fmt.Errorf("begin render pass %q: %w", desc.Label, err))
	}
	if err := rec.begin(start); err != nil {
		return nil, err
	}
	return &RenderPass{rec: rec, height: start.Height}, nil
}

// State returns the current pass state.
func (p *RenderPass) State() PassState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Height returns the render target height used for Y flips.
func (p *RenderPass) Height() int32 { return p.height }

// checkRecording returns an error if the pass has ended.
// The caller must hold p.mu.
func (p *RenderPass) checkRecording() error {
	if p.state != PassStateRecording {
		return fail(ErrPassEnded)
	}
	return nil
}

func (p *RenderPass) record(cmd Command) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkRecording(); err != nil {
		return err
	}
	return p.rec.record(cmd)
}

// SetPipeline binds p's vertex layout and program and rewrites all blend,
// depth, stencil, fill and cull state.
func (p *RenderPass) SetPipeline(pl *Pipeline) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkRecording(); err != nil {
		return err
	}
	if !pl.alive() {
		return violation(fmt.Errorf("set pipeline: %w", ErrNilResource))
	}
	if err := p.rec.record(&SetPipelineCommand{Label: pl.desc.Label, state: pl.state}); err != nil {
		return err
	}
	p.hasPipeline = true
	p.primitive = pl.state.primitive
	p.stride = pl.state.stride
	return nil
}

// flip converts a top-left origin rectangle to the native origin.
func (p *RenderPass) flip(x, y, w, h int32) rect {
	return rect{X: x, Y: p.height - y - h, Width: w, Height: h}
}

// SetViewport sets the viewport in top-left origin coordinates.
func (p *RenderPass) SetViewport(x, y, w, h int32) error {
	return p.record(&SetViewportCommand{p.flip(x, y, w, h)})
}

// SetScissor sets the scissor box in top-left origin coordinates.
func (p *RenderPass) SetScissor(x, y, w, h int32) error {
	return p.record(&SetScissorCommand{p.flip(x, y, w, h)})
}

// SetBlendConstant sets the color used by constant blend factors.
func (p *RenderPass) SetBlendConstant(c gputypes.Color) error {
	return p.record(&SetBlendConstantCommand{
		Color: [4]float32{float32(c.R), float32(c.G), float32(c.B), float32(c.A)},
	})
}

func (p *RenderPass) setBuffer(slot uint32, buf BufferResource, offset uint64) error {
	h := handleOf(buf)
	if h == 0 {
		return violation(fmt.Errorf("set buffer slot %d: %w", slot, ErrNilResource))
	}
	if offset > buf.Len() {
		return fail(fmt.Errorf("set buffer slot %d: offset %d > %d: %w", slot, offset, buf.Len(), ErrInvalidSize))
	}
	return p.record(&SetBufferCommand{Slot: slot, Buffer: h, Offset: offset, Size: buf.Len() - offset})
}

// SetVertexBuffer binds buf from offset to the end as the storage buffer
// at slot.
func (p *RenderPass) SetVertexBuffer(slot uint32, buf BufferResource, offset uint64) error {
	return p.setBuffer(slot, buf, offset)
}

// SetFragmentBuffer is SetVertexBuffer. Storage slots are shared by all
// stages.
func (p *RenderPass) SetFragmentBuffer(slot uint32, buf BufferResource, offset uint64) error {
	return p.setBuffer(slot, buf, offset)
}

func (p *RenderPass) setSampler(unit uint32, s *Sampler) error {
	h := s.Handle()
	if h == 0 {
		return violation(fmt.Errorf("set sampler unit %d: %w", unit, ErrNilResource))
	}
	return p.record(&SetSamplerCommand{Unit: unit, Sampler: h})
}

// SetVertexSampler binds s to texture unit.
func (p *RenderPass) SetVertexSampler(unit uint32, s *Sampler) error { return p.setSampler(unit, s) }

// SetFragmentSampler binds s to texture unit.
func (p *RenderPass) SetFragmentSampler(unit uint32, s *Sampler) error { return p.setSampler(unit, s) }

func (p *RenderPass) setTexture(unit uint32, t *Texture) error {
	h := t.Handle()
	if h == 0 {
		return violation(fmt.Errorf("set texture unit %d: %w", unit, ErrNilResource))
	}
	return p.record(&SetTextureCommand{Unit: unit, Texture: h})
}

// SetVertexTexture binds t to texture unit.
func (p *RenderPass) SetVertexTexture(unit uint32, t *Texture) error { return p.setTexture(unit, t) }

// SetFragmentTexture binds t to texture unit.
func (p *RenderPass) SetFragmentTexture(unit uint32, t *Texture) error { return p.setTexture(unit, t) }

// SetMeshBuffer binds buf as the vertex source with the bound pipeline's
// stride.
func (p *RenderPass) SetMeshBuffer(buf BufferResource, offset uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkRecording(); err != nil {
		return err
	}
	if !p.hasPipeline {
		return fail(fmt.Errorf("set mesh buffer: %w", ErrNoPipeline))
	}
	if p.stride == 0 {
		return violation(fmt.Errorf("set mesh buffer: %w", ErrZeroStride))
	}
	h := handleOf(buf)
	if h == 0 {
		return violation(fmt.Errorf("set mesh buffer: %w", ErrNilResource))
	}
	return p.rec.record(&SetMeshCommand{Buffer: h, Offset: offset, Stride: p.stride})
}

// Draw draws count vertices starting at first.
func (p *RenderPass) Draw(first, count uint32) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkRecording(); err != nil {
		return err
	}
	if !p.hasPipeline {
		return fail(fmt.Errorf("draw: %w", ErrNoPipeline))
	}
	return p.rec.record(&DrawCommand{Mode: p.primitive, First: first, Count: count})
}

// DrawIndexed draws count indices of format read from indices at
// byteOffset.
func (p *RenderPass) DrawIndexed(indices BufferResource, format gputypes.IndexFormat, count uint32, byteOffset uint64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if err := p.checkRecording(); err != nil {
		return err
	}
	if !p.hasPipeline {
		return fail(fmt.Errorf("draw indexed: %w", ErrNoPipeline))
	}
	h := handleOf(indices)
	if h == 0 {
		return violation(fmt.Errorf("draw indexed: %w", ErrNilResource))
	}
	typ := IndexTypeGL(format)
	if typ == 0 {
		return fail(fmt.Errorf("draw indexed: index format %v: %w", format, ErrUnsupported))
	}
	return p.rec.record(&DrawIndexedCommand{
		IndexBuffer: h,
		Mode:        p.primitive,
		IndexType:   typ,
		Count:       count,
		Offset:      byteOffset,
	})
}

// DrawInstanced is not implemented.
func (p *RenderPass) DrawInstanced(first, count, instances uint32) error {
	return fail(fmt.Errorf("draw instanced: %w", ErrUnsupported))
}

// DrawIndexedInstanced is not implemented.
func (p *RenderPass) DrawIndexedInstanced(indices BufferResource, format gputypes.IndexFormat, count uint32, byteOffset uint64, instances uint32) error {
	return fail(fmt.Errorf("draw indexed instanced: %w", ErrUnsupported))
}

// End closes the pass. Calling End more than once is a no-op.
func (p *RenderPass) End() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PassStateEnded {
		return nil
	}
	p.state = PassStateEnded
	return p.rec.end(&EndRenderPassCommand{})
}
