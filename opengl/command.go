package opengl

import (
	"encoding/binary"
	"math"

	"github.com/gogpu/gputypes"
)

// CommandType identifies a record in a command buffer arena.
// Each record is one tag byte followed by a fixed-size payload.
type CommandType uint8

const (
	// CmdNone terminates the arena.
	CmdNone CommandType = iota

	// Render pass commands
	CmdStartRenderPass
	CmdEndRenderPass
	CmdSetPipeline
	CmdSetViewport
	CmdSetScissor
	CmdSetBlendConstant
	CmdSetBuffer
	CmdSetSampler
	CmdSetTexture
	CmdSetMesh
	CmdDraw
	CmdDrawIndexed

	// Blit pass commands
	CmdStartBlitPass
	CmdEndBlitPass
	CmdCopyTexture
	CmdFillBuffer
	CmdGenerateMipmaps
	CmdCopyBuffer
	CmdCopyBufferToTexture1D
	CmdCopyBufferToTexture2D

	cmdCount
)

var commandTypeNames = [...]string{
	CmdNone:                  "None",
	CmdStartRenderPass:       "StartRenderPass",
	CmdEndRenderPass:         "EndRenderPass",
	CmdSetPipeline:           "SetPipeline",
	CmdSetViewport:           "SetViewport",
	CmdSetScissor:            "SetScissor",
	CmdSetBlendConstant:      "SetBlendConstant",
	CmdSetBuffer:             "SetBuffer",
	CmdSetSampler:            "SetSampler",
	CmdSetTexture:            "SetTexture",
	CmdSetMesh:               "SetMesh",
	CmdDraw:                  "Draw",
	CmdDrawIndexed:           "DrawIndexed",
	CmdStartBlitPass:         "StartBlitPass",
	CmdEndBlitPass:           "EndBlitPass",
	CmdCopyTexture:           "CopyTexture",
	CmdFillBuffer:            "FillBuffer",
	CmdGenerateMipmaps:       "GenerateMipmaps",
	CmdCopyBuffer:            "CopyBuffer",
	CmdCopyBufferToTexture1D: "CopyBufferToTexture1D",
	CmdCopyBufferToTexture2D: "CopyBufferToTexture2D",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) && commandTypeNames[c] != "" {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// commandSizes is the payload size of each record, excluding the tag.
var commandSizes = [cmdCount]int{
	CmdNone:                  0,
	CmdStartRenderPass:       16 + MaxColorAttachments*21 + 9 + 9,
	CmdEndRenderPass:         0,
	CmdSetPipeline:           4 + pipelineStateSize,
	CmdSetViewport:           16,
	CmdSetScissor:            16,
	CmdSetBlendConstant:      16,
	CmdSetBuffer:             24,
	CmdSetSampler:            8,
	CmdSetTexture:            8,
	CmdSetMesh:               16,
	CmdDraw:                  12,
	CmdDrawIndexed:           24,
	CmdStartBlitPass:         4,
	CmdEndBlitPass:           0,
	CmdCopyTexture:           60,
	CmdFillBuffer:            21,
	CmdGenerateMipmaps:       4,
	CmdCopyBuffer:            32,
	CmdCopyBufferToTexture1D: 36,
	CmdCopyBufferToTexture2D: 52,
}

// labeled reports whether a record's payload starts with a label index.
func (c CommandType) labeled() bool {
	return c == CmdStartRenderPass || c == CmdSetPipeline || c == CmdStartBlitPass
}

// Command is one decoded arena record.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType

	encode(w *writer)
	decode(r *reader)
}

// newCommand returns an empty command for tag, or nil.
func newCommand(tag CommandType) Command {
	switch tag {
	case CmdStartRenderPass:
		return &StartRenderPassCommand{}
	case CmdEndRenderPass:
		return &EndRenderPassCommand{}
	case CmdSetPipeline:
		return &SetPipelineCommand{}
	case CmdSetViewport:
		return &SetViewportCommand{}
	case CmdSetScissor:
		return &SetScissorCommand{}
	case CmdSetBlendConstant:
		return &SetBlendConstantCommand{}
	case CmdSetBuffer:
		return &SetBufferCommand{}
	case CmdSetSampler:
		return &SetSamplerCommand{}
	case CmdSetTexture:
		return &SetTextureCommand{}
	case CmdSetMesh:
		return &SetMeshCommand{}
	case CmdDraw:
		return &DrawCommand{}
	case CmdDrawIndexed:
		return &DrawIndexedCommand{}
	case CmdStartBlitPass:
		return &StartBlitPassCommand{}
	case CmdEndBlitPass:
		return &EndBlitPassCommand{}
	case CmdCopyTexture:
		return &CopyTextureCommand{}
	case CmdFillBuffer:
		return &FillBufferCommand{}
	case CmdGenerateMipmaps:
		return &GenerateMipmapsCommand{}
	case CmdCopyBuffer:
		return &CopyBufferCommand{}
	case CmdCopyBufferToTexture1D:
		return &CopyBufferToTextureCommand{Dimensions: 1}
	case CmdCopyBufferToTexture2D:
		return &CopyBufferToTextureCommand{Dimensions: 2}
	}
	return nil
}

// --------------------------------------------------------------------------
// Payload codec
// --------------------------------------------------------------------------

// writer fills a payload in place. Labels are interned into the owning
// command buffer's side table and stored as indices.
type writer struct {
	b      []byte
	n      int
	intern func(string) uint32
}

func (w *writer) u8(v uint8) {
	w.b[w.n] = v
	w.n++
}

func (w *writer) boolean(v bool) {
	if v {
		w.u8(1)
	} else {
		w.u8(0)
	}
}

func (w *writer) u32(v uint32) {
	binary.LittleEndian.PutUint32(w.b[w.n:], v)
	w.n += 4
}

func (w *writer) i32(v int32)   { w.u32(uint32(v)) }
func (w *writer) f32(v float32) { w.u32(math.Float32bits(v)) }

func (w *writer) u64(v uint64) {
	binary.LittleEndian.PutUint64(w.b[w.n:], v)
	w.n += 8
}

func (w *writer) label(s string) {
	var idx uint32
	if s != "" && w.intern != nil {
		idx = w.intern(s)
	}
	w.u32(idx)
}

type reader struct {
	b      []byte
	n      int
	lookup func(uint32) string
}

func (r *reader) u8() uint8 {
	v := r.b[r.n]
	r.n++
	return v
}

func (r *reader) boolean() bool { return r.u8() != 0 }

func (r *reader) u32() uint32 {
	v := binary.LittleEndian.Uint32(r.b[r.n:])
	r.n += 4
	return v
}

func (r *reader) i32() int32   { return int32(r.u32()) }
func (r *reader) f32() float32 { return math.Float32frombits(r.u32()) }

func (r *reader) u64() uint64 {
	v := binary.LittleEndian.Uint64(r.b[r.n:])
	r.n += 8
	return v
}

func (r *reader) label() string {
	idx := r.u32()
	if idx == 0 || r.lookup == nil {
		return ""
	}
	return r.lookup(idx)
}

// --------------------------------------------------------------------------
// Render pass commands
// --------------------------------------------------------------------------

// ColorAttachmentCommand is one color slot of a render pass start.
type ColorAttachmentCommand struct {
	Texture uint32
	Load    LoadAction
	Clear   [4]float32
}

// StartRenderPassCommand creates the pass framebuffer and runs the load
// actions.
type StartRenderPassCommand struct {
	Label string
	// End is the arena offset of the matching EndRenderPass record. It is
	// patched when the pass ends.
	End uint32
	// Height is the render target height used to flip viewport and
	// scissor rectangles.
	Height     int32
	ColorCount uint32
	Colors     [MaxColorAttachments]ColorAttachmentCommand

	Depth      uint32
	DepthLoad  LoadAction
	DepthClear float32

	Stencil      uint32
	StencilLoad  LoadAction
	StencilClear uint32
}

// Type implements Command.
func (StartRenderPassCommand) Type() CommandType { return CmdStartRenderPass }

func (c *StartRenderPassCommand) encode(w *writer) {
	w.label(c.Label)
	w.u32(c.End)
	w.i32(c.Height)
	w.u32(c.ColorCount)
	for i := range c.Colors {
		a := &c.Colors[i]
		w.u32(a.Texture)
		w.u8(uint8(a.Load))
		for _, v := range a.Clear {
			w.f32(v)
		}
	}
	w.u32(c.Depth)
	w.u8(uint8(c.DepthLoad))
	w.f32(c.DepthClear)
	w.u32(c.Stencil)
	w.u8(uint8(c.StencilLoad))
	w.u32(c.StencilClear)
}

func (c *StartRenderPassCommand) decode(r *reader) {
	c.Label = r.label()
	c.End = r.u32()
	c.Height = r.i32()
	c.ColorCount = r.u32()
	for i := range c.Colors {
		a := &c.Colors[i]
		a.Texture = r.u32()
		a.Load = LoadAction(r.u8())
		for j := range a.Clear {
			a.Clear[j] = r.f32()
		}
	}
	c.Depth = r.u32()
	c.DepthLoad = LoadAction(r.u8())
	c.DepthClear = r.f32()
	c.Stencil = r.u32()
	c.StencilLoad = LoadAction(r.u8())
	c.StencilClear = r.u32()
}

// endOffset is the payload position of StartRenderPassCommand.End.
const endOffset = 4

// EndRenderPassCommand releases the pass framebuffer.
type EndRenderPassCommand struct{}

// Type implements Command.
func (EndRenderPassCommand) Type() CommandType { return CmdEndRenderPass }

func (*EndRenderPassCommand) encode(*writer) {}
func (*EndRenderPassCommand) decode(*reader) {}

// SetPipelineCommand carries every piece of global state a pipeline bind
// writes.
type SetPipelineCommand struct {
	Label string
	state pipelineState
}

// Type implements Command.
func (SetPipelineCommand) Type() CommandType { return CmdSetPipeline }

// VertexArray returns the vertex array object the command binds.
func (c *SetPipelineCommand) VertexArray() uint32 { return c.state.vertexArray }

// Program returns the program pipeline the command binds.
func (c *SetPipelineCommand) Program() uint32 { return c.state.program }

func (c *SetPipelineCommand) encode(w *writer) {
	w.label(c.Label)
	c.state.encode(w)
}

func (c *SetPipelineCommand) decode(r *reader) {
	c.Label = r.label()
	c.state.decode(r)
}

const pipelineStateSize = 8 + MaxColorAttachments*26 + 1 + 4 + 12 + 2*28 + 4 + 1 + 4 + 4 + 4 + 4

func (s *pipelineState) encode(w *writer) {
	w.u32(s.vertexArray)
	w.u32(s.program)
	for i := range s.blend {
		b := &s.blend[i]
		w.boolean(b.enabled)
		w.u32(b.eqRGB)
		w.u32(b.eqAlpha)
		w.u32(b.srcRGB)
		w.u32(b.dstRGB)
		w.u32(b.srcAlpha)
		w.u32(b.dstAlpha)
		w.u8(uint8(b.mask))
	}
	w.boolean(s.depthWrite)
	w.u32(s.depthFunc)
	for _, v := range s.bias {
		w.f32(v)
	}
	for _, f := range [...]*stencilFace{&s.front, &s.back} {
		w.u32(f.fn)
		w.i32(f.ref)
		w.u32(f.readMask)
		w.u32(f.writeMask)
		w.u32(f.fail)
		w.u32(f.depthFail)
		w.u32(f.pass)
	}
	w.u32(s.polygonMode)
	w.boolean(s.cull)
	w.u32(s.cullFace)
	w.u32(s.frontFace)
	w.u32(s.primitive)
	w.u32(s.stride)
}

func (s *pipelineState) decode(r *reader) {
	s.vertexArray = r.u32()
	s.program = r.u32()
	for i := range s.blend {
		b := &s.blend[i]
		b.enabled = r.boolean()
		b.eqRGB = r.u32()
		b.eqAlpha = r.u32()
		b.srcRGB = r.u32()
		b.dstRGB = r.u32()
		b.srcAlpha = r.u32()
		b.dstAlpha = r.u32()
		b.mask = gputypes.ColorWriteMask(r.u8())
	}
	s.depthWrite = r.boolean()
	s.depthFunc = r.u32()
	for i := range s.bias {
		s.bias[i] = r.f32()
	}
	for _, f := range [...]*stencilFace{&s.front, &s.back} {
		f.fn = r.u32()
		f.ref = r.i32()
		f.readMask = r.u32()
		f.writeMask = r.u32()
		f.fail = r.u32()
		f.depthFail = r.u32()
		f.pass = r.u32()
	}
	s.polygonMode = r.u32()
	s.cull = r.boolean()
	s.cullFace = r.u32()
	s.frontFace = r.u32()
	s.primitive = r.u32()
	s.stride = r.u32()
}

// rect is the payload shared by viewport and scissor records.
type rect struct{ X, Y, Width, Height int32 }

func (c *rect) encode(w *writer) {
	w.i32(c.X)
	w.i32(c.Y)
	w.i32(c.Width)
	w.i32(c.Height)
}

func (c *rect) decode(r *reader) {
	c.X, c.Y, c.Width, c.Height = r.i32(), r.i32(), r.i32(), r.i32()
}

// SetViewportCommand sets the viewport. Y is already flipped to the
// bottom-left origin.
type SetViewportCommand struct{ rect }

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// SetScissorCommand sets the scissor box. Y is already flipped.
type SetScissorCommand struct{ rect }

// Type implements Command.
func (SetScissorCommand) Type() CommandType { return CmdSetScissor }

// SetBlendConstantCommand sets the constant blend color.
type SetBlendConstantCommand struct{ Color [4]float32 }

// Type implements Command.
func (SetBlendConstantCommand) Type() CommandType { return CmdSetBlendConstant }

func (c *SetBlendConstantCommand) encode(w *writer) {
	for _, v := range c.Color {
		w.f32(v)
	}
}

func (c *SetBlendConstantCommand) decode(r *reader) {
	for i := range c.Color {
		c.Color[i] = r.f32()
	}
}

// SetBufferCommand binds a storage buffer range to a slot.
type SetBufferCommand struct {
	Slot   uint32
	Buffer uint32
	Offset uint64
	Size   uint64
}

// Type implements Command.
func (SetBufferCommand) Type() CommandType { return CmdSetBuffer }

func (c *SetBufferCommand) encode(w *writer) {
	w.u32(c.Slot)
	w.u32(c.Buffer)
	w.u64(c.Offset)
	w.u64(c.Size)
}

func (c *SetBufferCommand) decode(r *reader) {
	c.Slot, c.Buffer = r.u32(), r.u32()
	c.Offset, c.Size = r.u64(), r.u64()
}

// SetSamplerCommand binds a sampler to a texture unit.
type SetSamplerCommand struct{ Unit, Sampler uint32 }

// Type implements Command.
func (SetSamplerCommand) Type() CommandType { return CmdSetSampler }

func (c *SetSamplerCommand) encode(w *writer) { w.u32(c.Unit); w.u32(c.Sampler) }
func (c *SetSamplerCommand) decode(r *reader) { c.Unit, c.Sampler = r.u32(), r.u32() }

// SetTextureCommand binds a texture to a texture unit.
type SetTextureCommand struct{ Unit, Texture uint32 }

// Type implements Command.
func (SetTextureCommand) Type() CommandType { return CmdSetTexture }

func (c *SetTextureCommand) encode(w *writer) { w.u32(c.Unit); w.u32(c.Texture) }
func (c *SetTextureCommand) decode(r *reader) { c.Unit, c.Texture = r.u32(), r.u32() }

// SetMeshCommand binds the vertex buffer read by the pipeline's
// attributes.
type SetMeshCommand struct {
	Buffer uint32
	Offset uint64
	Stride uint32
}

// Type implements Command.
func (SetMeshCommand) Type() CommandType { return CmdSetMesh }

func (c *SetMeshCommand) encode(w *writer) {
	w.u32(c.Buffer)
	w.u64(c.Offset)
	w.u32(c.Stride)
}

func (c *SetMeshCommand) decode(r *reader) {
	c.Buffer, c.Offset, c.Stride = r.u32(), r.u64(), r.u32()
}

// DrawCommand draws non-indexed primitives.
type DrawCommand struct {
	Mode  uint32
	First uint32
	Count uint32
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

func (c *DrawCommand) encode(w *writer) { w.u32(c.Mode); w.u32(c.First); w.u32(c.Count) }
func (c *DrawCommand) decode(r *reader) { c.Mode, c.First, c.Count = r.u32(), r.u32(), r.u32() }

// DrawIndexedCommand draws indexed primitives.
type DrawIndexedCommand struct {
	IndexBuffer uint32
	Mode        uint32
	IndexType   uint32
	Count       uint32
	// Offset is the byte offset of the first index.
	Offset uint64
}

// Type implements Command.
func (DrawIndexedCommand) Type() CommandType { return CmdDrawIndexed }

func (c *DrawIndexedCommand) encode(w *writer) {
	w.u32(c.IndexBuffer)
	w.u32(c.Mode)
	w.u32(c.IndexType)
	w.u32(c.Count)
	w.u64(c.Offset)
}

func (c *DrawIndexedCommand) decode(r *reader) {
	c.IndexBuffer, c.Mode, c.IndexType, c.Count = r.u32(), r.u32(), r.u32(), r.u32()
	c.Offset = r.u64()
}

// --------------------------------------------------------------------------
// Blit pass commands
// --------------------------------------------------------------------------

// StartBlitPassCommand opens a blit pass debug group.
type StartBlitPassCommand struct{ Label string }

// Type implements Command.
func (StartBlitPassCommand) Type() CommandType { return CmdStartBlitPass }

func (c *StartBlitPassCommand) encode(w *writer) { w.label(c.Label) }
func (c *StartBlitPassCommand) decode(r *reader) { c.Label = r.label() }

// EndBlitPassCommand closes a blit pass.
type EndBlitPassCommand struct{}

// Type implements Command.
func (EndBlitPassCommand) Type() CommandType { return CmdEndBlitPass }

func (*EndBlitPassCommand) encode(*writer) {}
func (*EndBlitPassCommand) decode(*reader) {}

// TextureRegion addresses one mip level of a texture.
type TextureRegion struct {
	Texture uint32
	Target  uint32
	Level   int32
	X, Y, Z int32
}

func (t *TextureRegion) encode(w *writer) {
	w.u32(t.Texture)
	w.u32(t.Target)
	w.i32(t.Level)
	w.i32(t.X)
	w.i32(t.Y)
	w.i32(t.Z)
}

func (t *TextureRegion) decode(r *reader) {
	t.Texture, t.Target = r.u32(), r.u32()
	t.Level, t.X, t.Y, t.Z = r.i32(), r.i32(), r.i32(), r.i32()
}

// CopyTextureCommand copies texels between two textures.
type CopyTextureCommand struct {
	Src, Dst             TextureRegion
	Width, Height, Depth int32
}

// Type implements Command.
func (CopyTextureCommand) Type() CommandType { return CmdCopyTexture }

func (c *CopyTextureCommand) encode(w *writer) {
	c.Src.encode(w)
	c.Dst.encode(w)
	w.i32(c.Width)
	w.i32(c.Height)
	w.i32(c.Depth)
}

func (c *CopyTextureCommand) decode(r *reader) {
	c.Src.decode(r)
	c.Dst.decode(r)
	c.Width, c.Height, c.Depth = r.i32(), r.i32(), r.i32()
}

// FillBufferCommand sets a byte range of a buffer to one value.
type FillBufferCommand struct {
	Buffer uint32
	Offset uint64
	Size   uint64
	Value  byte
}

// Type implements Command.
func (FillBufferCommand) Type() CommandType { return CmdFillBuffer }

func (c *FillBufferCommand) encode(w *writer) {
	w.u32(c.Buffer)
	w.u64(c.Offset)
	w.u64(c.Size)
	w.u8(c.Value)
}

func (c *FillBufferCommand) decode(r *reader) {
	c.Buffer, c.Offset, c.Size, c.Value = r.u32(), r.u64(), r.u64(), r.u8()
}

// GenerateMipmapsCommand fills mip levels 1..n from level 0.
type GenerateMipmapsCommand struct{ Texture uint32 }

// Type implements Command.
func (GenerateMipmapsCommand) Type() CommandType { return CmdGenerateMipmaps }

func (c *GenerateMipmapsCommand) encode(w *writer) { w.u32(c.Texture) }
func (c *GenerateMipmapsCommand) decode(r *reader) { c.Texture = r.u32() }

// CopyBufferCommand copies bytes between two buffers.
type CopyBufferCommand struct {
	Src, Dst             uint32
	SrcOffset, DstOffset uint64
	Size                 uint64
}

// Type implements Command.
func (CopyBufferCommand) Type() CommandType { return CmdCopyBuffer }

func (c *CopyBufferCommand) encode(w *writer) {
	w.u32(c.Src)
	w.u32(c.Dst)
	w.u64(c.SrcOffset)
	w.u64(c.DstOffset)
	w.u64(c.Size)
}

func (c *CopyBufferCommand) decode(r *reader) {
	c.Src, c.Dst = r.u32(), r.u32()
	c.SrcOffset, c.DstOffset, c.Size = r.u64(), r.u64(), r.u64()
}

// CopyBufferToTextureCommand uploads texels from a buffer through the
// pixel unpack binding.
type CopyBufferToTextureCommand struct {
	// Dimensions is 1 or 2 and selects the record type.
	Dimensions int

	Buffer uint32
	Offset uint64
	// Pitch is the byte distance between rows and RowBytes the size of
	// one tightly packed row. Both are unused for 1D.
	Pitch    uint32
	RowBytes uint32

	Texture       uint32
	Level         int32
	X, Y          int32
	Width, Height int32
	Format        uint32
	DataType      uint32
}

// Type implements Command.
func (c CopyBufferToTextureCommand) Type() CommandType {
	if c.Dimensions == 1 {
		return CmdCopyBufferToTexture1D
	}
	return CmdCopyBufferToTexture2D
}

func (c *CopyBufferToTextureCommand) encode(w *writer) {
	w.u32(c.Buffer)
	w.u64(c.Offset)
	if c.Dimensions != 1 {
		w.u32(c.Pitch)
		w.u32(c.RowBytes)
	}
	w.u32(c.Texture)
	w.i32(c.Level)
	w.i32(c.X)
	if c.Dimensions != 1 {
		w.i32(c.Y)
	}
	w.i32(c.Width)
	if c.Dimensions != 1 {
		w.i32(c.Height)
	}
	w.u32(c.Format)
	w.u32(c.DataType)
}

func (c *CopyBufferToTextureCommand) decode(r *reader) {
	c.Buffer = r.u32()
	c.Offset = r.u64()
	if c.Dimensions != 1 {
		c.Pitch = r.u32()
		c.RowBytes = r.u32()
	}
	c.Texture = r.u32()
	c.Level = r.i32()
	c.X = r.i32()
	if c.Dimensions != 1 {
		c.Y = r.i32()
	}
	c.Width = r.i32()
	if c.Dimensions != 1 {
		c.Height = r.i32()
	}
	c.Format = r.u32()
	c.DataType = r.u32()
}
