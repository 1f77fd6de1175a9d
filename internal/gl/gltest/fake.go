// Package gltest provides a recording fake of gl.Functions.
//
// The fake logs every call in order, hands out object names from a
// single counter, and tracks the slice of GL state the backend touches:
// capabilities, per-draw-buffer blend and color mask, depth, stencil,
// rasterizer state, framebuffer attachments and buffer contents. Tests
// use it both as a call-sequence oracle and as a state probe.
package gltest

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/gogpu/glgpu/internal/gl"
)

// Kind classifies a live object name.
type Kind uint8

const (
	KindBuffer Kind = iota
	KindTexture
	KindFramebuffer
	KindShader
	KindProgram
	KindProgramPipeline
	KindVertexArray
	KindSampler
)

var kindNames = [...]string{
	KindBuffer:          "Buffer",
	KindTexture:         "Texture",
	KindFramebuffer:     "Framebuffer",
	KindShader:          "Shader",
	KindProgram:         "Program",
	KindProgramPipeline: "ProgramPipeline",
	KindVertexArray:     "VertexArray",
	KindSampler:         "Sampler",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Call is one recorded GL call.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	parts := make([]string, len(c.Args))
	for i, a := range c.Args {
		parts[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(parts, ", ") + ")"
}

// Texture is the fake's record of a texture object.
type Texture struct {
	Target         uint32
	Levels         int32
	InternalFormat uint32
	Width          int32
	Height         int32
	Depth          int32
	Params         map[uint32]int32
	Uploads        []Upload
}

// Upload is one sub-image write sourced from the pixel unpack buffer.
// Data holds the texels read with a tightly packed row length.
type Upload struct {
	Level         int32
	X, Y          int32
	Width, Height int32
	Data          []byte
}

// Framebuffer is the fake's record of a framebuffer object.
type Framebuffer struct {
	Attachments map[uint32]uint32
	DrawBuffers []uint32
	ReadBuffer  uint32
}

// BlendState is the per-draw-buffer blend state.
type BlendState struct {
	Enabled   bool
	EqRGB     uint32
	EqAlpha   uint32
	SrcRGB    uint32
	DstRGB    uint32
	SrcAlpha  uint32
	DstAlpha  uint32
	ColorMask [4]bool
}

// StencilFace is the stencil state for one face.
type StencilFace struct {
	Func      uint32
	Ref       int32
	ReadMask  uint32
	WriteMask uint32
	Fail      uint32
	DepthFail uint32
	Pass      uint32
}

// PipelineState is the comparable snapshot of every piece of global
// state a pipeline bind overwrites.
type PipelineState struct {
	Blend          [MaxDrawBuffers]BlendState
	DepthMask      bool
	DepthFunc      uint32
	PolygonOffset  [3]float32
	Front          StencilFace
	Back           StencilFace
	PolygonMode    uint32
	CullEnabled    bool
	CullFace       uint32
	FrontFace      uint32
	VertexArray    uint32
	Pipeline       uint32
	StencilEnabled bool
}

// MaxDrawBuffers is the number of indexed blend slots the fake tracks.
const MaxDrawBuffers = 8

// Fake implements gl.Functions in memory.
type Fake struct {
	Calls []Call

	// Driver identity and limits reported through the query calls.
	Vendor           string
	Renderer         string
	Version          string
	GLSLVersion      string
	Major, Minor     int32
	MaxAnisotropy    float32
	MaxVertexAttribs int32
	MaxTextureSize   int32
	Max3DTextureSize int32
	MaxArrayLayers   int32

	// Failure knobs.
	FailCreate        map[string]bool // method name -> return 0
	CompileError      string          // non-empty fails every compile with this log
	LinkError         string
	ValidateError     string
	InfoLog           string // log reported on success
	FramebufferStatus uint32 // overrides the computed status when non-zero
	Missing           []string

	debug gl.DebugFunc
	next  uint32
	live  map[uint32]Kind

	buffers      map[uint32][]byte
	mapped       map[uint32]bool
	textures     map[uint32]*Texture
	framebuffers map[uint32]*Framebuffer
	shaders      map[uint32]uint32 // name -> stage
	compiled     map[uint32]bool
	labels       map[uint32]string

	caps       map[uint32]bool
	state      PipelineState
	bound      map[uint32]uint32 // buffer target -> name
	drawFBO    uint32
	readFBO    uint32
	viewport   [4]int32
	scissor    [4]int32
	groups     []string
	samplers   map[uint32]map[uint32]any
	unitTex    map[uint32]uint32
	unitSamp   map[uint32]uint32
	ssbo       map[uint32][3]int
	vertexBuf  [3]int
	blendColor [4]float32
}

// New returns a fake reporting a GL 4.6 core driver.
func New() *Fake {
	return &Fake{
		Vendor:           "gltest",
		Renderer:         "gltest fake renderer",
		Version:          "4.6.0 gltest",
		GLSLVersion:      "4.60",
		Major:            4,
		Minor:            6,
		MaxAnisotropy:    16,
		MaxVertexAttribs: 16,
		MaxTextureSize:   16384,
		Max3DTextureSize: 2048,
		MaxArrayLayers:   2048,
		FailCreate:       make(map[string]bool),
		live:             make(map[uint32]Kind),
		buffers:          make(map[uint32][]byte),
		mapped:           make(map[uint32]bool),
		textures:         make(map[uint32]*Texture),
		framebuffers:     make(map[uint32]*Framebuffer),
		shaders:          make(map[uint32]uint32),
		compiled:         make(map[uint32]bool),
		labels:           make(map[uint32]string),
		caps:             make(map[uint32]bool),
		bound:            make(map[uint32]uint32),
		samplers:         make(map[uint32]map[uint32]any),
		unitTex:          make(map[uint32]uint32),
		unitSamp:         make(map[uint32]uint32),
		ssbo:             make(map[uint32][3]int),
	}
}

var _ gl.Functions = (*Fake)(nil)

// ProcAddress resolves every symbol except those listed in Missing.
func (f *Fake) ProcAddress(name string) unsafe.Pointer {
	for _, m := range f.Missing {
		if m == name {
			return nil
		}
	}
	return unsafe.Pointer(f)
}

// Load is a drop-in for gl.Load that runs the real proc table against
// ProcAddress and returns the fake itself.
func (f *Fake) Load(getProcAddr gl.ProcAddressFunc) (gl.Functions, error) {
	if _, err := gl.Resolve(getProcAddr); err != nil {
		return nil, err
	}
	return f, nil
}

func (f *Fake) record(name string, args ...any) {
	f.Calls = append(f.Calls, Call{Name: name, Args: args})
}

func (f *Fake) alloc(method string, k Kind) uint32 {
	if f.FailCreate[method] {
		return 0
	}
	f.next++
	f.live[f.next] = k
	return f.next
}

func (f *Fake) release(name uint32) {
	delete(f.live, name)
	delete(f.labels, name)
}

// Reset clears the call log. Object and state tracking is kept.
func (f *Fake) Reset() { f.Calls = f.Calls[:0] }

// Names returns the recorded call names in order.
func (f *Fake) Names() []string {
	out := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		out[i] = c.Name
	}
	return out
}

// Find returns every recorded call with the given name.
func (f *Fake) Find(name string) []Call {
	var out []Call
	for _, c := range f.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count returns how many times name was called.
func (f *Fake) Count(name string) int { return len(f.Find(name)) }

// Live returns the number of live objects of kind k.
func (f *Fake) Live(k Kind) int {
	n := 0
	for _, kind := range f.live {
		if kind == k {
			n++
		}
	}
	return n
}

// LiveTotal returns the number of live objects of any kind.
func (f *Fake) LiveTotal() int { return len(f.live) }

// IsLive reports whether name refers to a live object.
func (f *Fake) IsLive(name uint32) bool {
	_, ok := f.live[name]
	return ok
}

// Label returns the debug label attached to name.
func (f *Fake) Label(name uint32) string { return f.labels[name] }

// BufferData returns the backing store of buffer name.
func (f *Fake) BufferData(name uint32) []byte { return f.buffers[name] }

// TextureInfo returns the record of texture name, or nil.
func (f *Fake) TextureInfo(name uint32) *Texture { return f.textures[name] }

// FramebufferInfo returns the record of framebuffer name, or nil.
func (f *Fake) FramebufferInfo(name uint32) *Framebuffer { return f.framebuffers[name] }

// Enabled reports whether a non-indexed capability is enabled.
func (f *Fake) Enabled(capability uint32) bool { return f.caps[capability] }

// State returns a snapshot of the pipeline-controlled global state.
func (f *Fake) State() PipelineState {
	s := f.state
	s.CullEnabled = f.caps[gl.CULL_FACE]
	s.StencilEnabled = f.caps[gl.STENCIL_TEST]
	return s
}

// ViewportRect returns the last viewport rectangle.
func (f *Fake) ViewportRect() [4]int32 { return f.viewport }

// ScissorRect returns the last scissor rectangle.
func (f *Fake) ScissorRect() [4]int32 { return f.scissor }

// DrawFramebuffer returns the framebuffer bound to DRAW_FRAMEBUFFER.
func (f *Fake) DrawFramebuffer() uint32 { return f.drawFBO }

// DebugGroups returns the open debug groups, outermost first.
func (f *Fake) DebugGroups() []string { return append([]string(nil), f.groups...) }

// TextureUnit returns the texture bound to unit.
func (f *Fake) TextureUnit(unit uint32) uint32 { return f.unitTex[unit] }

// SamplerUnit returns the sampler bound to unit.
func (f *Fake) SamplerUnit(unit uint32) uint32 { return f.unitSamp[unit] }

// SamplerParam returns a sampler parameter set through SamplerParameter*.
func (f *Fake) SamplerParam(sampler, pname uint32) any { return f.samplers[sampler][pname] }

// StorageBinding returns {buffer, offset, size} bound at an SSBO index.
func (f *Fake) StorageBinding(index uint32) [3]int { return f.ssbo[index] }

// VertexBinding returns {buffer, offset, stride} of binding point 0.
func (f *Fake) VertexBinding() [3]int { return f.vertexBuf }

// BlendConstant returns the last glBlendColor value.
func (f *Fake) BlendConstant() [4]float32 { return f.blendColor }

// Emit delivers a debug message to the installed callback, if any.
func (f *Fake) Emit(source, typ, id, severity uint32, message string) {
	if f.debug != nil {
		f.debug(source, typ, id, severity, message)
	}
}
