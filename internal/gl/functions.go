package gl

import "unsafe"

// DebugFunc receives messages from the driver's KHR_debug output.
type DebugFunc func(source, typ, id, severity uint32, message string)

// Functions is the set of GL 4.6 core entry points the backend drives.
//
// Object creation uses the Direct State Access forms and returns a
// single name. Slices stand in for (count, pointer) pairs.
//
// Implementations are not safe for concurrent use: GL calls are only
// valid on the thread that made the context current.
type Functions interface {
	GetError() uint32
	GetString(name uint32) string
	GetIntegerv(pname uint32, data *int32)
	GetFloatv(pname uint32, data *float32)
	Enable(capability uint32)
	Disable(capability uint32)
	Enablei(capability, index uint32)
	Disablei(capability, index uint32)
	ClipControl(origin, depth uint32)

	DebugMessageCallback(fn DebugFunc)
	DebugMessageControl(source, typ, severity uint32, enabled bool)
	PushDebugGroup(source, id uint32, message string)
	PopDebugGroup()
	ObjectLabel(identifier, name uint32, label string)

	CreateBuffers() uint32
	DeleteBuffers(buffer uint32)
	NamedBufferStorage(buffer uint32, size int, data unsafe.Pointer, flags uint32)
	MapNamedBufferRange(buffer uint32, offset, length int, access uint32) unsafe.Pointer
	UnmapNamedBuffer(buffer uint32) bool
	ClearNamedBufferSubData(buffer, internalFormat uint32, offset, size int, format, typ uint32, data unsafe.Pointer)
	CopyNamedBufferSubData(readBuffer, writeBuffer uint32, readOffset, writeOffset, size int)
	BindBuffer(target, buffer uint32)
	BindBufferRange(target, index, buffer uint32, offset, size int)

	CreateTextures(target uint32) uint32
	DeleteTextures(texture uint32)
	TextureParameteri(texture, pname uint32, param int32)
	TextureStorage1D(texture uint32, levels int32, internalFormat uint32, width int32)
	TextureStorage2D(texture uint32, levels int32, internalFormat uint32, width, height int32)
	TextureStorage3D(texture uint32, levels int32, internalFormat uint32, width, height, depth int32)
	TextureSubImage1D(texture uint32, level, x, width int32, format, typ uint32, offset uintptr)
	TextureSubImage2D(texture uint32, level, x, y, width, height int32, format, typ uint32, offset uintptr)
	GenerateTextureMipmap(texture uint32)
	BindTextureUnit(unit, texture uint32)
	CopyImageSubData(src, srcTarget uint32, srcLevel, srcX, srcY, srcZ int32,
		dst, dstTarget uint32, dstLevel, dstX, dstY, dstZ int32, width, height, depth int32)

	CreateFramebuffers() uint32
	DeleteFramebuffers(framebuffer uint32)
	BindFramebuffer(target, framebuffer uint32)
	NamedFramebufferTexture(framebuffer, attachment, texture uint32, level int32)
	NamedFramebufferDrawBuffers(framebuffer uint32, buffers []uint32)
	NamedFramebufferReadBuffer(framebuffer, buffer uint32)
	ClearNamedFramebufferfv(framebuffer, buffer uint32, drawBuffer int32, value []float32)
	ClearNamedFramebufferiv(framebuffer, buffer uint32, drawBuffer int32, value []int32)
	InvalidateNamedFramebufferData(framebuffer uint32, attachments []uint32)
	CheckNamedFramebufferStatus(framebuffer, target uint32) uint32
	BlitNamedFramebuffer(read, draw uint32, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32)

	CreateShader(typ uint32) uint32
	DeleteShader(shader uint32)
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32, params *int32)
	GetShaderInfoLog(shader uint32) string
	CreateProgram() uint32
	DeleteProgram(program uint32)
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	ProgramParameteri(program, pname uint32, value int32)
	LinkProgram(program uint32)
	ValidateProgram(program uint32)
	GetProgramiv(program, pname uint32, params *int32)
	GetProgramInfoLog(program uint32) string
	CreateProgramPipelines() uint32
	DeleteProgramPipelines(pipeline uint32)
	UseProgramStages(pipeline, stages, program uint32)
	ValidateProgramPipeline(pipeline uint32)
	GetProgramPipelineiv(pipeline, pname uint32, params *int32)
	GetProgramPipelineInfoLog(pipeline uint32) string
	BindProgramPipeline(pipeline uint32)

	CreateVertexArrays() uint32
	DeleteVertexArrays(array uint32)
	BindVertexArray(array uint32)
	EnableVertexArrayAttrib(array, index uint32)
	VertexArrayAttribFormat(array, index uint32, size int32, typ uint32, normalized bool, relativeOffset uint32)
	VertexArrayAttribIFormat(array, index uint32, size int32, typ uint32, relativeOffset uint32)
	VertexArrayAttribBinding(array, index, binding uint32)
	BindVertexBuffer(binding, buffer uint32, offset int, stride int32)

	CreateSamplers() uint32
	DeleteSamplers(sampler uint32)
	SamplerParameteri(sampler, pname uint32, param int32)
	SamplerParameterf(sampler, pname uint32, param float32)
	SamplerParameterfv(sampler, pname uint32, params []float32)
	BindSampler(unit, sampler uint32)

	BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32)
	BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32)
	BlendColor(r, g, b, a float32)
	ColorMaski(buf uint32, r, g, b, a bool)
	DepthMask(flag bool)
	DepthFunc(fn uint32)
	PolygonOffsetClamp(factor, units, clamp float32)
	StencilFuncSeparate(face, fn uint32, ref int32, mask uint32)
	StencilMaskSeparate(face, mask uint32)
	StencilOpSeparate(face, sfail, dpfail, dppass uint32)
	PolygonMode(face, mode uint32)
	CullFace(mode uint32)
	FrontFace(mode uint32)
	Viewport(x, y, width, height int32)
	Scissor(x, y, width, height int32)

	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, typ uint32, offset uintptr)
}
