package gltest

import (
	"unsafe"

	"github.com/gogpu/glgpu/internal/gl"
)

func (f *Fake) GetError() uint32 { return gl.NO_ERROR }

func (f *Fake) GetString(name uint32) string {
	f.record("glGetString", name)
	switch name {
	case gl.VENDOR:
		return f.Vendor
	case gl.RENDERER:
		return f.Renderer
	case gl.VERSION:
		return f.Version
	case gl.SHADING_LANGUAGE_VERSION:
		return f.GLSLVersion
	}
	return ""
}

func (f *Fake) GetIntegerv(pname uint32, data *int32) {
	f.record("glGetIntegerv", pname)
	switch pname {
	case gl.MAJOR_VERSION:
		*data = f.Major
	case gl.MINOR_VERSION:
		*data = f.Minor
	case gl.MAX_VERTEX_ATTRIBS:
		*data = f.MaxVertexAttribs
	case gl.MAX_TEXTURE_SIZE:
		*data = f.MaxTextureSize
	case gl.MAX_3D_TEXTURE_SIZE:
		*data = f.Max3DTextureSize
	case gl.MAX_ARRAY_TEXTURE_LAYERS:
		*data = f.MaxArrayLayers
	case gl.MAX_COLOR_ATTACHMENTS, gl.MAX_DRAW_BUFFERS:
		*data = MaxDrawBuffers
	}
}

func (f *Fake) GetFloatv(pname uint32, data *float32) {
	f.record("glGetFloatv", pname)
	if pname == gl.MAX_TEXTURE_MAX_ANISOTROPY {
		*data = f.MaxAnisotropy
	}
}

func (f *Fake) Enable(capability uint32) {
	f.record("glEnable", capability)
	f.caps[capability] = true
	if capability == gl.BLEND {
		for i := range f.state.Blend {
			f.state.Blend[i].Enabled = true
		}
	}
}

func (f *Fake) Disable(capability uint32) {
	f.record("glDisable", capability)
	f.caps[capability] = false
	if capability == gl.BLEND {
		for i := range f.state.Blend {
			f.state.Blend[i].Enabled = false
		}
	}
}

func (f *Fake) Enablei(capability, index uint32) {
	f.record("glEnablei", capability, index)
	if capability == gl.BLEND && index < MaxDrawBuffers {
		f.state.Blend[index].Enabled = true
	}
}

func (f *Fake) Disablei(capability, index uint32) {
	f.record("glDisablei", capability, index)
	if capability == gl.BLEND && index < MaxDrawBuffers {
		f.state.Blend[index].Enabled = false
	}
}

func (f *Fake) ClipControl(origin, depth uint32) { f.record("glClipControl", origin, depth) }

func (f *Fake) DebugMessageCallback(fn gl.DebugFunc) {
	f.record("glDebugMessageCallback", fn != nil)
	f.debug = fn
}

func (f *Fake) DebugMessageControl(source, typ, severity uint32, enabled bool) {
	f.record("glDebugMessageControl", source, typ, severity, enabled)
}

func (f *Fake) PushDebugGroup(source, id uint32, message string) {
	f.record("glPushDebugGroup", source, id, message)
	f.groups = append(f.groups, message)
}

func (f *Fake) PopDebugGroup() {
	f.record("glPopDebugGroup")
	if len(f.groups) > 0 {
		f.groups = f.groups[:len(f.groups)-1]
	}
}

func (f *Fake) ObjectLabel(identifier, name uint32, label string) {
	f.record("glObjectLabel", identifier, name, label)
	f.labels[name] = label
}

func (f *Fake) CreateBuffers() uint32 {
	name := f.alloc("CreateBuffers", KindBuffer)
	f.record("glCreateBuffers", name)
	return name
}

func (f *Fake) DeleteBuffers(buffer uint32) {
	f.record("glDeleteBuffers", buffer)
	delete(f.buffers, buffer)
	delete(f.mapped, buffer)
	f.release(buffer)
}

func (f *Fake) NamedBufferStorage(buffer uint32, size int, data unsafe.Pointer, flags uint32) {
	f.record("glNamedBufferStorage", buffer, size, flags)
	b := make([]byte, size)
	if data != nil {
		copy(b, unsafe.Slice((*byte)(data), size))
	}
	f.buffers[buffer] = b
}

func (f *Fake) MapNamedBufferRange(buffer uint32, offset, length int, access uint32) unsafe.Pointer {
	f.record("glMapNamedBufferRange", buffer, offset, length, access)
	b := f.buffers[buffer]
	if f.mapped[buffer] || offset < 0 || length <= 0 || offset+length > len(b) {
		return nil
	}
	f.mapped[buffer] = true
	return unsafe.Pointer(&b[offset])
}

func (f *Fake) UnmapNamedBuffer(buffer uint32) bool {
	f.record("glUnmapNamedBuffer", buffer)
	if !f.mapped[buffer] {
		return false
	}
	f.mapped[buffer] = false
	return true
}

func (f *Fake) ClearNamedBufferSubData(buffer, internalFormat uint32, offset, size int, format, typ uint32, data unsafe.Pointer) {
	var value byte
	if data != nil {
		value = *(*byte)(data)
	}
	f.record("glClearNamedBufferSubData", buffer, internalFormat, offset, size, format, typ, value)
	b := f.buffers[buffer]
	if offset < 0 || offset+size > len(b) {
		return
	}
	for i := offset; i < offset+size; i++ {
		b[i] = value
	}
}

func (f *Fake) CopyNamedBufferSubData(readBuffer, writeBuffer uint32, readOffset, writeOffset, size int) {
	f.record("glCopyNamedBufferSubData", readBuffer, writeBuffer, readOffset, writeOffset, size)
	src, dst := f.buffers[readBuffer], f.buffers[writeBuffer]
	if readOffset+size > len(src) || writeOffset+size > len(dst) {
		return
	}
	copy(dst[writeOffset:writeOffset+size], src[readOffset:readOffset+size])
}

func (f *Fake) BindBuffer(target, buffer uint32) {
	f.record("glBindBuffer", target, buffer)
	f.bound[target] = buffer
}

// BoundBuffer returns the buffer bound to target.
func (f *Fake) BoundBuffer(target uint32) uint32 { return f.bound[target] }

func (f *Fake) BindBufferRange(target, index, buffer uint32, offset, size int) {
	f.record("glBindBufferRange", target, index, buffer, offset, size)
	if target == gl.SHADER_STORAGE_BUFFER {
		f.ssbo[index] = [3]int{int(buffer), offset, size}
	}
}

func (f *Fake) CreateTextures(target uint32) uint32 {
	name := f.alloc("CreateTextures", KindTexture)
	f.record("glCreateTextures", target, name)
	if name != 0 {
		f.textures[name] = &Texture{Target: target, Params: make(map[uint32]int32)}
	}
	return name
}

func (f *Fake) DeleteTextures(texture uint32) {
	f.record("glDeleteTextures", texture)
	delete(f.textures, texture)
	f.release(texture)
}

func (f *Fake) TextureParameteri(texture, pname uint32, param int32) {
	f.record("glTextureParameteri", texture, pname, param)
	if t := f.textures[texture]; t != nil {
		t.Params[pname] = param
	}
}

func (f *Fake) storage(texture uint32, levels int32, internalFormat uint32, w, h, d int32) {
	if t := f.textures[texture]; t != nil {
		t.Levels, t.InternalFormat = levels, internalFormat
		t.Width, t.Height, t.Depth = w, h, d
	}
}

func (f *Fake) TextureStorage1D(texture uint32, levels int32, internalFormat uint32, width int32) {
	f.record("glTextureStorage1D", texture, levels, internalFormat, width)
	f.storage(texture, levels, internalFormat, width, 1, 1)
}

func (f *Fake) TextureStorage2D(texture uint32, levels int32, internalFormat uint32, width, height int32) {
	f.record("glTextureStorage2D", texture, levels, internalFormat, width, height)
	f.storage(texture, levels, internalFormat, width, height, 1)
}

func (f *Fake) TextureStorage3D(texture uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	f.record("glTextureStorage3D", texture, levels, internalFormat, width, height, depth)
	f.storage(texture, levels, internalFormat, width, height, depth)
}

func (f *Fake) TextureSubImage1D(texture uint32, level, x, width int32, format, typ uint32, offset uintptr) {
	f.record("glTextureSubImage1D", texture, level, x, width, format, typ, offset)
	f.upload(texture, Upload{Level: level, X: x, Width: width, Height: 1}, format, typ, offset)
}

func (f *Fake) TextureSubImage2D(texture uint32, level, x, y, width, height int32, format, typ uint32, offset uintptr) {
	f.record("glTextureSubImage2D", texture, level, x, y, width, height, format, typ, offset)
	f.upload(texture, Upload{Level: level, X: x, Y: y, Width: width, Height: height}, format, typ, offset)
}

// upload copies the texels of u out of the bound unpack buffer. Reads
// past the end of the buffer are dropped.
func (f *Fake) upload(texture uint32, u Upload, format, typ uint32, offset uintptr) {
	t := f.textures[texture]
	src := f.buffers[f.bound[gl.PIXEL_UNPACK_BUFFER]]
	if t == nil || src == nil {
		return
	}
	n := int(u.Width) * int(u.Height) * texelSize(format, typ)
	end := int(offset) + n
	if n <= 0 || end > len(src) {
		return
	}
	u.Data = append([]byte(nil), src[offset:end]...)
	t.Uploads = append(t.Uploads, u)
}

func texelSize(format, typ uint32) int {
	switch typ {
	case gl.UNSIGNED_INT_2_10_10_10_REV, gl.UNSIGNED_INT_10F_11F_11F_REV,
		gl.UNSIGNED_INT_5_9_9_9_REV, gl.UNSIGNED_INT_24_8:
		return 4
	case gl.FLOAT_32_UNSIGNED_INT_24_8_REV:
		return 8
	}
	components := 1
	switch format {
	case gl.RG, gl.RG_INTEGER:
		components = 2
	case gl.RGB:
		components = 3
	case gl.RGBA, gl.BGRA, gl.RGBA_INTEGER:
		components = 4
	}
	switch typ {
	case gl.SHORT, gl.UNSIGNED_SHORT, gl.HALF_FLOAT:
		return components * 2
	case gl.INT, gl.UNSIGNED_INT, gl.FLOAT:
		return components * 4
	}
	return components
}

func (f *Fake) GenerateTextureMipmap(texture uint32) {
	f.record("glGenerateTextureMipmap", texture)
}

func (f *Fake) BindTextureUnit(unit, texture uint32) {
	f.record("glBindTextureUnit", unit, texture)
	f.unitTex[unit] = texture
}

func (f *Fake) CopyImageSubData(src, srcTarget uint32, srcLevel, srcX, srcY, srcZ int32,
	dst, dstTarget uint32, dstLevel, dstX, dstY, dstZ int32, width, height, depth int32,
) {
	f.record("glCopyImageSubData", src, srcTarget, srcLevel, srcX, srcY, srcZ,
		dst, dstTarget, dstLevel, dstX, dstY, dstZ, width, height, depth)
}

func (f *Fake) CreateFramebuffers() uint32 {
	name := f.alloc("CreateFramebuffers", KindFramebuffer)
	f.record("glCreateFramebuffers", name)
	if name != 0 {
		f.framebuffers[name] = &Framebuffer{Attachments: make(map[uint32]uint32)}
	}
	return name
}

func (f *Fake) DeleteFramebuffers(framebuffer uint32) {
	f.record("glDeleteFramebuffers", framebuffer)
	delete(f.framebuffers, framebuffer)
	if f.drawFBO == framebuffer {
		f.drawFBO = 0
	}
	if f.readFBO == framebuffer {
		f.readFBO = 0
	}
	f.release(framebuffer)
}

func (f *Fake) BindFramebuffer(target, framebuffer uint32) {
	f.record("glBindFramebuffer", target, framebuffer)
	switch target {
	case gl.DRAW_FRAMEBUFFER:
		f.drawFBO = framebuffer
	case gl.READ_FRAMEBUFFER:
		f.readFBO = framebuffer
	case gl.FRAMEBUFFER:
		f.drawFBO, f.readFBO = framebuffer, framebuffer
	}
}

func (f *Fake) NamedFramebufferTexture(framebuffer, attachment, texture uint32, level int32) {
	f.record("glNamedFramebufferTexture", framebuffer, attachment, texture, level)
	if fb := f.framebuffers[framebuffer]; fb != nil {
		if texture == 0 {
			delete(fb.Attachments, attachment)
		} else {
			fb.Attachments[attachment] = texture
		}
	}
}

func (f *Fake) NamedFramebufferDrawBuffers(framebuffer uint32, buffers []uint32) {
	f.record("glNamedFramebufferDrawBuffers", framebuffer, append([]uint32(nil), buffers...))
	if fb := f.framebuffers[framebuffer]; fb != nil {
		fb.DrawBuffers = append([]uint32(nil), buffers...)
	}
}

func (f *Fake) NamedFramebufferReadBuffer(framebuffer, buffer uint32) {
	f.record("glNamedFramebufferReadBuffer", framebuffer, buffer)
	if fb := f.framebuffers[framebuffer]; fb != nil {
		fb.ReadBuffer = buffer
	}
}

func (f *Fake) ClearNamedFramebufferfv(framebuffer, buffer uint32, drawBuffer int32, value []float32) {
	f.record("glClearNamedFramebufferfv", framebuffer, buffer, drawBuffer, append([]float32(nil), value...))
}

func (f *Fake) ClearNamedFramebufferiv(framebuffer, buffer uint32, drawBuffer int32, value []int32) {
	f.record("glClearNamedFramebufferiv", framebuffer, buffer, drawBuffer, append([]int32(nil), value...))
}

func (f *Fake) InvalidateNamedFramebufferData(framebuffer uint32, attachments []uint32) {
	f.record("glInvalidateNamedFramebufferData", framebuffer, append([]uint32(nil), attachments...))
}

// CheckNamedFramebufferStatus derives completeness from the attachments:
// no attachment at all is MISSING_ATTACHMENT, a draw buffer naming an
// empty slot is INCOMPLETE_DRAW_BUFFER, a depth format on a color slot is
// INCOMPLETE_ATTACHMENT, and color attachments of differing internal
// formats are reported as UNSUPPORTED.
func (f *Fake) CheckNamedFramebufferStatus(framebuffer, target uint32) uint32 {
	f.record("glCheckNamedFramebufferStatus", framebuffer, target)
	if f.FramebufferStatus != 0 {
		return f.FramebufferStatus
	}
	if framebuffer == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	fb := f.framebuffers[framebuffer]
	if fb == nil {
		return gl.FRAMEBUFFER_UNDEFINED
	}
	if len(fb.Attachments) == 0 {
		return gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT
	}
	for _, db := range fb.DrawBuffers {
		if db == gl.NONE {
			continue
		}
		if _, ok := fb.Attachments[db]; !ok {
			return gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER
		}
	}
	var colorFormat uint32
	for att, tex := range fb.Attachments {
		if att < gl.COLOR_ATTACHMENT0 || att >= gl.COLOR_ATTACHMENT0+MaxDrawBuffers {
			continue
		}
		t := f.textures[tex]
		if t == nil {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if isDepthFormat(t.InternalFormat) {
			return gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT
		}
		if colorFormat != 0 && colorFormat != t.InternalFormat {
			return gl.FRAMEBUFFER_UNSUPPORTED
		}
		colorFormat = t.InternalFormat
	}
	return gl.FRAMEBUFFER_COMPLETE
}

func isDepthFormat(f uint32) bool {
	switch f {
	case gl.DEPTH_COMPONENT16, gl.DEPTH_COMPONENT24, gl.DEPTH_COMPONENT32F,
		gl.DEPTH24_STENCIL8, gl.DEPTH32F_STENCIL8, gl.STENCIL_INDEX8:
		return true
	}
	return false
}

func (f *Fake) BlitNamedFramebuffer(read, draw uint32, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	f.record("glBlitNamedFramebuffer", read, draw, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, filter)
}

func (f *Fake) CreateShader(typ uint32) uint32 {
	name := f.alloc("CreateShader", KindShader)
	f.record("glCreateShader", typ, name)
	if name != 0 {
		f.shaders[name] = typ
	}
	return name
}

func (f *Fake) DeleteShader(shader uint32) {
	f.record("glDeleteShader", shader)
	delete(f.shaders, shader)
	f.release(shader)
}

func (f *Fake) ShaderSource(shader uint32, source string) {
	f.record("glShaderSource", shader, source)
}

func (f *Fake) CompileShader(shader uint32) {
	f.record("glCompileShader", shader)
	f.compiled[shader] = f.CompileError == ""
}

func (f *Fake) GetShaderiv(shader, pname uint32, params *int32) {
	f.record("glGetShaderiv", shader, pname)
	switch pname {
	case gl.COMPILE_STATUS:
		*params = boolInt(f.compiled[shader])
	case gl.INFO_LOG_LENGTH:
		*params = int32(len(f.GetShaderInfoLog(shader)))
	}
}

func (f *Fake) GetShaderInfoLog(shader uint32) string {
	if !f.compiled[shader] {
		return f.CompileError
	}
	return f.InfoLog
}

func (f *Fake) CreateProgram() uint32 {
	name := f.alloc("CreateProgram", KindProgram)
	f.record("glCreateProgram", name)
	return name
}

func (f *Fake) DeleteProgram(program uint32) {
	f.record("glDeleteProgram", program)
	f.release(program)
}

func (f *Fake) AttachShader(program, shader uint32) { f.record("glAttachShader", program, shader) }
func (f *Fake) DetachShader(program, shader uint32) { f.record("glDetachShader", program, shader) }

func (f *Fake) ProgramParameteri(program, pname uint32, value int32) {
	f.record("glProgramParameteri", program, pname, value)
}

func (f *Fake) LinkProgram(program uint32)     { f.record("glLinkProgram", program) }
func (f *Fake) ValidateProgram(program uint32) { f.record("glValidateProgram", program) }

func (f *Fake) GetProgramiv(program, pname uint32, params *int32) {
	f.record("glGetProgramiv", program, pname)
	switch pname {
	case gl.LINK_STATUS:
		*params = boolInt(f.LinkError == "")
	case gl.VALIDATE_STATUS:
		*params = boolInt(f.ValidateError == "")
	case gl.INFO_LOG_LENGTH:
		*params = int32(len(f.programLog()))
	}
}

func (f *Fake) programLog() string {
	switch {
	case f.LinkError != "":
		return f.LinkError
	case f.ValidateError != "":
		return f.ValidateError
	}
	return f.InfoLog
}

func (f *Fake) GetProgramInfoLog(uint32) string { return f.programLog() }

func (f *Fake) CreateProgramPipelines() uint32 {
	name := f.alloc("CreateProgramPipelines", KindProgramPipeline)
	f.record("glCreateProgramPipelines", name)
	return name
}

func (f *Fake) DeleteProgramPipelines(pipeline uint32) {
	f.record("glDeleteProgramPipelines", pipeline)
	if f.state.Pipeline == pipeline {
		f.state.Pipeline = 0
	}
	f.release(pipeline)
}

func (f *Fake) UseProgramStages(pipeline, stages, program uint32) {
	f.record("glUseProgramStages", pipeline, stages, program)
}

func (f *Fake) ValidateProgramPipeline(pipeline uint32) {
	f.record("glValidateProgramPipeline", pipeline)
}

func (f *Fake) GetProgramPipelineiv(pipeline, pname uint32, params *int32) {
	f.record("glGetProgramPipelineiv", pipeline, pname)
	switch pname {
	case gl.VALIDATE_STATUS:
		*params = boolInt(f.ValidateError == "")
	case gl.INFO_LOG_LENGTH:
		*params = int32(len(f.GetProgramPipelineInfoLog(pipeline)))
	}
}

func (f *Fake) GetProgramPipelineInfoLog(uint32) string {
	if f.ValidateError != "" {
		return f.ValidateError
	}
	return f.InfoLog
}

func (f *Fake) BindProgramPipeline(pipeline uint32) {
	f.record("glBindProgramPipeline", pipeline)
	f.state.Pipeline = pipeline
}

func (f *Fake) CreateVertexArrays() uint32 {
	name := f.alloc("CreateVertexArrays", KindVertexArray)
	f.record("glCreateVertexArrays", name)
	return name
}

func (f *Fake) DeleteVertexArrays(array uint32) {
	f.record("glDeleteVertexArrays", array)
	if f.state.VertexArray == array {
		f.state.VertexArray = 0
	}
	f.release(array)
}

func (f *Fake) BindVertexArray(array uint32) {
	f.record("glBindVertexArray", array)
	f.state.VertexArray = array
}

func (f *Fake) EnableVertexArrayAttrib(array, index uint32) {
	f.record("glEnableVertexArrayAttrib", array, index)
}

func (f *Fake) VertexArrayAttribFormat(array, index uint32, size int32, typ uint32, normalized bool, relativeOffset uint32) {
	f.record("glVertexArrayAttribFormat", array, index, size, typ, normalized, relativeOffset)
}

func (f *Fake) VertexArrayAttribIFormat(array, index uint32, size int32, typ uint32, relativeOffset uint32) {
	f.record("glVertexArrayAttribIFormat", array, index, size, typ, relativeOffset)
}

func (f *Fake) VertexArrayAttribBinding(array, index, binding uint32) {
	f.record("glVertexArrayAttribBinding", array, index, binding)
}

func (f *Fake) BindVertexBuffer(binding, buffer uint32, offset int, stride int32) {
	f.record("glBindVertexBuffer", binding, buffer, offset, stride)
	if binding == 0 {
		f.vertexBuf = [3]int{int(buffer), offset, int(stride)}
	}
}

func (f *Fake) CreateSamplers() uint32 {
	name := f.alloc("CreateSamplers", KindSampler)
	f.record("glCreateSamplers", name)
	if name != 0 {
		f.samplers[name] = make(map[uint32]any)
	}
	return name
}

func (f *Fake) DeleteSamplers(sampler uint32) {
	f.record("glDeleteSamplers", sampler)
	delete(f.samplers, sampler)
	f.release(sampler)
}

func (f *Fake) SamplerParameteri(sampler, pname uint32, param int32) {
	f.record("glSamplerParameteri", sampler, pname, param)
	if s := f.samplers[sampler]; s != nil {
		s[pname] = param
	}
}

func (f *Fake) SamplerParameterf(sampler, pname uint32, param float32) {
	f.record("glSamplerParameterf", sampler, pname, param)
	if s := f.samplers[sampler]; s != nil {
		s[pname] = param
	}
}

func (f *Fake) SamplerParameterfv(sampler, pname uint32, params []float32) {
	v := append([]float32(nil), params...)
	f.record("glSamplerParameterfv", sampler, pname, v)
	if s := f.samplers[sampler]; s != nil {
		s[pname] = v
	}
}

func (f *Fake) BindSampler(unit, sampler uint32) {
	f.record("glBindSampler", unit, sampler)
	f.unitSamp[unit] = sampler
}

func (f *Fake) BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32) {
	f.record("glBlendEquationSeparatei", buf, modeRGB, modeAlpha)
	if buf < MaxDrawBuffers {
		f.state.Blend[buf].EqRGB, f.state.Blend[buf].EqAlpha = modeRGB, modeAlpha
	}
}

func (f *Fake) BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	f.record("glBlendFuncSeparatei", buf, srcRGB, dstRGB, srcAlpha, dstAlpha)
	if buf < MaxDrawBuffers {
		b := &f.state.Blend[buf]
		b.SrcRGB, b.DstRGB, b.SrcAlpha, b.DstAlpha = srcRGB, dstRGB, srcAlpha, dstAlpha
	}
}

func (f *Fake) BlendColor(r, g, b, a float32) {
	f.record("glBlendColor", r, g, b, a)
	f.blendColor = [4]float32{r, g, b, a}
}

func (f *Fake) ColorMaski(buf uint32, r, g, b, a bool) {
	f.record("glColorMaski", buf, r, g, b, a)
	if buf < MaxDrawBuffers {
		f.state.Blend[buf].ColorMask = [4]bool{r, g, b, a}
	}
}

func (f *Fake) DepthMask(flag bool) {
	f.record("glDepthMask", flag)
	f.state.DepthMask = flag
}

func (f *Fake) DepthFunc(fn uint32) {
	f.record("glDepthFunc", fn)
	f.state.DepthFunc = fn
}

func (f *Fake) PolygonOffsetClamp(factor, units, clamp float32) {
	f.record("glPolygonOffsetClamp", factor, units, clamp)
	f.state.PolygonOffset = [3]float32{factor, units, clamp}
}

func (f *Fake) faces(face uint32) []*StencilFace {
	switch face {
	case gl.FRONT:
		return []*StencilFace{&f.state.Front}
	case gl.BACK:
		return []*StencilFace{&f.state.Back}
	case gl.FRONT_AND_BACK:
		return []*StencilFace{&f.state.Front, &f.state.Back}
	}
	return nil
}

func (f *Fake) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	f.record("glStencilFuncSeparate", face, fn, ref, mask)
	for _, s := range f.faces(face) {
		s.Func, s.Ref, s.ReadMask = fn, ref, mask
	}
}

func (f *Fake) StencilMaskSeparate(face, mask uint32) {
	f.record("glStencilMaskSeparate", face, mask)
	for _, s := range f.faces(face) {
		s.WriteMask = mask
	}
}

func (f *Fake) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	f.record("glStencilOpSeparate", face, sfail, dpfail, dppass)
	for _, s := range f.faces(face) {
		s.Fail, s.DepthFail, s.Pass = sfail, dpfail, dppass
	}
}

func (f *Fake) PolygonMode(face, mode uint32) {
	f.record("glPolygonMode", face, mode)
	f.state.PolygonMode = mode
}

func (f *Fake) CullFace(mode uint32) {
	f.record("glCullFace", mode)
	f.state.CullFace = mode
}

func (f *Fake) FrontFace(mode uint32) {
	f.record("glFrontFace", mode)
	f.state.FrontFace = mode
}

func (f *Fake) Viewport(x, y, width, height int32) {
	f.record("glViewport", x, y, width, height)
	f.viewport = [4]int32{x, y, width, height}
}

func (f *Fake) Scissor(x, y, width, height int32) {
	f.record("glScissor", x, y, width, height)
	f.scissor = [4]int32{x, y, width, height}
}

func (f *Fake) DrawArrays(mode uint32, first, count int32) {
	f.record("glDrawArrays", mode, first, count)
}

func (f *Fake) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	f.record("glDrawElements", mode, count, typ, offset)
}

func boolInt(b bool) int32 {
	if b {
		return 1
	}
	return 0
}
