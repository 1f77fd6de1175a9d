//go:build linux

package gl

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"

	"github.com/go-webgpu/goffi/ffi"
	"github.com/go-webgpu/goffi/types"
)

// procSigs describes each entry point as "ret:args", one letter per
// value: v void, u uint32, i int32, f float, b GLboolean, p pointer or
// pointer-sized integer.
var procSigs = [procCount]string{
	procGetError:                       "u:",
	procGetString:                      "p:u",
	procGetIntegerv:                    "v:up",
	procGetFloatv:                      "v:up",
	procEnable:                         "v:u",
	procDisable:                        "v:u",
	procEnablei:                        "v:uu",
	procDisablei:                       "v:uu",
	procClipControl:                    "v:uu",
	procDebugMessageCallback:           "v:pp",
	procDebugMessageControl:            "v:uuuipb",
	procPushDebugGroup:                 "v:uuip",
	procPopDebugGroup:                  "v:",
	procObjectLabel:                    "v:uuip",
	procCreateBuffers:                  "v:ip",
	procDeleteBuffers:                  "v:ip",
	procNamedBufferStorage:             "v:uppu",
	procMapNamedBufferRange:            "p:uppu",
	procUnmapNamedBuffer:               "b:u",
	procClearNamedBufferSubData:        "v:uuppuup",
	procCopyNamedBufferSubData:         "v:uuppp",
	procBindBuffer:                     "v:uu",
	procBindBufferRange:                "v:uuupp",
	procCreateTextures:                 "v:uip",
	procDeleteTextures:                 "v:ip",
	procTextureParameteri:              "v:uui",
	procTextureStorage1D:               "v:uiui",
	procTextureStorage2D:               "v:uiuii",
	procTextureStorage3D:               "v:uiuiii",
	procTextureSubImage1D:              "v:uiiiuup",
	procTextureSubImage2D:              "v:uiiiiiuup",
	procGenerateTextureMipmap:          "v:u",
	procBindTextureUnit:                "v:uu",
	procCopyImageSubData:               "v:uuiiiiuuiiiiiii",
	procCreateFramebuffers:             "v:ip",
	procDeleteFramebuffers:             "v:ip",
	procBindFramebuffer:                "v:uu",
	procNamedFramebufferTexture:        "v:uuui",
	procNamedFramebufferDrawBuffers:    "v:uip",
	procNamedFramebufferReadBuffer:     "v:uu",
	procClearNamedFramebufferfv:        "v:uuip",
	procClearNamedFramebufferiv:        "v:uuip",
	procInvalidateNamedFramebufferData: "v:uip",
	procCheckNamedFramebufferStatus:    "u:uu",
	procBlitNamedFramebuffer:           "v:uuiiiiiiiiuu",
	procCreateShader:                   "u:u",
	procDeleteShader:                   "v:u",
	procShaderSource:                   "v:uipp",
	procCompileShader:                  "v:u",
	procGetShaderiv:                    "v:uup",
	procGetShaderInfoLog:               "v:uipp",
	procCreateProgram:                  "u:",
	procDeleteProgram:                  "v:u",
	procAttachShader:                   "v:uu",
	procDetachShader:                   "v:uu",
	procProgramParameteri:              "v:uui",
	procLinkProgram:                    "v:u",
	procValidateProgram:                "v:u",
	procGetProgramiv:                   "v:uup",
	procGetProgramInfoLog:              "v:uipp",
	procCreateProgramPipelines:         "v:ip",
	procDeleteProgramPipelines:         "v:ip",
	procUseProgramStages:               "v:uuu",
	procValidateProgramPipeline:        "v:u",
	procGetProgramPipelineiv:           "v:uup",
	procGetProgramPipelineInfoLog:      "v:uipp",
	procBindProgramPipeline:            "v:u",
	procCreateVertexArrays:             "v:ip",
	procDeleteVertexArrays:             "v:ip",
	procBindVertexArray:                "v:u",
	procEnableVertexArrayAttrib:        "v:uu",
	procVertexArrayAttribFormat:        "v:uuiubu",
	procVertexArrayAttribIFormat:       "v:uuiuu",
	procVertexArrayAttribBinding:       "v:uuu",
	procBindVertexBuffer:               "v:uupi",
	procCreateSamplers:                 "v:ip",
	procDeleteSamplers:                 "v:ip",
	procSamplerParameteri:              "v:uui",
	procSamplerParameterf:              "v:uuf",
	procSamplerParameterfv:             "v:uup",
	procBindSampler:                    "v:uu",
	procBlendEquationSeparatei:         "v:uuu",
	procBlendFuncSeparatei:             "v:uuuuu",
	procBlendColor:                     "v:ffff",
	procColorMaski:                     "v:ubbbb",
	procDepthMask:                      "v:b",
	procDepthFunc:                      "v:u",
	procPolygonOffsetClamp:             "v:fff",
	procStencilFuncSeparate:            "v:uuiu",
	procStencilMaskSeparate:            "v:uu",
	procStencilOpSeparate:              "v:uuuu",
	procPolygonMode:                    "v:uu",
	procCullFace:                       "v:u",
	procFrontFace:                      "v:u",
	procViewport:                       "v:iiii",
	procScissor:                        "v:iiii",
	procDrawArrays:                     "v:uii",
	procDrawElements:                   "v:uiup",}

var sigTypes = map[byte]*types.TypeDescriptor{
	'v': types.VoidTypeDescriptor,
	'u': types.UInt32TypeDescriptor,
	'i': types.SInt32TypeDescriptor,
	'f': types.FloatTypeDescriptor,
	'b': types.UInt8TypeDescriptor,
	'p': types.PointerTypeDescriptor,
}

func prepareSig(cif *types.CallInterface, sig string) error {
	if len(sig) < 2 || sig[1] != ':' {
		return fmt.Errorf("gl: malformed signature %q", sig)
	}
	ret, ok := sigTypes[sig[0]]
	if !ok {
		return fmt.Errorf("gl: malformed signature %q", sig)
	}
	args := make([]*types.TypeDescriptor, 0, len(sig)-2)
	for i := 2; i < len(sig); i++ {
		t, ok := sigTypes[sig[i]]
		if !ok || sig[i] == 'v' {
			return fmt.Errorf("gl: malformed signature %q", sig)
		}
		args = append(args, t)
	}
	return ffi.PrepareCallInterface(cif, types.DefaultCall, ret, args)
}

// Context calls into the driver through goffi. The context it was
// loaded for must be current on the calling thread.
type Context struct {
	procs *Procs
	cifs  [procCount]types.CallInterface
}

// Load resolves every required entry point and prepares its call
// interface. Any missing symbol fails the load.
func Load(getProcAddr ProcAddressFunc) (Functions, error) {
	procs, err := Resolve(getProcAddr)
	if err != nil {
		return nil, err
	}
	c := &Context{procs: procs}
	for i := range c.cifs {
		if err := prepareSig(&c.cifs[i], procSigs[i]); err != nil {
			return nil, fmt.Errorf("%s: %w", procNames[i], err)
		}
	}
	return c, nil
}

func (c *Context) call(p proc, ret unsafe.Pointer, args ...unsafe.Pointer) {
	_ = ffi.CallFunction(&c.cifs[p], c.procs[p], ret, args)
	if DebugChecks && p != procGetError {
		Check(c, procNames[p])
	}
}

func glBool(v bool) uint8 {
	if v {
		return TRUE
	}
	return FALSE
}

// cString returns a NUL-terminated copy of s. The slice must stay
// reachable until the call returns.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)
	return b
}

func goString(p uintptr) string {
	if p == 0 {
		return ""
	}
	ptr := (*byte)(unsafe.Pointer(p)) //nolint:govet // FFI returns a C string address
	n := 0
	for *(*byte)(unsafe.Add(unsafe.Pointer(ptr), n)) != 0 {
		n++
	}
	return string(unsafe.Slice(ptr, n))
}

func (c *Context) GetError() uint32 {
	var r uint32
	_ = ffi.CallFunction(&c.cifs[procGetError], c.procs[procGetError], unsafe.Pointer(&r), nil)
	return r
}

func (c *Context) GetString(name uint32) string {
	var r uintptr
	c.call(procGetString, unsafe.Pointer(&r), unsafe.Pointer(&name))
	return goString(r)
}

func (c *Context) GetIntegerv(pname uint32, data *int32) {
	c.call(procGetIntegerv, nil, unsafe.Pointer(&pname), unsafe.Pointer(&data))
}

func (c *Context) GetFloatv(pname uint32, data *float32) {
	c.call(procGetFloatv, nil, unsafe.Pointer(&pname), unsafe.Pointer(&data))
}

func (c *Context) Enable(capability uint32) {
	c.call(procEnable, nil, unsafe.Pointer(&capability))
}

func (c *Context) Disable(capability uint32) {
	c.call(procDisable, nil, unsafe.Pointer(&capability))
}

func (c *Context) Enablei(capability, index uint32) {
	c.call(procEnablei, nil, unsafe.Pointer(&capability), unsafe.Pointer(&index))
}

func (c *Context) Disablei(capability, index uint32) {
	c.call(procDisablei, nil, unsafe.Pointer(&capability), unsafe.Pointer(&index))
}

func (c *Context) ClipControl(origin, depth uint32) {
	c.call(procClipControl, nil, unsafe.Pointer(&origin), unsafe.Pointer(&depth))
}

// The driver holds one callback pointer per context; goffi trampolines
// are never freed, so a single one is registered for the process and
// dispatches to the most recently installed handler.
var (
	debugOnce       sync.Once
	debugTrampoline uintptr
	debugHandler    atomic.Pointer[DebugFunc]
)

func debugCallback(source, typ, id, severity, length, message, _ uintptr) {
	fn := debugHandler.Load()
	if fn == nil || message == 0 {
		return
	}
	msg := unsafe.String((*byte)(unsafe.Pointer(message)), int(int32(length))) //nolint:govet // FFI callback argument
	(*fn)(uint32(source), uint32(typ), uint32(id), uint32(severity), msg)
}

func (c *Context) DebugMessageCallback(fn DebugFunc) {
	debugOnce.Do(func() {
		debugTrampoline = ffi.NewCallback(debugCallback)
	})
	if fn == nil {
		debugHandler.Store(nil)
		var zero uintptr
		c.call(procDebugMessageCallback, nil, unsafe.Pointer(&zero), unsafe.Pointer(&zero))
		return
	}
	debugHandler.Store(&fn)
	var user uintptr
	c.call(procDebugMessageCallback, nil, unsafe.Pointer(&debugTrampoline), unsafe.Pointer(&user))
}

func (c *Context) DebugMessageControl(source, typ, severity uint32, enabled bool) {
	var count int32
	var ids uintptr
	e := glBool(enabled)
	c.call(procDebugMessageControl, nil,
		unsafe.Pointer(&source), unsafe.Pointer(&typ), unsafe.Pointer(&severity),
		unsafe.Pointer(&count), unsafe.Pointer(&ids), unsafe.Pointer(&e))
}

func (c *Context) PushDebugGroup(source, id uint32, message string) {
	msg := cString(message)
	length := int32(len(message))
	ptr := &msg[0]
	c.call(procPushDebugGroup, nil,
		unsafe.Pointer(&source), unsafe.Pointer(&id), unsafe.Pointer(&length), unsafe.Pointer(&ptr))
}

func (c *Context) PopDebugGroup() {
	c.call(procPopDebugGroup, nil)
}

func (c *Context) ObjectLabel(identifier, name uint32, label string) {
	lbl := cString(label)
	length := int32(len(label))
	ptr := &lbl[0]
	c.call(procObjectLabel, nil,
		unsafe.Pointer(&identifier), unsafe.Pointer(&name), unsafe.Pointer(&length), unsafe.Pointer(&ptr))
}

// create runs a glCreate*/glGen*-style call for a single name.
func (c *Context) create(p proc) uint32 {
	var name uint32
	n := int32(1)
	ptr := &name
	c.call(p, nil, unsafe.Pointer(&n), unsafe.Pointer(&ptr))
	return name
}

func (c *Context) delete(p proc, name uint32) {
	n := int32(1)
	ptr := &name
	c.call(p, nil, unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (c *Context) CreateBuffers() uint32       { return c.create(procCreateBuffers) }
func (c *Context) DeleteBuffers(buffer uint32) { c.delete(procDeleteBuffers, buffer) }

func (c *Context) NamedBufferStorage(buffer uint32, size int, data unsafe.Pointer, flags uint32) {
	c.call(procNamedBufferStorage, nil,
		unsafe.Pointer(&buffer), unsafe.Pointer(&size), unsafe.Pointer(&data), unsafe.Pointer(&flags))
}

func (c *Context) MapNamedBufferRange(buffer uint32, offset, length int, access uint32) unsafe.Pointer {
	var r unsafe.Pointer
	c.call(procMapNamedBufferRange, unsafe.Pointer(&r),
		unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&length), unsafe.Pointer(&access))
	return r
}

func (c *Context) UnmapNamedBuffer(buffer uint32) bool {
	var r uint8
	c.call(procUnmapNamedBuffer, unsafe.Pointer(&r), unsafe.Pointer(&buffer))
	return r != FALSE
}

func (c *Context) ClearNamedBufferSubData(buffer, internalFormat uint32, offset, size int, format, typ uint32, data unsafe.Pointer) {
	c.call(procClearNamedBufferSubData, nil,
		unsafe.Pointer(&buffer), unsafe.Pointer(&internalFormat), unsafe.Pointer(&offset), unsafe.Pointer(&size),
		unsafe.Pointer(&format), unsafe.Pointer(&typ), unsafe.Pointer(&data))
}

func (c *Context) CopyNamedBufferSubData(readBuffer, writeBuffer uint32, readOffset, writeOffset, size int) {
	c.call(procCopyNamedBufferSubData, nil,
		unsafe.Pointer(&readBuffer), unsafe.Pointer(&writeBuffer),
		unsafe.Pointer(&readOffset), unsafe.Pointer(&writeOffset), unsafe.Pointer(&size))
}

func (c *Context) BindBuffer(target, buffer uint32) {
	c.call(procBindBuffer, nil, unsafe.Pointer(&target), unsafe.Pointer(&buffer))
}

func (c *Context) BindBufferRange(target, index, buffer uint32, offset, size int) {
	c.call(procBindBufferRange, nil,
		unsafe.Pointer(&target), unsafe.Pointer(&index), unsafe.Pointer(&buffer),
		unsafe.Pointer(&offset), unsafe.Pointer(&size))
}

func (c *Context) CreateTextures(target uint32) uint32 {
	var name uint32
	n := int32(1)
	ptr := &name
	c.call(procCreateTextures, nil, unsafe.Pointer(&target), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
	return name
}

func (c *Context) DeleteTextures(texture uint32) { c.delete(procDeleteTextures, texture) }

func (c *Context) TextureParameteri(texture, pname uint32, param int32) {
	c.call(procTextureParameteri, nil, unsafe.Pointer(&texture), unsafe.Pointer(&pname), unsafe.Pointer(&param))
}

func (c *Context) TextureStorage1D(texture uint32, levels int32, internalFormat uint32, width int32) {
	c.call(procTextureStorage1D, nil,
		unsafe.Pointer(&texture), unsafe.Pointer(&levels), unsafe.Pointer(&internalFormat), unsafe.Pointer(&width))
}

func (c *Context) TextureStorage2D(texture uint32, levels int32, internalFormat uint32, width, height int32) {
	c.call(procTextureStorage2D, nil,
		unsafe.Pointer(&texture), unsafe.Pointer(&levels), unsafe.Pointer(&internalFormat),
		unsafe.Pointer(&width), unsafe.Pointer(&height))
}

func (c *Context) TextureStorage3D(texture uint32, levels int32, internalFormat uint32, width, height, depth int32) {
	c.call(procTextureStorage3D, nil,
		unsafe.Pointer(&texture), unsafe.Pointer(&levels), unsafe.Pointer(&internalFormat),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&depth))
}

func (c *Context) TextureSubImage1D(texture uint32, level, x, width int32, format, typ uint32, offset uintptr) {
	c.call(procTextureSubImage1D, nil,
		unsafe.Pointer(&texture), unsafe.Pointer(&level), unsafe.Pointer(&x), unsafe.Pointer(&width),
		unsafe.Pointer(&format), unsafe.Pointer(&typ), unsafe.Pointer(&offset))
}

func (c *Context) TextureSubImage2D(texture uint32, level, x, y, width, height int32, format, typ uint32, offset uintptr) {
	c.call(procTextureSubImage2D, nil,
		unsafe.Pointer(&texture), unsafe.Pointer(&level), unsafe.Pointer(&x), unsafe.Pointer(&y),
		unsafe.Pointer(&width), unsafe.Pointer(&height),
		unsafe.Pointer(&format), unsafe.Pointer(&typ), unsafe.Pointer(&offset))
}

func (c *Context) GenerateTextureMipmap(texture uint32) {
	c.call(procGenerateTextureMipmap, nil, unsafe.Pointer(&texture))
}

func (c *Context) BindTextureUnit(unit, texture uint32) {
	c.call(procBindTextureUnit, nil, unsafe.Pointer(&unit), unsafe.Pointer(&texture))
}

func (c *Context) CopyImageSubData(src, srcTarget uint32, srcLevel, srcX, srcY, srcZ int32,
	dst, dstTarget uint32, dstLevel, dstX, dstY, dstZ int32, width, height, depth int32,
) {
	c.call(procCopyImageSubData, nil,
		unsafe.Pointer(&src), unsafe.Pointer(&srcTarget), unsafe.Pointer(&srcLevel),
		unsafe.Pointer(&srcX), unsafe.Pointer(&srcY), unsafe.Pointer(&srcZ),
		unsafe.Pointer(&dst), unsafe.Pointer(&dstTarget), unsafe.Pointer(&dstLevel),
		unsafe.Pointer(&dstX), unsafe.Pointer(&dstY), unsafe.Pointer(&dstZ),
		unsafe.Pointer(&width), unsafe.Pointer(&height), unsafe.Pointer(&depth))
}

func (c *Context) CreateFramebuffers() uint32            { return c.create(procCreateFramebuffers) }
func (c *Context) DeleteFramebuffers(framebuffer uint32) { c.delete(procDeleteFramebuffers, framebuffer) }

func (c *Context) BindFramebuffer(target, framebuffer uint32) {
	c.call(procBindFramebuffer, nil, unsafe.Pointer(&target), unsafe.Pointer(&framebuffer))
}

func (c *Context) NamedFramebufferTexture(framebuffer, attachment, texture uint32, level int32) {
	c.call(procNamedFramebufferTexture, nil,
		unsafe.Pointer(&framebuffer), unsafe.Pointer(&attachment), unsafe.Pointer(&texture), unsafe.Pointer(&level))
}

func (c *Context) NamedFramebufferDrawBuffers(framebuffer uint32, buffers []uint32) {
	n := int32(len(buffers))
	var ptr *uint32
	if n > 0 {
		ptr = &buffers[0]
	}
	c.call(procNamedFramebufferDrawBuffers, nil, unsafe.Pointer(&framebuffer), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (c *Context) NamedFramebufferReadBuffer(framebuffer, buffer uint32) {
	c.call(procNamedFramebufferReadBuffer, nil, unsafe.Pointer(&framebuffer), unsafe.Pointer(&buffer))
}

func (c *Context) ClearNamedFramebufferfv(framebuffer, buffer uint32, drawBuffer int32, value []float32) {
	ptr := &value[0]
	c.call(procClearNamedFramebufferfv, nil,
		unsafe.Pointer(&framebuffer), unsafe.Pointer(&buffer), unsafe.Pointer(&drawBuffer), unsafe.Pointer(&ptr))
}

func (c *Context) ClearNamedFramebufferiv(framebuffer, buffer uint32, drawBuffer int32, value []int32) {
	ptr := &value[0]
	c.call(procClearNamedFramebufferiv, nil,
		unsafe.Pointer(&framebuffer), unsafe.Pointer(&buffer), unsafe.Pointer(&drawBuffer), unsafe.Pointer(&ptr))
}

func (c *Context) InvalidateNamedFramebufferData(framebuffer uint32, attachments []uint32) {
	n := int32(len(attachments))
	if n == 0 {
		return
	}
	ptr := &attachments[0]
	c.call(procInvalidateNamedFramebufferData, nil, unsafe.Pointer(&framebuffer), unsafe.Pointer(&n), unsafe.Pointer(&ptr))
}

func (c *Context) CheckNamedFramebufferStatus(framebuffer, target uint32) uint32 {
	var r uint32
	c.call(procCheckNamedFramebufferStatus, unsafe.Pointer(&r), unsafe.Pointer(&framebuffer), unsafe.Pointer(&target))
	return r
}

func (c *Context) BlitNamedFramebuffer(read, draw uint32, srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask, filter uint32) {
	c.call(procBlitNamedFramebuffer, nil,
		unsafe.Pointer(&read), unsafe.Pointer(&draw),
		unsafe.Pointer(&srcX0), unsafe.Pointer(&srcY0), unsafe.Pointer(&srcX1), unsafe.Pointer(&srcY1),
		unsafe.Pointer(&dstX0), unsafe.Pointer(&dstY0), unsafe.Pointer(&dstX1), unsafe.Pointer(&dstY1),
		unsafe.Pointer(&mask), unsafe.Pointer(&filter))
}

func (c *Context) CreateShader(typ uint32) uint32 {
	var r uint32
	c.call(procCreateShader, unsafe.Pointer(&r), unsafe.Pointer(&typ))
	return r
}

func (c *Context) DeleteShader(shader uint32) {
	c.call(procDeleteShader, nil, unsafe.Pointer(&shader))
}

func (c *Context) ShaderSource(shader uint32, source string) {
	src := cString(source)
	count := int32(1)
	length := int32(len(source))
	str := &src[0]
	strs := &str
	lengths := &length
	c.call(procShaderSource, nil,
		unsafe.Pointer(&shader), unsafe.Pointer(&count), unsafe.Pointer(&strs), unsafe.Pointer(&lengths))
}

func (c *Context) CompileShader(shader uint32) {
	c.call(procCompileShader, nil, unsafe.Pointer(&shader))
}

func (c *Context) GetShaderiv(shader, pname uint32, params *int32) {
	c.call(procGetShaderiv, nil, unsafe.Pointer(&shader), unsafe.Pointer(&pname), unsafe.Pointer(&params))
}

// infoLog reads an info log of at most size bytes.
func (c *Context) infoLog(p proc, name uint32, size int32) string {
	if size <= 0 {
		return ""
	}
	buf := make([]byte, size)
	var written int32
	wp := &written
	bp := &buf[0]
	c.call(p, nil, unsafe.Pointer(&name), unsafe.Pointer(&size), unsafe.Pointer(&wp), unsafe.Pointer(&bp))
	return string(buf[:written])
}

func (c *Context) GetShaderInfoLog(shader uint32) string {
	var n int32
	c.GetShaderiv(shader, INFO_LOG_LENGTH, &n)
	return c.infoLog(procGetShaderInfoLog, shader, n)
}

func (c *Context) CreateProgram() uint32 {
	var r uint32
	c.call(procCreateProgram, unsafe.Pointer(&r))
	return r
}

func (c *Context) DeleteProgram(program uint32) {
	c.call(procDeleteProgram, nil, unsafe.Pointer(&program))
}

func (c *Context) AttachShader(program, shader uint32) {
	c.call(procAttachShader, nil, unsafe.Pointer(&program), unsafe.Pointer(&shader))
}

func (c *Context) DetachShader(program, shader uint32) {
	c.call(procDetachShader, nil, unsafe.Pointer(&program), unsafe.Pointer(&shader))
}

func (c *Context) ProgramParameteri(program, pname uint32, value int32) {
	c.call(procProgramParameteri, nil, unsafe.Pointer(&program), unsafe.Pointer(&pname), unsafe.Pointer(&value))
}

func (c *Context) LinkProgram(program uint32) {
	c.call(procLinkProgram, nil, unsafe.Pointer(&program))
}

func (c *Context) ValidateProgram(program uint32) {
	c.call(procValidateProgram, nil, unsafe.Pointer(&program))
}

func (c *Context) GetProgramiv(program, pname uint32, params *int32) {
	c.call(procGetProgramiv, nil, unsafe.Pointer(&program), unsafe.Pointer(&pname), unsafe.Pointer(&params))
}

func (c *Context) GetProgramInfoLog(program uint32) string {
	var n int32
	c.GetProgramiv(program, INFO_LOG_LENGTH, &n)
	return c.infoLog(procGetProgramInfoLog, program, n)
}

func (c *Context) CreateProgramPipelines() uint32         { return c.create(procCreateProgramPipelines) }
func (c *Context) DeleteProgramPipelines(pipeline uint32) { c.delete(procDeleteProgramPipelines, pipeline) }

func (c *Context) UseProgramStages(pipeline, stages, program uint32) {
	c.call(procUseProgramStages, nil, unsafe.Pointer(&pipeline), unsafe.Pointer(&stages), unsafe.Pointer(&program))
}

func (c *Context) ValidateProgramPipeline(pipeline uint32) {
	c.call(procValidateProgramPipeline, nil, unsafe.Pointer(&pipeline))
}

func (c *Context) GetProgramPipelineiv(pipeline, pname uint32, params *int32) {
	c.call(procGetProgramPipelineiv, nil, unsafe.Pointer(&pipeline), unsafe.Pointer(&pname), unsafe.Pointer(&params))
}

func (c *Context) GetProgramPipelineInfoLog(pipeline uint32) string {
	var n int32
	c.GetProgramPipelineiv(pipeline, INFO_LOG_LENGTH, &n)
	return c.infoLog(procGetProgramPipelineInfoLog, pipeline, n)
}

func (c *Context) BindProgramPipeline(pipeline uint32) {
	c.call(procBindProgramPipeline, nil, unsafe.Pointer(&pipeline))
}

func (c *Context) CreateVertexArrays() uint32      { return c.create(procCreateVertexArrays) }
func (c *Context) DeleteVertexArrays(array uint32) { c.delete(procDeleteVertexArrays, array) }

func (c *Context) BindVertexArray(array uint32) {
	c.call(procBindVertexArray, nil, unsafe.Pointer(&array))
}

func (c *Context) EnableVertexArrayAttrib(array, index uint32) {
	c.call(procEnableVertexArrayAttrib, nil, unsafe.Pointer(&array), unsafe.Pointer(&index))
}

func (c *Context) VertexArrayAttribFormat(array, index uint32, size int32, typ uint32, normalized bool, relativeOffset uint32) {
	norm := glBool(normalized)
	c.call(procVertexArrayAttribFormat, nil,
		unsafe.Pointer(&array), unsafe.Pointer(&index), unsafe.Pointer(&size), unsafe.Pointer(&typ),
		unsafe.Pointer(&norm), unsafe.Pointer(&relativeOffset))
}

func (c *Context) VertexArrayAttribIFormat(array, index uint32, size int32, typ uint32, relativeOffset uint32) {
	c.call(procVertexArrayAttribIFormat, nil,
		unsafe.Pointer(&array), unsafe.Pointer(&index), unsafe.Pointer(&size), unsafe.Pointer(&typ),
		unsafe.Pointer(&relativeOffset))
}

func (c *Context) VertexArrayAttribBinding(array, index, binding uint32) {
	c.call(procVertexArrayAttribBinding, nil, unsafe.Pointer(&array), unsafe.Pointer(&index), unsafe.Pointer(&binding))
}

func (c *Context) BindVertexBuffer(binding, buffer uint32, offset int, stride int32) {
	c.call(procBindVertexBuffer, nil,
		unsafe.Pointer(&binding), unsafe.Pointer(&buffer), unsafe.Pointer(&offset), unsafe.Pointer(&stride))
}

func (c *Context) CreateSamplers() uint32        { return c.create(procCreateSamplers) }
func (c *Context) DeleteSamplers(sampler uint32) { c.delete(procDeleteSamplers, sampler) }

func (c *Context) SamplerParameteri(sampler, pname uint32, param int32) {
	c.call(procSamplerParameteri, nil, unsafe.Pointer(&sampler), unsafe.Pointer(&pname), unsafe.Pointer(&param))
}

func (c *Context) SamplerParameterf(sampler, pname uint32, param float32) {
	c.call(procSamplerParameterf, nil, unsafe.Pointer(&sampler), unsafe.Pointer(&pname), unsafe.Pointer(&param))
}

func (c *Context) SamplerParameterfv(sampler, pname uint32, params []float32) {
	ptr := &params[0]
	c.call(procSamplerParameterfv, nil, unsafe.Pointer(&sampler), unsafe.Pointer(&pname), unsafe.Pointer(&ptr))
}

func (c *Context) BindSampler(unit, sampler uint32) {
	c.call(procBindSampler, nil, unsafe.Pointer(&unit), unsafe.Pointer(&sampler))
}

func (c *Context) BlendEquationSeparatei(buf, modeRGB, modeAlpha uint32) {
	c.call(procBlendEquationSeparatei, nil, unsafe.Pointer(&buf), unsafe.Pointer(&modeRGB), unsafe.Pointer(&modeAlpha))
}

func (c *Context) BlendFuncSeparatei(buf, srcRGB, dstRGB, srcAlpha, dstAlpha uint32) {
	c.call(procBlendFuncSeparatei, nil,
		unsafe.Pointer(&buf), unsafe.Pointer(&srcRGB), unsafe.Pointer(&dstRGB),
		unsafe.Pointer(&srcAlpha), unsafe.Pointer(&dstAlpha))
}

func (c *Context) BlendColor(r, g, b, a float32) {
	c.call(procBlendColor, nil, unsafe.Pointer(&r), unsafe.Pointer(&g), unsafe.Pointer(&b), unsafe.Pointer(&a))
}

func (c *Context) ColorMaski(buf uint32, r, g, b, a bool) {
	br, bg, bb, ba := glBool(r), glBool(g), glBool(b), glBool(a)
	c.call(procColorMaski, nil,
		unsafe.Pointer(&buf), unsafe.Pointer(&br), unsafe.Pointer(&bg), unsafe.Pointer(&bb), unsafe.Pointer(&ba))
}

func (c *Context) DepthMask(flag bool) {
	b := glBool(flag)
	c.call(procDepthMask, nil, unsafe.Pointer(&b))
}

func (c *Context) DepthFunc(fn uint32) {
	c.call(procDepthFunc, nil, unsafe.Pointer(&fn))
}

func (c *Context) PolygonOffsetClamp(factor, units, clamp float32) {
	c.call(procPolygonOffsetClamp, nil, unsafe.Pointer(&factor), unsafe.Pointer(&units), unsafe.Pointer(&clamp))
}

func (c *Context) StencilFuncSeparate(face, fn uint32, ref int32, mask uint32) {
	c.call(procStencilFuncSeparate, nil,
		unsafe.Pointer(&face), unsafe.Pointer(&fn), unsafe.Pointer(&ref), unsafe.Pointer(&mask))
}

func (c *Context) StencilMaskSeparate(face, mask uint32) {
	c.call(procStencilMaskSeparate, nil, unsafe.Pointer(&face), unsafe.Pointer(&mask))
}

func (c *Context) StencilOpSeparate(face, sfail, dpfail, dppass uint32) {
	c.call(procStencilOpSeparate, nil,
		unsafe.Pointer(&face), unsafe.Pointer(&sfail), unsafe.Pointer(&dpfail), unsafe.Pointer(&dppass))
}

func (c *Context) PolygonMode(face, mode uint32) {
	c.call(procPolygonMode, nil, unsafe.Pointer(&face), unsafe.Pointer(&mode))
}

func (c *Context) CullFace(mode uint32) {
	c.call(procCullFace, nil, unsafe.Pointer(&mode))
}

func (c *Context) FrontFace(mode uint32) {
	c.call(procFrontFace, nil, unsafe.Pointer(&mode))
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.call(procViewport, nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

func (c *Context) Scissor(x, y, width, height int32) {
	c.call(procScissor, nil, unsafe.Pointer(&x), unsafe.Pointer(&y), unsafe.Pointer(&width), unsafe.Pointer(&height))
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.call(procDrawArrays, nil, unsafe.Pointer(&mode), unsafe.Pointer(&first), unsafe.Pointer(&count))
}

func (c *Context) DrawElements(mode uint32, count int32, typ uint32, offset uintptr) {
	c.call(procDrawElements, nil, unsafe.Pointer(&mode), unsafe.Pointer(&count), unsafe.Pointer(&typ), unsafe.Pointer(&offset))
}
