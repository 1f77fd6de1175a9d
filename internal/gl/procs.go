package gl

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"
)

// ErrMissingProc is returned when the driver does not export a required
// entry point.
var ErrMissingProc = errors.New("gl: missing required function")

// ProcAddressFunc resolves a GL symbol to its address, or nil.
type ProcAddressFunc func(name string) unsafe.Pointer

type proc int

const (
	procGetError proc = iota
	procGetString
	procGetIntegerv
	procGetFloatv
	procEnable
	procDisable
	procEnablei
	procDisablei
	procClipControl
	procDebugMessageCallback
	procDebugMessageControl
	procPushDebugGroup
	procPopDebugGroup
	procObjectLabel
	procCreateBuffers
	procDeleteBuffers
	procNamedBufferStorage
	procMapNamedBufferRange
	procUnmapNamedBuffer
	procClearNamedBufferSubData
	procCopyNamedBufferSubData
	procBindBuffer
	procBindBufferRange
	procCreateTextures
	procDeleteTextures
	procTextureParameteri
	procTextureStorage1D
	procTextureStorage2D
	procTextureStorage3D
	procTextureSubImage1D
	procTextureSubImage2D
	procGenerateTextureMipmap
	procBindTextureUnit
	procCopyImageSubData
	procCreateFramebuffers
	procDeleteFramebuffers
	procBindFramebuffer
	procNamedFramebufferTexture
	procNamedFramebufferDrawBuffers
	procNamedFramebufferReadBuffer
	procClearNamedFramebufferfv
	procClearNamedFramebufferiv
	procInvalidateNamedFramebufferData
	procCheckNamedFramebufferStatus
	procBlitNamedFramebuffer
	procCreateShader
	procDeleteShader
	procShaderSource
	procCompileShader
	procGetShaderiv
	procGetShaderInfoLog
	procCreateProgram
	procDeleteProgram
	procAttachShader
	procDetachShader
	procProgramParameteri
	procLinkProgram
	procValidateProgram
	procGetProgramiv
	procGetProgramInfoLog
	procCreateProgramPipelines
	procDeleteProgramPipelines
	procUseProgramStages
	procValidateProgramPipeline
	procGetProgramPipelineiv
	procGetProgramPipelineInfoLog
	procBindProgramPipeline
	procCreateVertexArrays
	procDeleteVertexArrays
	procBindVertexArray
	procEnableVertexArrayAttrib
	procVertexArrayAttribFormat
	procVertexArrayAttribIFormat
	procVertexArrayAttribBinding
	procBindVertexBuffer
	procCreateSamplers
	procDeleteSamplers
	procSamplerParameteri
	procSamplerParameterf
	procSamplerParameterfv
	procBindSampler
	procBlendEquationSeparatei
	procBlendFuncSeparatei
	procBlendColor
	procColorMaski
	procDepthMask
	procDepthFunc
	procPolygonOffsetClamp
	procStencilFuncSeparate
	procStencilMaskSeparate
	procStencilOpSeparate
	procPolygonMode
	procCullFace
	procFrontFace
	procViewport
	procScissor
	procDrawArrays
	procDrawElements

	procCount
)

// procNames is the table of required symbols, indexed by proc.
var procNames = [procCount]string{
	procGetError:                       "glGetError",
	procGetString:                      "glGetString",
	procGetIntegerv:                    "glGetIntegerv",
	procGetFloatv:                      "glGetFloatv",
	procEnable:                         "glEnable",
	procDisable:                        "glDisable",
	procEnablei:                        "glEnablei",
	procDisablei:                       "glDisablei",
	procClipControl:                    "glClipControl",
	procDebugMessageCallback:           "glDebugMessageCallback",
	procDebugMessageControl:            "glDebugMessageControl",
	procPushDebugGroup:                 "glPushDebugGroup",
	procPopDebugGroup:                  "glPopDebugGroup",
	procObjectLabel:                    "glObjectLabel",
	procCreateBuffers:                  "glCreateBuffers",
	procDeleteBuffers:                  "glDeleteBuffers",
	procNamedBufferStorage:             "glNamedBufferStorage",
	procMapNamedBufferRange:            "glMapNamedBufferRange",
	procUnmapNamedBuffer:               "glUnmapNamedBuffer",
	procClearNamedBufferSubData:        "glClearNamedBufferSubData",
	procCopyNamedBufferSubData:         "glCopyNamedBufferSubData",
	procBindBuffer:                     "glBindBuffer",
	procBindBufferRange:                "glBindBufferRange",
	procCreateTextures:                 "glCreateTextures",
	procDeleteTextures:                 "glDeleteTextures",
	procTextureParameteri:              "glTextureParameteri",
	procTextureStorage1D:               "glTextureStorage1D",
	procTextureStorage2D:               "glTextureStorage2D",
	procTextureStorage3D:               "glTextureStorage3D",
	procTextureSubImage1D:              "glTextureSubImage1D",
	procTextureSubImage2D:              "glTextureSubImage2D",
	procGenerateTextureMipmap:          "glGenerateTextureMipmap",
	procBindTextureUnit:                "glBindTextureUnit",
	procCopyImageSubData:               "glCopyImageSubData",
	procCreateFramebuffers:             "glCreateFramebuffers",
	procDeleteFramebuffers:             "glDeleteFramebuffers",
	procBindFramebuffer:                "glBindFramebuffer",
	procNamedFramebufferTexture:        "glNamedFramebufferTexture",
	procNamedFramebufferDrawBuffers:    "glNamedFramebufferDrawBuffers",
	procNamedFramebufferReadBuffer:     "glNamedFramebufferReadBuffer",
	procClearNamedFramebufferfv:        "glClearNamedFramebufferfv",
	procClearNamedFramebufferiv:        "glClearNamedFramebufferiv",
	procInvalidateNamedFramebufferData: "glInvalidateNamedFramebufferData",
	procCheckNamedFramebufferStatus:    "glCheckNamedFramebufferStatus",
	procBlitNamedFramebuffer:           "glBlitNamedFramebuffer",
	procCreateShader:                   "glCreateShader",
	procDeleteShader:                   "glDeleteShader",
	procShaderSource:                   "glShaderSource",
	procCompileShader:                  "glCompileShader",
	procGetShaderiv:                    "glGetShaderiv",
	procGetShaderInfoLog:               "glGetShaderInfoLog",
	procCreateProgram:                  "glCreateProgram",
	procDeleteProgram:                  "glDeleteProgram",
	procAttachShader:                   "glAttachShader",
	procDetachShader:                   "glDetachShader",
	procProgramParameteri:              "glProgramParameteri",
	procLinkProgram:                    "glLinkProgram",
	procValidateProgram:                "glValidateProgram",
	procGetProgramiv:                   "glGetProgramiv",
	procGetProgramInfoLog:              "glGetProgramInfoLog",
	procCreateProgramPipelines:         "glCreateProgramPipelines",
	procDeleteProgramPipelines:         "glDeleteProgramPipelines",
	procUseProgramStages:               "glUseProgramStages",
	procValidateProgramPipeline:        "glValidateProgramPipeline",
	procGetProgramPipelineiv:           "glGetProgramPipelineiv",
	procGetProgramPipelineInfoLog:      "glGetProgramPipelineInfoLog",
	procBindProgramPipeline:            "glBindProgramPipeline",
	procCreateVertexArrays:             "glCreateVertexArrays",
	procDeleteVertexArrays:             "glDeleteVertexArrays",
	procBindVertexArray:                "glBindVertexArray",
	procEnableVertexArrayAttrib:        "glEnableVertexArrayAttrib",
	procVertexArrayAttribFormat:        "glVertexArrayAttribFormat",
	procVertexArrayAttribIFormat:       "glVertexArrayAttribIFormat",
	procVertexArrayAttribBinding:       "glVertexArrayAttribBinding",
	procBindVertexBuffer:               "glBindVertexBuffer",
	procCreateSamplers:                 "glCreateSamplers",
	procDeleteSamplers:                 "glDeleteSamplers",
	procSamplerParameteri:              "glSamplerParameteri",
	procSamplerParameterf:              "glSamplerParameterf",
	procSamplerParameterfv:             "glSamplerParameterfv",
	procBindSampler:                    "glBindSampler",
	procBlendEquationSeparatei:         "glBlendEquationSeparatei",
	procBlendFuncSeparatei:             "glBlendFuncSeparatei",
	procBlendColor:                     "glBlendColor",
	procColorMaski:                     "glColorMaski",
	procDepthMask:                      "glDepthMask",
	procDepthFunc:                      "glDepthFunc",
	procPolygonOffsetClamp:             "glPolygonOffsetClamp",
	procStencilFuncSeparate:            "glStencilFuncSeparate",
	procStencilMaskSeparate:            "glStencilMaskSeparate",
	procStencilOpSeparate:              "glStencilOpSeparate",
	procPolygonMode:                    "glPolygonMode",
	procCullFace:                       "glCullFace",
	procFrontFace:                      "glFrontFace",
	procViewport:                       "glViewport",
	procScissor:                        "glScissor",
	procDrawArrays:                     "glDrawArrays",
	procDrawElements:                   "glDrawElements",
}

// Procs holds one resolved address per required entry point.
type Procs [procCount]unsafe.Pointer

// ProcNames returns the symbol names Resolve looks up, in table order.
func ProcNames() []string {
	names := make([]string, len(procNames))
	copy(names, procNames[:])
	return names
}

// Resolve looks up every required symbol once. A single missing symbol
// fails the whole load; the error lists all of them.
func Resolve(getProcAddr ProcAddressFunc) (*Procs, error) {
	var p Procs
	var missing []string
	for i, name := range procNames {
		addr := getProcAddr(name)
		if addr == nil {
			missing = append(missing, name)
			continue
		}
		p[i] = addr
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingProc, strings.Join(missing, ", "))
	}
	return &p, nil
}
