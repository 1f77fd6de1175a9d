package opengl

import (
	"fmt"
	"strings"

	"github.com/gogpu/glgpu/internal/gl"
)

// ShaderStage identifies the pipeline stage a shader runs in.
type ShaderStage uint8

const (
	ShaderStageVertex ShaderStage = iota + 1
	ShaderStageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vert"
	case ShaderStageFragment:
		return "frag"
	}
	return fmt.Sprintf("ShaderStage(%d)", uint8(s))
}

func (s ShaderStage) glType() uint32 {
	if s == ShaderStageVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func (s ShaderStage) glBit() uint32 {
	if s == ShaderStageVertex {
		return gl.VERTEX_SHADER_BIT
	}
	return gl.FRAGMENT_SHADER_BIT
}

// Shader is a separable single-stage program.
type Shader struct {
	dev     *Device
	program uint32
	stage   ShaderStage
	label   string
}

// ParseStageMarker reads the stage from the first two whitespace
// separated tokens of src, which must be "//" followed by "vert" or
// "frag".
func ParseStageMarker(src string) (ShaderStage, error) {
	fields := strings.Fields(firstLines(src, 2))
	if len(fields) < 2 || fields[0] != "//" {
		return 0, ErrMissingStageMarker
	}
	switch fields[1] {
	case "vert":
		return ShaderStageVertex, nil
	case "frag":
		return ShaderStageFragment, nil
	}
	return 0, ErrMissingStageMarker
}

// firstLines bounds the marker scan so large sources are not split whole.
func firstLines(s string, n int) string {
	end := 0
	for range n {
		i := strings.IndexByte(s[end:], '\n')
		if i < 0 {
			return s
		}
		end += i + 1
	}
	return s[:end]
}

// CreateShader compiles GLSL source carrying a "// vert" or "// frag"
// marker into a separable program for that stage.
func (d *Device) CreateShader(source, label string) (*Shader, error) {
	if err := d.alive(); err != nil {
		return nil, fail(err)
	}
	stage, err := ParseStageMarker(source)
	if err != nil {
		return nil, fail(fmt.Errorf("create shader %q: %w", label, err))
	}
	if label != "" {
		d.pushGroup("create shader: ", label)
		defer d.popGroup()
	}
	program, err := d.buildProgram(stage, source, label)
	if err != nil {
		return nil, fail(fmt.Errorf("create shader %q: %w", label, err))
	}
	return &Shader{dev: d, program: program, stage: stage, label: label}, nil
}

func (d *Device) buildProgram(stage ShaderStage, source, label string) (uint32, error) {
	fns := d.fns
	shader := fns.CreateShader(stage.glType())
	if shader == 0 {
		return 0, ErrCreateFailed
	}
	defer fns.DeleteShader(shader)

	fns.ShaderSource(shader, source)
	fns.CompileShader(shader)
	var status int32
	fns.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	infoLog := fns.GetShaderInfoLog(shader)
	if status == gl.FALSE {
		slogger().Error("opengl: shader compilation log", "label", label, "stage", stage, "log", infoLog)
		return 0, fmt.Errorf("%w: %s", ErrShaderCompile, strings.TrimSpace(infoLog))
	}
	if infoLog != "" {
		slogger().Info("opengl: shader compilation log", "label", label, "stage", stage, "log", infoLog)
	}

	program := fns.CreateProgram()
	if program == 0 {
		return 0, ErrCreateFailed
	}
	fns.ProgramParameteri(program, gl.PROGRAM_SEPARABLE, gl.TRUE)
	fns.AttachShader(program, shader)
	fns.LinkProgram(program)
	fns.DetachShader(program, shader)
	if err := d.programStatus(program, gl.LINK_STATUS, label, ErrProgramLink); err != nil {
		fns.DeleteProgram(program)
		return 0, err
	}
	fns.ValidateProgram(program)
	if err := d.programStatus(program, gl.VALIDATE_STATUS, label, ErrProgramValidate); err != nil {
		fns.DeleteProgram(program)
		return 0, err
	}
	gl.Check(fns, "glValidateProgram")
	d.label(gl.PROGRAM, program, label)
	return program, nil
}

func (d *Device) programStatus(program, pname uint32, label string, sentinel error) error {
	var status int32
	d.fns.GetProgramiv(program, pname, &status)
	infoLog := d.fns.GetProgramInfoLog(program)
	if status == gl.FALSE {
		slogger().Error("opengl: program log", "label", label, "log", infoLog)
		return fmt.Errorf("%w: %s", sentinel, strings.TrimSpace(infoLog))
	}
	if infoLog != "" {
		slogger().Info("opengl: program log", "label", label, "log", infoLog)
	}
	return nil
}

// Handle returns the native program name, 0 once destroyed.
func (s *Shader) Handle() uint32 {
	if s == nil {
		return 0
	}
	return s.program
}

// Stage returns the stage parsed from the source marker.
func (s *Shader) Stage() ShaderStage { return s.stage }

// Label returns the debug label given at creation.
func (s *Shader) Label() string { return s.label }

// Destroy releases the program. Calling it more than once is a no-op.
func (s *Shader) Destroy() {
	if s == nil || s.program == 0 {
		return
	}
	s.dev.fns.DeleteProgram(s.program)
	gl.Check(s.dev.fns, "glDeleteProgram")
	s.program = 0
}
