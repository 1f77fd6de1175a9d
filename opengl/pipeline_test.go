package opengl

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/glgpu/internal/gl"
	"github.com/gogpu/glgpu/internal/gl/gltest"
)

func TestCreatePipeline(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	desc := alphaPipeline()
	desc.Attributes = []VertexAttribute{
		{Format: gputypes.VertexFormatFloat32x2, Stride: 20},
		{Format: gputypes.VertexFormatUnorm8x4, Offset: 8},
		{Format: gputypes.VertexFormatUint32, Offset: 12},
	}
	p := newTestPipeline(t, d, desc)

	if p.Stride() != 20 || p.Label() != "A" {
		t.Errorf("Stride() = %d, Label() = %q", p.Stride(), p.Label())
	}
	if f.Label(p.VertexArray()) != "A" || f.Label(p.Program()) != "A" {
		t.Error("pipeline objects not labeled")
	}

	float := f.Find("glVertexArrayAttribFormat")
	if len(float) != 2 {
		t.Fatalf("glVertexArrayAttribFormat calls = %d, want 2", len(float))
	}
	wantFloat := [][]any{
		{p.VertexArray(), uint32(0), int32(2), uint32(gl.FLOAT), false, uint32(0)},
		{p.VertexArray(), uint32(1), int32(4), uint32(gl.UNSIGNED_BYTE), true, uint32(8)},
	}
	for i, want := range wantFloat {
		for j := range want {
			if float[i].Args[j] != want[j] {
				t.Errorf("attribute %d arg %d = %v, want %v", i, j, float[i].Args[j], want[j])
			}
		}
	}
	integer := f.Find("glVertexArrayAttribIFormat")
	if len(integer) != 1 || integer[0].Args[1] != uint32(2) || integer[0].Args[3] != uint32(gl.UNSIGNED_INT) {
		t.Errorf("glVertexArrayAttribIFormat calls = %v", integer)
	}
	if n := f.Count("glVertexArrayAttribBinding"); n != 3 {
		t.Errorf("glVertexArrayAttribBinding calls = %d, want 3", n)
	}

	vs, fs := p.Descriptor().Vertex.Handle(), p.Descriptor().Fragment.Handle()
	if vs == 0 || fs == 0 {
		t.Fatalf("shader handles = %d, %d", vs, fs)
	}
	stages := f.Find("glUseProgramStages")
	if len(stages) != 2 ||
		stages[0].Args[0] != p.Program() ||
		stages[0].Args[1] != uint32(gl.VERTEX_SHADER_BIT) || stages[0].Args[2] != vs ||
		stages[1].Args[1] != uint32(gl.FRAGMENT_SHADER_BIT) || stages[1].Args[2] != fs {
		t.Errorf("glUseProgramStages calls = %v", stages)
	}
	if f.Count("glValidateProgramPipeline") != 1 {
		t.Error("program pipeline not validated")
	}
}

func TestPipelineState(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	p := newTestPipeline(t, d, alphaPipeline())
	s := p.state

	if !s.depthWrite || s.depthFunc != gl.LESS {
		t.Errorf("depth = %v, %#x", s.depthWrite, s.depthFunc)
	}
	if s.bias != [3]float32{1.5, 2, 0.25} {
		t.Errorf("bias = %v, want factor, units, clamp", s.bias)
	}
	wantFront := stencilFace{fn: gl.EQUAL, ref: 3, readMask: 0xff, writeMask: 0x0f, fail: gl.KEEP, depthFail: gl.KEEP, pass: gl.REPLACE}
	if s.front != wantFront {
		t.Errorf("front = %+v, want %+v", s.front, wantFront)
	}
	if s.back.fn != gl.ALWAYS || s.back.pass != gl.KEEP || s.back.ref != 3 {
		t.Errorf("back = %+v", s.back)
	}
	if !s.cull || s.cullFace != gl.BACK || s.frontFace != gl.CW {
		t.Errorf("cull = %v, %#x, front face %#x", s.cull, s.cullFace, s.frontFace)
	}
	if s.primitive != gl.TRIANGLES || s.polygonMode != gl.FILL {
		t.Errorf("primitive = %#x, polygon mode = %#x", s.primitive, s.polygonMode)
	}

	slot0 := blendSlot{
		enabled: true,
		eqRGB:   gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.SRC_ALPHA, dstRGB: gl.ONE_MINUS_SRC_ALPHA,
		srcAlpha: gl.ONE, dstAlpha: gl.ONE_MINUS_SRC_ALPHA,
		mask: gputypes.ColorWriteMaskAll,
	}
	if s.blend[0] != slot0 {
		t.Errorf("blend[0] = %+v, want %+v", s.blend[0], slot0)
	}
	unused := blendSlot{
		eqRGB: gl.FUNC_ADD, eqAlpha: gl.FUNC_ADD,
		srcRGB: gl.ONE, dstRGB: gl.ZERO, srcAlpha: gl.ONE, dstAlpha: gl.ZERO,
		mask: gputypes.ColorWriteMaskAll,
	}
	for i := 1; i < MaxColorAttachments; i++ {
		if s.blend[i] != unused {
			t.Errorf("blend[%d] = %+v, want pass-through", i, s.blend[i])
		}
	}
}

func TestPipelineDescriptorCopy(t *testing.T) {
	d, _, _ := newTestDevice(t, DeviceOptions{})
	desc := alphaPipeline()
	p := newTestPipeline(t, d, desc)

	desc.Attributes[0].Stride = 99
	if p.Stride() != 16 || p.Descriptor().Attributes[0].Stride != 16 {
		t.Error("pipeline aliases the caller's attribute slice")
	}
	got := p.Descriptor()
	got.Colors[0].BlendEnabled = false
	if !p.Descriptor().Colors[0].BlendEnabled {
		t.Error("Descriptor() aliases the pipeline's color slice")
	}
}

func TestCreatePipelineErrors(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	vs, err := d.CreateShader(testVertexSource, "")
	if err != nil {
		t.Fatalf("CreateShader() error = %v", err)
	}
	fs, err := d.CreateShader(testFragmentSource, "")
	if err != nil {
		t.Fatalf("CreateShader() error = %v", err)
	}
	dead, err := d.CreateShader(testFragmentSource, "")
	if err != nil {
		t.Fatalf("CreateShader() error = %v", err)
	}
	dead.Destroy()

	tests := []struct {
		name string
		desc PipelineDescriptor
		want error
	}{
		{"nil vertex", PipelineDescriptor{Fragment: fs}, ErrNilShader},
		{"nil fragment", PipelineDescriptor{Vertex: vs}, ErrNilShader},
		{"destroyed fragment", PipelineDescriptor{Vertex: vs, Fragment: dead}, ErrNilShader},
		{"swapped stages", PipelineDescriptor{Vertex: fs, Fragment: vs}, ErrShaderStage},
		{"too many attributes", PipelineDescriptor{Vertex: vs, Fragment: fs, Attributes: make([]VertexAttribute, 17)}, ErrTooManyAttributes},
		{"bad attribute format", PipelineDescriptor{Vertex: vs, Fragment: fs, Attributes: []VertexAttribute{{}}}, ErrUnsupported},
		{"too many colors", PipelineDescriptor{Vertex: vs, Fragment: fs, Colors: make([]ColorTarget, 9)}, ErrTooManyAttachments},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f.Reset()
			if _, err := d.CreatePipeline(tt.desc); !errors.Is(err, tt.want) {
				t.Errorf("CreatePipeline() error = %v, want %v", err, tt.want)
			}
			if len(f.Calls) != 0 {
				t.Errorf("validation failure issued calls: %v", f.Names())
			}
		})
	}
}

func TestCreatePipelineFailures(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *gltest.Fake)
		want  error
	}{
		{"vertex array", func(f *gltest.Fake) { f.FailCreate["CreateVertexArrays"] = true }, ErrCreateFailed},
		{"program pipeline", func(f *gltest.Fake) { f.FailCreate["CreateProgramPipelines"] = true }, ErrCreateFailed},
		{"validation", func(f *gltest.Fake) { f.ValidateError = "stage mismatch" }, ErrProgramValidate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, f, _ := newTestDevice(t, DeviceOptions{})
			vs, _ := d.CreateShader(testVertexSource, "")
			fs, _ := d.CreateShader(testFragmentSource, "")
			tt.setup(f)
			_, err := d.CreatePipeline(PipelineDescriptor{Label: "p", Vertex: vs, Fragment: fs})
			if !errors.Is(err, tt.want) {
				t.Fatalf("CreatePipeline() error = %v, want %v", err, tt.want)
			}
			if n := f.Live(gltest.KindVertexArray) + f.Live(gltest.KindProgramPipeline); n != 0 {
				t.Errorf("%d pipeline objects leaked", n)
			}
			if g := f.DebugGroups(); len(g) != 0 {
				t.Errorf("debug groups left open: %v", g)
			}
		})
	}
}

func TestPipelineDestroy(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	p := newTestPipeline(t, d, linePipeline())
	if !p.alive() {
		t.Fatal("new pipeline not alive")
	}
	p.Destroy()
	p.Destroy()
	if p.alive() {
		t.Error("destroyed pipeline still alive")
	}
	if f.Count("glDeleteProgramPipelines") != 1 || f.Count("glDeleteVertexArrays") != 1 {
		t.Errorf("delete calls = %v", f.Names())
	}
	var nilPipeline *Pipeline
	nilPipeline.Destroy()
	if nilPipeline.alive() {
		t.Error("nil pipeline alive")
	}
}
