package opengl

import (
	"errors"
	"strings"
	"testing"
)

const testWGSL = `
@vertex
fn vs_main(@builtin(vertex_index) i: u32) -> @builtin(position) vec4<f32> {
    return vec4<f32>(0.0, 0.0, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(1.0, 0.0, 0.0, 1.0);
}

@compute @workgroup_size(1)
fn cs_main() {
}
`

func TestTranslateWGSL(t *testing.T) {
	tests := []struct {
		name   string
		entry  string
		stage  ShaderStage
		marker string
	}{
		{"first entry point", "", ShaderStageVertex, "// vert\n"},
		{"vertex", "vs_main", ShaderStageVertex, "// vert\n"},
		{"fragment", "fs_main", ShaderStageFragment, "// frag\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, stage, err := TranslateWGSL(testWGSL, tt.entry)
			if err != nil {
				t.Fatalf("TranslateWGSL() error = %v", err)
			}
			if stage != tt.stage {
				t.Errorf("stage = %v, want %v", stage, tt.stage)
			}
			if !strings.HasPrefix(src, tt.marker) {
				t.Errorf("source does not start with %q:\n%s", tt.marker, src)
			}
			if !strings.Contains(src, "#version 450") {
				t.Errorf("source lacks a 4.50 version directive:\n%s", src)
			}
			if got, err := ParseStageMarker(src); err != nil || got != tt.stage {
				t.Errorf("ParseStageMarker(translated) = %v, %v", got, err)
			}
		})
	}
}

func TestTranslateWGSLErrors(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		entry string
		want  error
	}{
		{"compute stage", testWGSL, "cs_main", ErrUnsupported},
		{"missing entry point", testWGSL, "nope", nil},
		{"no entry points", "fn helper() -> f32 { return 1.0; }", "", ErrUnsupported},
		{"parse error", "@vertex fn (", "", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, _, err := TranslateWGSL(tt.src, tt.entry)
			if err == nil {
				t.Fatalf("TranslateWGSL() = %q, want an error", src)
			}
			if tt.want != nil && !errors.Is(err, tt.want) {
				t.Errorf("TranslateWGSL() error = %v, want %v", err, tt.want)
			}
			if !strings.HasPrefix(err.Error(), "translate wgsl:") {
				t.Errorf("error %q lacks the translate wgsl prefix", err)
			}
		})
	}
}

func TestTranslateWGSLMemoized(t *testing.T) {
	first, _, err := TranslateWGSL(testWGSL, "vs_main")
	if err != nil {
		t.Fatalf("TranslateWGSL() error = %v", err)
	}
	before := translations.Stats().Hits
	second, stage, err := TranslateWGSL(testWGSL, "vs_main")
	if err != nil || second != first || stage != ShaderStageVertex {
		t.Fatalf("second TranslateWGSL() = %v, %v", stage, err)
	}
	if translations.Stats().Hits != before+1 {
		t.Error("repeated translation missed the cache")
	}

	// Failures are not memoized.
	TranslateWGSL(testWGSL, "cs_main")
	if _, ok := translations.Get(translationKey{testWGSL, "cs_main"}); ok {
		t.Error("failed translation was cached")
	}
}

func TestCreateShaderFromWGSL(t *testing.T) {
	d, f, _ := newTestDevice(t, DeviceOptions{})
	src, _, err := TranslateWGSL(testWGSL, "fs_main")
	if err != nil {
		t.Fatalf("TranslateWGSL() error = %v", err)
	}
	s, err := d.CreateShader(src, "wgsl fs")
	if err != nil {
		t.Fatalf("CreateShader() error = %v", err)
	}
	if s.Stage() != ShaderStageFragment {
		t.Errorf("Stage() = %v, want frag", s.Stage())
	}
	if got := f.Find("glShaderSource")[0].Args[1]; got != src {
		t.Error("translated source not passed to the driver unchanged")
	}
}
