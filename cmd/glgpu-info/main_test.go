package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTranslate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.wgsl")
	src := `
@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return vec4<f32>(0.0, 1.0, 0.0, 1.0);
}
`
	if err := os.WriteFile(path, []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := translate(&out, path, ""); err != nil {
		t.Fatalf("translate() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "// frag\n") {
		t.Errorf("output does not start with the stage marker:\n%s", out.String())
	}

	if err := translate(&out, filepath.Join(t.TempDir(), "missing.wgsl"), ""); !os.IsNotExist(err) {
		t.Errorf("translate(missing) error = %v, want not exist", err)
	}
}
