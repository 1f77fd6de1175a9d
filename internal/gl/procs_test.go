package gl

import (
	"errors"
	"strings"
	"testing"
	"unsafe"
)

func fakeAddr(missing ...string) ProcAddressFunc {
	skip := make(map[string]bool, len(missing))
	for _, m := range missing {
		skip[m] = true
	}
	var sentinel byte
	return func(name string) unsafe.Pointer {
		if skip[name] {
			return nil
		}
		return unsafe.Pointer(&sentinel)
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		missing []string
		wantErr bool
	}{
		{"all present", nil, false},
		{"one missing", []string{"glCreateBuffers"}, true},
		{"several missing", []string{"glClipControl", "glPolygonOffsetClamp"}, true},
		{"unknown name ignored", []string{"glBegin"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			procs, err := Resolve(fakeAddr(tt.missing...))
			if tt.wantErr {
				if !errors.Is(err, ErrMissingProc) {
					t.Fatalf("Resolve() error = %v, want ErrMissingProc", err)
				}
				for _, m := range tt.missing {
					if !strings.Contains(err.Error(), m) {
						t.Errorf("error %q does not name %s", err, m)
					}
				}
				if procs != nil {
					t.Error("Resolve() returned procs alongside an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			for i, p := range procs {
				if p == nil {
					t.Errorf("proc %s not resolved", procNames[i])
				}
			}
		})
	}
}

func TestProcNames(t *testing.T) {
	names := ProcNames()
	if len(names) != int(procCount) {
		t.Fatalf("len(ProcNames()) = %d, want %d", len(names), procCount)
	}
	seen := make(map[string]bool)
	for i, n := range names {
		if !strings.HasPrefix(n, "gl") {
			t.Errorf("names[%d] = %q, want gl prefix", i, n)
		}
		if seen[n] {
			t.Errorf("duplicate proc %q", n)
		}
		seen[n] = true
	}

	names[0] = "mutated"
	if procNames[0] == "mutated" {
		t.Error("ProcNames() exposed the internal table")
	}
}

func TestErrorString(t *testing.T) {
	tests := []struct {
		code uint32
		want string
	}{
		{NO_ERROR, "GL_NO_ERROR"},
		{INVALID_ENUM, "GL_INVALID_ENUM"},
		{OUT_OF_MEMORY, "GL_OUT_OF_MEMORY"},
		{0x1234, "0x1234"},
	}
	for _, tt := range tests {
		if got := ErrorString(tt.code); got != tt.want {
			t.Errorf("ErrorString(%#x) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
