package gltest

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/gogpu/glgpu/internal/gl"
)

func TestKindString(t *testing.T) {
	if KindSampler.String() != "Sampler" || KindBuffer.String() != "Buffer" {
		t.Error("kind names mismatch")
	}
	if got := Kind(200).String(); got != "Unknown" {
		t.Errorf("Kind(200).String() = %q", got)
	}
}

func TestCallString(t *testing.T) {
	c := Call{Name: "glViewport", Args: []any{int32(0), int32(0), int32(64), int32(32)}}
	if got := c.String(); got != "glViewport(0, 0, 64, 32)" {
		t.Errorf("String() = %q", got)
	}
}

func TestObjectTracking(t *testing.T) {
	f := New()
	b := f.CreateBuffers()
	tex := f.CreateTextures(gl.TEXTURE_2D)
	if b == 0 || tex == 0 || b == tex {
		t.Fatalf("names = %d, %d", b, tex)
	}
	if f.Live(KindBuffer) != 1 || f.Live(KindTexture) != 1 || f.LiveTotal() != 2 {
		t.Errorf("live = %d buffers, %d textures", f.Live(KindBuffer), f.Live(KindTexture))
	}
	f.ObjectLabel(gl.BUFFER, b, "vbo")
	f.DeleteBuffers(b)
	if f.IsLive(b) || f.Label(b) != "" {
		t.Error("deleted buffer still tracked")
	}

	f.FailCreate["CreateBuffers"] = true
	if name := f.CreateBuffers(); name != 0 {
		t.Errorf("CreateBuffers() with failure knob = %d, want 0", name)
	}
	if f.LiveTotal() != 1 {
		t.Errorf("LiveTotal() = %d, want 1", f.LiveTotal())
	}
	if f.Count("glCreateBuffers") != 2 {
		t.Error("failed create not recorded")
	}
}

func TestFramebufferStatus(t *testing.T) {
	tests := []struct {
		name  string
		setup func(f *Fake, fb uint32)
		want  uint32
	}{
		{"no attachments", func(*Fake, uint32) {}, gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT},
		{"complete", func(f *Fake, fb uint32) {
			f.NamedFramebufferTexture(fb, gl.COLOR_ATTACHMENT0, texture(f, gl.RGBA8), 0)
			f.NamedFramebufferDrawBuffers(fb, []uint32{gl.COLOR_ATTACHMENT0})
		}, gl.FRAMEBUFFER_COMPLETE},
		{"draw buffer names empty slot", func(f *Fake, fb uint32) {
			f.NamedFramebufferTexture(fb, gl.COLOR_ATTACHMENT0, texture(f, gl.RGBA8), 0)
			f.NamedFramebufferDrawBuffers(fb, []uint32{gl.COLOR_ATTACHMENT0, gl.COLOR_ATTACHMENT0 + 1})
		}, gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER},
		{"depth on color slot", func(f *Fake, fb uint32) {
			f.NamedFramebufferTexture(fb, gl.COLOR_ATTACHMENT0, texture(f, gl.DEPTH_COMPONENT32F), 0)
		}, gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT},
		{"mixed color formats", func(f *Fake, fb uint32) {
			f.NamedFramebufferTexture(fb, gl.COLOR_ATTACHMENT0, texture(f, gl.RGBA8), 0)
			f.NamedFramebufferTexture(fb, gl.COLOR_ATTACHMENT0+1, texture(f, gl.RGBA16F), 0)
		}, gl.FRAMEBUFFER_UNSUPPORTED},
		{"override", func(f *Fake, fb uint32) {
			f.NamedFramebufferTexture(fb, gl.COLOR_ATTACHMENT0, texture(f, gl.RGBA8), 0)
			f.FramebufferStatus = gl.FRAMEBUFFER_UNSUPPORTED
		}, gl.FRAMEBUFFER_UNSUPPORTED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New()
			fb := f.CreateFramebuffers()
			tt.setup(f, fb)
			if got := f.CheckNamedFramebufferStatus(fb, gl.DRAW_FRAMEBUFFER); got != tt.want {
				t.Errorf("status = %#x, want %#x", got, tt.want)
			}
		})
	}
}

func texture(f *Fake, internalFormat uint32) uint32 {
	name := f.CreateTextures(gl.TEXTURE_2D)
	f.TextureStorage2D(name, 1, internalFormat, 4, 4)
	return name
}

func TestUploadCapture(t *testing.T) {
	f := New()
	tex := texture(f, gl.RGBA8)
	buf := f.CreateBuffers()
	src := make([]byte, 40)
	for i := range src {
		src[i] = byte(i)
	}
	f.NamedBufferStorage(buf, len(src), unsafe.Pointer(&src[0]), 0)

	// Nothing bound: the write is recorded but not captured.
	f.TextureSubImage2D(tex, 0, 0, 0, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, 0)
	f.BindBuffer(gl.PIXEL_UNPACK_BUFFER, buf)
	f.TextureSubImage2D(tex, 0, 1, 1, 2, 2, gl.RGBA, gl.UNSIGNED_BYTE, 8)
	f.TextureSubImage2D(tex, 0, 0, 0, 4, 4, gl.RGBA, gl.UNSIGNED_BYTE, 0)

	ups := f.TextureInfo(tex).Uploads
	if len(ups) != 1 {
		t.Fatalf("uploads = %d, want 1", len(ups))
	}
	if ups[0].X != 1 || ups[0].Y != 1 || !bytes.Equal(ups[0].Data, src[8:24]) {
		t.Errorf("upload = %+v", ups[0])
	}
}

func TestTexelSize(t *testing.T) {
	tests := []struct {
		format, typ uint32
		want        int
	}{
		{gl.RED, gl.UNSIGNED_BYTE, 1},
		{gl.RG, gl.HALF_FLOAT, 4},
		{gl.RGBA, gl.FLOAT, 16},
		{gl.RGBA_INTEGER, gl.UNSIGNED_SHORT, 8},
		{gl.RGBA, gl.UNSIGNED_INT_2_10_10_10_REV, 4},
		{gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8, 4},
		{gl.DEPTH_STENCIL, gl.FLOAT_32_UNSIGNED_INT_24_8_REV, 8},
	}
	for _, tt := range tests {
		if got := texelSize(tt.format, tt.typ); got != tt.want {
			t.Errorf("texelSize(%#x, %#x) = %d, want %d", tt.format, tt.typ, got, tt.want)
		}
	}
}

func TestDebugGroupsAndEmit(t *testing.T) {
	f := New()
	f.Emit(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_ERROR, 1, gl.DEBUG_SEVERITY_HIGH, "dropped")

	var got []string
	f.DebugMessageCallback(func(_, _, _, _ uint32, msg string) { got = append(got, msg) })
	f.Emit(gl.DEBUG_SOURCE_API, gl.DEBUG_TYPE_ERROR, 1, gl.DEBUG_SEVERITY_HIGH, "seen")
	if len(got) != 1 || got[0] != "seen" {
		t.Errorf("callback messages = %v", got)
	}

	f.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, "outer")
	f.PushDebugGroup(gl.DEBUG_SOURCE_APPLICATION, 0, "inner")
	f.PopDebugGroup()
	if g := f.DebugGroups(); len(g) != 1 || g[0] != "outer" {
		t.Errorf("DebugGroups() = %v", g)
	}
	f.PopDebugGroup()
	f.PopDebugGroup()
	if len(f.DebugGroups()) != 0 {
		t.Error("unbalanced pop left groups")
	}
}

func TestProcAddressMissing(t *testing.T) {
	f := New()
	f.Missing = []string{"glClipControl"}
	if f.ProcAddress("glClipControl") != nil {
		t.Error("missing symbol resolved")
	}
	if f.ProcAddress("glViewport") == nil {
		t.Error("present symbol not resolved")
	}
	if _, err := f.Load(f.ProcAddress); err == nil {
		t.Error("Load() succeeded with a missing symbol")
	}
}
