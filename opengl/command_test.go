package opengl

import (
	"testing"
)

func TestCommandTypeString(t *testing.T) {
	tests := []struct {
		c    CommandType
		want string
	}{
		{CmdNone, "None"},
		{CmdStartRenderPass, "StartRenderPass"},
		{CmdSetPipeline, "SetPipeline"},
		{CmdDrawIndexed, "DrawIndexed"},
		{CmdCopyBufferToTexture2D, "CopyBufferToTexture2D"},
		{cmdCount, "Unknown"},
		{CommandType(200), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("CommandType(%d).String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

// Every command must encode to exactly its table size, since replay
// relies on the table to find the next record.
func TestCommandSizes(t *testing.T) {
	for tag := CmdNone; tag < cmdCount; tag++ {
		cmd := newCommand(tag)
		if tag == CmdNone {
			cmd = &EndOfCommands{}
		}
		if cmd == nil {
			t.Errorf("newCommand(%v) = nil", tag)
			continue
		}
		if cmd.Type() != tag {
			t.Errorf("newCommand(%v).Type() = %v", tag, cmd.Type())
		}
		buf := make([]byte, commandSizes[tag]+16)
		w := writer{b: buf, intern: func(string) uint32 { return 1 }}
		cmd.encode(&w)
		if w.n != commandSizes[tag] {
			t.Errorf("%v encodes %d bytes, table says %d", tag, w.n, commandSizes[tag])
		}
		r := reader{b: buf, lookup: func(uint32) string { return "" }}
		cmd.decode(&r)
		if r.n != w.n {
			t.Errorf("%v decodes %d bytes, encodes %d", tag, r.n, w.n)
		}
	}
}

func TestLabeledCommands(t *testing.T) {
	for tag := CmdNone; tag < cmdCount; tag++ {
		want := tag == CmdStartRenderPass || tag == CmdSetPipeline || tag == CmdStartBlitPass
		if tag.labeled() != want {
			t.Errorf("%v.labeled() = %v, want %v", tag, tag.labeled(), want)
		}
	}
}

func TestStartRenderPassEndOffset(t *testing.T) {
	buf := make([]byte, commandSizes[CmdStartRenderPass])
	(&StartRenderPassCommand{End: 0xdeadbeef}).encode(&writer{b: buf})
	var got StartRenderPassCommand
	got.decode(&reader{b: buf})
	if got.End != 0xdeadbeef {
		t.Fatalf("End = %#x", got.End)
	}
	r := reader{b: buf, n: endOffset}
	if v := r.u32(); v != 0xdeadbeef {
		t.Errorf("u32 at endOffset = %#x, want the End field", v)
	}
}

func TestLabelTable(t *testing.T) {
	var lt labelTable
	a := lt.intern("a")
	b := lt.intern("b")
	if a == 0 || b == 0 || a == b {
		t.Fatalf("intern indices = %d, %d", a, b)
	}
	if lt.lookup(a) != "a" || lt.lookup(0) != "" || lt.lookup(99) != "" {
		t.Error("lookup mismatch")
	}
	if lt.live() != 2 {
		t.Errorf("live() = %d, want 2", lt.live())
	}
	lt.release(a)
	lt.release(0)
	if lt.lookup(a) != "" || lt.live() != 1 {
		t.Errorf("after release: lookup = %q, live = %d", lt.lookup(a), lt.live())
	}
	lt.releaseAll()
	if lt.live() != 0 || lt.lookup(b) != "" {
		t.Error("releaseAll left labels behind")
	}
}
