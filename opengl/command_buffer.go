package opengl

import (
	"fmt"
	"math/bits"
	"sync"
)

// CommandBufferState is the lifecycle state of a command buffer.
type CommandBufferState uint8

const (
	CommandBufferRecording CommandBufferState = iota
	CommandBufferSubmitted
	CommandBufferAbandoned
)

func (s CommandBufferState) String() string {
	switch s {
	case CommandBufferRecording:
		return "Recording"
	case CommandBufferSubmitted:
		return "Submitted"
	case CommandBufferAbandoned:
		return "Abandoned"
	}
	return "Unknown"
}

// labelTable owns the label strings referenced from arena records.
// Index 0 means no label.
type labelTable struct {
	s []string
}

func (t *labelTable) intern(s string) uint32 {
	if len(t.s) == 0 {
		t.s = append(t.s, "")
	}
	t.s = append(t.s, s)
	return uint32(len(t.s) - 1)
}

func (t *labelTable) lookup(idx uint32) string {
	if int(idx) < len(t.s) {
		return t.s[idx]
	}
	return ""
}

func (t *labelTable) release(idx uint32) {
	if idx != 0 && int(idx) < len(t.s) {
		t.s[idx] = ""
	}
}

func (t *labelTable) releaseAll() { t.s = nil }

// live counts labels not yet released.
func (t *labelTable) live() int {
	n := 0
	for i := 1; i < len(t.s); i++ {
		if t.s[i] != "" {
			n++
		}
	}
	return n
}

// recorder receives the commands of one pass. CommandBuffer appends them
// to its arena, ImmediateEncoder executes them on the spot.
type recorder interface {
	begin(start Command) error
	record(cmd Command) error
	end(stop Command) error
}

// CommandBuffer records passes into a byte arena that Device.Submit
// replays. A command buffer is submitted or abandoned exactly once.
type CommandBuffer struct {
	mu  sync.Mutex
	dev *Device

	arena   []byte
	maxSize uint64
	labels  labelTable
	state   CommandBufferState

	// open is the tag of the pass being recorded, CmdNone when idle.
	open CommandType
	// startOff is the arena offset of the open render pass start record.
	// startRec views that record's payload and is re-sliced on growth.
	startOff int
	startRec []byte
}

func newCommandBuffer(d *Device, initial, maxSize uint64) *CommandBuffer {
	initial = min(initial, maxSize)
	return &CommandBuffer{
		dev:     d,
		arena:   make([]byte, 0, initial),
		maxSize: maxSize,
	}
}

// State returns the lifecycle state.
func (cb *CommandBuffer) State() CommandBufferState {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

// Len returns the number of arena bytes in use.
func (cb *CommandBuffer) Len() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return len(cb.arena)
}

// Cap returns the arena capacity.
func (cb *CommandBuffer) Cap() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cap(cb.arena)
}

// Labels returns the number of labels the buffer still owns.
func (cb *CommandBuffer) Labels() int {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.labels.live()
}

// Commands decodes the arena. Labels already released by replay come
// back empty.
func (cb *CommandBuffer) Commands() ([]Command, error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	var out []Command
	err := walk(cb.arena, func(off int, tag CommandType, payload []byte) error {
		cmd := newCommand(tag)
		cmd.decode(&reader{b: payload, lookup: cb.labels.lookup})
		out = append(out, cmd)
		return nil
	})
	return out, err
}

// walk visits every record up to CmdNone or the end of the arena.
func walk(arena []byte, fn func(off int, tag CommandType, payload []byte) error) error {
	for off := 0; off < len(arena); {
		tag := CommandType(arena[off])
		if tag == CmdNone {
			return nil
		}
		if tag >= cmdCount {
			return fmt.Errorf("offset %d: tag %d: %w", off, tag, ErrCorruptCommand)
		}
		size := commandSizes[tag]
		if off+1+size > len(arena) {
			return fmt.Errorf("offset %d: %v payload truncated: %w", off, tag, ErrCorruptCommand)
		}
		if err := fn(off, tag, arena[off+1:off+1+size]); err != nil {
			return err
		}
		off += 1 + size
	}
	return nil
}

func (cb *CommandBuffer) usable() error {
	switch cb.state {
	case CommandBufferSubmitted:
		return ErrSubmitted
	case CommandBufferAbandoned:
		return ErrAbandoned
	}
	return nil
}

// ensure grows the arena so n more bytes fit. Capacity doubles until the
// request fits, capped at maxSize.
func (cb *CommandBuffer) ensure(n uint64) error {
	used := uint64(len(cb.arena))
	need, carry := bits.Add64(used, n, 0)
	if carry != 0 {
		return ErrCommandOverflow
	}
	if need > cb.maxSize {
		return fmt.Errorf("%d bytes > %d: %w", need, cb.maxSize, ErrCommandBufferTooLarge)
	}
	capacity := uint64(cap(cb.arena))
	if need <= capacity {
		return nil
	}

	grown := max(capacity, 64)
	for grown < need {
		grown, carry = bits.Add64(grown, grown, 0)
		if carry != 0 {
			return ErrCommandOverflow
		}
	}
	grown = min(grown, cb.maxSize)

	arena := make([]byte, used, grown)
	copy(arena, cb.arena)
	cb.arena = arena
	if cb.startRec != nil {
		cb.startRec = cb.arena[cb.startOff+1 : cb.startOff+1+commandSizes[CmdStartRenderPass]]
	}
	slogger().Debug("opengl: command arena grown", "from", capacity, "to", grown)
	return nil
}

// push appends cmd and returns its record offset.
func (cb *CommandBuffer) push(cmd Command) (int, error) {
	tag := cmd.Type()
	size := commandSizes[tag]
	if err := cb.ensure(uint64(1 + size)); err != nil {
		return 0, err
	}
	off := len(cb.arena)
	cb.arena = cb.arena[:off+1+size]
	cb.arena[off] = byte(tag)
	w := writer{b: cb.arena[off+1:], intern: cb.labels.intern}
	cmd.encode(&w)
	if w.n != size {
		panic(fmt.Sprintf("opengl: %v encoded %d bytes, want %d", tag, w.n, size))
	}
	return off, nil
}

func (cb *CommandBuffer) begin(start Command) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err := cb.usable(); err != nil {
		return fail(err)
	}
	if cb.open != CmdNone {
		return violation(fmt.Errorf("begin %v inside %v: %w", start.Type(), cb.open, ErrNestedPass))
	}
	off, err := cb.push(start)
	if err != nil {
		return fail(fmt.Errorf("begin %v: %w", start.Type(), err))
	}
	cb.open = start.Type()
	if start.Type() == CmdStartRenderPass {
		cb.startOff = off
		cb.startRec = cb.arena[off+1 : off+1+commandSizes[CmdStartRenderPass]]
	}
	return nil
}

func (cb *CommandBuffer) record(cmd Command) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err := cb.usable(); err != nil {
		return fail(err)
	}
	if _, err := cb.push(cmd); err != nil {
		return fail(fmt.Errorf("record %v: %w", cmd.Type(), err))
	}
	return nil
}

// end appends the closing record and patches the open render pass start
// with its offset.
func (cb *CommandBuffer) end(stop Command) error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err := cb.usable(); err != nil {
		return fail(err)
	}
	off, err := cb.push(stop)
	if err != nil {
		return fail(fmt.Errorf("end %v: %w", cb.open, err))
	}
	if cb.startRec != nil {
		w := writer{b: cb.startRec, n: endOffset}
		w.u32(uint32(off))
	}
	cb.open = CmdNone
	cb.startRec = nil
	return nil
}

// BeginRenderPass starts recording a render pass.
func (cb *CommandBuffer) BeginRenderPass(desc RenderPassDescriptor) (*RenderPass, error) {
	return beginRenderPass(cb, desc)
}

// BeginBlitPass starts recording a blit pass.
func (cb *CommandBuffer) BeginBlitPass(label string) (*BlitPass, error) {
	return beginBlitPass(cb, label)
}

// Abandon drops the recorded commands and releases their labels.
func (cb *CommandBuffer) Abandon() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if cb.state == CommandBufferSubmitted {
		return fail(ErrSubmitted)
	}
	cb.labels.releaseAll()
	cb.arena = nil
	cb.open = CmdNone
	cb.startRec = nil
	cb.state = CommandBufferAbandoned
	return nil
}

// submit terminates the arena and replays it. Called by Device.Submit
// with the device lock held.
func (cb *CommandBuffer) submit() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	if err := cb.usable(); err != nil {
		return fail(err)
	}
	if cb.open != CmdNone {
		return fail(fmt.Errorf("submit: %v: %w", cb.open, ErrPassOpen))
	}
	if _, err := cb.push(&EndOfCommands{}); err != nil {
		return fail(fmt.Errorf("submit: %w", err))
	}

	err := replay(cb.dev.fns, cb.arena, &cb.labels)
	cb.labels.releaseAll()
	cb.state = CommandBufferSubmitted
	if err != nil {
		return fail(fmt.Errorf("submit: %w", err))
	}
	return nil
}

// EndOfCommands is the CmdNone terminator appended by Submit.
type EndOfCommands struct{}

// Type implements Command.
func (EndOfCommands) Type() CommandType { return CmdNone }

func (*EndOfCommands) encode(*writer) {}
func (*EndOfCommands) decode(*reader) {}
