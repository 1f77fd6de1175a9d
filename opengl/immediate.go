package opengl

import (
	"fmt"
	"sync"
)

// ImmediateEncoder runs pass commands on the device as they are issued,
// through the same routines Submit uses to replay a command buffer. It
// takes the device lock per command, so recording must happen on the
// thread that owns the context.
type ImmediateEncoder struct {
	mu   sync.Mutex
	dev  *Device
	st   execState
	open CommandType
}

// NewImmediateEncoder returns an encoder that executes against d.
func (d *Device) NewImmediateEncoder() *ImmediateEncoder {
	return &ImmediateEncoder{dev: d, st: execState{fns: d.fns}}
}

// BeginRenderPass creates the pass framebuffer and runs the load actions.
func (e *ImmediateEncoder) BeginRenderPass(desc RenderPassDescriptor) (*RenderPass, error) {
	return beginRenderPass(e, desc)
}

// BeginBlitPass opens a blit pass.
func (e *ImmediateEncoder) BeginBlitPass(label string) (*BlitPass, error) {
	return beginBlitPass(e, label)
}

func (e *ImmediateEncoder) run(cmd Command) error {
	if err := e.dev.alive(); err != nil {
		return err
	}
	e.dev.mu.Lock()
	defer e.dev.mu.Unlock()
	return e.st.exec(cmd)
}

// begin executes start. A render pass whose start fails is closed again
// at once, so no pass is left open.
func (e *ImmediateEncoder) begin(start Command) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.open != CmdNone {
		return violation(fmt.Errorf("begin %v inside %v: %w", start.Type(), e.open, ErrNestedPass))
	}
	if err := e.run(start); err != nil {
		if start.Type() == CmdStartRenderPass {
			_ = e.run(&EndRenderPassCommand{})
		}
		return fail(fmt.Errorf("begin %v: %w", start.Type(), err))
	}
	e.open = start.Type()
	return nil
}

func (e *ImmediateEncoder) record(cmd Command) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.run(cmd); err != nil {
		return fail(fmt.Errorf("%v: %w", cmd.Type(), err))
	}
	return nil
}

func (e *ImmediateEncoder) end(stop Command) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.open = CmdNone
	if err := e.run(stop); err != nil {
		return fail(fmt.Errorf("%v: %w", stop.Type(), err))
	}
	return nil
}
