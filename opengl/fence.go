package opengl

import "context"

// Fence marks a point in submitted work. Submission executes
// synchronously on the calling thread, so every fence is signaled as soon
// as it exists.
type Fence struct{}

// CreateFence returns a fence. It allocates no native object.
func (d *Device) CreateFence() *Fence { return &Fence{} }

// Signaled always reports true.
func (f *Fence) Signaled() bool { return true }

// Reset is a no-op.
func (f *Fence) Reset() {}

// Wait returns immediately, or the context error if ctx is already done.
func (f *Fence) Wait(ctx context.Context) error { return ctx.Err() }

// Destroy is a no-op.
func (f *Fence) Destroy() {}
