package interrupt

import (
	"context"
	"sync/atomic"
)

// Monitor is the read-only view of a cancellation flag.
// Implementations must be safe to sample from any goroutine.
type Monitor interface {
	// Interrupted reports whether cancellation has been requested.
	Interrupted() bool
}

// None is a Monitor that never reports interruption.
// Use when cancellation is not wired up. Usable as a zero value.
type None struct{}

// Interrupted always returns false.
func (None) Interrupted() bool { return false }

// Flag is a shared cancellation flag. The owning controller calls Set;
// waiters hold it as a Monitor and only sample it.
// The zero value is ready to use and not interrupted.
type Flag struct {
	set atomic.Bool
}

// NewFlag returns a new, unset flag.
func NewFlag() *Flag {
	return &Flag{}
}

// Set marks the flag as interrupted.
func (f *Flag) Set() {
	f.set.Store(true)
}

// Reset clears the flag so the next operation starts uninterrupted.
func (f *Flag) Reset() {
	f.set.Store(false)
}

// Interrupted reports whether Set has been called since the last Reset.
func (f *Flag) Interrupted() bool {
	return f.set.Load()
}

// contextMonitor samples a context's done state.
type contextMonitor struct {
	ctx context.Context
}

// FromContext returns a Monitor that reports interruption once ctx is
// cancelled or has exceeded its deadline.
func FromContext(ctx context.Context) Monitor {
	return contextMonitor{ctx: ctx}
}

// Interrupted reports whether the context has been cancelled.
func (m contextMonitor) Interrupted() bool {
	return m.ctx.Err() != nil
}

// Compile-time interface satisfaction checks.
var (
	_ Monitor = None{}
	_ Monitor = (*Flag)(nil)
	_ Monitor = contextMonitor{}
)
