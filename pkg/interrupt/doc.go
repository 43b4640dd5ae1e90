// Package interrupt provides the shared cancellation flag sampled by
// delay loops.
//
// The flag is a capability, not a concurrency primitive: code that waits
// holds a read-only Monitor handle and samples it once per polling tick,
// while an external controller (typically a signal watcher) owns the
// writable side. The waiter never mutates the flag and never assumes it
// outlives the invoking context.
//
// # Implementations
//
//   - Flag: an atomically updated boolean, set by the controller.
//   - None: never interrupted; the zero substitute when cancellation is
//     not wired.
//   - FromContext: adapts a context.Context so context-driven callers can
//     feed the same sampling loop.
//
// # Signal wiring
//
// Notify connects a Flag to OS signals (SIGINT by default) so that a
// Ctrl-C during a running command is observed by the next tick of the
// sampling loop rather than killing the process.
package interrupt
