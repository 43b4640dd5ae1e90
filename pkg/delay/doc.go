// Package delay implements interruptible delays: a duration
// accumulator and a waiter that sleeps in short polling intervals so
// cancellation and progress stay responsive.
//
// # Accumulating durations
//
// Hosts hand the waiter raw signed nanosecond values (user input may
// be malformed). Total normalizes them into one non-negative delay:
//
//	total := delay.Total(primary, rest...)
//
// Negative operands count as zero and the sum saturates instead of
// wrapping.
//
// # Waiting
//
// Wait blocks for the total, checking for cancellation once per
// polling interval (100ms by default):
//
//	flag := interrupt.NewFlag()
//	err := delay.Wait(total,
//	    delay.WithInterrupt(flag),
//	    delay.WithProgress(bar),
//	    delay.WithOrigin("repl:3"),
//	)
//
// The only failure is *InterruptedError, matching ErrInterrupted with
// errors.Is. Completion returns nil.
//
// # Progress
//
// A ProgressSink observes the countdown: one Start call with the
// maximum position (total in 10ms units) and an "HH:MM:SS" label,
// then position updates each tick, clamped to the maximum. Disabling
// progress means substituting NopSink, not branching in the loop.
package delay
