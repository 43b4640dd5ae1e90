package delay

import "time"

// Clock is the time source a Waiter measures and sleeps against.
// Production code uses the real clock; tests substitute a fake that
// advances manually so the polling loop runs deterministically.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
	// Sleep blocks for the given duration.
	Sleep(d time.Duration)
}

// SystemClock returns the wall-clock Clock that Waiters use by
// default.
func SystemClock() Clock { return realClock{} }

type realClock struct{}

func (realClock) Now() time.Time                  { return time.Now() }
func (realClock) Since(t time.Time) time.Duration { return time.Since(t) }
func (realClock) Sleep(d time.Duration)           { time.Sleep(d) }

var _ Clock = realClock{}
