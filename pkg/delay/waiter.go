package delay

import (
	"time"

	"github.com/snooze-sh/snooze-go/pkg/duration"
	"github.com/snooze-sh/snooze-go/pkg/interrupt"
)

// DefaultInterval is the polling cadence: how long each blocking sleep
// lasts and therefore how quickly a raised interrupt flag is noticed.
const DefaultInterval = 100 * time.Millisecond

// PositionUnit is the resolution of progress positions: one position
// step is 10ms of elapsed time. Sinks convert positions back to time
// with it.
const PositionUnit = 10 * time.Millisecond

// A Waiter blocks for a total duration by sleeping in short intervals,
// reporting elapsed time to a progress sink and sampling a cancellation
// monitor between sleeps. Construct with NewWaiter; a Waiter is safe to
// reuse for sequential waits.
type Waiter struct {
	interval time.Duration
	monitor  interrupt.Monitor
	sink     ProgressSink
	origin   string
	clock    Clock
}

// Option configures a Waiter.
type Option func(*Waiter)

// WithInterrupt sets the cancellation monitor sampled once per
// interval. The waiter only ever reads the monitor; whoever raised it
// owns it.
func WithInterrupt(m interrupt.Monitor) Option {
	return func(w *Waiter) {
		if m != nil {
			w.monitor = m
		}
	}
}

// WithProgress sets the sink that receives countdown updates.
func WithProgress(s ProgressSink) Option {
	return func(w *Waiter) {
		if s != nil {
			w.sink = s
		}
	}
}

// WithOrigin sets the attribution token carried by InterruptedError,
// typically the call site the wait was started from.
func WithOrigin(origin string) Option {
	return func(w *Waiter) { w.origin = origin }
}

// WithInterval overrides the polling interval. Zero or negative values
// keep DefaultInterval.
func WithInterval(d time.Duration) Option {
	return func(w *Waiter) {
		if d > 0 {
			w.interval = d
		}
	}
}

// WithClock sets the time source, primarily for tests.
func WithClock(c Clock) Option {
	return func(w *Waiter) {
		if c != nil {
			w.clock = c
		}
	}
}

// NewWaiter returns a Waiter with opts applied over the defaults:
// 100ms interval, a monitor that never interrupts, no progress, the
// real clock.
func NewWaiter(opts ...Option) *Waiter {
	w := &Waiter{
		interval: DefaultInterval,
		monitor:  interrupt.None{},
		sink:     NopSink{},
		clock:    realClock{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Wait blocks until total time has elapsed or the monitor reports an
// interruption, whichever comes first. Negative totals are treated as
// zero. It returns nil on completion and an *InterruptedError
// (matching ErrInterrupted) when cancelled; no other outcomes exist.
//
// The monitor is sampled once per interval, so Wait returns within
// roughly one interval of the flag being raised. A zero total returns
// without sleeping at all.
func (w *Waiter) Wait(total time.Duration) error {
	if total < 0 {
		total = 0
	}
	start := w.clock.Now()
	maxPos := int64(total / PositionUnit)
	w.sink.Start(maxPos, duration.FormatHMS(total))
	if total == 0 {
		return nil
	}
	for {
		w.clock.Sleep(w.interval)
		elapsed := w.clock.Since(start)
		if elapsed >= total {
			return nil
		}
		pos := int64(elapsed / PositionUnit)
		if pos > maxPos {
			pos = maxPos
		}
		w.sink.SetPosition(pos)
		if w.monitor.Interrupted() {
			return &InterruptedError{Origin: w.origin}
		}
	}
}

// Wait builds a Waiter from opts and waits for total. It is the
// package-level convenience for one-off delays.
func Wait(total time.Duration, opts ...Option) error {
	return NewWaiter(opts...).Wait(total)
}
