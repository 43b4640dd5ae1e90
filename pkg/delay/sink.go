package delay

// ProgressSink receives countdown updates from a Waiter. Start is
// called exactly once before the first poll with the final position
// (the total in 10ms units) and the total's fixed "HH:MM:SS" label.
// SetPosition reports elapsed time in the same unit and never exceeds
// the maximum passed to Start. No calls happen after Wait returns.
type ProgressSink interface {
	Start(max int64, label string)
	SetPosition(pos int64)
}

// NopSink discards all updates. Waiters without a configured sink use
// it, so the polling loop never branches on progress being enabled.
type NopSink struct{}

func (NopSink) Start(max int64, label string) {}

func (NopSink) SetPosition(pos int64) {}

var _ ProgressSink = NopSink{}
