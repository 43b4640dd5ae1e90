package progress

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/snooze-sh/snooze-go/pkg/delay"
	"github.com/snooze-sh/snooze-go/pkg/duration"
)

// DefaultWidth is the bar width in cells when none is configured.
const DefaultWidth = 40

// Bar renders a countdown in place on a terminal line:
//
//	████████████░░░░░░░░░░░░[00:00:02 / 00:00:10]
//
// The filled cells scale position over the maximum; the bracket shows
// elapsed time (derived from the position) against the total's label.
// Each distinct position renders once, so the line updates at the
// waiter's polling cadence without flicker.
//
// Bar implements delay.ProgressSink. Finish is outside that contract:
// the host calls it after the wait returns to erase the line.
type Bar struct {
	mu      sync.Mutex
	w       io.Writer
	width   int
	max     int64
	label   string
	lastPos int64
	lineLen int
	started bool
}

var _ delay.ProgressSink = (*Bar)(nil)

// NewBar returns a Bar writing to w. Widths of zero or less use
// DefaultWidth.
func NewBar(w io.Writer, width int) *Bar {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Bar{w: w, width: width}
}

// Start records the countdown's maximum position and total label and
// renders the empty bar.
func (b *Bar) Start(max int64, label string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.max = max
	b.label = label
	b.lastPos = -1
	b.started = true
	b.render(0)
}

// SetPosition advances the bar to pos, in delay.PositionUnit steps.
// Repeated calls with the same position are ignored.
func (b *Bar) SetPosition(pos int64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started || pos == b.lastPos {
		return
	}
	b.render(pos)
}

// Finish erases the bar line. Safe to call without a preceding Start
// and safe to call twice.
func (b *Bar) Finish() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.started {
		return
	}
	fmt.Fprintf(b.w, "\r%s\r", strings.Repeat(" ", b.lineLen))
	b.started = false
	b.lineLen = 0
}

func (b *Bar) render(pos int64) {
	filled := 0
	if b.max > 0 {
		filled = int(int64(b.width) * pos / b.max)
		if filled > b.width {
			filled = b.width
		}
	}
	elapsed := duration.FormatHMS(time.Duration(pos) * delay.PositionUnit)
	line := fmt.Sprintf("%s%s[%s / %s]",
		strings.Repeat("█", filled),
		strings.Repeat("░", b.width-filled),
		elapsed, b.label)
	fmt.Fprintf(b.w, "\r%s", line)
	b.lastPos = pos
	b.lineLen = utf8.RuneCountInString(line)
}
