package shell

import (
	"io"
	"time"

	"github.com/snooze-sh/snooze-go/pkg/delay"
	"github.com/snooze-sh/snooze-go/pkg/interrupt"
	"github.com/snooze-sh/snooze-go/pkg/log"
)

// Invocation carries everything one command run needs: the parsed
// arguments from Signature.Parse plus the host context the session
// fills in before dispatch.
type Invocation struct {
	// Args holds the positional values, in Signature.Positional order.
	Args []string

	// Rest holds the values captured by Signature.Rest.
	Rest []string

	switches map[string]bool

	// Origin is where this run was started from ("repl:N" for the
	// N-th interactive line, "args" for one-shot mode). Carried into
	// interruption errors and session events for attribution.
	Origin string

	// Interrupt is the cancellation monitor for this run. Never nil
	// when dispatched through a Session.
	Interrupt interrupt.Monitor

	// Out and Err are the command's output streams.
	Out io.Writer
	Err io.Writer

	// Logger records session events; SessionID stamps them.
	Logger    log.Logger
	SessionID string

	// LogPath is the session log file, empty when logging is disabled.
	// Commands that read history use it.
	LogPath string

	// NewProgress builds a rendering sink for a countdown and returns
	// it with a finish func that erases the rendering afterwards. Nil
	// when the host cannot render progress.
	NewProgress func() (delay.ProgressSink, func())

	// Registry is the command table this run was dispatched from.
	Registry *Registry
}

// Switch reports whether the named switch was present.
func (inv *Invocation) Switch(name string) bool {
	return inv.switches[name]
}

// Log emits a session event stamped with the invocation's session ID
// and origin. Safe to call with a nil Logger.
func (inv *Invocation) Log(event log.Event) {
	if inv.Logger == nil {
		return
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	event.SessionID = inv.SessionID
	if event.Origin == "" {
		event.Origin = inv.Origin
	}
	inv.Logger.Log(event)
}
