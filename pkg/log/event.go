package log

import "time"

// Event represents one session log event. CBOR encoding uses integer
// keys for compactness.
type Event struct {
	// Timestamp when the event occurred (nanosecond precision).
	Timestamp time.Time `cbor:"1,keyasint"`

	// SessionID uniquely identifies the shell session (UUID).
	SessionID string `cbor:"2,keyasint"`

	// Kind classifies the event.
	Kind Kind `cbor:"3,keyasint"`

	// Command is the command name this event belongs to, if any.
	Command string `cbor:"4,keyasint,omitempty"`

	// Origin is where the command was started from ("repl:N" or
	// "args").
	Origin string `cbor:"5,keyasint,omitempty"`

	// Kind-specific payload (at most one is set).
	Delay *DelayInfo `cbor:"6,keyasint,omitempty"` // delay lifecycle kinds
	Error *ErrorInfo `cbor:"7,keyasint,omitempty"` // KindError
}

// Kind classifies a session event.
type Kind uint8

const (
	// KindSessionStart marks the beginning of a shell session.
	KindSessionStart Kind = 0
	// KindSessionEnd marks the end of a shell session.
	KindSessionEnd Kind = 1
	// KindCommandRun records a command being dispatched.
	KindCommandRun Kind = 2
	// KindCommandDone records a command finishing, successfully or not.
	KindCommandDone Kind = 3
	// KindDelayStart records a delay beginning to wait.
	KindDelayStart Kind = 4
	// KindDelayDone records a delay that ran to completion.
	KindDelayDone Kind = 5
	// KindDelayInterrupted records a delay cut short by the user.
	KindDelayInterrupted Kind = 6
	// KindError records a command failure.
	KindError Kind = 7
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindSessionStart:
		return "SESSION_START"
	case KindSessionEnd:
		return "SESSION_END"
	case KindCommandRun:
		return "COMMAND_RUN"
	case KindCommandDone:
		return "COMMAND_DONE"
	case KindDelayStart:
		return "DELAY_START"
	case KindDelayDone:
		return "DELAY_DONE"
	case KindDelayInterrupted:
		return "DELAY_INTERRUPTED"
	case KindError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// DelayInfo describes a delay's extent for the delay lifecycle kinds.
type DelayInfo struct {
	// Total is the requested delay in nanoseconds.
	Total time.Duration `cbor:"1,keyasint"`

	// Elapsed is how much of the delay actually passed before the
	// event (equals Total for KindDelayDone, less when interrupted).
	Elapsed time.Duration `cbor:"2,keyasint,omitempty"`

	// Progress records whether a progress bar was attached.
	Progress bool `cbor:"3,keyasint,omitempty"`
}

// ErrorInfo captures a command failure.
type ErrorInfo struct {
	// Message is the error message.
	Message string `cbor:"1,keyasint"`
}
