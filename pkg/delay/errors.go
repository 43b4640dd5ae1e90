package delay

import (
	"errors"
	"fmt"
)

// ErrInterrupted is the only failure a wait can produce: the user
// cancelled before the requested delay elapsed. Match with errors.Is.
var ErrInterrupted = errors.New("interrupted by user")

// InterruptedError carries the attribution for an interrupted wait.
// Origin names where the wait was started from (for a shell host,
// the call site such as "repl:3") so diagnostics can point back at
// the command that was cut short.
type InterruptedError struct {
	Origin string
}

func (e *InterruptedError) Error() string {
	if e.Origin == "" {
		return ErrInterrupted.Error()
	}
	return fmt.Sprintf("%s (at %s)", ErrInterrupted.Error(), e.Origin)
}

func (e *InterruptedError) Unwrap() error { return ErrInterrupted }
