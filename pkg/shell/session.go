package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/snooze-sh/snooze-go/pkg/delay"
	"github.com/snooze-sh/snooze-go/pkg/interrupt"
	"github.com/snooze-sh/snooze-go/pkg/log"
)

// ErrUnknownCommand is wrapped into dispatch errors for words no
// command is registered under.
var ErrUnknownCommand = errors.New("unknown command")

// Session dispatches command lines against a registry. It resets the
// shared interrupt flag before each run and records session events
// around dispatch, so every command and delay leaves a trace.
type Session struct {
	// ID identifies this session in log events (UUID).
	ID string

	// Registry is the command table.
	Registry *Registry

	// Interrupt is the shared flag the host's signal watcher raises.
	// It is reset before each dispatch. May be nil when the host
	// installs no watcher.
	Interrupt *interrupt.Flag

	// Logger receives session events. Nil disables logging.
	Logger log.Logger

	// LogPath is the file backing Logger, empty when logging is
	// disabled. Commands that read history use it.
	LogPath string

	// Out and Err are handed to commands. Nil defaults to the
	// process streams.
	Out io.Writer
	Err io.Writer

	// NewProgress is handed to commands (see Invocation.NewProgress).
	NewProgress func() (delay.ProgressSink, func())
}

// Start records the beginning of the session.
func (s *Session) Start() {
	s.log(log.Event{Kind: log.KindSessionStart})
}

// End records the end of the session.
func (s *Session) End() {
	s.log(log.Event{Kind: log.KindSessionEnd})
}

// Dispatch splits line into whitespace-separated fields and runs the
// named command. origin attributes the run ("repl:N" or "args").
// Blank lines are ignored. The returned error has already been
// recorded; the host only prints it.
func (s *Session) Dispatch(line, origin string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	return s.Run(fields[0], fields[1:], origin)
}

// Run dispatches one command with already-split arguments.
func (s *Session) Run(name string, args []string, origin string) error {
	cmd, ok := s.Registry.Lookup(name)
	if !ok {
		err := fmt.Errorf("%w %q", ErrUnknownCommand, name)
		s.logError(name, origin, err)
		return err
	}

	inv, err := cmd.Signature().Parse(args)
	if err != nil {
		err = fmt.Errorf("%s: %w", name, err)
		s.logError(name, origin, err)
		return err
	}

	inv.Origin = origin
	inv.Out = s.out()
	inv.Err = s.errOut()
	inv.Logger = s.logger()
	inv.SessionID = s.ID
	inv.LogPath = s.LogPath
	inv.NewProgress = s.NewProgress
	inv.Registry = s.Registry
	if s.Interrupt != nil {
		// A Ctrl-C from a previous command must not cancel this one.
		s.Interrupt.Reset()
		inv.Interrupt = s.Interrupt
	} else {
		inv.Interrupt = interrupt.None{}
	}

	s.log(log.Event{Kind: log.KindCommandRun, Command: name, Origin: origin})
	if err := cmd.Run(inv); err != nil {
		s.logError(name, origin, err)
		return err
	}
	s.log(log.Event{Kind: log.KindCommandDone, Command: name, Origin: origin})
	return nil
}

func (s *Session) out() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}

func (s *Session) errOut() io.Writer {
	if s.Err == nil {
		return os.Stderr
	}
	return s.Err
}

func (s *Session) logger() log.Logger {
	if s.Logger == nil {
		return log.NoopLogger{}
	}
	return s.Logger
}

func (s *Session) log(event log.Event) {
	event.Timestamp = time.Now()
	event.SessionID = s.ID
	s.logger().Log(event)
}

func (s *Session) logError(name, origin string, err error) {
	s.log(log.Event{
		Kind:    log.KindError,
		Command: name,
		Origin:  origin,
		Error:   &log.ErrorInfo{Message: err.Error()},
	})
}
