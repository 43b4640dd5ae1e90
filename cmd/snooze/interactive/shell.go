// Package interactive provides the interactive read-dispatch loop
// for the snooze shell.
package interactive

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/snooze-sh/snooze-go/pkg/shell"
)

// Shell reads lines from the terminal and dispatches them through a
// session. Each dispatched line gets an origin of the form "repl:N"
// where N is the line's number within the session.
type Shell struct {
	session *shell.Session
	rl      *readline.Instance
	lineNo  int
}

// New creates an interactive shell. historyFile may be empty to
// disable persistent input history.
func New(session *shell.Session, prompt, historyFile string) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	return &Shell{
		session: session,
		rl:      rl,
	}, nil
}

// Stdout returns a writer that properly coordinates with the prompt.
// Use this for output that may arrive while the shell is reading.
func (s *Shell) Stdout() io.Writer {
	return s.rl.Stdout()
}

// Stderr returns a writer that properly coordinates with the prompt.
func (s *Shell) Stderr() io.Writer {
	return s.rl.Stderr()
}

// Run reads and dispatches lines until EOF or an exit command.
// Ctrl-C at the prompt discards the current line and continues;
// Ctrl-C during a command is handled by the session's interrupt flag.
func (s *Shell) Run() {
	defer s.rl.Close()

	for {
		line, err := s.rl.Readline()
		if err != nil {
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			// EOF or closed terminal
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		s.lineNo++

		switch input {
		case "exit", "quit":
			fmt.Fprintln(s.rl.Stdout(), "Exiting...")
			return
		}

		origin := fmt.Sprintf("repl:%d", s.lineNo)
		if err := s.session.Dispatch(input, origin); err != nil {
			fmt.Fprintf(s.rl.Stderr(), "Error: %v\n", err)
		}
	}
}
