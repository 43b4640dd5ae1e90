package commands

import (
	"errors"
	"fmt"
	"io"

	"github.com/snooze-sh/snooze-go/pkg/log"
	"github.com/snooze-sh/snooze-go/pkg/shell"
)

// History prints the delays recorded in the session log: when they
// ran, what was requested, and how they ended.
type History struct{}

func (History) Name() string { return "history" }

func (History) Usage() string { return "Show delays recorded in the session log." }

func (History) SearchTerms() []string { return []string{"log", "past"} }

func (History) Signature() shell.Signature {
	return shell.Signature{
		Switches: []shell.Switch{
			{Name: "session", Short: "s", Desc: "only delays from this session"},
		},
	}
}

func (History) Examples() []shell.Example {
	return []shell.Example{
		{Description: "Show all recorded delays", Command: "history"},
		{Description: "Show this session's delays", Command: "history --session"},
	}
}

func (History) Run(inv *shell.Invocation) error {
	if inv.LogPath == "" {
		fmt.Fprintln(inv.Out, "session logging is disabled")
		return nil
	}

	filter := log.Filter{}
	if inv.Switch("session") {
		filter.SessionID = inv.SessionID
	}

	reader, err := log.NewFilteredReader(inv.LogPath, filter)
	if err != nil {
		return fmt.Errorf("open session log: %w", err)
	}
	defer reader.Close()

	count := 0
	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read session log: %w", err)
		}
		if event.Delay == nil {
			continue
		}

		switch event.Kind {
		case log.KindDelayDone:
			fmt.Fprintf(inv.Out, "%s  %-8s %-10v completed\n",
				event.Timestamp.Format("2006-01-02 15:04:05"), event.Command, event.Delay.Total)
			count++
		case log.KindDelayInterrupted:
			fmt.Fprintf(inv.Out, "%s  %-8s %-10v interrupted after %v\n",
				event.Timestamp.Format("2006-01-02 15:04:05"), event.Command, event.Delay.Total, event.Delay.Elapsed)
			count++
		}
	}

	if count == 0 {
		fmt.Fprintln(inv.Out, "no delays recorded")
	}
	return nil
}
