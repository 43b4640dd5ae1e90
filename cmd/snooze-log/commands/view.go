// Package commands implements the snooze-log CLI commands.
package commands

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/snooze-sh/snooze-go/pkg/log"
)

// ViewFilter specifies criteria for filtering events in the view command.
type ViewFilter struct {
	Kind      *log.Kind
	SessionID string
	Since     *time.Time
}

// ParseKindFlag parses an event kind from a command-line flag
// (case-insensitive, e.g. "delay_done").
func ParseKindFlag(s string) (log.Kind, error) {
	switch strings.ToUpper(s) {
	case "SESSION_START":
		return log.KindSessionStart, nil
	case "SESSION_END":
		return log.KindSessionEnd, nil
	case "COMMAND_RUN":
		return log.KindCommandRun, nil
	case "COMMAND_DONE":
		return log.KindCommandDone, nil
	case "DELAY_START":
		return log.KindDelayStart, nil
	case "DELAY_DONE":
		return log.KindDelayDone, nil
	case "DELAY_INTERRUPTED":
		return log.KindDelayInterrupted, nil
	case "ERROR":
		return log.KindError, nil
	default:
		return 0, fmt.Errorf("invalid kind: %s (use session_start, session_end, command_run, command_done, delay_start, delay_done, delay_interrupted, or error)", s)
	}
}

// RunView executes the view command.
func RunView(path string, filter ViewFilter, output io.Writer) error {
	reader, err := log.NewFilteredReader(path, log.Filter{
		SessionID: filter.SessionID,
		Kind:      filter.Kind,
		TimeStart: filter.Since,
	})
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		formatEvent(output, event)
	}

	return nil
}

// formatEvent writes a human-readable representation of the event to w.
func formatEvent(w io.Writer, event log.Event) {
	// Header line: timestamp [sess:id] KIND command
	ts := event.Timestamp.UTC().Format("2006-01-02T15:04:05.000Z")
	fmt.Fprintf(w, "%s [sess:%s] %-17s", ts, shortenSessionID(event.SessionID), event.Kind)
	if event.Command != "" {
		fmt.Fprintf(w, " %s", event.Command)
	}
	fmt.Fprintln(w)

	// Kind-specific details
	if event.Origin != "" {
		fmt.Fprintf(w, "  Origin: %s\n", event.Origin)
	}
	switch {
	case event.Delay != nil:
		formatDelayDetails(w, event.Kind, event.Delay)
	case event.Error != nil:
		fmt.Fprintf(w, "  Error: %s\n", event.Error.Message)
	}

	fmt.Fprintln(w) // Blank line between events
}

// shortenSessionID returns the first 8 characters of the session ID.
func shortenSessionID(id string) string {
	if len(id) >= 8 {
		return id[:8]
	}
	return id
}

// formatDelayDetails writes delay-specific details.
func formatDelayDetails(w io.Writer, kind log.Kind, d *log.DelayInfo) {
	fmt.Fprintf(w, "  Total: %v\n", d.Total)
	if kind != log.KindDelayStart {
		fmt.Fprintf(w, "  Elapsed: %v\n", d.Elapsed)
	}
	if d.Progress {
		fmt.Fprintln(w, "  Progress: true")
	}
}
