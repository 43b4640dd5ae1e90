package commands

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/snooze-sh/snooze-go/pkg/log"
)

// Stats holds aggregate statistics about a session log.
type Stats struct {
	TotalEvents  int
	EventsByKind map[log.Kind]int
	Sessions     map[string]*SessionStats
	Delays       DelayStats
	Errors       int
	TimeRange    struct {
		Start time.Time
		End   time.Time
	}
}

// DelayStats aggregates delay outcomes across the log.
type DelayStats struct {
	Completed   int
	Interrupted int

	// TimeSlept is the cumulative elapsed time of all delays,
	// including the partial time of interrupted ones.
	TimeSlept time.Duration
}

// SessionStats holds statistics for a single session.
type SessionStats struct {
	FirstSeen time.Time
	LastSeen  time.Time
	Events    int
	Commands  int
}

// RunStats analyzes the log file and prints statistics.
func RunStats(path string, w io.Writer) error {
	reader, err := log.NewReader(path)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer reader.Close()

	stats := &Stats{
		EventsByKind: make(map[log.Kind]int),
		Sessions:     make(map[string]*SessionStats),
	}

	for {
		event, err := reader.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read event: %w", err)
		}

		stats.TotalEvents++
		stats.EventsByKind[event.Kind]++

		// Track time range
		if stats.TimeRange.Start.IsZero() || event.Timestamp.Before(stats.TimeRange.Start) {
			stats.TimeRange.Start = event.Timestamp
		}
		if event.Timestamp.After(stats.TimeRange.End) {
			stats.TimeRange.End = event.Timestamp
		}

		// Track session stats
		sess, ok := stats.Sessions[event.SessionID]
		if !ok {
			sess = &SessionStats{
				FirstSeen: event.Timestamp,
				LastSeen:  event.Timestamp,
			}
			stats.Sessions[event.SessionID] = sess
		}
		sess.Events++
		if event.Timestamp.After(sess.LastSeen) {
			sess.LastSeen = event.Timestamp
		}
		if event.Kind == log.KindCommandRun {
			sess.Commands++
		}

		// Track delay outcomes
		if event.Delay != nil {
			switch event.Kind {
			case log.KindDelayDone:
				stats.Delays.Completed++
				stats.Delays.TimeSlept += event.Delay.Elapsed
			case log.KindDelayInterrupted:
				stats.Delays.Interrupted++
				stats.Delays.TimeSlept += event.Delay.Elapsed
			}
		}

		// Count errors
		if event.Error != nil {
			stats.Errors++
		}
	}

	printStats(w, stats)
	return nil
}

// allKinds lists event kinds in display order.
var allKinds = []log.Kind{
	log.KindSessionStart,
	log.KindSessionEnd,
	log.KindCommandRun,
	log.KindCommandDone,
	log.KindDelayStart,
	log.KindDelayDone,
	log.KindDelayInterrupted,
	log.KindError,
}

func printStats(w io.Writer, stats *Stats) {
	fmt.Fprintln(w, "=== Snooze Session Log Statistics ===")
	fmt.Fprintln(w)

	// Time range
	if stats.TotalEvents > 0 {
		fmt.Fprintf(w, "Time Range: %s to %s\n",
			stats.TimeRange.Start.Format(time.RFC3339),
			stats.TimeRange.End.Format(time.RFC3339))
		fmt.Fprintf(w, "Duration:   %s\n", stats.TimeRange.End.Sub(stats.TimeRange.Start).Round(time.Second))
		fmt.Fprintln(w)
	}

	// Total events
	fmt.Fprintf(w, "Total Events: %d\n", stats.TotalEvents)
	fmt.Fprintln(w)

	// Events by kind
	fmt.Fprintln(w, "Events by Kind:")
	for _, kind := range allKinds {
		if count := stats.EventsByKind[kind]; count > 0 {
			fmt.Fprintf(w, "  %-18s %d\n", kind.String()+":", count)
		}
	}
	fmt.Fprintln(w)

	// Delay outcomes
	fmt.Fprintln(w, "Delays:")
	fmt.Fprintf(w, "  Completed:    %d\n", stats.Delays.Completed)
	fmt.Fprintf(w, "  Interrupted:  %d\n", stats.Delays.Interrupted)
	fmt.Fprintf(w, "  Time slept:   %s\n", stats.Delays.TimeSlept)
	fmt.Fprintln(w)

	// Sessions
	fmt.Fprintf(w, "Sessions: %d\n", len(stats.Sessions))
	if len(stats.Sessions) > 0 {
		// Sort by first seen time
		type sessInfo struct {
			id    string
			stats *SessionStats
		}
		sessions := make([]sessInfo, 0, len(stats.Sessions))
		for id, ss := range stats.Sessions {
			sessions = append(sessions, sessInfo{id, ss})
		}
		sort.Slice(sessions, func(i, j int) bool {
			return sessions[i].stats.FirstSeen.Before(sessions[j].stats.FirstSeen)
		})

		fmt.Fprintln(w)
		for _, s := range sessions {
			duration := s.stats.LastSeen.Sub(s.stats.FirstSeen).Round(time.Millisecond)
			fmt.Fprintf(w, "  [%s] %d events, %d commands, duration %s\n",
				shortenSessionID(s.id), s.stats.Events, s.stats.Commands, duration)
		}
	}

	// Errors
	if stats.Errors > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Errors: %d\n", stats.Errors)
	}
}
