package log

import (
	"errors"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestLogFile(t *testing.T, events []Event) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.slog")

	logger, err := NewFileLogger(path)
	require.NoError(t, err, "create test log")

	for _, e := range events {
		logger.Log(e)
	}
	logger.Close()

	return path
}

func collectEvents(t *testing.T, r *Reader) []Event {
	t.Helper()
	var events []Event
	for {
		e, err := r.Next()
		if errors.Is(err, io.EOF) {
			return events
		}
		require.NoError(t, err, "Next")
		events = append(events, e)
	}
}

func testEvents(base time.Time) []Event {
	return []Event{
		{Timestamp: base, SessionID: "session-1", Kind: KindSessionStart},
		{Timestamp: base.Add(1 * time.Second), SessionID: "session-1", Kind: KindCommandRun, Command: "sleep", Origin: "repl:1"},
		{Timestamp: base.Add(2 * time.Second), SessionID: "session-1", Kind: KindDelayDone, Command: "sleep",
			Delay: &DelayInfo{Total: time.Second, Elapsed: time.Second}},
		{Timestamp: base.Add(3 * time.Second), SessionID: "session-2", Kind: KindCommandRun, Command: "echo", Origin: "args"},
		{Timestamp: base.Add(4 * time.Second), SessionID: "session-2", Kind: KindDelayInterrupted, Command: "sleep",
			Delay: &DelayInfo{Total: 10 * time.Second, Elapsed: 200 * time.Millisecond}},
		{Timestamp: base.Add(5 * time.Second), SessionID: "session-1", Kind: KindSessionEnd},
	}
}

func TestReaderIteratesEvents(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	events := collectEvents(t, reader)
	require.Len(t, events, 6)

	// Order is preserved
	assert.Equal(t, KindSessionStart, events[0].Kind)
	assert.Equal(t, KindSessionEnd, events[5].Kind)
	assert.Equal(t, "session-1", events[0].SessionID)
}

func TestReaderFiltersBySession(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	reader, err := NewFilteredReader(path, Filter{SessionID: "session-2"})
	require.NoError(t, err)
	defer reader.Close()

	events := collectEvents(t, reader)
	require.Len(t, events, 2)
	for _, e := range events {
		assert.Equal(t, "session-2", e.SessionID)
	}
}

func TestReaderFiltersByKind(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	kind := KindDelayInterrupted
	reader, err := NewFilteredReader(path, Filter{Kind: &kind})
	require.NoError(t, err)
	defer reader.Close()

	events := collectEvents(t, reader)
	require.Len(t, events, 1)
	assert.Equal(t, KindDelayInterrupted, events[0].Kind)
	require.NotNil(t, events[0].Delay)
	assert.Equal(t, 200*time.Millisecond, events[0].Delay.Elapsed)
}

func TestReaderFiltersByCommand(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	reader, err := NewFilteredReader(path, Filter{Command: "echo"})
	require.NoError(t, err)
	defer reader.Close()

	events := collectEvents(t, reader)
	require.Len(t, events, 1)
	assert.Equal(t, "echo", events[0].Command)
}

func TestReaderFiltersByTimeWindow(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	start := base.Add(1 * time.Second)
	end := base.Add(4 * time.Second)
	reader, err := NewFilteredReader(path, Filter{TimeStart: &start, TimeEnd: &end})
	require.NoError(t, err)
	defer reader.Close()

	events := collectEvents(t, reader)
	// Events at +1s, +2s, +3s; +4s is excluded (TimeEnd is exclusive).
	require.Len(t, events, 3)
	for _, e := range events {
		assert.False(t, e.Timestamp.Before(start), "event before window start")
		assert.True(t, e.Timestamp.Before(end), "event past window end")
	}
}

func TestReaderCombinedFilters(t *testing.T) {
	base := time.Date(2026, 8, 3, 9, 0, 0, 0, time.UTC)
	path := createTestLogFile(t, testEvents(base))

	kind := KindCommandRun
	reader, err := NewFilteredReader(path, Filter{SessionID: "session-1", Kind: &kind})
	require.NoError(t, err)
	defer reader.Close()

	events := collectEvents(t, reader)
	require.Len(t, events, 1)
	assert.Equal(t, "sleep", events[0].Command)
	assert.Equal(t, "repl:1", events[0].Origin)
}

func TestReaderEmptyFile(t *testing.T) {
	path := createTestLogFile(t, nil)

	reader, err := NewReader(path)
	require.NoError(t, err)
	defer reader.Close()

	_, err = reader.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReaderMissingFile(t *testing.T) {
	_, err := NewReader(filepath.Join(t.TempDir(), "absent.slog"))
	assert.Error(t, err)
}
