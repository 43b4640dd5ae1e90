package log

import (
	"testing"
	"time"
)

// mockLogger records events for testing
type mockLogger struct {
	events []Event
}

func (m *mockLogger) Log(event Event) {
	m.events = append(m.events, event)
}

func TestMultiLoggerCallsAll(t *testing.T) {
	mock1 := &mockLogger{}
	mock2 := &mockLogger{}
	mock3 := &mockLogger{}

	multi := NewMultiLogger(mock1, mock2, mock3)

	event := Event{
		Timestamp: time.Now(),
		SessionID: "session-123",
		Kind:      KindDelayStart,
		Command:   "sleep",
	}

	multi.Log(event)

	// All loggers should have received the event
	for i, mock := range []*mockLogger{mock1, mock2, mock3} {
		if len(mock.events) != 1 {
			t.Errorf("logger %d: got %d events, want 1", i, len(mock.events))
			continue
		}
		if mock.events[0].SessionID != "session-123" {
			t.Errorf("logger %d: SessionID = %q, want %q", i, mock.events[0].SessionID, "session-123")
		}
	}
}

func TestMultiLoggerEmptyList(t *testing.T) {
	multi := NewMultiLogger()

	// Should not panic with empty logger list
	multi.Log(Event{
		Timestamp: time.Now(),
		SessionID: "session-123",
		Kind:      KindSessionStart,
	})
}

func TestMultiLoggerPreservesOrder(t *testing.T) {
	mock := &mockLogger{}
	multi := NewMultiLogger(mock)

	for _, kind := range []Kind{KindSessionStart, KindDelayStart, KindDelayDone, KindSessionEnd} {
		multi.Log(Event{Timestamp: time.Now(), SessionID: "s", Kind: kind})
	}

	if len(mock.events) != 4 {
		t.Fatalf("got %d events, want 4", len(mock.events))
	}
	want := []Kind{KindSessionStart, KindDelayStart, KindDelayDone, KindSessionEnd}
	for i, e := range mock.events {
		if e.Kind != want[i] {
			t.Errorf("event %d: Kind = %v, want %v", i, e.Kind, want[i])
		}
	}
}
