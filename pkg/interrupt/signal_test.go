package interrupt

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"
)

func TestNotifySetsFlag(t *testing.T) {
	f := NewFlag()
	stop := Notify(f, syscall.SIGUSR1)
	defer stop()

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess() error = %v", err)
	}
	if err := proc.Signal(syscall.SIGUSR1); err != nil {
		t.Fatalf("Signal() error = %v", err)
	}

	// Signal delivery is asynchronous; poll briefly.
	deadline := time.Now().Add(2 * time.Second)
	for !f.Interrupted() {
		if time.Now().After(deadline) {
			t.Fatal("flag not set after signal delivery")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestNotifyStopIdempotent(t *testing.T) {
	f := NewFlag()
	stop := Notify(f, syscall.SIGUSR2)

	stop()
	stop() // must not panic or block
}

func TestNotifyStopUninstalls(t *testing.T) {
	// Keep our own handler registered so the signal stays handled once the
	// watcher is stopped; otherwise delivery would kill the test process.
	guard := make(chan os.Signal, 1)
	signal.Notify(guard, syscall.SIGUSR2)
	defer signal.Stop(guard)

	f := NewFlag()
	stop := Notify(f, syscall.SIGUSR2)
	stop()

	f.Reset()

	proc, err := os.FindProcess(os.Getpid())
	if err != nil {
		t.Fatalf("FindProcess() error = %v", err)
	}
	_ = proc.Signal(syscall.SIGUSR2)

	select {
	case <-guard:
	case <-time.After(2 * time.Second):
		t.Fatal("guard channel never received the signal")
	}

	time.Sleep(50 * time.Millisecond)
	if f.Interrupted() {
		t.Error("flag set by signal after watcher was stopped")
	}
}
