package interrupt

import (
	"os"
	"os/signal"
)

// Notify installs a watcher that sets flag when any of the given signals
// arrives. With no signals it watches os.Interrupt. The returned stop
// function uninstalls the watcher and releases its goroutine; it is safe
// to call more than once.
//
// The flag is not reset here: callers decide when a new operation begins
// (typically flag.Reset before each command dispatch).
func Notify(flag *Flag, signals ...os.Signal) (stop func()) {
	if len(signals) == 0 {
		signals = []os.Signal{os.Interrupt}
	}

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, signals...)

	done := make(chan struct{})
	go func() {
		for {
			select {
			case <-ch:
				flag.Set()
			case <-done:
				return
			}
		}
	}()

	var stopped bool
	return func() {
		if stopped {
			return
		}
		stopped = true
		signal.Stop(ch)
		close(done)
	}
}
