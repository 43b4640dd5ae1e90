package commands

import (
	"github.com/snooze-sh/snooze-go/pkg/delay"
	"github.com/snooze-sh/snooze-go/pkg/duration"
	"github.com/snooze-sh/snooze-go/pkg/log"
	"github.com/snooze-sh/snooze-go/pkg/shell"
)

// Sleep delays for the sum of its duration arguments, sampling the
// session's interrupt flag while it waits.
type Sleep struct {
	// Clock overrides the waiter's time source. Nil uses the system
	// clock; tests inject a fake.
	Clock delay.Clock
}

func (Sleep) Name() string { return "sleep" }

func (Sleep) Usage() string { return "Delay for a specified amount of time." }

func (Sleep) SearchTerms() []string { return []string{"delay", "wait", "timer"} }

func (Sleep) Signature() shell.Signature {
	return shell.Signature{
		Positional: []shell.Arg{{Name: "duration", Desc: "Time to sleep."}},
		Rest:       &shell.Arg{Name: "rest", Desc: "Additional time."},
		Switches:   []shell.Switch{{Name: "progress", Short: "p", Desc: "show progress/countdown bar"}},
	}
}

func (Sleep) Examples() []shell.Example {
	return []shell.Example{
		{Description: "Sleep for 1sec", Command: "sleep 1sec"},
		{Description: "Sleep for 3sec", Command: "sleep 1sec 1sec 1sec"},
		{Description: "Sleep with a countdown bar", Command: "sleep 10sec --progress"},
	}
}

func (c Sleep) Run(inv *shell.Invocation) error {
	first, err := duration.Parse(inv.Args[0])
	if err != nil {
		return err
	}
	rest := make([]int64, 0, len(inv.Rest))
	for _, tok := range inv.Rest {
		ns, err := duration.Parse(tok)
		if err != nil {
			return err
		}
		rest = append(rest, ns)
	}
	total := delay.Total(first, rest...)

	sink := delay.ProgressSink(delay.NopSink{})
	finish := func() {}
	withProgress := inv.Switch("progress")
	if withProgress && inv.NewProgress != nil {
		sink, finish = inv.NewProgress()
	}

	clock := c.Clock
	if clock == nil {
		clock = delay.SystemClock()
	}

	inv.Log(log.Event{
		Kind:    log.KindDelayStart,
		Command: "sleep",
		Delay:   &log.DelayInfo{Total: total, Progress: withProgress},
	})

	start := clock.Now()
	err = delay.Wait(total,
		delay.WithClock(clock),
		delay.WithInterrupt(inv.Interrupt),
		delay.WithProgress(sink),
		delay.WithOrigin(inv.Origin),
	)
	finish()
	elapsed := clock.Since(start)

	if err != nil {
		inv.Log(log.Event{
			Kind:    log.KindDelayInterrupted,
			Command: "sleep",
			Delay:   &log.DelayInfo{Total: total, Elapsed: elapsed, Progress: withProgress},
		})
		return err
	}
	inv.Log(log.Event{
		Kind:    log.KindDelayDone,
		Command: "sleep",
		Delay:   &log.DelayInfo{Total: total, Elapsed: elapsed, Progress: withProgress},
	})
	return nil
}
