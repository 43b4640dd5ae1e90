// Package progress renders countdown progress for interruptible
// delays.
//
// Bar is the terminal widget behind the shell's --progress switch. It
// implements delay.ProgressSink and draws in place on one line:
//
//	bar := progress.NewBar(os.Stderr, 40)
//	err := delay.Wait(total, delay.WithProgress(bar))
//	bar.Finish()
//
// Attaching a Bar only makes sense on an interactive terminal; use
// Terminal to check, and fall back to delay.NopSink otherwise.
package progress
