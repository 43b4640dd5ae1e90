// Package shell is the command framework behind the snooze REPL:
// commands describe themselves through the Command interface, a
// Registry holds them, and a Session dispatches parsed lines with the
// shared interrupt flag and session logging wired in.
//
// # Commands
//
// A Command declares its arguments with a Signature (required
// positionals, an optional rest capture, boolean switches) and runs
// with an Invocation carrying the parsed values plus host context:
// output writers, the cancellation monitor, the session logger, and a
// progress sink factory.
//
// # Dispatch
//
// Session.Dispatch splits a line, parses it against the command's
// signature, resets the interrupt flag, and emits COMMAND_RUN /
// COMMAND_DONE (or ERROR) events around Run:
//
//	sess := &shell.Session{ID: id, Registry: reg, Interrupt: flag, Logger: logger}
//	sess.Start()
//	err := sess.Dispatch("sleep 1s 500ms --progress", "repl:1")
//
// Dispatch errors come back to the host for printing; interrupted
// delays surface as delay.ErrInterrupted.
package shell
