// Package commands implements the snooze builtins.
//
// sleep is the reason the shell exists: it accumulates its duration
// arguments into one delay and waits interruptibly, with an optional
// countdown bar. echo, help, and history round out the set.
//
// All builtins register into a shell.Registry:
//
//	reg := shell.NewRegistry()
//	for _, cmd := range commands.All() {
//	    reg.Register(cmd)
//	}
package commands
