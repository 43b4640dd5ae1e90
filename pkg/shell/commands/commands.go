package commands

import "github.com/snooze-sh/snooze-go/pkg/shell"

// All returns the builtin command set in help-listing order.
func All() []shell.Command {
	return []shell.Command{
		Sleep{},
		Echo{},
		Help{},
		History{},
	}
}
