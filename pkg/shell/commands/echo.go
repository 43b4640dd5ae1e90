package commands

import (
	"fmt"
	"strings"

	"github.com/snooze-sh/snooze-go/pkg/shell"
)

// Echo prints its arguments, joined by spaces, on one line.
type Echo struct{}

func (Echo) Name() string { return "echo" }

func (Echo) Usage() string { return "Print the given values." }

func (Echo) SearchTerms() []string { return []string{"print", "output"} }

func (Echo) Signature() shell.Signature {
	return shell.Signature{
		Rest: &shell.Arg{Name: "values", Desc: "Values to print."},
	}
}

func (Echo) Examples() []shell.Example {
	return []shell.Example{
		{Description: "Print a single value", Command: "echo done"},
		{Description: "Print several values", Command: "echo one two three"},
	}
}

func (Echo) Run(inv *shell.Invocation) error {
	_, err := fmt.Fprintln(inv.Out, strings.Join(inv.Rest, " "))
	return err
}
