package commands

import (
	"fmt"
	"strings"

	"github.com/snooze-sh/snooze-go/pkg/shell"
)

// Help lists the registered commands or shows one command in detail.
// Unmatched names fall back to a search over names and search terms.
type Help struct{}

func (Help) Name() string { return "help" }

func (Help) Usage() string { return "Display help about commands." }

func (Help) SearchTerms() []string { return []string{"commands", "usage"} }

func (Help) Signature() shell.Signature {
	return shell.Signature{
		Rest: &shell.Arg{Name: "command", Desc: "Command name or search term."},
	}
}

func (Help) Examples() []shell.Example {
	return []shell.Example{
		{Description: "List all commands", Command: "help"},
		{Description: "Show help for sleep", Command: "help sleep"},
		{Description: "Find commands by search term", Command: "help timer"},
	}
}

func (Help) Run(inv *shell.Invocation) error {
	if len(inv.Rest) == 0 {
		listCommands(inv, inv.Registry.Commands())
		return nil
	}

	name := inv.Rest[0]
	if cmd, ok := inv.Registry.Lookup(name); ok {
		describeCommand(inv, cmd)
		return nil
	}

	matches := inv.Registry.Search(name)
	if len(matches) == 0 {
		return fmt.Errorf("no command matches %q", name)
	}
	fmt.Fprintf(inv.Out, "Commands matching %q:\n\n", name)
	listCommands(inv, matches)
	return nil
}

func listCommands(inv *shell.Invocation, cmds []shell.Command) {
	width := 0
	for _, cmd := range cmds {
		if len(cmd.Name()) > width {
			width = len(cmd.Name())
		}
	}
	for _, cmd := range cmds {
		fmt.Fprintf(inv.Out, "  %-*s  %s\n", width, cmd.Name(), cmd.Usage())
	}
}

func describeCommand(inv *shell.Invocation, cmd shell.Command) {
	fmt.Fprintf(inv.Out, "%s - %s\n", cmd.Name(), cmd.Usage())
	fmt.Fprintf(inv.Out, "\nUsage:\n  %s\n", cmd.Signature().UsageLine(cmd.Name()))

	if terms := cmd.SearchTerms(); len(terms) > 0 {
		fmt.Fprintf(inv.Out, "\nSearch terms: %s\n", strings.Join(terms, ", "))
	}

	sig := cmd.Signature()
	if len(sig.Positional) > 0 || sig.Rest != nil || len(sig.Switches) > 0 {
		fmt.Fprintf(inv.Out, "\nParameters:\n")
		for _, arg := range sig.Positional {
			fmt.Fprintf(inv.Out, "  %s: %s\n", arg.Name, arg.Desc)
		}
		if sig.Rest != nil {
			fmt.Fprintf(inv.Out, "  ...%s: %s\n", sig.Rest.Name, sig.Rest.Desc)
		}
		for _, sw := range sig.Switches {
			if sw.Short != "" {
				fmt.Fprintf(inv.Out, "  --%s (-%s): %s\n", sw.Name, sw.Short, sw.Desc)
			} else {
				fmt.Fprintf(inv.Out, "  --%s: %s\n", sw.Name, sw.Desc)
			}
		}
	}

	if examples := cmd.Examples(); len(examples) > 0 {
		fmt.Fprintf(inv.Out, "\nExamples:\n")
		for _, ex := range examples {
			fmt.Fprintf(inv.Out, "  %s\n  > %s\n", ex.Description, ex.Command)
		}
	}
}
