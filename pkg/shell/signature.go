package shell

import (
	"fmt"
	"strings"
)

// Arg describes one positional argument.
type Arg struct {
	// Name identifies the argument in usage lines and errors.
	Name string

	// Desc is the help text.
	Desc string
}

// Switch describes one boolean flag.
type Switch struct {
	// Name is the long form, matched as --name.
	Name string

	// Short is the optional single-letter form, matched as -x.
	Short string

	// Desc is the help text.
	Desc string
}

// Signature declares what a command accepts: required positional
// arguments in order, an optional rest capture for trailing values,
// and boolean switches.
type Signature struct {
	Positional []Arg
	Rest       *Arg
	Switches   []Switch
}

// Parse matches args against the signature and returns an Invocation
// holding the positional values, rest values, and switch states.
// Switches may appear anywhere in args. Unknown flags, missing
// required positionals, and surplus values (when no rest capture is
// declared) are errors.
func (s Signature) Parse(args []string) (*Invocation, error) {
	inv := &Invocation{switches: make(map[string]bool)}

	for _, tok := range args {
		switch {
		case strings.HasPrefix(tok, "--"):
			sw, ok := s.lookupSwitch(strings.TrimPrefix(tok, "--"), "")
			if !ok {
				return nil, fmt.Errorf("unknown flag %q", tok)
			}
			inv.switches[sw.Name] = true
		// Negative numbers ("-5") are values, not flags.
		case strings.HasPrefix(tok, "-") && len(tok) == 2 && !isDigit(tok[1]):
			sw, ok := s.lookupSwitch("", strings.TrimPrefix(tok, "-"))
			if !ok {
				return nil, fmt.Errorf("unknown flag %q", tok)
			}
			inv.switches[sw.Name] = true
		case len(inv.Args) < len(s.Positional):
			inv.Args = append(inv.Args, tok)
		case s.Rest != nil:
			inv.Rest = append(inv.Rest, tok)
		default:
			return nil, fmt.Errorf("unexpected argument %q", tok)
		}
	}

	if len(inv.Args) < len(s.Positional) {
		missing := s.Positional[len(inv.Args)]
		return nil, fmt.Errorf("missing required argument %q", missing.Name)
	}

	return inv, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (s Signature) lookupSwitch(name, short string) (Switch, bool) {
	for _, sw := range s.Switches {
		if name != "" && sw.Name == name {
			return sw, true
		}
		if short != "" && sw.Short != "" && sw.Short == short {
			return sw, true
		}
	}
	return Switch{}, false
}

// UsageLine renders the signature as a usage string for name, such as
// "sleep <duration> [rest...] [--progress]".
func (s Signature) UsageLine(name string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, arg := range s.Positional {
		fmt.Fprintf(&b, " <%s>", arg.Name)
	}
	if s.Rest != nil {
		fmt.Fprintf(&b, " [%s...]", s.Rest.Name)
	}
	for _, sw := range s.Switches {
		fmt.Fprintf(&b, " [--%s]", sw.Name)
	}
	return b.String()
}
