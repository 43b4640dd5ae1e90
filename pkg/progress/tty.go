package progress

import (
	"os"

	"github.com/mattn/go-isatty"
)

// Terminal reports whether f is an interactive terminal. Hosts check
// it before attaching a Bar so piped or redirected output never sees
// carriage-return updates.
func Terminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
