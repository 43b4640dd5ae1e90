package shell

import (
	"fmt"
	"strings"
)

// Registry is the ordered command table a session dispatches from.
type Registry struct {
	order  []string
	byName map[string]Command
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]Command)}
}

// Register adds a command. Registering a name twice is an error.
func (r *Registry) Register(cmd Command) error {
	name := cmd.Name()
	if name == "" {
		return fmt.Errorf("command has empty name")
	}
	if _, exists := r.byName[name]; exists {
		return fmt.Errorf("command %q already registered", name)
	}
	r.byName[name] = cmd
	r.order = append(r.order, name)
	return nil
}

// Lookup returns the command registered under name.
func (r *Registry) Lookup(name string) (Command, bool) {
	cmd, ok := r.byName[name]
	return cmd, ok
}

// Commands returns all commands in registration order.
func (r *Registry) Commands() []Command {
	cmds := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		cmds = append(cmds, r.byName[name])
	}
	return cmds
}

// Search returns commands whose name or search terms contain term,
// in registration order.
func (r *Registry) Search(term string) []Command {
	term = strings.ToLower(term)
	var matches []Command
	for _, name := range r.order {
		cmd := r.byName[name]
		if strings.Contains(strings.ToLower(name), term) {
			matches = append(matches, cmd)
			continue
		}
		for _, st := range cmd.SearchTerms() {
			if strings.Contains(strings.ToLower(st), term) {
				matches = append(matches, cmd)
				break
			}
		}
	}
	return matches
}
