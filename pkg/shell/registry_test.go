package shell

import (
	"testing"
)

// stubCommand is a minimal Command for registry and session tests.
type stubCommand struct {
	name  string
	terms []string
	sig   Signature
	run   func(inv *Invocation) error
}

func (c *stubCommand) Name() string                { return c.name }
func (c *stubCommand) Usage() string               { return "stub " + c.name }
func (c *stubCommand) SearchTerms() []string       { return c.terms }
func (c *stubCommand) Signature() Signature        { return c.sig }
func (c *stubCommand) Examples() []Example         { return nil }
func (c *stubCommand) Run(inv *Invocation) error {
	if c.run != nil {
		return c.run(inv)
	}
	return nil
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(&stubCommand{name: "sleep"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	cmd, ok := reg.Lookup("sleep")
	if !ok {
		t.Fatal("Lookup did not find registered command")
	}
	if cmd.Name() != "sleep" {
		t.Errorf("Lookup returned %q, want %q", cmd.Name(), "sleep")
	}

	if _, ok := reg.Lookup("missing"); ok {
		t.Error("Lookup found an unregistered command")
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()

	if err := reg.Register(&stubCommand{name: "sleep"}); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	if err := reg.Register(&stubCommand{name: "sleep"}); err == nil {
		t.Error("duplicate Register did not fail")
	}
	if err := reg.Register(&stubCommand{name: ""}); err == nil {
		t.Error("empty name Register did not fail")
	}
}

func TestRegistryCommandsOrder(t *testing.T) {
	reg := NewRegistry()
	for _, name := range []string{"sleep", "echo", "help"} {
		if err := reg.Register(&stubCommand{name: name}); err != nil {
			t.Fatalf("Register(%q) failed: %v", name, err)
		}
	}

	cmds := reg.Commands()
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	for i, want := range []string{"sleep", "echo", "help"} {
		if cmds[i].Name() != want {
			t.Errorf("command %d = %q, want %q", i, cmds[i].Name(), want)
		}
	}
}

func TestRegistrySearch(t *testing.T) {
	reg := NewRegistry()
	reg.Register(&stubCommand{name: "sleep", terms: []string{"delay", "wait", "timer"}})
	reg.Register(&stubCommand{name: "echo", terms: []string{"print"}})

	tests := []struct {
		term string
		want []string
	}{
		{"delay", []string{"sleep"}},
		{"TIMER", []string{"sleep"}},
		{"ech", []string{"echo"}},
		{"e", []string{"sleep", "echo"}}, // substring of both names
		{"zzz", nil},
	}

	for _, tt := range tests {
		got := reg.Search(tt.term)
		if len(got) != len(tt.want) {
			t.Errorf("Search(%q) returned %d commands, want %d", tt.term, len(got), len(tt.want))
			continue
		}
		for i := range tt.want {
			if got[i].Name() != tt.want[i] {
				t.Errorf("Search(%q)[%d] = %q, want %q", tt.term, i, got[i].Name(), tt.want[i])
			}
		}
	}
}
