package shell

import (
	"testing"
)

func sleepSignature() Signature {
	return Signature{
		Positional: []Arg{{Name: "duration", Desc: "Time to sleep."}},
		Rest:       &Arg{Name: "rest", Desc: "Additional time."},
		Switches:   []Switch{{Name: "progress", Short: "p", Desc: "show progress/countdown bar"}},
	}
}

func TestSignatureParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantArgs []string
		wantRest []string
		progress bool
	}{
		{"single positional", []string{"1s"}, []string{"1s"}, nil, false},
		{"rest capture", []string{"1s", "500ms", "2s"}, []string{"1s"}, []string{"500ms", "2s"}, false},
		{"long switch", []string{"1s", "--progress"}, []string{"1s"}, nil, true},
		{"short switch", []string{"1s", "-p"}, []string{"1s"}, nil, true},
		{"switch before value", []string{"--progress", "1s"}, []string{"1s"}, nil, true},
		{"switch between values", []string{"1s", "-p", "2s"}, []string{"1s"}, []string{"2s"}, true},
		{"negative value not a flag", []string{"-5"}, []string{"-5"}, nil, false},
	}

	sig := sleepSignature()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := sig.Parse(tt.args)
			if err != nil {
				t.Fatalf("Parse(%v) error: %v", tt.args, err)
			}
			if len(inv.Args) != len(tt.wantArgs) {
				t.Fatalf("Args = %v, want %v", inv.Args, tt.wantArgs)
			}
			for i := range tt.wantArgs {
				if inv.Args[i] != tt.wantArgs[i] {
					t.Errorf("Args = %v, want %v", inv.Args, tt.wantArgs)
				}
			}
			if len(inv.Rest) != len(tt.wantRest) {
				t.Fatalf("Rest = %v, want %v", inv.Rest, tt.wantRest)
			}
			for i := range tt.wantRest {
				if inv.Rest[i] != tt.wantRest[i] {
					t.Errorf("Rest = %v, want %v", inv.Rest, tt.wantRest)
				}
			}
			if got := inv.Switch("progress"); got != tt.progress {
				t.Errorf("Switch(progress) = %v, want %v", got, tt.progress)
			}
		})
	}
}

func TestSignatureParseErrors(t *testing.T) {
	sig := sleepSignature()

	if _, err := sig.Parse(nil); err == nil {
		t.Error("missing required positional not rejected")
	}
	if _, err := sig.Parse([]string{"1s", "--verbose"}); err == nil {
		t.Error("unknown long flag not rejected")
	}
	if _, err := sig.Parse([]string{"1s", "-x"}); err == nil {
		t.Error("unknown short flag not rejected")
	}
}

func TestSignatureParseNoRest(t *testing.T) {
	sig := Signature{Positional: []Arg{{Name: "name"}}}

	if _, err := sig.Parse([]string{"a", "b"}); err == nil {
		t.Error("surplus argument without rest capture not rejected")
	}
}

func TestSignatureParseRestOnly(t *testing.T) {
	sig := Signature{Rest: &Arg{Name: "args"}}

	inv, err := sig.Parse([]string{"hello", "world"})
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	if len(inv.Args) != 0 || len(inv.Rest) != 2 {
		t.Errorf("Args = %v, Rest = %v, want all in Rest", inv.Args, inv.Rest)
	}
}

func TestSignatureUsageLine(t *testing.T) {
	tests := []struct {
		sig  Signature
		name string
		want string
	}{
		{sleepSignature(), "sleep", "sleep <duration> [rest...] [--progress]"},
		{Signature{Rest: &Arg{Name: "args"}}, "echo", "echo [args...]"},
		{Signature{}, "help", "help"},
	}

	for _, tt := range tests {
		if got := tt.sig.UsageLine(tt.name); got != tt.want {
			t.Errorf("UsageLine(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestInvocationSwitchZeroValue(t *testing.T) {
	inv := &Invocation{}
	if inv.Switch("progress") {
		t.Error("Switch on zero-value Invocation reports true")
	}
}
