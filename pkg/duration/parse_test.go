package duration

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		// Go syntax
		{"300ms", int64(300 * time.Millisecond)},
		{"1s", int64(time.Second)},
		{"1.5s", int64(1500 * time.Millisecond)},
		{"1h30m", int64(90 * time.Minute)},
		{"-250ms", int64(-250 * time.Millisecond)},
		{"0s", 0},

		// Alias units
		{"1sec", int64(time.Second)},
		{"90sec", int64(90 * time.Second)},
		{"2min", int64(2 * time.Minute)},
		{"3hr", int64(3 * time.Hour)},
		{"1day", int64(24 * time.Hour)},
		{"1wk", int64(7 * 24 * time.Hour)},
		{"1.5hr", int64(90 * time.Minute)},
		{"-2sec", int64(-2 * time.Second)},

		// Bare integers are nanoseconds
		{"1000000000", int64(time.Second)},
		{"-5", -5},
		{"0", 0},

		// Surrounding whitespace is tolerated
		{"  1s ", int64(time.Second)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "   ", "abc", "1x", "sec", "1..5s", "1msec", "--1s"} {
		t.Run(in, func(t *testing.T) {
			if got, err := Parse(in); err == nil {
				t.Errorf("Parse(%q) = %d, want error", in, got)
			}
		})
	}
}
