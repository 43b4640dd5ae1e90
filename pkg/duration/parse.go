package duration

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Unit aliases accepted in addition to Go's time.ParseDuration syntax.
var aliases = []struct {
	suffix string
	unit   time.Duration
}{
	{"sec", time.Second},
	{"min", time.Minute},
	{"day", 24 * time.Hour},
	{"hr", time.Hour},
	{"wk", 7 * 24 * time.Hour},
}

// Parse converts a single duration literal into signed nanoseconds.
//
// Accepted forms are Go duration syntax ("300ms", "1h30m"), the alias
// units sec/min/hr/day/wk ("90sec", "2day"), and bare integers, which
// are taken as nanoseconds. Negative values parse successfully.
func Parse(tok string) (int64, error) {
	s := strings.TrimSpace(tok)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	// Bare integer means nanoseconds.
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}

	if d, err := time.ParseDuration(s); err == nil {
		return int64(d), nil
	}

	if v, ok := parseAlias(s); ok {
		return v, nil
	}

	return 0, fmt.Errorf("invalid duration %q", tok)
}

// parseAlias handles a single number+alias literal such as "90sec" or
// "-1.5hr". Compound literals are only supported through Go syntax.
func parseAlias(s string) (int64, bool) {
	for _, a := range aliases {
		num, found := strings.CutSuffix(s, a.suffix)
		if !found || num == "" {
			continue
		}
		f, err := strconv.ParseFloat(num, 64)
		if err != nil {
			continue
		}
		ns := f * float64(a.unit)
		if ns >= math.MaxInt64 {
			return math.MaxInt64, true
		}
		if ns <= math.MinInt64 {
			return math.MinInt64, true
		}
		return int64(ns), true
	}
	return 0, false
}
