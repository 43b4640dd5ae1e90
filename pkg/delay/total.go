package delay

import (
	"math"
	"time"
)

// Total sums nanosecond operands into a single delay. Negative
// operands contribute zero and the sum saturates at the maximum
// representable duration instead of wrapping, so the result is always
// a valid non-negative duration.
func Total(first int64, rest ...int64) time.Duration {
	total := clampNonNegative(first)
	for _, ns := range rest {
		total = addSaturating(total, clampNonNegative(ns))
	}
	return time.Duration(total)
}

func clampNonNegative(ns int64) int64 {
	if ns < 0 {
		return 0
	}
	return ns
}

// addSaturating adds two non-negative values, pinning the result at
// math.MaxInt64 on overflow.
func addSaturating(a, b int64) int64 {
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}
