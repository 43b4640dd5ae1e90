package duration

import (
	"fmt"
	"time"
)

// FormatHMS renders d as a fixed-width "HH:MM:SS" countdown label.
// Hours widen past two digits rather than wrap (25h -> "25:00:00").
// Negative durations render as "00:00:00".
func FormatHMS(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}
