// Package duration parses the duration literals accepted by snooze
// commands and formats delay totals for countdown labels.
//
// # Literals
//
// Three forms are accepted, all signed:
//
//   - Go duration syntax: "300ms", "1.5s", "1h30m"
//   - spelled-out unit aliases: "90sec", "2min", "3hr", "1day", "1wk"
//   - bare integers, taken as nanoseconds: "1000000000"
//
// Negative literals parse successfully. They are not an error at this
// layer: the delay core clamps each negative contribution to zero when
// accumulating a total.
//
// # Labels
//
// FormatHMS renders a total as the fixed-width "HH:MM:SS" string shown
// next to a countdown bar. It is computed once per delay, never
// recomputed mid-loop.
package duration
