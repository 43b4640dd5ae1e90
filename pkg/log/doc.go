// Package log provides structured session logging for snooze.
//
// This package defines the Logger interface and Event types for capturing
// shell session events (session lifecycle, command dispatch, delay
// outcomes). It is separate from operational logging (slog) - session
// capture provides a complete machine-readable trace of what was slept,
// for how long, and how each delay ended.
//
// # Basic Usage
//
// Hosts configure logging by providing a Logger implementation:
//
//	// For development: log to console via slog
//	logger := log.NewSlogAdapter(slog.Default())
//
//	// For normal sessions: write to binary file
//	logger, _ := log.NewFileLogger("~/.local/share/snooze/session.slog")
//
//	// Both: use MultiLogger
//	logger := log.NewMultiLogger(
//	    log.NewSlogAdapter(slog.Default()),
//	    fileLogger,
//	)
//
// # Event Kinds
//
// Session lifecycle (SESSION_START/SESSION_END), command dispatch
// (COMMAND_RUN/COMMAND_DONE), and the delay lifecycle
// (DELAY_START/DELAY_DONE/DELAY_INTERRUPTED) each have a Kind; command
// failures are captured as ERROR events with a message payload.
//
// # File Format
//
// Log files use CBOR encoding with .slog extension. The snooze-log CLI
// tool provides viewing, filtering, export, and statistics.
package log
