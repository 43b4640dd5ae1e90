// Package config loads the snooze shell configuration from YAML.
package config

import "fmt"

// Progress bar width bounds. The bar must fit a narrow terminal but
// still leave room for the elapsed/total label.
const (
	MinProgressWidth = 10
	MaxProgressWidth = 200
)

// Config holds the shell configuration.
type Config struct {
	// Prompt is the interactive prompt string.
	Prompt string `yaml:"prompt"`

	// HistoryFile is where the interactive shell persists input
	// history. Empty disables history.
	HistoryFile string `yaml:"history_file"`

	// SessionLog is the session log path (.slog). Empty disables
	// session logging.
	SessionLog string `yaml:"session_log"`

	// LogLevel controls entry-point log verbosity: debug, info,
	// warn, error. At debug, session events are mirrored to the
	// console.
	LogLevel string `yaml:"log_level"`

	// Progress configures the countdown bar.
	Progress ProgressConfig `yaml:"progress"`
}

// ProgressConfig configures the countdown bar shown during delays.
type ProgressConfig struct {
	// Enabled allows commands to draw the bar on interactive
	// terminals.
	Enabled bool `yaml:"enabled"`

	// Width is the bar width in cells.
	Width int `yaml:"width"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Prompt:   "snooze> ",
		LogLevel: "info",
		Progress: ProgressConfig{
			Enabled: true,
			Width:   40,
		},
	}
}

// Validate checks field values. Parse and Load call it; callers that
// override fields afterwards (flag overrides) should call it again.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
		// Valid
	default:
		return &LoadError{
			Message: fmt.Sprintf("unknown log level %q (use: debug, info, warn, error)", c.LogLevel),
		}
	}

	if c.Progress.Width < MinProgressWidth || c.Progress.Width > MaxProgressWidth {
		return &LoadError{
			Message: fmt.Sprintf("progress width must be %d-%d, got %d",
				MinProgressWidth, MaxProgressWidth, c.Progress.Width),
		}
	}

	return nil
}
