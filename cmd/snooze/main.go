// Command snooze is an interruptible countdown shell.
//
// Without positional arguments it starts an interactive shell; with
// arguments it runs a single command and exits. Either way, every
// delay can be cut short with Ctrl-C, and commands can be recorded to
// a session log for later analysis with snooze-log.
//
// Usage:
//
//	snooze [flags] [command [args...]]
//
// Flags:
//
//	-config string       Configuration file path (default ~/.config/snooze/config.yaml)
//	-session-log string  Session log path (.slog), overrides config
//	-log-level string    Log level: debug, info, warn, error (overrides config)
//	-no-progress         Disable the countdown bar
//	-version             Print version and exit
//
// Examples:
//
//	# Sleep for 1.5 seconds
//	snooze sleep 1sec 500ms
//
//	# Sleep with a countdown bar
//	snooze sleep 10sec --progress
//
//	# Interactive shell with session logging
//	snooze -session-log ~/.snooze/session.slog
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/snooze-sh/snooze-go/cmd/snooze/interactive"
	"github.com/snooze-sh/snooze-go/internal/config"
	"github.com/snooze-sh/snooze-go/pkg/delay"
	"github.com/snooze-sh/snooze-go/pkg/interrupt"
	"github.com/snooze-sh/snooze-go/pkg/progress"
	"github.com/snooze-sh/snooze-go/pkg/shell"
	"github.com/snooze-sh/snooze-go/pkg/shell/commands"

	sessionlog "github.com/snooze-sh/snooze-go/pkg/log"
)

// version is set at build time via -ldflags.
var version = "dev"

// Options holds the command-line flags.
type Options struct {
	ConfigFile string
	SessionLog string
	LogLevel   string
	NoProgress bool
	Version    bool
}

var opts Options

func init() {
	flag.StringVar(&opts.ConfigFile, "config", "", "Configuration file path")
	flag.StringVar(&opts.SessionLog, "session-log", "", "Session log path (.slog), overrides config")
	flag.StringVar(&opts.LogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	flag.BoolVar(&opts.NoProgress, "no-progress", false, "Disable the countdown bar")
	flag.BoolVar(&opts.Version, "version", false, "Print version and exit")
}

func main() {
	flag.Parse()

	if opts.Version {
		fmt.Printf("snooze %s\n", version)
		return
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	setupLogging(cfg.LogLevel)

	logger, closeLogger, err := buildLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to open session log: %v", err)
	}

	registry := shell.NewRegistry()
	for _, cmd := range commands.All() {
		if err := registry.Register(cmd); err != nil {
			log.Fatalf("Failed to register command: %v", err)
		}
	}

	// Ctrl-C during a command raises the shared flag; the running
	// delay notices it within one polling interval.
	intr := interrupt.NewFlag()
	stop := interrupt.Notify(intr, os.Interrupt)

	session := &shell.Session{
		ID:          uuid.NewString(),
		Registry:    registry,
		Interrupt:   intr,
		Logger:      logger,
		LogPath:     cfg.SessionLog,
		NewProgress: progressFactory(cfg),
	}

	session.Start()

	var code int
	if args := flag.Args(); len(args) > 0 {
		code = runOneShot(session, args)
	} else {
		code = runInteractive(session, cfg)
	}

	session.End()
	stop()
	closeLogger()
	os.Exit(code)
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	path := opts.ConfigFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if opts.SessionLog != "" {
		cfg.SessionLog = opts.SessionLog
	}
	if opts.LogLevel != "" {
		cfg.LogLevel = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func setupLogging(level string) {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	switch level {
	case "debug":
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.Lshortfile)
	case "warn", "error":
		log.SetFlags(log.Ltime)
	}
}

// buildLogger assembles the session logger: a CBOR file log when
// configured, mirrored to the console at debug level. The returned
// close function flushes the file log.
func buildLogger(cfg *config.Config) (sessionlog.Logger, func(), error) {
	var loggers []sessionlog.Logger
	closeFn := func() {}

	if cfg.SessionLog != "" {
		fl, err := sessionlog.NewFileLogger(cfg.SessionLog)
		if err != nil {
			return nil, nil, err
		}
		loggers = append(loggers, fl)
		closeFn = func() { _ = fl.Close() }
	}

	if cfg.LogLevel == "debug" {
		handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
		loggers = append(loggers, sessionlog.NewSlogAdapter(slog.New(handler)))
	}

	switch len(loggers) {
	case 0:
		return sessionlog.NoopLogger{}, closeFn, nil
	case 1:
		return loggers[0], closeFn, nil
	default:
		return sessionlog.NewMultiLogger(loggers...), closeFn, nil
	}
}

// progressFactory returns the progress bar hook for commands, or nil
// when the bar is disabled or stderr is not a terminal.
func progressFactory(cfg *config.Config) func() (delay.ProgressSink, func()) {
	if opts.NoProgress || !cfg.Progress.Enabled || !progress.Terminal(os.Stderr) {
		return nil
	}

	width := cfg.Progress.Width
	return func() (delay.ProgressSink, func()) {
		bar := progress.NewBar(os.Stderr, width)
		return bar, bar.Finish
	}
}

// runOneShot dispatches the positional arguments as a single command.
// An interrupted delay exits with the conventional 130.
func runOneShot(session *shell.Session, args []string) int {
	if err := session.Run(args[0], args[1:], "args"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, delay.ErrInterrupted) {
			return 130
		}
		return 1
	}
	return 0
}

// runInteractive starts the readline loop and blocks until it exits.
func runInteractive(session *shell.Session, cfg *config.Config) int {
	sh, err := interactive.New(session, cfg.Prompt, cfg.HistoryFile)
	if err != nil {
		log.Printf("Failed to start interactive shell: %v", err)
		return 1
	}

	// Route command output and log messages through readline so they
	// do not mangle the prompt.
	session.Out = sh.Stdout()
	session.Err = sh.Stderr()
	log.SetOutput(sh.Stdout())

	fmt.Fprintf(sh.Stdout(), "snooze %s - type 'help' for commands, 'exit' to quit\n", version)

	sh.Run()
	return 0
}
