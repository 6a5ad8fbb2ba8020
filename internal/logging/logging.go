// Package logging provides the zerolog-based structured logging
// infrastructure shared by the CLI and the calculation engine: logger
// construction from configuration, context propagation, and per-invocation
// trace IDs.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config describes how to build a logger.
type Config struct {
	// Level is a zerolog level name ("debug", "info", ...). Unparseable
	// values default to info.
	Level string

	// Format is "console" or "json".
	Format string

	// Output selects the destination: "stderr", "stdout", or "file".
	Output string

	// File is the log file path when Output is "file".
	File string

	// Caller adds the caller field to every event.
	Caller bool
}

// Format and output selector values.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
	OutputStderr  = "stderr"
	OutputStdout  = "stdout"
	OutputFile    = "file"
)

const logFilePerm = 0o600

// NewLogger builds a zerolog.Logger from cfg. When a file destination cannot
// be opened the logger falls back to stderr rather than failing; logging is
// never fatal for the calculator.
func NewLogger(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer
	switch cfg.Output {
	case OutputStdout:
		out = os.Stdout
	case OutputFile:
		f, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, logFilePerm)
		if fileErr != nil {
			out = os.Stderr
		} else {
			out = f
		}
	default:
		out = os.Stderr
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		logger = logger.Caller()
	}
	return logger.Logger()
}

// ComponentLogger returns a child logger tagged with a component name, the
// field every subsystem stamps on its events.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
