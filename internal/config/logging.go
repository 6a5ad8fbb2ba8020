package config

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/gridnote/heatcurve/internal/logging"
)

// Logger is the global zerolog logger instance.
//
//nolint:gochecknoglobals // Intentionally global for application-wide structured logging
var Logger zerolog.Logger

// logMu protects concurrent access to Logger.
//
//nolint:gochecknoglobals // Guards the global logger state
var logMu sync.RWMutex

// InitLogger rebuilds the package-level Logger from a logging section.
// Unparseable levels default to info inside the logging package.
func InitLogger(lc LoggingConfig) {
	logMu.Lock()
	defer logMu.Unlock()
	Logger = logging.NewLogger(lc.ToLoggingConfig())
}

// GetLogger returns the global logger instance.
func GetLogger() zerolog.Logger {
	logMu.RLock()
	defer logMu.RUnlock()
	return Logger
}

// ToLoggingConfig bridges the scenario file's logging section to the
// logging package's Config:
//   - Level and Format are copied directly
//   - If File is set, Output becomes "file" and File is passed through
//   - If File is empty, Output defaults to "stderr"
func (lc LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}
	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// init seeds the package-level logger so code can log before any scenario
// file is loaded.
//
//nolint:gochecknoinits // intentional: logger must exist before config load
func init() {
	InitLogger(LoggingConfig{Level: "info", Format: "console"})
}
