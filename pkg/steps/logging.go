package steps

import (
	"log/slog"

	"github.com/BrandonKowalski/steps/pkg/steps/internal"
)

// SetLogPath sets the full path for the log file, including filename.
// Creates all necessary parent directories.
// Call before the first Manager is created to take effect.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the shared structured logger used by managers that are
// not given one explicitly.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the shared logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// CloseLogger closes the log file, if one was opened.
func CloseLogger() {
	internal.CloseLogger()
}
