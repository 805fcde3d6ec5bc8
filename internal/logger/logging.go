// Package logger provides the charmbracelet/log configuration shared by the
// CLI and server entry points.
package logger

import (
	"os"

	"github.com/charmbracelet/log"
)

// Default creates a logger that respects the global log level, with no
// timestamp or caller noise — the shape used for everyday CLI/server output.
func Default(prefix string) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		ReportCaller:    false,
		ReportTimestamp: false,
		Formatter:       log.TextFormatter,
		Level:           log.GetLevel(),
	})
}

// NewWithConfig creates a logger with explicit level, caller, timestamp, and
// formatter settings, for callers that need more than Default.
func NewWithConfig(prefix string, level log.Level, caller bool, showTimestamp bool, formatter log.Formatter) *log.Logger {
	return log.NewWithOptions(os.Stdout, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportCaller:    caller,
		ReportTimestamp: showTimestamp,
		Formatter:       formatter,
	})
}
