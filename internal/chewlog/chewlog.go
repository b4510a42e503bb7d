// Package chewlog is a small wrapper around logrus, in the same shape as
// open-policy-agent/opa's internal log package: a package-level default
// entry plus a constructor for callers who want their own logger instance
// rather than the shared global one.
package chewlog

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Fields aliases logrus.Fields.
type Fields = logrus.Fields

var global = logrus.NewEntry(logrus.New())

// Global returns the package-wide default logger entry.
func Global() *logrus.Entry {
	return global
}

// New creates an independent logger entry, useful for a ConversionEngine
// instance that wants its own fields or output without affecting Global.
func New() *logrus.Entry {
	return logrus.NewEntry(logrus.New())
}

// SetLevel parses and applies level to the global logger.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	global.Logger.SetLevel(lvl)
	return nil
}

// SetOutput redirects the global logger's output.
func SetOutput(w io.Writer) {
	global.Logger.SetOutput(w)
}

// SetJSONFormatter switches the global logger to JSON output, useful when
// the CLI's logs are piped into another tool.
func SetJSONFormatter() {
	global.Logger.SetFormatter(&logrus.JSONFormatter{})
}
