// Package logging builds the logrus loggers shared by the library packages
// and the CLI.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// Discard returns a logger that drops every entry. Library packages default
// to it so embedding hosts opt in to diagnostics.
func Discard() logrus.FieldLogger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

// New builds a logger writing to out at the named level. Format is "text"
// (default) or "json".
func New(out io.Writer, level, format string) (*logrus.Logger, error) {
	logger := logrus.New()
	if out != nil {
		logger.SetOutput(out)
	}

	lvl := logrus.WarnLevel
	if trimmed := strings.TrimSpace(level); trimmed != "" {
		parsed, err := logrus.ParseLevel(trimmed)
		if err != nil {
			return nil, fmt.Errorf("logging: %w", err)
		}
		lvl = parsed
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("logging: unknown format %q (expected text|json)", format)
	}
	return logger, nil
}
