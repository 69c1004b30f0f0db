// Package logging configures the process-wide logrus logger.
package logging

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

// Diagnostics receives error reports while regular log output is discarded
var Diagnostics io.Writer = os.Stderr

// Setup applies the level and destination. Logs go to file when one is
// given; otherwise quiet discards them so a full-screen terminal frame is
// not overwritten. The caller closes the returned file.
func Setup(level log.Level, file string, quiet bool) (*os.File, error) {
	log.SetLevel(level)

	if file != "" {
		f, err := os.OpenFile(file, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		log.SetOutput(f)
		return f, nil
	}

	if quiet {
		log.SetOutput(io.Discard)
	} else {
		log.SetOutput(os.Stderr)
	}
	return nil, nil
}

// Report logs err with msg. A discarded log or a level above error would
// hide it, so both are lifted first.
func Report(err error, msg string) {
	if log.StandardLogger().Out == io.Discard {
		log.SetOutput(Diagnostics)
	}
	if !log.IsLevelEnabled(log.ErrorLevel) {
		log.SetLevel(log.ErrorLevel)
	}
	log.WithError(err).Error(msg)
}

// Fatal reports err and exits with status 1
func Fatal(err error, msg string) {
	Report(err, msg)
	os.Exit(1)
}
