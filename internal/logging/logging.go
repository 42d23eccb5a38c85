// Package logging configures logrus for the command line tool. Logs go to
// stderr so stdout carries only experiment answers.
package logging

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Setup returns a logger writing to w with full timestamps. Verbose
// enables debug output; otherwise only warnings and errors are shown.
// The logrus standard logger is left untouched.
func Setup(w io.Writer, verbose bool) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: "2006-01-02 15:04:05.000"})
	l.SetOutput(w)

	if verbose {
		l.SetLevel(logrus.DebugLevel)
	} else {
		l.SetLevel(logrus.WarnLevel)
	}
	return l
}
