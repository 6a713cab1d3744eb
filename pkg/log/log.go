// Package log defines the minimal logging surface used across the
// module, backed by logrus rather than bespoke fmt.Printf calls.
package log

import "gopkg.in/Sirupsen/logrus.v0"

// Logger is the ambient logging interface every package that needs to
// report anomalies (such as a draw skipped because the LCD is disabled)
// depends on, rather than a concrete logrus.Logger.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logger struct {
	entry *logrus.Logger
}

// New returns a Logger backed by a logrus.Logger with text-formatted
// output.
func New() Logger {
	l := logrus.New()
	return &logger{entry: l}
}

func (l *logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

func (l *logger) Debugf(format string, args ...interface{}) {
	l.entry.Debugf(format, args...)
}
