// Package dmglog provides the logging interface used throughout the
// emulator core. It wraps logrus so callers never import it directly.
package dmglog

import "github.com/sirupsen/logrus"

// Logger is the narrow logging surface the core depends on.
type Logger interface {
	Infof(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

type logrusLogger struct {
	l *logrus.Logger
}

// New returns a Logger backed by logrus, configured for deterministic,
// single-line output (no timestamps, no color, no field sorting).
func New() Logger {
	l := logrus.New()
	l.Level = logrus.DebugLevel
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
	}
	return &logrusLogger{l: l}
}

func (g *logrusLogger) Infof(format string, args ...interface{})  { g.l.Infof(format, args...) }
func (g *logrusLogger) Errorf(format string, args ...interface{}) { g.l.Errorf(format, args...) }
func (g *logrusLogger) Debugf(format string, args ...interface{}) { g.l.Debugf(format, args...) }

type nullLogger struct{}

// NewNull returns a Logger that discards everything, used by default in
// tests so they don't spam stdout with bus/decode diagnostics.
func NewNull() Logger { return &nullLogger{} }

func (nullLogger) Infof(string, ...interface{})  {}
func (nullLogger) Errorf(string, ...interface{}) {}
func (nullLogger) Debugf(string, ...interface{}) {}
