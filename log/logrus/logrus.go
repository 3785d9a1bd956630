package logrus

import (
	"github.com/sirupsen/logrus"

	"github.com/unkn0wn-root/brainmem"
)

var _ brainmem.Logger = Logger{}

// Logger adapts a logrus entry; every line carries component=brainmem.
type Logger struct{ E *logrus.Entry }

func New(l logrus.FieldLogger) Logger {
	return Logger{E: l.WithField("component", "brainmem")}
}

func (l Logger) Debug(msg string, f brainmem.Fields) { l.E.WithFields(logrus.Fields(f)).Debug(msg) }
func (l Logger) Info(msg string, f brainmem.Fields)  { l.E.WithFields(logrus.Fields(f)).Info(msg) }
func (l Logger) Warn(msg string, f brainmem.Fields)  { l.E.WithFields(logrus.Fields(f)).Warn(msg) }
func (l Logger) Error(msg string, f brainmem.Fields) { l.E.WithFields(logrus.Fields(f)).Error(msg) }
