// Package logging builds the logrus loggers used by the command line tool
// and adapts them to the pws.Logger interface.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bjb28/pws-api-wrapper/pkg/pws"
)

// New returns a logrus logger writing text to stderr. verbose lowers the
// level to debug.
func New(verbose bool) *logrus.Logger {
	return NewWithOutput(os.Stderr, verbose)
}

// NewWithOutput is New with an explicit destination.
func NewWithOutput(out io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(logrus.WarnLevel)

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	return log
}

// Adapter implements pws.Logger on top of a logrus entry.
type Adapter struct {
	entry *logrus.Entry
}

// NewAdapter wraps log for use in pws.Config.
func NewAdapter(log logrus.FieldLogger) *Adapter {
	return &Adapter{entry: log.WithFields(logrus.Fields{})}
}

func (a *Adapter) Debug(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Debug(msg)
}

func (a *Adapter) Info(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Info(msg)
}

func (a *Adapter) Warn(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Warn(msg)
}

func (a *Adapter) Error(msg string, fields map[string]interface{}) {
	a.entry.WithFields(fields).Error(msg)
}

var _ pws.Logger = (*Adapter)(nil)
