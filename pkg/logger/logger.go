// Package logger provides logging functionality for kvcheck.
package logger

import (
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=logger.go -destination=mocks/logger.gen.go -package=mocks

// Logger interface provides logging capabilities.
type Logger interface {
	// Logf logs a formatted message.
	Logf(format string, args ...interface{})
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

// NewNoopLogger creates a new noop logger.
func NewNoopLogger() Logger {
	return &noopLogger{}
}

// Logf does nothing for noop logger.
func (n *noopLogger) Logf(_ string, _ ...interface{}) {}

// verboseLogger writes debug entries through logrus. Stdout is left to the
// report, so entries go to stderr by default.
type verboseLogger struct {
	entry *log.Entry
}

// NewVerboseLogger creates a logger writing to stderr.
func NewVerboseLogger() Logger {
	return NewVerboseLoggerTo(os.Stderr)
}

// NewVerboseLoggerTo creates a logger writing to w.
func NewVerboseLoggerTo(w io.Writer) Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetLevel(log.DebugLevel)
	l.SetFormatter(&log.TextFormatter{
		DisableTimestamp: true,
		DisableColors:    true,
	})

	return &verboseLogger{entry: log.NewEntry(l).WithField("app", "kvcheck")}
}

// Logf writes a formatted message at debug level.
func (v *verboseLogger) Logf(format string, args ...interface{}) {
	v.entry.Debug(fmt.Sprintf(format, args...))
}
