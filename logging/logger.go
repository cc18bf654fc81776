// Package logging provides the Logger interface used across the
// service, plus a colored console implementation.
package logging

import (
	"errors"
	"io"
	"log"
)

// Logger is the minimal logging surface components depend on.
type Logger interface {
	Info(msg string)
	Warning(msg string)
	Error(msg string)
}

const colorReset = "\033[0m"

// ConsoleLogger writes colored, prefixed log lines to a writer.
type ConsoleLogger struct {
	prefix string
	color  string
	out    *log.Logger
}

var _ Logger = &ConsoleLogger{}

// New creates a ConsoleLogger with the given subsystem prefix and ANSI
// color.
func New(prefix, color string, out io.Writer) (*ConsoleLogger, error) {
	if out == nil {
		return nil, errors.New("logger requires an output writer")
	}

	return &ConsoleLogger{
		prefix: prefix,
		color:  color,
		out:    log.New(out, "", log.Ldate|log.Ltime),
	}, nil
}

func (l *ConsoleLogger) write(level, msg string) {
	l.out.Printf("%s[%s] [%s] %s%s", l.color, l.prefix, level, msg, colorReset)
}

// Info logs an informational message.
func (l *ConsoleLogger) Info(msg string) {
	l.write("INFO", msg)
}

// Warning logs a warning message.
func (l *ConsoleLogger) Warning(msg string) {
	l.write("WARNING", msg)
}

// Error logs an error message.
func (l *ConsoleLogger) Error(msg string) {
	l.write("ERROR", msg)
}
