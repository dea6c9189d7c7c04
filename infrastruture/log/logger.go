// Package logger provides the coloured, per-component loggers used across the services.
package logger

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/beka-birhanu/loopgrid/config"
	"github.com/beka-birhanu/loopgrid/service/i"
)

var _ i.Logger = &Logger{}

// Logger prefixes every line with a coloured component name and a level tag.
type Logger struct {
	name   string
	color  string
	logger *log.Logger
}

// New creates a Logger for the named component writing to out.
func New(name, color string, out io.Writer) (*Logger, error) {
	if name == "" {
		return nil, errors.New("logger name is required")
	}
	if out == nil {
		return nil, errors.New("logger output is required")
	}

	return &Logger{
		name:   name,
		color:  color,
		logger: log.New(out, "", log.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.print(config.LogInfoColor, "INFO", msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.print(config.LogWarningColor, "WARNING", msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.print(config.LogErrorColor, "ERROR", msg)
}

func (l *Logger) print(levelColor, level, msg string) {
	l.logger.Println(fmt.Sprintf("%s[%s]%s %s[%s]%s %s",
		l.color, l.name, config.ColorReset,
		levelColor, level, config.LogColorReset,
		msg,
	))
}
