package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var (
	debugColored = color.New(color.FgCyan).SprintFunc()
	infoColored  = color.New(color.FgBlue).SprintFunc()
	errColored   = color.New(color.FgRed).SprintFunc()
)

// Logger writes leveled diagnostics to stderr. Debug lines are dropped
// unless debug mode is on. A single Logger value is passed to every
// component so level handling lives in one place.
type Logger struct {
	Out   io.Writer
	Debug bool
}

// NewLogger returns a logger writing to stderr.
func NewLogger(debug bool) *Logger {
	return &Logger{Out: os.Stderr, Debug: debug}
}

func (l *Logger) logf(tag, format string, args ...interface{}) {
	fmt.Fprintf(l.Out, "%s %s\n", tag, fmt.Sprintf(format, args...))
}

func (l *Logger) Debugf(format string, args ...interface{}) {
	if !l.Debug {
		return
	}
	l.logf(debugColored("debug:"), format, args...)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.logf(infoColored("info:"), format, args...)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.logf(errColored("error:"), format, args...)
}
