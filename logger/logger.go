// Package logger provides structured, leveled logging.
package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
)

// Logger handles structured logging of key-value pairs.
type Logger struct {
	logrus *logrus.Logger
	fields logrus.Fields
}

// NewLogger returns a new Logger instance configured by the given config.
// "ns" is a namespace attached to every message, usually the name of the
// subcommand or component doing the logging.
func NewLogger(ns string, conf Config) *Logger {
	log := logrus.New()
	l := &Logger{
		logrus: log,
		fields: logrus.Fields{"ns": ns},
	}
	l.Configure(conf)
	return l
}

// Configure configures the logging level, formatter, and output path.
func (l *Logger) Configure(conf Config) {
	l.SetLevel(conf.Level)

	switch conf.Formatter {
	case "json":
		l.SetFormatter(&jsonFormatter{conf: conf.JSONFormat})

	// Default to text
	default:
		l.SetFormatter(&textFormatter{
			conf.TextFormat,
			jsonFormatter{conf: conf.JSONFormat},
		})
	}

	if conf.OutputFile != "" {
		logFile, err := os.OpenFile(
			conf.OutputFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666,
		)
		if err != nil {
			l.Error("Can't open log output file", "output", conf.OutputFile)
		} else {
			l.SetOutput(logFile)
		}
	}
}

// SetLevel sets the level of logging.
func (l *Logger) SetLevel(lvl string) {
	level, err := logrus.ParseLevel(lvl)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.logrus.SetLevel(level)
}

// SetFormatter sets the formatter.
func (l *Logger) SetFormatter(f logrus.Formatter) {
	l.logrus.SetFormatter(f)
}

// SetOutput sets the logging output.
func (l *Logger) SetOutput(w io.Writer) {
	l.logrus.SetOutput(w)
}

// Discard configures the logger to discard all logs.
func (l *Logger) Discard() {
	l.SetOutput(io.Discard)
}

// Debug logs a debug message.
//
// After the first argument, arguments are key-value pairs which are written
// as structured logs.
//
//	log.Debug("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Debug(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry().WithFields(fields(args...)).Debug(msg)
}

// Info logs an info message.
//
// After the first argument, arguments are key-value pairs which are written
// as structured logs.
//
//	log.Info("Some message here", "key1", value1, "key2", value2)
func (l *Logger) Info(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry().WithFields(fields(args...)).Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	defer recoverLogErr()
	l.entry().WithFields(fields(args...)).Warn(msg)
}

// Error logs an error message.
//
// After the first argument, arguments are key-value pairs which are written
// as structured logs.
//
//	log.Error("Some message here", "key1", value1, "key2", value2)
//
// Error has a two-argument version that can be used as a shortcut.
//
//	err := submit()
//	log.Error("Couldn't submit job", err)
func (l *Logger) Error(msg string, args ...interface{}) {
	defer recoverLogErr()
	var f map[string]interface{}
	if len(args) == 1 {
		f = fields("error", args[0])
	} else {
		f = fields(args...)
	}
	l.entry().WithFields(f).Error(msg)
}

// WithFields returns a child logger with the given fields added to every
// log message.
func (l *Logger) WithFields(args ...interface{}) *Logger {
	defer recoverLogErr()
	f := logrus.Fields{}
	for k, v := range l.fields {
		f[k] = v
	}
	for k, v := range fields(args...) {
		f[k] = v
	}
	return &Logger{logrus: l.logrus, fields: f}
}

func (l *Logger) entry() *logrus.Entry {
	return l.logrus.WithFields(l.fields)
}

// recoverLogErr is used to recover from any panics during logging.
// Panics aren't expected of course, but logging should never crash
// a program, so this failsafe tries to prevent those crashes.
func recoverLogErr() {
	if r := recover(); r != nil {
		fmt.Println("Recovered from logging panic", r)
	}
}

// PrintSimpleError prints out an error message with a red "ERROR:" prefix.
func PrintSimpleError(err error) {
	fmt.Fprintf(os.Stderr, "%s %s\n", aurora.Red("ERROR:"), err.Error())
}

func fields(args ...interface{}) map[string]interface{} {
	f := make(map[string]interface{}, len(args)/2)
	if len(args) == 1 {
		f["unknown"] = args[0]
		return f
	}
	for i := 0; i+1 < len(args); i += 2 {
		k, ok := args[i].(string)
		if !ok {
			k = fmt.Sprintf("%v", args[i])
		}
		f[k] = args[i+1]
	}
	if len(args)%2 != 0 {
		f["unknown"] = args[len(args)-1]
	}
	return f
}
