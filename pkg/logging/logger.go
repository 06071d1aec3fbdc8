package logging

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LogLevel defines the severity of the message
type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARN
	ERROR
)

// NewMockLogger returns a convenient mock logger for testing
func NewMockLogger() *DefaultLogger {
	return newLogger(bytes.NewBufferString(""), INFO)
}

// Logger interface defines logging operations
//
//go:generate mockery --name=Logger --output=./mocks
type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
	SetOutput(w io.Writer)
	SetLevel(level LogLevel)
}

// DefaultLogger provides a standard implementation on top of charmbracelet/log
type DefaultLogger struct {
	backend *log.Logger
	level   LogLevel
}

// NewDefaultLogger creates a new logger instance writing to stderr, so that
// command results on stdout stay machine readable.
func NewDefaultLogger() *DefaultLogger {
	return newLogger(os.Stderr, INFO)
}

func newLogger(w io.Writer, level LogLevel) *DefaultLogger {
	backend := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006/01/02 15:04:05",
		Level:           toBackendLevel(level),
	})
	return &DefaultLogger{
		backend: backend,
		level:   level,
	}
}

// Debug logs debug messages
func (l *DefaultLogger) Debug(format string, args ...any) {
	l.backend.Debugf(format, args...)
}

// Info logs informational messages
func (l *DefaultLogger) Info(format string, args ...any) {
	l.backend.Infof(format, args...)
}

// Warn logs warning messages
func (l *DefaultLogger) Warn(format string, args ...any) {
	l.backend.Warnf(format, args...)
}

// Error logs error messages
func (l *DefaultLogger) Error(format string, args ...any) {
	l.backend.Errorf(format, args...)
}

// SetOutput sets the output destination for the logger
func (l *DefaultLogger) SetOutput(w io.Writer) {
	l.backend.SetOutput(w)
}

// SetLevel sets the logging level
func (l *DefaultLogger) SetLevel(level LogLevel) {
	l.level = level
	l.backend.SetLevel(toBackendLevel(level))
}

// Level returns the current logging level
func (l *DefaultLogger) Level() LogLevel {
	return l.level
}

func toBackendLevel(level LogLevel) log.Level {
	switch level {
	case DEBUG:
		return log.DebugLevel
	case WARN:
		return log.WarnLevel
	case ERROR:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// StringToLogLevel converts a string representation to a LogLevel
func StringToLogLevel(level string) LogLevel {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return DEBUG
	case "info":
		return INFO
	case "warn", "warning":
		return WARN
	case "error":
		return ERROR
	default:
		return INFO
	}
}
