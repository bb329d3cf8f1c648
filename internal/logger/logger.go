package logger

import (
	"io"
	"os"
	"time"

	"codeberg.org/mutker/pemon/internal/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sys/unix"
)

var log = zerolog.New(os.Stderr).With().Timestamp().Logger()

type LogLevel int8

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
	FatalLevel
)

// ParseLevel maps a configured level name to a LogLevel.
func ParseLevel(name string) (LogLevel, bool) {
	switch name {
	case "debug":
		return DebugLevel, true
	case "info":
		return InfoLevel, true
	case "warning", "warn":
		return WarnLevel, true
	case "error":
		return ErrorLevel, true
	default:
		return WarnLevel, false
	}
}

type LogEvent struct {
	*zerolog.Event
}

func (e *LogEvent) Msg(msg string) {
	e.Event.Msg(msg)
}

func (e *LogEvent) Send() {
	e.Event.Send()
}

// Init initializes the logger based on the given configuration
func Init(level LogLevel, isService bool) {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	if isService {
		output.TimeFormat = ""
		output.FormatTimestamp = func(_ interface{}) string {
			return ""
		}
		output.NoColor = true
	}

	log = zerolog.New(output).With().Timestamp().Logger()

	SetLogLevel(level)
}

// SetLogLevel sets the global log level
func SetLogLevel(level LogLevel) {
	zerolog.SetGlobalLevel(zerolog.Level(level))
}

// IsService checks if the application is running as a service
func IsService() bool {
	if _, err := os.Stdin.Stat(); err != nil {
		return true
	}
	if os.Getenv("SERVICE_NAME") != "" || os.Getenv("INVOCATION_ID") != "" {
		return true
	}
	if os.Getppid() == 1 {
		return true
	}

	return unix.Getpgrp() == unix.Getpid()
}

// Debug logs a debug message
func Debug() *LogEvent {
	return &LogEvent{log.Debug()}
}

// Info logs an info message
func Info() *LogEvent {
	return &LogEvent{log.Info()}
}

// Warn logs a warning message
func Warn() *LogEvent {
	return &LogEvent{log.Warn()}
}

// Error logs an error message
func Error() *LogEvent {
	return &LogEvent{log.Error()}
}

// ErrorWithCode logs an error message with a specific error code
func ErrorWithCode(err errors.Error) *LogEvent {
	return withCode(log.Error(), err)
}

// Fatal logs a fatal message and exits the program
func Fatal() *LogEvent {
	return &LogEvent{log.Fatal()}
}

// FatalWithCode logs a fatal message with a specific error code and exits the program
func FatalWithCode(err errors.Error) *LogEvent {
	return withCode(log.Fatal(), err)
}

func withCode(e *zerolog.Event, err errors.Error) *LogEvent {
	return &LogEvent{e.
		Str("error_code", string(err.Code())).
		Str("error_message", err.Error()).
		AnErr("error", err.Unwrap())}
}

// instance adapts a zerolog.Logger to the Logger interface so components
// can receive their logger as a dependency.
type instance struct {
	zl func() *zerolog.Logger
}

// Default returns a Logger backed by the process-wide logger configured by Init.
func Default() Logger {
	return &instance{zl: func() *zerolog.Logger { return &log }}
}

// New returns a Logger writing JSON lines to w.
func New(w io.Writer) Logger {
	zl := zerolog.New(w).With().Timestamp().Logger()
	return &instance{zl: func() *zerolog.Logger { return &zl }}
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	zl := zerolog.Nop()
	return &instance{zl: func() *zerolog.Logger { return &zl }}
}

func (l *instance) Debug() *LogEvent { return &LogEvent{l.zl().Debug()} }
func (l *instance) Info() *LogEvent  { return &LogEvent{l.zl().Info()} }
func (l *instance) Warn() *LogEvent  { return &LogEvent{l.zl().Warn()} }
func (l *instance) Error() *LogEvent { return &LogEvent{l.zl().Error()} }

func (l *instance) ErrorWithCode(err errors.Error) *LogEvent {
	return withCode(l.zl().Error(), err)
}
