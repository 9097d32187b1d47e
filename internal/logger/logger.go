// Package logger provides leveled debug logging for the sslauto CLI.
//
// Logging goes to stderr, separate from the user-facing output package
// which writes to stdout. That separation keeps --json output clean
// while still allowing --verbose diagnostics on the side.
//
// By default only warnings and errors are shown. Init(true) drops the
// threshold to debug.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

var log = newLogger(os.Stderr, zerolog.WarnLevel)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.DateTime,
	}
	return zerolog.New(console).Level(level).With().Timestamp().Logger()
}

// Init configures the global logger based on the --verbose flag.
// Verbose enables debug and info levels; otherwise only warnings and
// errors are emitted.
func Init(verbose bool) {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	log = newLogger(os.Stderr, level)
}

// SetOutput redirects log output, primarily for tests.
func SetOutput(w io.Writer) {
	log = newLogger(w, log.GetLevel())
}

// Debug logs a debug message, shown only in verbose mode.
func Debug(format string, args ...interface{}) {
	log.Debug().Msgf(format, args...)
}

// Info logs an informational message, shown only in verbose mode.
func Info(format string, args ...interface{}) {
	log.Info().Msgf(format, args...)
}

// Warn logs a warning.
func Warn(format string, args ...interface{}) {
	log.Warn().Msgf(format, args...)
}

// Error logs an error message.
func Error(format string, args ...interface{}) {
	log.Error().Msgf(format, args...)
}

// DebugFields logs a debug message with structured fields.
func DebugFields(msg string, fields map[string]interface{}) {
	log.Debug().Fields(fields).Msg(msg)
}

// ErrorErr logs an error value with a context message.
func ErrorErr(err error, msg string) {
	if err == nil {
		return
	}
	log.Error().Err(err).Msg(msg)
}
