// Package logger is a thin leveled facade over zerolog used across the
// service. Call Init early with the LOG_LEVEL env value (debug|info|warn|
// error|fatal); the default level is info.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

var (
	mu  sync.RWMutex
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
)

// Init sets the global log level (case-insensitive).
func Init(l string) {
	mu.Lock()
	defer mu.Unlock()
	log = log.Level(parseLevel(l))
}

// SetOutput redirects log output; tests use this to capture lines.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w == nil {
		w = os.Stdout
	}
	log = log.Output(w)
}

func parseLevel(l string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(l)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

func current() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debugf(format string, v ...interface{}) { l := current(); l.Debug().Msgf(format, v...) }
func Infof(format string, v ...interface{})  { l := current(); l.Info().Msgf(format, v...) }
func Warnf(format string, v ...interface{})  { l := current(); l.Warn().Msgf(format, v...) }
func Errorf(format string, v ...interface{}) { l := current(); l.Error().Msgf(format, v...) }
func Fatalf(format string, v ...interface{}) { l := current(); l.Fatal().Msgf(format, v...) }

// Single-string helpers kept for brief messages.
func Debug(v string) { Debugf("%s", v) }
func Info(v string)  { Infof("%s", v) }
func Warn(v string)  { Warnf("%s", v) }
func Error(v string) { Errorf("%s", v) }

// LevelString returns the current level as text.
func LevelString() string {
	switch current().GetLevel() {
	case zerolog.DebugLevel:
		return "debug"
	case zerolog.WarnLevel:
		return "warn"
	case zerolog.ErrorLevel:
		return "error"
	case zerolog.FatalLevel:
		return "fatal"
	}
	return "info"
}
