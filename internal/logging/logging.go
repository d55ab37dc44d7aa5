package logging

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

var (
	logger = zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger().Level(zerolog.WarnLevel)

	currentVerbosity = 0
)

// SetVerbosity configures logger output from the count of -v flags (0-4).
func SetVerbosity(count int) {
	if count < 0 {
		count = 0
	}
	if count > 4 {
		count = 4
	}
	currentVerbosity = count
	switch count {
	case 0:
		logger = logger.Level(zerolog.WarnLevel)
	case 1:
		logger = logger.Level(zerolog.InfoLevel)
	case 2:
		logger = logger.Level(zerolog.DebugLevel)
	default:
		logger = logger.Level(zerolog.TraceLevel)
	}
}

// Verbosity returns the stored -v count.
func Verbosity() int {
	return currentVerbosity
}

// LevelName returns the current level label.
func LevelName() string {
	return logger.GetLevel().String()
}

// ParseLevel returns the zerolog level and the equivalent -v count for a
// level name.
func ParseLevel(s string) (zerolog.Level, int, error) {
	switch strings.ToLower(s) {
	case "error":
		return zerolog.ErrorLevel, 0, nil
	case "warn", "warning":
		return zerolog.WarnLevel, 0, nil
	case "info":
		return zerolog.InfoLevel, 1, nil
	case "debug":
		return zerolog.DebugLevel, 2, nil
	case "trace":
		return zerolog.TraceLevel, 4, nil
	default:
		return zerolog.WarnLevel, currentVerbosity, fmt.Errorf("unknown level %s", s)
	}
}

// Errorf always prints.
func Errorf(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

func Warnf(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

func Infof(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

func Debugf(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}

func Tracef(format string, args ...any) {
	logger.Trace().Msgf(format, args...)
}
