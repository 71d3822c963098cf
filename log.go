package sco

import (
	"os"

	"github.com/rs/zerolog"

	sched "github.com/gosco/sco/internal"
)

// SetLogger installs l as the logger for every Scheduler's internal trace
// messages: the silent no-ops described throughout this package's docs
// (resuming an unknown or non-local id, detaching an id that isn't paused,
// and so on) are not errors a caller can act on, but they are worth a trace
// line when a system embedding the scheduler is misbehaving. Logging is
// disabled until this is called. It is not safe to call concurrently with
// any Scheduler operation.
func SetLogger(l zerolog.Logger) {
	sched.SetLogger(l)
}

// NewLoggerForLevel builds a zerolog.Logger writing to stderr at the level
// named by a Config's LogLevel field ("disabled" turns logging off
// entirely).
func NewLoggerForLevel(levelName string) (zerolog.Logger, error) {
	if levelName == "disabled" || levelName == "" {
		return zerolog.Nop(), nil
	}
	level, err := zerolog.ParseLevel(levelName)
	if err != nil {
		return zerolog.Nop(), err
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger(), nil
}
