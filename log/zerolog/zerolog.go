// Package zerolog is a concrete implementation of the log abstractions based on zerolog.
package zerolog

import (
	"fmt"
	"os"

	"github.com/beatlabs/httpauth/log"
	"github.com/rs/zerolog"
)

var levelMap = map[log.Level]zerolog.Level{
	log.NoLevel:    zerolog.NoLevel,
	log.DebugLevel: zerolog.DebugLevel,
	log.InfoLevel:  zerolog.InfoLevel,
	log.WarnLevel:  zerolog.WarnLevel,
	log.ErrorLevel: zerolog.ErrorLevel,
}

// Logger implements logging with zerolog.
type Logger struct {
	logger *zerolog.Logger
	fields map[string]interface{}
	lvl    log.Level
}

// New returns a new logger with the given level and fields attached.
func New(l *zerolog.Logger, lvl log.Level, ff map[string]interface{}) log.Logger {
	if len(ff) == 0 {
		ff = make(map[string]interface{})
	}
	zl := l.Level(levelMap[lvl]).With().Fields(ff).Logger()
	return &Logger{logger: &zl, fields: ff, lvl: lvl}
}

// Default returns a logger writing JSON lines to stdout.
func Default(lvl log.Level) log.Logger {
	zl := zerolog.New(os.Stdout).With().Timestamp().Logger()
	return New(&zl, lvl, nil)
}

// Sub returns a sub logger with the given fields attached.
func (zl Logger) Sub(ff map[string]interface{}) log.Logger {
	if len(ff) == 0 {
		return zl
	}

	all := make(map[string]interface{}, len(zl.fields)+len(ff))
	for k, v := range zl.fields {
		all[k] = v
	}
	for k, v := range ff {
		all[k] = v
	}

	l := zl.logger.With().Fields(ff).Logger()
	return &Logger{logger: &l, fields: all, lvl: zl.lvl}
}

// Error logging.
func (zl Logger) Error(args ...interface{}) {
	zl.logger.Error().Msg(fmt.Sprint(args...))
}

// Errorf logging.
func (zl Logger) Errorf(msg string, args ...interface{}) {
	zl.logger.Error().Msgf(msg, args...)
}

// Warn logging.
func (zl Logger) Warn(args ...interface{}) {
	zl.logger.Warn().Msg(fmt.Sprint(args...))
}

// Warnf logging.
func (zl Logger) Warnf(msg string, args ...interface{}) {
	zl.logger.Warn().Msgf(msg, args...)
}

// Info logging.
func (zl Logger) Info(args ...interface{}) {
	zl.logger.Info().Msg(fmt.Sprint(args...))
}

// Infof logging.
func (zl Logger) Infof(msg string, args ...interface{}) {
	zl.logger.Info().Msgf(msg, args...)
}

// Debug logging.
func (zl Logger) Debug(args ...interface{}) {
	zl.logger.Debug().Msg(fmt.Sprint(args...))
}

// Debugf logging.
func (zl Logger) Debugf(msg string, args ...interface{}) {
	zl.logger.Debug().Msgf(msg, args...)
}

// Level returns the minimum enabled level.
func (zl Logger) Level() log.Level {
	return zl.lvl
}
