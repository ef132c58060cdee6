// Package logger builds the zerolog logger shared by the HTTP layer and gorm.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	gormlogger "gorm.io/gorm/logger"
)

// New returns a console logger in debug mode and a JSON logger otherwise.
// An unknown level falls back to info.
func New(level, ginMode string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if ginMode == "debug" {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	return NewWithWriter(out, level)
}

func NewWithWriter(out io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

// Gorm adapts log for gorm. Slow queries and errors are reported at warn
// level; with log at debug level every statement is traced at debug.
func Gorm(log *zerolog.Logger) gormlogger.Interface {
	w := gormWriter{log: log, level: zerolog.WarnLevel}
	level := gormlogger.Warn

	if log.GetLevel() <= zerolog.DebugLevel {
		w.level = zerolog.DebugLevel
		level = gormlogger.Info
	}

	return gormlogger.New(w, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type gormWriter struct {
	log   *zerolog.Logger
	level zerolog.Level
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.WithLevel(w.level).Str("component", "gorm").Msgf(format, args...)
}
