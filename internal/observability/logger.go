package observability

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Logger struct {
	logger zerolog.Logger
}

func NewLogger(w io.Writer, level zerolog.Level, component string) Logger {
	return Logger{logger: zerolog.New(w).Level(level).With().Timestamp().Str("component", component).Logger()}
}

// Nop discards everything.
func Nop() Logger {
	return Logger{logger: zerolog.Nop()}
}

// Open appends to path, or returns a Nop logger when path is empty. The
// terminal belongs to the UI, so logs never go to stdout.
func Open(path, level, component string) (Logger, func() error, error) {
	if path == "" {
		return Nop(), func() error { return nil }, nil
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return Logger{}, nil, fmt.Errorf("log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return Logger{}, nil, err
	}
	return NewLogger(f, lvl, component), f.Close, nil
}

func (l Logger) With(key, value string) Logger {
	return Logger{logger: l.logger.With().Str(key, value).Logger()}
}

func (l Logger) Debugf(format string, args ...any) {
	l.logger.Debug().Msgf(format, args...)
}

func (l Logger) Infof(format string, args ...any) {
	l.logger.Info().Msgf(format, args...)
}

func (l Logger) Warnf(format string, args ...any) {
	l.logger.Warn().Msgf(format, args...)
}

func (l Logger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}
