package logger

import (
	"log/slog"
	"os"
)

// Logger is the minimal logging surface used throughout tick.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	WithField(key string, value any) Logger
	WithFields(fields map[string]any) Logger
}

type slogLogger struct {
	l *slog.Logger
}

func (s slogLogger) Debug(msg string, args ...any) { s.l.Debug(msg, args...) }
func (s slogLogger) Info(msg string, args ...any)  { s.l.Info(msg, args...) }
func (s slogLogger) Warn(msg string, args ...any)  { s.l.Warn(msg, args...) }
func (s slogLogger) Error(msg string, args ...any) { s.l.Error(msg, args...) }

func (s slogLogger) WithField(key string, value any) Logger {
	return slogLogger{l: s.l.With(key, value)}
}

func (s slogLogger) WithFields(fields map[string]any) Logger {
	args := make([]any, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return slogLogger{l: s.l.With(args...)}
}

var (
	level = new(slog.LevelVar)
	root  = slogLogger{l: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))}
)

// Init sets the log level from the CLI flags. Debug enables debug-level
// output; verbose additionally keeps it on for noisy components.
func Init(debug, verbose bool) {
	switch {
	case debug || verbose:
		level.Set(slog.LevelDebug)
	default:
		level.Set(slog.LevelInfo)
	}
}

// Default returns the root logger.
func Default() Logger {
	return root
}

// WithField returns the root logger with one extra field attached.
func WithField(key string, value any) Logger {
	return root.WithField(key, value)
}

// WithFields returns the root logger with extra fields attached.
func WithFields(fields map[string]any) Logger {
	return root.WithFields(fields)
}

// Package-level helpers that log through the root logger.

func Debug(msg string, args ...any) { root.Debug(msg, args...) }
func Info(msg string, args ...any)  { root.Info(msg, args...) }
func Warn(msg string, args ...any)  { root.Warn(msg, args...) }
func Error(msg string, args ...any) { root.Error(msg, args...) }
