package config

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LogLevel mirrors the three-state levels the teacher's config exposes:
// logging fully off, errors only, or verbose debug output.
type LogLevel string

const (
	LogOff   LogLevel = "off"
	LogError LogLevel = "error"
	LogDebug LogLevel = "debug"
)

// Logger wraps a *slog.Logger with the off/error/debug gate the config's
// LogLevel field controls, plus printf-style
// convenience methods for call sites that don't need structured attrs.
type Logger struct {
	level LogLevel
	slog  *slog.Logger
}

// NullLogger discards everything; it's what the CLI constructs when no log
// file is configured, so call sites never need a nil check.
func NullLogger() *Logger {
	return &Logger{level: LogOff, slog: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

// NewLogger builds a Logger writing to w at the given level.
func NewLogger(level LogLevel, w io.Writer) *Logger {
	opts := &slog.HandlerOptions{}
	if level == LogDebug {
		opts.Level = slog.LevelDebug
	} else {
		opts.Level = slog.LevelError
	}
	return &Logger{level: level, slog: slog.New(slog.NewJSONHandler(w, opts))}
}

// OpenFileLogger opens (creating if needed) the log file named by cfg and
// returns a Logger writing to it along with a close function. If cfg's
// LogLevel is off or LogFile is empty, it returns a NullLogger and a no-op
// close.
func OpenFileLogger(cfg *Config) (*Logger, func() error, error) {
	if cfg.LogLevel == string(LogOff) || cfg.LogFile == "" {
		return NullLogger(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return NewLogger(LogLevel(cfg.LogLevel), f), f.Close, nil
}

func (l *Logger) Debug(msg string, args ...any) {
	if l.level != LogDebug {
		return
	}
	l.slog.Debug(fmt.Sprintf(msg, args...))
}

func (l *Logger) Error(msg string, args ...any) {
	if l.level == LogOff {
		return
	}
	l.slog.Error(fmt.Sprintf(msg, args...))
}

// DebugAttrs logs a structured debug record built from key/value pairs,
// bypassing printf formatting entirely.
func (l *Logger) DebugAttrs(msg string, attrs ...slog.Attr) {
	if l.level != LogDebug {
		return
	}
	l.slog.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}

// ErrorAttrs logs a structured error record.
func (l *Logger) ErrorAttrs(msg string, attrs ...slog.Attr) {
	if l.level == LogOff {
		return
	}
	l.slog.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}
