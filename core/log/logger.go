// File: logger.go
// Title: Core Logger Implementation
// Description: Implements the Logger type on top of zap. The API keeps the
//              shape used throughout snacks (Fields maps, WithField/WithName
//              clones, level methods) while zap does encoding and output.
// Author: msto63
// Version: v1.0.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-18 v1.0.0: Replaced the hand-written formatter pipeline with zap

package log

import (
	"io"
	"os"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Format represents the output encoding for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatConsole outputs human-readable console logs
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name; anything but "console" or "text" is JSON
func ParseFormat(format string) Format {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		return FormatConsole
	default:
		return FormatJSON
	}
}

// Config represents logger configuration
type Config struct {
	Level  Level
	Format Format
	Output io.Writer
	Name   string
}

// DefaultConfig returns the configuration used by New when none is given
func DefaultConfig() Config {
	return Config{
		Level:  DefaultLevel(),
		Format: FormatJSON,
		Output: os.Stderr,
	}
}

// Logger represents a structured logger with contextual fields
type Logger struct {
	zl    *zap.Logger
	level zap.AtomicLevel
	name  string
}

// New creates a new logger with the default configuration
func New() *Logger {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new logger with the specified configuration
func NewWithConfig(config Config) *Logger {
	output := config.Output
	if output == nil {
		output = os.Stderr
	}

	level := zap.NewAtomicLevelAt(config.Level.zapLevel())
	core := zapcore.NewCore(
		newEncoder(config.Format),
		zapcore.AddSync(output),
		level,
	)

	zl := zap.New(core)
	if config.Name != "" {
		zl = zl.Named(config.Name)
	}

	return &Logger{zl: zl, level: level, name: config.Name}
}

// NewNop returns a logger that discards everything
func NewNop() *Logger {
	return &Logger{zl: zap.NewNop(), level: zap.NewAtomicLevelAt(zapcore.FatalLevel)}
}

// newEncoder builds the zap encoder for a format
func newEncoder(format Format) zapcore.Encoder {
	if format == FormatConsole {
		return zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:        "T",
			LevelKey:       "L",
			NameKey:        "N",
			MessageKey:     "M",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeLevel:    zapcore.CapitalLevelEncoder,
			EncodeTime:     zapcore.ISO8601TimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
		})
	}

	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "message",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
	})
}

// WithName returns a child logger with the name appended
func (l *Logger) WithName(name string) *Logger {
	full := name
	if l.name != "" {
		full = l.name + "." + name
	}
	return &Logger{zl: l.zl.Named(name), level: l.level, name: full}
}

// WithField returns a child logger that adds the field to every entry
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return l.WithFields(Fields{key: value})
}

// WithFields returns a child logger that adds the fields to every entry
func (l *Logger) WithFields(fields Fields) *Logger {
	return &Logger{zl: l.zl.With(fields.zapFields()...), level: l.level, name: l.name}
}

// Debug logs a debug message
func (l *Logger) Debug(message string, fields ...Fields) {
	l.zl.Debug(message, mergeAll(fields).zapFields()...)
}

// Info logs an informational message
func (l *Logger) Info(message string, fields ...Fields) {
	l.zl.Info(message, mergeAll(fields).zapFields()...)
}

// Warn logs a warning message
func (l *Logger) Warn(message string, fields ...Fields) {
	l.zl.Warn(message, mergeAll(fields).zapFields()...)
}

// Error logs an error message
func (l *Logger) Error(message string, fields ...Fields) {
	l.zl.Error(message, mergeAll(fields).zapFields()...)
}

// ErrorWithErr logs an error message with the error attached
func (l *Logger) ErrorWithErr(message string, err error, fields ...Fields) {
	l.Error(message, append(fields, Err(err))...)
}

// WarnWithErr logs a warning message with the error attached
func (l *Logger) WarnWithErr(message string, err error, fields ...Fields) {
	l.Warn(message, append(fields, Err(err))...)
}

// StartTimer starts a timer that logs the duration of an operation on Stop
func (l *Logger) StartTimer(operation string) *Timer {
	return NewTimer(l, operation)
}

// IsLevelEnabled checks if a level would be written
func (l *Logger) IsLevelEnabled(level Level) bool {
	return l.level.Enabled(level.zapLevel())
}

// SetLevel changes the level for this logger and every child sharing it
func (l *Logger) SetLevel(level Level) {
	l.level.SetLevel(level.zapLevel())
}

// Sync flushes buffered entries
func (l *Logger) Sync() error {
	return l.zl.Sync()
}

// Zap exposes the underlying zap logger
func (l *Logger) Zap() *zap.Logger {
	return l.zl
}

var (
	defaultLogger = NewNop()
	defaultMutex  sync.RWMutex
)

// GetDefault returns the process-wide default logger (a no-op until set)
func GetDefault() *Logger {
	defaultMutex.RLock()
	defer defaultMutex.RUnlock()
	return defaultLogger
}

// SetDefault replaces the process-wide default logger
func SetDefault(logger *Logger) {
	if logger == nil {
		logger = NewNop()
	}
	defaultMutex.Lock()
	defer defaultMutex.Unlock()
	defaultLogger = logger
}
