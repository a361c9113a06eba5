// Package log provides the package-level zap logger shared by the storage
// engine. The default logger writes to stderr at info level; tests and
// embedding applications may swap it with SetLogger.
package log

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Bool     = zap.Bool
	Any      = zap.Any
	Duration = zap.Duration
)

var (
	mu     sync.RWMutex
	logger = newDefault()
)

func newDefault() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	cfg.Encoding = "console"
	l, err := cfg.Build(AddCallerSkip(1))
	if err != nil {
		return zap.NewNop()
	}
	return l
}

// SetLogger replaces the package logger.
func SetLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// L returns the current package logger.
func L() *zap.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(msg string, fields ...Field) {
	L().Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	L().Error(msg, fields...)
}

func Panic(msg string, fields ...Field) {
	L().Panic(msg, fields...)
}

func Sync() {
	_ = L().Sync()
}

// With returns a child logger carrying the given fields.
func With(fields ...Field) *zap.Logger {
	return L().With(fields...)
}
