// Package logger implements a logging adapter using log/slog.
package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"sync"

	"go.trai.ch/webpack/internal/core/domain"
	"go.trai.ch/webpack/internal/core/ports"
	"go.trai.ch/zerr"
)

// LevelEnvVar selects the minimum level written by the logger.
const LevelEnvVar = "WEBPACK_BOOTSTRAP_LOG"

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger *slog.Logger
	level  slog.Level
	mu     sync.RWMutex
}

// New creates a new Logger writing to stderr.
// Only warnings and errors are shown unless WEBPACK_BOOTSTRAP_LOG lowers the level,
// so diagnostics stay out of the way of the prompt and the companion output.
func New() ports.Logger {
	return NewWithOutput(os.Stderr, levelFromEnv())
}

// NewWithOutput creates a Logger writing to w at the given level.
func NewWithOutput(w io.Writer, level domain.LogLevel) *Logger {
	l := &Logger{level: slog.Level(level)}
	l.logger = slog.New(l.handler(w))
	return l
}

func levelFromEnv() domain.LogLevel {
	return domain.ParseLogLevel(os.Getenv(LevelEnvVar), domain.LogLevelWarn)
}

func (l *Logger) handler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: l.level,
	})
}

// SetOutput updates the logger's output destination.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger = slog.New(l.handler(w))
}

// Debug logs a diagnostic message.
func (l *Logger) Debug(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Debug(msg)
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Info(msg)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	l.logger.Warn(msg)
}

// Error logs an error with its zerr metadata as structured fields.
func (l *Logger) Error(err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	zerr.Log(context.Background(), l.logger, err)
}
