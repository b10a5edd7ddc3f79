package logger

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"go.trai.ch/iroot/internal/core/ports"
)

// zerrError is the subset of zerr.Error used to render error chains.
type zerrError interface {
	Message() string
	Metadata() map[string]any
}

// Logger implements ports.Logger using log/slog.
type Logger struct {
	logger   *slog.Logger
	mu       sync.RWMutex
	jsonMode bool
	level    slog.LevelVar
	output   io.Writer
}

var _ ports.Logger = (*Logger)(nil)

// New creates a Logger writing pretty lines to stderr at info level.
func New() *Logger {
	l := &Logger{output: os.Stderr}
	l.level.Set(slog.LevelInfo)
	l.rebuild()
	return l
}

func (l *Logger) rebuild() {
	w := l.output
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: &l.level}

	var handler slog.Handler
	if l.jsonMode {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = NewPrettyHandler(w, opts)
	}
	l.logger = slog.New(handler)
}

// SetOutput updates the output destination. A nil writer selects stderr.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.output = w
	l.rebuild()
}

// SetJSON switches between JSON and pretty logging.
func (l *Logger) SetJSON(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.jsonMode = enable
	l.rebuild()
}

// SetVerbose enables debug messages.
func (l *Logger) SetVerbose(enable bool) {
	if enable {
		l.level.Set(slog.LevelDebug)
		return
	}
	l.level.Set(slog.LevelInfo)
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

// Error logs an error with its cause chain.
func (l *Logger) Error(err error) {
	if err == nil {
		return
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.jsonMode {
		l.logger.Error("operation failed", "error", err.Error())
		return
	}
	l.logger.Error(formatError(err))
}

// formatError renders an error chain as the main message followed by its
// causes. Metadata attached with zerr.With is listed under the message that
// carries it.
func formatError(err error) string {
	var lines []string
	depth := 0
	for current := err; current != nil; {
		z, ok := current.(zerrError)
		if !ok {
			lines = appendCause(lines, depth, current.Error())
			break
		}
		if msg := z.Message(); msg != "" {
			lines = appendCause(lines, depth, msg)
			depth++
		}
		meta := z.Metadata()
		for _, k := range sortedKeys(meta) {
			lines = append(lines, fmt.Sprintf("      %s=%v", k, meta[k]))
		}
		current = errors.Unwrap(current)
	}
	return strings.Join(lines, "\n")
}

func appendCause(lines []string, depth int, msg string) []string {
	parts := strings.Split(msg, "\n")
	if depth == 0 {
		lines = append(lines, "Error: "+parts[0])
		for _, p := range parts[1:] {
			lines = append(lines, "       "+p)
		}
		return lines
	}
	if depth == 1 {
		lines = append(lines, "", "  Caused by:")
	}
	lines = append(lines, "    → "+parts[0])
	for _, p := range parts[1:] {
		lines = append(lines, "      "+p)
	}
	return lines
}
