package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/lmittmann/tint"
)

// StderrTarget as a log file sends colorized text logs to stderr instead of a file
const StderrTarget = "stderr"

// Options controls where and how much the application logs
type Options struct {
	File  string
	Level string
}

// SetupLogger builds the application logger. File output is JSON; the
// StderrTarget writes through tint.
func SetupLogger(opts Options) (*slog.Logger, error) {
	level := ParseLevel(opts.Level)

	if strings.EqualFold(strings.TrimSpace(opts.File), StderrTarget) {
		return NewTintLogger(os.Stderr, level), nil
	}
	if opts.File == "" {
		return NullLogger(), nil
	}

	logPath, err := expandHome(opts.File)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewJSONLogger(logFile, level), nil
}

// NewJSONLogger writes structured JSON records to w
func NewJSONLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// NewTintLogger writes colorized text records to w
func NewTintLogger(w io.Writer, level slog.Level) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
}

// ParseLevel converts a textual log level to slog.Level, defaulting to info
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
