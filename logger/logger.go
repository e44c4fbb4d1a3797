// Package logger is a small slog wrapper with swappable output, so the
// chat TUI can capture log lines into its own panel instead of writing
// over the alternate screen.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Config describes logger settings.
type Config struct {
	Enabled bool
	Level   string
	Stdout  bool
	File    string
}

var (
	mu   sync.RWMutex
	base *slog.Logger

	cfg     Config
	logFile *os.File  // opened during Init when cfg.File is set
	capture io.Writer // non-nil while the TUI owns stdout
)

// Init initializes the package logger. A relative file path is resolved
// against baseDir. Init never leaves the logger nil: on error it still
// installs a usable handler and returns the error.
func Init(c Config, baseDir string) error {
	mu.Lock()
	defer mu.Unlock()

	cfg = c

	if !c.Enabled {
		base = slog.New(slog.NewTextHandler(io.Discard, nil))
		return nil
	}

	var initErr error
	if c.File != "" {
		path := resolvePath(c.File, baseDir)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			initErr = fmt.Errorf("logger: create log dir: %w", err)
		} else {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
			if err != nil {
				initErr = fmt.Errorf("logger: open log file: %w", err)
			} else {
				logFile = f
			}
		}
	}

	rebuild()
	return initErr
}

// Intercept redirects the stdout stream to w (the TUI log panel). File
// output, if configured, keeps going to the file.
func Intercept(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	capture = w
	rebuild()
}

// Restore undoes Intercept.
func Restore() {
	mu.Lock()
	defer mu.Unlock()
	capture = nil
	rebuild()
}

// rebuild installs a handler for the current state. Caller holds mu.
func rebuild() {
	var writers []io.Writer
	switch {
	case capture != nil:
		writers = append(writers, capture)
	case cfg.Stdout:
		writers = append(writers, os.Stdout)
	}
	if logFile != nil {
		writers = append(writers, logFile)
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}

	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	base = slog.New(slog.NewTextHandler(io.MultiWriter(writers...), opts))
}

// Debug logs a debug message.
func Debug(msg string, args ...any) { log(slog.LevelDebug, msg, args...) }

// Info logs an info message.
func Info(msg string, args ...any) { log(slog.LevelInfo, msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { log(slog.LevelWarn, msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { log(slog.LevelError, msg, args...) }

func log(level slog.Level, msg string, args ...any) {
	mu.RLock()
	l := base
	mu.RUnlock()

	if l == nil {
		return
	}
	l.Log(nil, level, msg, args...)
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func resolvePath(path, baseDir string) string {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	if filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
