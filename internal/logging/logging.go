// Package logging provides structured logging for autotype.
//
// The terminal is in raw mode (and usually on the alternate screen) for the
// whole session, so nothing may be written to stdout or stderr while the
// editor runs. Logs therefore go to a file as JSON, or nowhere at all when no
// file is configured.
//
//	logger, err := logging.New(logging.Config{Level: logging.LevelDebug, File: path})
//	if err != nil { ... }
//	defer logger.Close()
//	logger.Info("session started", "backend", "curses")
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// Level represents log severity. Debug < Info < Warn < Error.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns "DEBUG", "INFO", "WARN", "ERROR" or "UNKNOWN".
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel parses a case-insensitive level name. An empty name is Info.
func ParseLevel(name string) (Level, error) {
	switch strings.ToLower(name) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
}

// Config configures a Logger. The zero value discards everything.
type Config struct {
	Level Level

	// File is the path logs are appended to. Its directory is created when
	// missing. Empty disables logging.
	File string

	// Service is attached to every record as "service".
	Service string
}

// Logger is a slog.Logger that owns its output file.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New creates a Logger writing JSON records to cfg.File.
func New(cfg Config) (*Logger, error) {
	var (
		w    io.Writer = io.Discard
		file *os.File
	)
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w, file = f, f
	}
	return newWithWriter(w, file, cfg), nil
}

func newWithWriter(w io.Writer, file *os.File, cfg Config) *Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level.toSlogLevel()})
	logger := slog.New(handler)
	if cfg.Service != "" {
		logger = logger.With("service", cfg.Service)
	}
	return &Logger{Logger: logger, file: file}
}

// Nop returns a Logger that discards everything.
func Nop() *Logger {
	return newWithWriter(io.Discard, nil, Config{})
}

// With returns a Logger carrying args on every record. It shares the
// receiver's file; only the original Logger should be closed.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...)}
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}
