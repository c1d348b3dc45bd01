// Package logging builds the process logger from a Config: level, text or
// JSON output, and an optional rotating log file.
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/natefinch/lumberjack"
)

// ErrBadLevel and ErrBadFormat are returned by New for unknown names.
var (
	ErrBadLevel  = errors.New("logging: invalid level: must be 'debug', 'info', 'warn' or 'error'")
	ErrBadFormat = errors.New("logging: invalid format: must be 'text' or 'json'")
)

// Config mirrors the [log] section of the configuration file.
type Config struct {
	Level      string `toml:"level"`
	Format     string `toml:"format"`
	File       string `toml:"file"`
	MaxSize    int    `toml:"max_log_size"` // megabytes
	MaxAge     int    `toml:"max_log_age"`  // days
	MaxBackups int    `toml:"max_backups"`
}

// Defaults returns info-level text logging to the caller's writer.
func Defaults() Config {
	return Config{Level: "info", Format: "text", MaxSize: 100, MaxAge: 28}
}

// ParseLevel maps a level name to slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrBadLevel, s)
	}
}

// New returns a logger writing to out, or to a lumberjack rotating file
// when c.File is set. The returned closer releases the file and is never
// nil.
func New(c Config, out io.Writer) (*slog.Logger, io.Closer, error) {
	level, err := ParseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	var closer io.Closer = nopCloser{}
	if c.File != "" {
		lj := &lumberjack.Logger{
			Filename:   c.File,
			MaxSize:    c.MaxSize,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxBackups,
		}
		out, closer = lj, lj
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	switch strings.ToLower(c.Format) {
	case "", "text":
		h = slog.NewTextHandler(out, opts)
	case "json":
		h = slog.NewJSONHandler(out, opts)
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrBadFormat, c.Format)
	}

	return slog.New(h), closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
