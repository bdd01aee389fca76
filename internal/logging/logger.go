package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
}

// FileConfig controls where a terminal UI sends its log lines.
// Stderr is shared with the UI, so without a file the logger is discarded.
type FileConfig struct {
	Path      string
	MaxSizeMB int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a zerolog logger writing to w.
func New(cfg Config, w io.Writer) zerolog.Logger {
	output := w
	if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: cfg.TimeFormat,
			NoColor:    w != os.Stderr,
		}
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewWithFile creates a logger backed by the file in fc. The returned cleanup
// closes the file. An empty path yields a disabled logger.
func NewWithFile(cfg Config, fc FileConfig) (zerolog.Logger, func(), error) {
	if fc.Path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	w, err := openRotatingFile(fc.Path, fc.MaxSizeMB)
	if err != nil {
		return zerolog.Nop(), func() {}, err
	}
	return New(cfg, w), func() { _ = w.Close() }, nil
}

// ParseLevel converts a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// NewFromEnv creates a stderr logger based on environment variables
// SSNFIELD_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// SSNFIELD_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("SSNFIELD_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("SSNFIELD_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg, os.Stderr)
}
