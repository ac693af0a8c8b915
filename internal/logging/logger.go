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

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration
func New(cfg Config) zerolog.Logger {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = os.Stderr
	}

	return zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
}

// NewFromConfigValues creates a logger from plain level/format strings, as
// stored in the configuration file. Unknown values fall back to the defaults.
func NewFromConfigValues(level, format string) zerolog.Logger {
	cfg := DefaultConfig()
	cfg.Level = ParseLevel(level)

	switch format {
	case "json", "console":
		cfg.Format = format
	}

	return New(cfg)
}

// NewFromEnv creates a logger based on environment variables
// QUARTERDECK_LOG_LEVEL: trace, debug, info, warn, error (default: info)
// QUARTERDECK_LOG_FORMAT: json, console (default: console)
func NewFromEnv() zerolog.Logger {
	cfg := DefaultConfig()

	if level := os.Getenv("QUARTERDECK_LOG_LEVEL"); level != "" {
		cfg.Level = ParseLevel(level)
	}

	if format := os.Getenv("QUARTERDECK_LOG_FORMAT"); format != "" {
		switch format {
		case "json", "console":
			cfg.Format = format
		}
	}

	return New(cfg)
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
