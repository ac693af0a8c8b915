// Package config provides validation utilities for configuration values.
package config

import (
	"fmt"
	"net"
	"strings"

	"golang.org/x/text/language"

	"github.com/quarterdeckhq/quarterdeck/internal/input"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	// Validate listen address
	if config.Server.ListenAddr == "" {
		validationErrors = append(validationErrors, "server.listen_addr cannot be empty")
	} else if _, port, err := net.SplitHostPort(config.Server.ListenAddr); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("server.listen_addr must be host:port (got: %s)", config.Server.ListenAddr))
	} else if port == "" {
		validationErrors = append(validationErrors, "server.listen_addr must include a port")
	}

	if config.Server.ShutdownTimeoutSeconds < 0 {
		validationErrors = append(validationErrors, "server.shutdown_timeout_seconds must be non-negative")
	}

	// Validate logging values
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level must be one of: trace, debug, info, warn, error (got: %s)", config.Logging.Level))
	}

	switch config.Logging.Format {
	case "console", "json":
		// Valid
	default:
		validationErrors = append(validationErrors, fmt.Sprintf("logging.format must be 'console' or 'json' (got: %s)", config.Logging.Format))
	}

	// Validate telemetry values
	if config.Telemetry.Enabled && config.Telemetry.Endpoint == "" {
		validationErrors = append(validationErrors, "telemetry.endpoint cannot be empty when telemetry is enabled")
	}
	if config.Telemetry.SampleRatio < 0 || config.Telemetry.SampleRatio > 1 {
		validationErrors = append(validationErrors, fmt.Sprintf("telemetry.sample_ratio must be between 0 and 1 (got: %g)", config.Telemetry.SampleRatio))
	}
	if config.Telemetry.FlushTimeoutSeconds < 0 {
		validationErrors = append(validationErrors, "telemetry.flush_timeout_seconds must be non-negative")
	}

	// Validate language tags
	if config.I18n.Language == "" {
		validationErrors = append(validationErrors, "i18n.language cannot be empty")
	} else if _, err := language.Parse(config.I18n.Language); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("i18n.language is not a valid language tag (got: %s)", config.I18n.Language))
	}
	if config.I18n.Fallback == "" {
		validationErrors = append(validationErrors, "i18n.fallback cannot be empty")
	} else if _, err := language.Parse(config.I18n.Fallback); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("i18n.fallback is not a valid language tag (got: %s)", config.I18n.Fallback))
	}

	// Validate escape key: a single key, no modifiers
	if config.Input.EscapeKey == "" {
		validationErrors = append(validationErrors, "input.escape_key cannot be empty")
	} else if chord, ok := input.ParseChord(config.Input.EscapeKey); !ok {
		validationErrors = append(validationErrors, fmt.Sprintf("input.escape_key is not a recognized key (got: %s)", config.Input.EscapeKey))
	} else if chord.Modifiers != input.ModNone {
		validationErrors = append(validationErrors, fmt.Sprintf("input.escape_key must be a plain key without modifiers (got: %s)", config.Input.EscapeKey))
	}

	// Validate keymap chords; an empty chord means the action is unbound
	seenChords := make(map[string]string)
	for action, chordSpec := range config.Keymap {
		if action == "" {
			validationErrors = append(validationErrors, "keymap contains an entry with an empty action name")
			continue
		}
		if chordSpec == "" {
			continue
		}
		chord, ok := input.ParseChord(chordSpec)
		if !ok {
			validationErrors = append(validationErrors, fmt.Sprintf("keymap.%s is not a valid chord (got: %s)", action, chordSpec))
			continue
		}
		canonical := chord.String()
		if existingAction, exists := seenChords[canonical]; exists {
			validationErrors = append(validationErrors, fmt.Sprintf("duplicate chord '%s' bound to actions '%s' and '%s'", canonical, existingAction, action))
		}
		seenChords[canonical] = action
	}

	// Validate history values
	if config.History.RetentionDays < 0 {
		validationErrors = append(validationErrors, "history.retention_days must be non-negative")
	}

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}
