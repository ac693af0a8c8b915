// Package config provides default configuration values for quarterdeck.
package config

import (
	"github.com/quarterdeckhq/quarterdeck/internal/domain/entity"
)

// Default configuration constants
const (
	// Server defaults
	defaultListenAddr         = "127.0.0.1:8790"
	defaultShutdownTimeoutSec = 10 // seconds

	// Telemetry defaults
	defaultCollectorEndpoint = "localhost:4317"
	defaultSampleRatio       = 1.0
	defaultFlushTimeoutSec   = 5 // seconds

	// History defaults
	defaultRetentionDays = 90 // days
)

// DefaultConfig returns the default configuration values for quarterdeck.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:             defaultListenAddr,
			AuthTokenHash:          "", // empty hash disables auth
			AllowedOrigins:         []string{},
			ShutdownTimeoutSeconds: defaultShutdownTimeoutSec,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console", // console or json
		},
		Telemetry: TelemetryConfig{
			Enabled:             false,
			Endpoint:            defaultCollectorEndpoint,
			Insecure:            true,
			SampleRatio:         defaultSampleRatio,
			FlushTimeoutSeconds: defaultFlushTimeoutSec,
		},
		I18n: I18nConfig{
			Language: "en",
			Fallback: "en",
		},
		Input: InputConfig{
			EscapeBypass: true,
			EscapeKey:    "escape",
		},
		Keymap: DefaultKeymap(),
		History: HistoryConfig{
			Path:          "", // resolved to the XDG data dir on load
			RetentionDays: defaultRetentionDays,
		},
	}
}

// DefaultKeymap returns the default chord for every console action.
func DefaultKeymap() map[string]string {
	catalog := entity.ActionCatalog()
	keymap := make(map[string]string, len(catalog))
	for _, spec := range catalog {
		keymap[spec.Name] = spec.DefaultChord
	}
	return keymap
}
