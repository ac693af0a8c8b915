// Package config provides configuration management for quarterdeck.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/quarterdeckhq/quarterdeck/internal/input"
)

// File and directory permissions
const (
	dirPerm  = 0755 // Standard directory permissions (rwxr-xr-x)
	filePerm = 0644 // Standard file permissions (rw-r--r--)
)

// Config represents the complete configuration for quarterdeck.
type Config struct {
	Server    ServerConfig      `mapstructure:"server" toml:"server" json:"server"`
	Logging   LoggingConfig     `mapstructure:"logging" toml:"logging" json:"logging"`
	Telemetry TelemetryConfig   `mapstructure:"telemetry" toml:"telemetry" json:"telemetry"`
	I18n      I18nConfig        `mapstructure:"i18n" toml:"i18n" json:"i18n"`
	Input     InputConfig       `mapstructure:"input" toml:"input" json:"input"`
	// Keymap maps action names to chords. Action names contain dots
	// ("view.tasks") which viper's key paths would split, so the section is
	// decoded by keymapFromViper instead of mapstructure.
	Keymap  map[string]string `mapstructure:"-" toml:"keymap" json:"keymap"`
	History HistoryConfig     `mapstructure:"history" toml:"history" json:"history"`
}

// ServerConfig contains settings for the HTTP/WebSocket listener.
type ServerConfig struct {
	ListenAddr             string   `mapstructure:"listen_addr" toml:"listen_addr" json:"listen_addr"`
	AuthTokenHash          string   `mapstructure:"auth_token_hash" toml:"auth_token_hash" json:"auth_token_hash"`
	AllowedOrigins         []string `mapstructure:"allowed_origins" toml:"allowed_origins" json:"allowed_origins"`
	ShutdownTimeoutSeconds int      `mapstructure:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds" json:"shutdown_timeout_seconds"`
}

// ShutdownTimeout returns the graceful shutdown timeout as a duration.
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// LoggingConfig contains logging-related settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level"`
	Format string `mapstructure:"format" toml:"format" json:"format"`
}

// TelemetryConfig contains settings for the OpenTelemetry exporters.
type TelemetryConfig struct {
	Enabled             bool    `mapstructure:"enabled" toml:"enabled" json:"enabled"`
	Endpoint            string  `mapstructure:"endpoint" toml:"endpoint" json:"endpoint"`
	Insecure            bool    `mapstructure:"insecure" toml:"insecure" json:"insecure"`
	SampleRatio         float64 `mapstructure:"sample_ratio" toml:"sample_ratio" json:"sample_ratio"`
	FlushTimeoutSeconds int     `mapstructure:"flush_timeout_seconds" toml:"flush_timeout_seconds" json:"flush_timeout_seconds"`
}

// FlushTimeout returns the shutdown flush timeout as a duration.
func (c TelemetryConfig) FlushTimeout() time.Duration {
	return time.Duration(c.FlushTimeoutSeconds) * time.Second
}

// I18nConfig contains localization settings.
type I18nConfig struct {
	Language string `mapstructure:"language" toml:"language" json:"language"`
	Fallback string `mapstructure:"fallback" toml:"fallback" json:"fallback"`
}

// InputConfig contains settings for keyboard dispatch behavior.
type InputConfig struct {
	// EscapeBypass lets the definition bound to EscapeKey fire even while
	// the client reports a text-entry surface as focused.
	EscapeBypass bool   `mapstructure:"escape_bypass" toml:"escape_bypass" json:"escape_bypass"`
	EscapeKey    string `mapstructure:"escape_key" toml:"escape_key" json:"escape_key"`
}

// HistoryConfig contains settings for action event persistence.
type HistoryConfig struct {
	Path          string `mapstructure:"path" toml:"path" json:"path"`
	RetentionDays int    `mapstructure:"retention_days" toml:"retention_days" json:"retention_days"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager.
func NewManager() (*Manager, error) {
	v := viper.New()

	// Viper resolves config.toml from the search paths below
	v.SetConfigName("config")

	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	v.AddConfigPath(configDir)
	v.AddConfigPath(".") // Current directory for development

	// Set up environment variable support
	v.SetEnvPrefix("QUARTERDECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Bind specific environment variables
	bindings := map[string]string{
		"server.listen_addr":              "SERVER_LISTEN_ADDR",
		"server.auth_token_hash":          "SERVER_AUTH_TOKEN_HASH",
		"server.shutdown_timeout_seconds": "SERVER_SHUTDOWN_TIMEOUT_SECONDS",
		"logging.level":                   "LOGGING_LEVEL",
		"logging.format":                  "LOGGING_FORMAT",
		"telemetry.enabled":               "TELEMETRY_ENABLED",
		"telemetry.endpoint":              "TELEMETRY_ENDPOINT",
		"telemetry.insecure":              "TELEMETRY_INSECURE",
		"telemetry.sample_ratio":          "TELEMETRY_SAMPLE_RATIO",
		"i18n.language":                   "I18N_LANGUAGE",
		"i18n.fallback":                   "I18N_FALLBACK",
		"input.escape_bypass":             "INPUT_ESCAPE_BYPASS",
		"input.escape_key":                "INPUT_ESCAPE_KEY",
		"history.path":                    "HISTORY_PATH",
		"history.retention_days":          "HISTORY_RETENTION_DAYS",
	}

	for key, env := range bindings {
		if err := v.BindEnv(key, "QUARTERDECK_"+env); err != nil {
			return nil, fmt.Errorf("failed to bind environment variable %s: %w", env, err)
		}
	}

	return &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Ensure directories exist
	if err := EnsureDirectories(); err != nil {
		return fmt.Errorf("failed to ensure directories: %w", err)
	}

	// Set defaults
	m.setDefaults()

	// Read config file if it exists
	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// Config file not found, create default one
			if err := m.createDefaultConfig(); err != nil {
				return fmt.Errorf("failed to create default config: %w", err)
			}
			// Re-read so viper tracks the file it should watch
			if err := m.viper.ReadInConfig(); err != nil {
				return fmt.Errorf("failed to read created config file: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}

	m.config = config
	return nil
}

// unmarshalConfig decodes viper state into a normalized, validated Config.
func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	config.Keymap = m.keymapFromViper()

	if err := normalizeConfig(config); err != nil {
		return nil, err
	}

	if err := validateConfig(config); err != nil {
		return nil, err
	}

	return config, nil
}

// keymapFromViper assembles the effective keymap. Defaults fill every action
// the config file does not list; setting an action to "" unbinds it.
func (m *Manager) keymapFromViper() map[string]string {
	keymap := DefaultKeymap()
	flattenKeymap(m.viper.GetStringMap("keymap"), "", keymap)
	return keymap
}

// flattenKeymap folds a possibly nested keymap section into dotted action
// names, so both `"view.tasks" = "t"` and `[keymap.view] tasks = "t"` spell
// the same binding.
func flattenKeymap(section map[string]interface{}, prefix string, out map[string]string) {
	for key, value := range section {
		name := key
		if prefix != "" {
			name = prefix + "." + key
		}
		switch v := value.(type) {
		case string:
			out[name] = v
		case map[string]interface{}:
			flattenKeymap(v, name, out)
		}
	}
}

// normalizeConfig fills derived defaults and canonicalizes string values.
func normalizeConfig(config *Config) error {
	// Set database path if not specified
	if config.History.Path == "" {
		dbPath, err := GetDatabaseFile()
		if err != nil {
			return fmt.Errorf("failed to get database path: %w", err)
		}
		config.History.Path = dbPath
	}

	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	config.Logging.Format = strings.ToLower(strings.TrimSpace(config.Logging.Format))
	if config.Logging.Format == "text" {
		config.Logging.Format = "console"
	}

	config.I18n.Language = strings.ToLower(strings.TrimSpace(config.I18n.Language))
	config.I18n.Fallback = strings.ToLower(strings.TrimSpace(config.I18n.Fallback))

	if config.Input.EscapeKey != "" {
		config.Input.EscapeKey = input.NormalizeKey(config.Input.EscapeKey)
	}

	return nil
}

// clone returns a copy whose maps and slices are detached from the receiver.
func (c *Config) clone() *Config {
	configCopy := *c

	if c.Keymap != nil {
		configCopy.Keymap = make(map[string]string, len(c.Keymap))
		for action, chord := range c.Keymap {
			configCopy.Keymap[action] = chord
		}
	}

	if c.Server.AllowedOrigins != nil {
		configCopy.Server.AllowedOrigins = append([]string(nil), c.Server.AllowedOrigins...)
	}

	return &configCopy
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent external modification
	return m.config.clone()
}

// Update applies mutate to a copy of the current configuration, validates the
// result, makes it current, and persists it to the config file. On a watching
// daemon the write comes back as a file event whose handler skips the reload
// and only notifies subscribers.
func (m *Manager) Update(mutate func(*Config)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	updated := m.config.clone()
	mutate(updated)

	if err := normalizeConfig(updated); err != nil {
		return err
	}
	if err := validateConfig(updated); err != nil {
		return err
	}

	m.config = updated
	return m.saveLocked()
}

// Save persists the current configuration to the config file.
func (m *Manager) Save() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveLocked()
}

// saveLocked writes the current config as TOML. Caller must hold mu.
func (m *Manager) saveLocked() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	data, err := toml.Marshal(m.config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	// Our own write lands on the watcher as a change event; the in-memory
	// config is already current, so the handler skips the file reload.
	if m.watching {
		m.skipNextReload = true
	}

	return nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	// Server defaults
	m.viper.SetDefault("server.listen_addr", defaults.Server.ListenAddr)
	m.viper.SetDefault("server.auth_token_hash", defaults.Server.AuthTokenHash)
	m.viper.SetDefault("server.allowed_origins", defaults.Server.AllowedOrigins)
	m.viper.SetDefault("server.shutdown_timeout_seconds", defaults.Server.ShutdownTimeoutSeconds)

	// Logging defaults
	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)

	// Telemetry defaults
	m.viper.SetDefault("telemetry.enabled", defaults.Telemetry.Enabled)
	m.viper.SetDefault("telemetry.endpoint", defaults.Telemetry.Endpoint)
	m.viper.SetDefault("telemetry.insecure", defaults.Telemetry.Insecure)
	m.viper.SetDefault("telemetry.sample_ratio", defaults.Telemetry.SampleRatio)
	m.viper.SetDefault("telemetry.flush_timeout_seconds", defaults.Telemetry.FlushTimeoutSeconds)

	// I18n defaults
	m.viper.SetDefault("i18n.language", defaults.I18n.Language)
	m.viper.SetDefault("i18n.fallback", defaults.I18n.Fallback)

	// Input defaults
	m.viper.SetDefault("input.escape_bypass", defaults.Input.EscapeBypass)
	m.viper.SetDefault("input.escape_key", defaults.Input.EscapeKey)

	// Keymap defaults
	m.viper.SetDefault("keymap", defaults.Keymap)

	// History defaults
	m.viper.SetDefault("history.path", defaults.History.Path)
	m.viper.SetDefault("history.retention_days", defaults.History.RetentionDays)
}

// createDefaultConfig creates a default configuration file.
func (m *Manager) createDefaultConfig() error {
	configFile, err := GetConfigFile()
	if err != nil {
		return err
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(filepath.Dir(configFile), dirPerm); err != nil {
		return err
	}

	defaultConfig := DefaultConfig()

	configData, err := toml.Marshal(defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %w", err)
	}

	if err := os.WriteFile(configFile, configData, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Created default configuration file: %s\n", configFile)

	// Ship the JSON schema next to the file so editors can validate it
	if err := GenerateSchemaFile(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to generate config schema: %v\n", err)
	}

	return nil
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	return m.viper.ConfigFileUsed()
}

// Global configuration manager instance
var globalManager *Manager
var globalManagerOnce sync.Once

// Init initializes the global configuration manager.
func Init() error {
	var err error
	globalManagerOnce.Do(func() {
		globalManager, err = NewManager()
		if err != nil {
			return
		}
		err = globalManager.Load()
	})
	return err
}

// Get returns the global configuration.
func Get() *Config {
	if globalManager == nil {
		// Return defaults if not initialized
		return DefaultConfig()
	}
	return globalManager.Get()
}

// GetManager returns the global configuration manager, or nil before Init.
func GetManager() *Manager {
	return globalManager
}
