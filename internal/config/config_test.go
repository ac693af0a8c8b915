package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setTestDirs points the XDG directories at a scratch tree and returns the
// directory the config file will land in.
func setTestDirs(t *testing.T) string {
	t.Helper()
	base := t.TempDir()
	t.Setenv("ENV", "")
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(base, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(base, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(base, "state"))
	return filepath.Join(base, "config", appName)
}

func writeConfigFile(t *testing.T, configDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.toml"), []byte(content), 0o644))
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()

	require.NoError(t, validateConfig(cfg))

	// The escape action ships bound to the configured escape key
	assert.Equal(t, cfg.Input.EscapeKey, cfg.Keymap["overlay.dismiss"])
	assert.True(t, cfg.Input.EscapeBypass)
}

func TestValidateConfigCollectsErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{
			name:   "empty listen addr",
			mutate: func(c *Config) { c.Server.ListenAddr = "" },
			want:   "server.listen_addr",
		},
		{
			name:   "listen addr without port",
			mutate: func(c *Config) { c.Server.ListenAddr = "localhost" },
			want:   "server.listen_addr",
		},
		{
			name:   "unknown log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			want:   "logging.level",
		},
		{
			name:   "unknown log format",
			mutate: func(c *Config) { c.Logging.Format = "xml" },
			want:   "logging.format",
		},
		{
			name:   "sample ratio out of range",
			mutate: func(c *Config) { c.Telemetry.SampleRatio = 1.5 },
			want:   "telemetry.sample_ratio",
		},
		{
			name: "telemetry enabled without endpoint",
			mutate: func(c *Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Endpoint = ""
			},
			want: "telemetry.endpoint",
		},
		{
			name:   "invalid language tag",
			mutate: func(c *Config) { c.I18n.Language = "no_such_tag!" },
			want:   "i18n.language",
		},
		{
			name:   "escape key with modifier",
			mutate: func(c *Config) { c.Input.EscapeKey = "ctrl+escape" },
			want:   "input.escape_key",
		},
		{
			name:   "escape key unknown",
			mutate: func(c *Config) { c.Input.EscapeKey = "warpcore" },
			want:   "input.escape_key",
		},
		{
			name:   "keymap chord does not parse",
			mutate: func(c *Config) { c.Keymap["view.tasks"] = "ctrl+" },
			want:   "keymap.view.tasks",
		},
		{
			name: "duplicate chord",
			mutate: func(c *Config) {
				c.Keymap["view.tasks"] = "d"
			},
			want: "duplicate chord 'd'",
		},
		{
			name:   "negative retention",
			mutate: func(c *Config) { c.History.RetentionDays = -1 },
			want:   "history.retention_days",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateConfigAllowsUnboundAction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Keymap["view.tasks"] = ""

	assert.NoError(t, validateConfig(cfg))
}

func TestManagerLoadCreatesDefaultConfig(t *testing.T) {
	configDir := setTestDirs(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	// Config file and schema were written
	_, err = os.Stat(filepath.Join(configDir, "config.toml"))
	require.NoError(t, err)

	schemaData, err := os.ReadFile(filepath.Join(configDir, "config.schema.json"))
	require.NoError(t, err)
	assert.True(t, json.Valid(schemaData))

	cfg := manager.Get()
	assert.Equal(t, defaultListenAddr, cfg.Server.ListenAddr)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, DefaultKeymap(), cfg.Keymap)
	assert.Equal(t, "escape", cfg.Input.EscapeKey)

	// Database path resolves into the XDG data dir
	assert.Contains(t, cfg.History.Path, appName)
	assert.Equal(t, databaseName, filepath.Base(cfg.History.Path))
}

func TestManagerLoadReadsExistingFile(t *testing.T) {
	configDir := setTestDirs(t)
	writeConfigFile(t, configDir, `
[logging]
level = "debug"

[keymap]
"view.tasks" = "shift+t"

[keymap.palette]
toggle = "ctrl+p"
`)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)

	// Quoted dotted keys and nested tables spell the same binding
	assert.Equal(t, "shift+t", cfg.Keymap["view.tasks"])
	assert.Equal(t, "ctrl+p", cfg.Keymap["palette.toggle"])

	// Unlisted actions keep their defaults
	assert.Equal(t, "r", cfg.Keymap["view.refresh"])
}

func TestManagerLoadEnvOverride(t *testing.T) {
	setTestDirs(t)
	t.Setenv("QUARTERDECK_LOGGING_LEVEL", "WARN")
	t.Setenv("QUARTERDECK_HISTORY_RETENTION_DAYS", "30")

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, 30, cfg.History.RetentionDays)
}

func TestManagerLoadRejectsInvalidFile(t *testing.T) {
	configDir := setTestDirs(t)
	writeConfigFile(t, configDir, `
[logging]
level = "loud"
`)

	manager, err := NewManager()
	require.NoError(t, err)

	err = manager.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "logging.level")
}

func TestManagerUpdatePersists(t *testing.T) {
	setTestDirs(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	err = manager.Update(func(c *Config) {
		c.Keymap["view.tasks"] = "shift+t"
		c.I18n.Language = "fr"
	})
	require.NoError(t, err)

	// A fresh manager reads the persisted changes back
	reloaded, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, reloaded.Load())

	cfg := reloaded.Get()
	assert.Equal(t, "shift+t", cfg.Keymap["view.tasks"])
	assert.Equal(t, "fr", cfg.I18n.Language)
	assert.Equal(t, "t", DefaultKeymap()["view.tasks"])
}

func TestManagerUpdateRejectsInvalidMutation(t *testing.T) {
	setTestDirs(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	err = manager.Update(func(c *Config) {
		c.Logging.Format = "xml"
	})
	require.Error(t, err)

	// Current config is untouched
	assert.Equal(t, "console", manager.Get().Logging.Format)
}

func TestManagerGetReturnsDetachedCopy(t *testing.T) {
	setTestDirs(t)

	manager, err := NewManager()
	require.NoError(t, err)
	require.NoError(t, manager.Load())

	cfg := manager.Get()
	cfg.Keymap["view.tasks"] = "x"
	cfg.Server.ListenAddr = "0.0.0.0:1"

	fresh := manager.Get()
	assert.Equal(t, "t", fresh.Keymap["view.tasks"])
	assert.Equal(t, defaultListenAddr, fresh.Server.ListenAddr)
}

func TestGetXDGDirsDevMode(t *testing.T) {
	t.Setenv("ENV", "dev")

	dirs, err := GetXDGDirs()
	require.NoError(t, err)

	cwd, err := os.Getwd()
	require.NoError(t, err)

	devDir := filepath.Join(cwd, ".dev", appName)
	assert.Equal(t, devDir, dirs.ConfigHome)
	assert.Equal(t, devDir, dirs.DataHome)
	assert.Equal(t, devDir, dirs.StateHome)
}
