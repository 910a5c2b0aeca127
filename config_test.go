package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig()

	require.NoError(t, validateConfig(config))
	assert.Equal(t, BackendWayland, config.Device.Backend)
	assert.Equal(t, 100, config.Input.PipeBlockSize)
	assert.False(t, config.Notifications.Enabled)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, `
device:
  backend: uinput
  uinput_settle_ms: 50
input:
  pipe_block_size: 4096
logging:
  level: debug
  format: json
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, BackendUinput, config.Device.Backend)
	assert.Equal(t, 50, config.Device.UinputSettleMs)
	assert.Equal(t, 4096, config.Input.PipeBlockSize)
	assert.Equal(t, "debug", config.Logging.Level)
	assert.Equal(t, "json", config.Logging.Format)
	// untouched sections keep their defaults
	assert.False(t, config.Advanced.SingleInstance)
	require.NoError(t, validateConfig(config))
}

func TestLoadConfigDefaultLocation(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("VKBD_CONFIG", "")

	config, err := LoadConfig("")
	require.NoError(t, err, "a missing default config is not an error")
	assert.Equal(t, DefaultConfig(), config)

	dir := filepath.Join(configHome, AppName)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("device:\n  backend: print\n"), 0644))

	config, err = LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, BackendPrint, config.Device.Backend)
}

func TestLoadConfigFromEnv(t *testing.T) {
	path := writeConfig(t, "advanced:\n  single_instance: true\n")
	t.Setenv("VKBD_CONFIG", path)

	config, err := LoadConfig("")
	require.NoError(t, err)
	assert.True(t, config.Advanced.SingleInstance)
}

func TestLoadConfigExplicitMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfigMalformed(t *testing.T) {
	path := writeConfig(t, "device: [unterminated\n")

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Device.Backend = "x11" }},
		{"negative settle delay", func(c *Config) { c.Device.UinputSettleMs = -1 }},
		{"zero block size", func(c *Config) { c.Input.PipeBlockSize = 0 }},
		{"bad log level", func(c *Config) { c.Logging.Level = "loud" }},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := DefaultConfig()
			test.modify(config)
			assert.Error(t, validateConfig(config))
		})
	}
}
