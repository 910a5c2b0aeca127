package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config represents the complete application configuration
type Config struct {
	Device struct {
		Backend        string `yaml:"backend"`
		UinputSettleMs int    `yaml:"uinput_settle_ms"`
	} `yaml:"device"`
	Input struct {
		PipeBlockSize int `yaml:"pipe_block_size"`
	} `yaml:"input"`
	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
		File   string `yaml:"file"`
	} `yaml:"logging"`
	Notifications struct {
		Enabled bool `yaml:"enabled"`
	} `yaml:"notifications"`
	Advanced struct {
		SingleInstance bool `yaml:"single_instance"`
	} `yaml:"advanced"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	config := &Config{}

	config.Device.Backend = BackendWayland
	config.Device.UinputSettleMs = 200

	// bytes per read in pipe mode
	config.Input.PipeBlockSize = 100

	config.Logging.Level = "warn"
	config.Logging.Format = "console"

	config.Notifications.Enabled = false
	config.Advanced.SingleInstance = false

	return config
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/vkbd/config.yaml, falling back
// to ~/.config when XDG_CONFIG_HOME is unset
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, AppName, "config.yaml"), nil
}

// LoadConfig loads the YAML file at path over the defaults. An empty path
// means $VKBD_CONFIG or the XDG location, where a missing file is fine; a
// path given explicitly must exist.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("VKBD_CONFIG")
		explicit = path != ""
	}
	if !explicit {
		var err error
		path, err = DefaultConfigPath()
		if err != nil {
			// no home directory, nothing to load
			return config, nil
		}
	}

	if err := loadConfigFromFile(config, path); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}

	return config, nil
}

// loadConfigFromFile loads configuration from a YAML file
func loadConfigFromFile(config *Config, filename string) error {
	absPath, err := filepath.Abs(filename)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return err
	}

	return yaml.Unmarshal(data, config)
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	switch config.Device.Backend {
	case BackendWayland, BackendUinput, BackendPrint:
	default:
		return fmt.Errorf("unknown backend %q, want %s, %s or %s",
			config.Device.Backend, BackendWayland, BackendUinput, BackendPrint)
	}

	if config.Device.UinputSettleMs < 0 {
		return fmt.Errorf("uinput settle delay must be non-negative, got: %d", config.Device.UinputSettleMs)
	}

	if config.Input.PipeBlockSize < 1 {
		return fmt.Errorf("pipe block size must be at least 1, got: %d", config.Input.PipeBlockSize)
	}

	if _, err := zerolog.ParseLevel(config.Logging.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Logging.Level)
	}

	switch config.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid log format %q, want console or json", config.Logging.Format)
	}

	return nil
}
