// Package config handles loading and saving application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/hy4ri/simple-todo/internal/todo"
)

// AppName is used for the config directory and log prefix.
const AppName = "simple-todo"

// Config represents the application configuration.
type Config struct {
	UI            UIConfig            `yaml:"ui" toml:"ui"`
	Notifications NotificationsConfig `yaml:"notifications" toml:"notifications"`
	Logging       LoggingConfig       `yaml:"logging" toml:"logging"`
}

// UIConfig holds UI-related settings.
type UIConfig struct {
	VimMode         bool   `yaml:"vim_mode" toml:"vim_mode"`
	ShowHints       bool   `yaml:"show_hints" toml:"show_hints"`
	DefaultPriority string `yaml:"default_priority" toml:"default_priority"` // high | medium | low
}

// NotificationsConfig controls desktop notifications.
type NotificationsConfig struct {
	OnComplete bool `yaml:"on_complete" toml:"on_complete"`
}

// LoggingConfig controls the runtime log file.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	// File is the log destination. Empty disables logging; the terminal
	// belongs to the TUI while it runs.
	File string `yaml:"file,omitempty" toml:"file,omitempty"`
}

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	return &Config{
		UI: UIConfig{
			VimMode:         true,
			ShowHints:       true,
			DefaultPriority: "high",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// ConfigDir returns the path to the configuration directory.
// Creates the directory if it doesn't exist.
func ConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".config", AppName)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// ConfigPath returns the full path to the default configuration file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load reads the configuration from path, or from the default location when
// path is empty. A missing file yields the defaults. Files ending in .toml
// are decoded as TOML, everything else as YAML.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if len(data) == 0 {
		return cfg, nil
	}
	if IsTOML(path) {
		err = toml.Unmarshal(data, cfg)
	} else {
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to path in the format its extension implies.
func Save(cfg *Config, path string) error {
	var (
		data []byte
		err  error
	)
	if IsTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	// Write with restricted permissions (owner read/write only)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	if _, err := todo.ParsePriority(c.UI.DefaultPriority); err != nil {
		return fmt.Errorf("invalid ui.default_priority: %q", c.UI.DefaultPriority)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level: %q", c.Logging.Level)
	}
	return nil
}

// DefaultPriority returns the configured priority for new tasks, falling
// back to High.
func (c *Config) DefaultPriority() todo.Priority {
	p, err := todo.ParsePriority(c.UI.DefaultPriority)
	if err != nil {
		return todo.PriorityHigh
	}
	return p
}

// IsTOML reports whether path names a TOML file, ignoring case.
func IsTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}
