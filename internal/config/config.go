package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Icon modes accepted by the icons setting.
const (
	IconsAuto  = "auto"
	IconsEmoji = "emoji"
	IconsASCII = "ascii"
)

// EnvPrefix prefixes environment variable overrides, e.g. SEARCH_PICKER_THEME.
const EnvPrefix = "SEARCH_PICKER"

// ErrInvalidIcons is returned when the icons setting is not a known mode.
var ErrInvalidIcons = errors.New("icons must be auto, emoji or ascii")

// Config holds the picker's persisted preferences.
type Config struct {
	Theme            string `json:"theme" mapstructure:"theme"`
	Icons            string `json:"icons" mapstructure:"icons"`
	Window           string `json:"window" mapstructure:"window"`
	EnableLogging    bool   `json:"enable_logging" mapstructure:"enable_logging"`
	LogRetentionDays int    `json:"log_retention_days" mapstructure:"log_retention_days"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Theme:            "auto",
		Icons:            IconsAuto,
		Window:           "main",
		EnableLogging:    true,
		LogRetentionDays: 30,
	}
}

// ConfigPath returns the path to the config file
func ConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".search-picker", "config.json"), nil
}

// Load reads the configuration from disk. Environment variables prefixed with
// SEARCH_PICKER_ override file values; a missing file yields the defaults.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	v := viper.New()
	v.SetDefault("theme", defaults.Theme)
	v.SetDefault("icons", defaults.Icons)
	v.SetDefault("window", defaults.Window)
	v.SetDefault("enable_logging", defaults.EnableLogging)
	v.SetDefault("log_retention_days", defaults.LogRetentionDays)

	v.SetConfigType("json")
	v.SetConfigFile(path)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if _, err := os.Stat(path); err == nil {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Fill in any blanked fields with defaults
	if cfg.Theme == "" {
		cfg.Theme = defaults.Theme
	}
	if cfg.Icons == "" {
		cfg.Icons = defaults.Icons
	}
	if cfg.Window == "" {
		cfg.Window = defaults.Window
	}
	if cfg.LogRetentionDays <= 0 {
		cfg.LogRetentionDays = defaults.LogRetentionDays
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate reports settings that cannot be applied.
func (cfg *Config) Validate() error {
	switch cfg.Icons {
	case IconsAuto, IconsEmoji, IconsASCII:
		return nil
	default:
		return fmt.Errorf("invalid icons %q: %w", cfg.Icons, ErrInvalidIcons)
	}
}

// Save writes the configuration to disk
func (cfg *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
