package ui

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Config represents the persisted application configuration
type Config struct {
	Root           string `json:"root,omitempty"`
	ShowHidden     bool   `json:"show_hidden"`
	ShowExtensions bool   `json:"show_extensions"`
	Theme          string `json:"theme,omitempty"`
}

// DefaultConfig returns the built-in defaults: hidden files off,
// extensions on, dark theme.
func DefaultConfig() *Config {
	return &Config{
		ShowExtensions: true,
		Theme:          "dark",
	}
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".treeline", "config.json"), nil
}

// LoadConfig loads configuration from the user's config file
func LoadConfig() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	// Missing file means defaults, not an error
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes the configuration to the user's config file
func SaveConfig(config *Config) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
