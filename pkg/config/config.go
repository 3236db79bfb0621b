// Package config loads and saves gpucheck configuration.
//
// Configuration lives in a YAML file at ~/.config/gpucheck/config.yaml.
// A missing file is created with defaults on first load, so a fresh
// install works without any setup.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds the tool's settings.
type Config struct {
	LogLevel    string `yaml:"log_level"`
	LogFilePath string `yaml:"log_file_path"`

	// PreferredBackend is probed before the platform default order.
	// Empty means auto-detect.
	PreferredBackend string `yaml:"preferred_backend"`

	// Minimum compute capability for the check command. Each component is
	// compared against its own threshold.
	MinCCMajor int `yaml:"min_cc_major"`
	MinCCMinor int `yaml:"min_cc_minor"`

	// HistoryDir is where saved doctor reports are stored.
	HistoryDir string `yaml:"history_dir"`

	// CacheTTLSeconds bounds reuse of hardware probe results.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		LogLevel:        "warn",
		LogFilePath:     "",
		MinCCMajor:      2,
		MinCCMinor:      1,
		HistoryDir:      filepath.Join(configDir(), "history"),
		CacheTTLSeconds: 30,
	}
}

// Load reads the config file at path, or the default location when path
// is empty. A missing file is created with defaults.
func Load(path string) (Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			if err := Save(cfg, path); err != nil {
				return Config{}, fmt.Errorf("config: writing defaults: %w", err)
			}
			return cfg, nil
		}
		return Config{}, fmt.Errorf("config: reading %s: %w", path, err)
	}

	// Unset fields fall back to defaults
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return cfg, nil
}

// Save writes the config as YAML, creating the directory if needed.
func Save(cfg Config, path string) error {
	if path == "" {
		path = DefaultPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: creating directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: encoding: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: writing %s: %w", path, err)
	}
	return nil
}

// DefaultPath returns ~/.config/gpucheck/config.yaml.
func DefaultPath() string {
	return filepath.Join(configDir(), "config.yaml")
}

func configDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".config", "gpucheck")
}
