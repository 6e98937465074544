package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the workspace configuration file.
const FileName = "spendlens.yaml"

// Config represents the top-level spendlens.yaml configuration.
type Config struct {
	Store  StoreConfig  `yaml:"store"`
	Locale LocaleConfig `yaml:"locale"`
	Log    LogConfig    `yaml:"log"`
}

// StoreConfig locates the persisted category dictionary.
type StoreConfig struct {
	Path string `yaml:"path"`
}

// LocaleConfig controls parsing and display conventions.
type LocaleConfig struct {
	DayFirst bool   `yaml:"day_first"` // prefer DD/MM/YYYY when ambiguous
	Currency string `yaml:"currency"`  // display label only, no conversion
}

// LogConfig locates the edit audit log.
type LogConfig struct {
	EditLog string `yaml:"edit_log"`
}

// Load reads a spendlens.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new workspace.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Path: "categories.json",
		},
		Locale: LocaleConfig{
			DayFirst: true,
			Currency: "INR",
		},
		Log: LogConfig{
			EditLog: "logs/edit-log.csv",
		},
	}
}
