// Package config loads the phonebook configuration from YAML with
// environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend names for StorageConfig.Backend.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
)

// Config holds all phonebook configuration.
type Config struct {
	Storage StorageConfig `yaml:"storage"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig selects and locates the persistence backend.
type StorageConfig struct {
	Backend  string `yaml:"backend"`  // json, sqlite
	File     string `yaml:"file"`     // JSON backend path
	Database string `yaml:"database"` // SQLite backend path
}

// DisplayConfig configures record listing.
type DisplayConfig struct {
	PerPage int `yaml:"per_page"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
	File  string `yaml:"file"`
}

// DefaultConfig returns the default configuration. The data and log file
// names match the ones earlier versions of the tool used, so an existing
// directory keeps working without a config file.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:  BackendJSON,
			File:     "phone_directory.json",
			Database: "phone_directory.db",
		},
		Display: DisplayConfig{
			PerPage: 5,
		},
		Logging: LoggingConfig{
			Level: "debug",
			File:  "phone_directory.log",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults. Environment variables override file values.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnvOverrides()
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("PHONEBOOK_BACKEND"); v != "" {
		c.Storage.Backend = v
	}
	if v := os.Getenv("PHONEBOOK_FILE"); v != "" {
		c.Storage.File = v
	}
	if v := os.Getenv("PHONEBOOK_DB"); v != "" {
		c.Storage.Database = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case BackendJSON, BackendSQLite:
	default:
		return fmt.Errorf("invalid storage backend: %s (valid: %s, %s)",
			c.Storage.Backend, BackendJSON, BackendSQLite)
	}
	if c.Display.PerPage < 1 {
		return fmt.Errorf("display per_page must be positive, got %d", c.Display.PerPage)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}
	return nil
}
