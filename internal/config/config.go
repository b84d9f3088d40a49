// Package config loads and persists the application configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the application configuration. The core takes the database
// handle as an explicit parameter; this is where the collaborator decides
// what to open.
type Config struct {
	// DBPath is the location of the SQLite database file.
	DBPath string `mapstructure:"db_path" yaml:"db_path"`

	// DefaultPriority is the priority assigned to quick-added tasks.
	DefaultPriority int `mapstructure:"default_priority" yaml:"default_priority"`
}

// DefaultConfigPath returns the default path for the configuration file,
// located at ~/.config/stride/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "stride", "config.yaml")
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	dbPath := "stride.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".config", "stride", "stride.db")
	}
	return &Config{
		DBPath:          dbPath,
		DefaultPriority: 3,
	}
}

// Load reads configuration from the given YAML file path using Viper.
// A missing file yields the defaults rather than an error.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetDefault("db_path", cfg.DBPath)
	v.SetDefault("default_priority", cfg.DefaultPriority)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok || os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the configuration back to the given path, creating parent
// directories as needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.Set("db_path", cfg.DBPath)
	v.Set("default_priority", cfg.DefaultPriority)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config %s: %w", path, err)
	}
	return nil
}
