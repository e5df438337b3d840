// Package config loads and persists expense-tracker settings from an
// XDG-compliant TOML file, with .env and environment overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all expense-tracker configuration.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	Report   ReportConfig   `toml:"report"`
}

// DatabaseConfig holds the backing store settings.
type DatabaseConfig struct {
	// URL is either a postgres:// DSN or a SQLite file path.
	URL string `toml:"url,omitempty"`
}

// ReportConfig holds report preferences.
type ReportConfig struct {
	DefaultMonths int `toml:"default_months"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Report: ReportConfig{
			DefaultMonths: 12,
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "expense-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "expense-tracker")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "expense-tracker")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "expense-tracker")
}

// DefaultDBPath returns the default SQLite database location.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "expenses.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A .env file in the working directory is applied to the environment
// first so EXPENSE_DB can be set per project.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := DefaultConfig()

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// DatabaseURL returns the effective database URL and which layer set
// it: the EXPENSE_DB environment variable wins, then the config file,
// then the default SQLite path.
func DatabaseURL(cfg Config) (url, source string) {
	if url := os.Getenv("EXPENSE_DB"); url != "" {
		return url, "environment"
	}
	if cfg.Database.URL != "" {
		return cfg.Database.URL, "config file"
	}
	return DefaultDBPath(), "default"
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
