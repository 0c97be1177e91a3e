// Package config loads and saves the TOML configuration file at
// ~/.golf-tracker/config.toml.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration.
type Config struct {
	// HTTP server configuration
	Server ServerConfig `toml:"server"`

	// Database configuration
	Database DatabaseConfig `toml:"database"`

	// Course catalog configuration
	Catalog CatalogConfig `toml:"catalog"`

	// Round file import configuration
	Import ImportConfig `toml:"import"`

	// Application configuration
	App AppConfig `toml:"app"`
}

// ServerConfig contains REST API server settings.
type ServerConfig struct {
	Port int `toml:"port"` // Port the API listens on
}

// DatabaseConfig contains SQLite settings.
type DatabaseConfig struct {
	Path string `toml:"path"` // Path to the database file ("" = default)
}

// CatalogConfig contains remote course catalog settings.
type CatalogConfig struct {
	BaseURL        string `toml:"base_url"`        // Remote catalog endpoint
	APIKey         string `toml:"api_key"`         // Credential ("" disables remote lookups)
	Timeout        string `toml:"timeout"`         // HTTP timeout (e.g., "10s")
	SearchDebounce string `toml:"search_debounce"` // Delay after last keystroke (e.g., "300ms")
}

// ImportConfig contains round file import settings.
type ImportConfig struct {
	Enabled bool   `toml:"enabled"` // Watch a directory for round files
	Dir     string `toml:"dir"`     // Directory to watch
}

// AppConfig contains general application settings.
type AppConfig struct {
	DebugMode bool `toml:"debug_mode"` // Enable debug logging
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 8080,
		},
		Database: DatabaseConfig{
			Path: "",
		},
		Catalog: CatalogConfig{
			BaseURL:        "",
			APIKey:         "",
			Timeout:        "10s",
			SearchDebounce: "300ms",
		},
		Import: ImportConfig{
			Enabled: false,
			Dir:     "",
		},
		App: AppConfig{
			DebugMode: false,
		},
	}
}

// configPath returns the path to the configuration file.
func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".golf-tracker")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}

	return filepath.Join(configDir, "config.toml"), nil
}

// DefaultDatabasePath returns the database location used when the
// config does not name one.
func DefaultDatabasePath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	dataDir := filepath.Join(homeDir, ".golf-tracker")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return filepath.Join(dataDir, "rounds.db"), nil
}

// Load loads the configuration from disk. Returns default config if
// the file doesn't exist. File values are merged over the defaults, so
// a partial file that omits a section keeps that section's defaults.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return config, nil
}

// Save saves the configuration to disk.
func (c *Config) Save() error {
	path, err := configPath()
	if err != nil {
		return err
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if _, err := time.ParseDuration(c.Catalog.Timeout); err != nil {
		return fmt.Errorf("invalid catalog timeout %q: %w", c.Catalog.Timeout, err)
	}

	if _, err := time.ParseDuration(c.Catalog.SearchDebounce); err != nil {
		return fmt.Errorf("invalid search debounce %q: %w", c.Catalog.SearchDebounce, err)
	}

	if c.Import.Enabled && c.Import.Dir == "" {
		return fmt.Errorf("import enabled but no directory configured")
	}

	return nil
}

// GetCatalogTimeout returns the catalog HTTP timeout as a duration.
func (c *Config) GetCatalogTimeout() (time.Duration, error) {
	return time.ParseDuration(c.Catalog.Timeout)
}

// GetSearchDebounce returns the search debounce delay as a duration.
// It feeds courses.NewSearcher for keystroke-driven search clients; the
// synchronous REST search route does not debounce.
func (c *Config) GetSearchDebounce() (time.Duration, error) {
	return time.ParseDuration(c.Catalog.SearchDebounce)
}
