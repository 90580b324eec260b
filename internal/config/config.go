package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"toolbox/internal/logging"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

const (
	APP_NAME = "toolbox" // application name used for config and state directories

	// ConfigPathEnv points the config file somewhere else, mostly for tests.
	ConfigPathEnv = "TOOLBOX_CONFIG_PATH"

	CurrentVersion = "1.0"
)

// Config holds user configuration for toolbox.
type Config struct {
	// CatalogPath is an optional JSON or YAML catalog replacing the embedded one.
	CatalogPath string `yaml:"catalog_path,omitempty"`
	// StatePath is the preference state file (theme and favorites).
	StatePath string `yaml:"state_path,omitempty"`
	Version   string `yaml:"version"`
	InitTime  int64  `yaml:"init_time"` // Unix timestamp of first save
}

// ConfigPath returns the config file path for the current platform, honoring
// TOOLBOX_CONFIG_PATH.
func ConfigPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	return filepath.Join(xdg.ConfigHome, APP_NAME, "config.yaml")
}

// DefaultStatePath is where preferences live when the config does not say.
func DefaultStatePath() string {
	return filepath.Join(xdg.StateHome, APP_NAME, "state.yaml")
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Version:  CurrentVersion,
		InitTime: 0, // set on first save
	}
}

// Load reads the config from the standard location. A missing file is not an
// error: toolbox has nothing that requires setup, so defaults are returned.
func Load() (*Config, error) {
	path := ConfigPath()
	logging.Debug("Loading config", "path", path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		logging.Debug("No config file, using defaults", "path", path)
		cfg := DefaultConfig()
		return &cfg, nil
	}

	return LoadFrom(path)
}

// LoadFrom loads config from a specific path
func LoadFrom(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	var cfg Config
	dec := yaml.NewDecoder(f)
	if err := dec.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	return &cfg, nil
}

// SaveTo writes the config to a specific path
func (c *Config) SaveTo(path string) error {
	if c.InitTime == 0 {
		c.InitTime = time.Now().Unix()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// 0600: the file may carry paths into the user's home
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	enc := yaml.NewEncoder(f)
	defer enc.Close()

	if err := enc.Encode(c); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// ResolveStatePath returns the configured state path with "~/" expanded, or
// the XDG default.
func (c *Config) ResolveStatePath() string {
	if c.StatePath == "" {
		return DefaultStatePath()
	}
	return ExpandPath(c.StatePath)
}

// ResolveCatalogPath returns the configured catalog path with "~/" expanded.
// Empty means the embedded catalog.
func (c *Config) ResolveCatalogPath() string {
	if c.CatalogPath == "" {
		return ""
	}
	return ExpandPath(c.CatalogPath)
}

// ExpandPath expands a leading "~/" to the user's home directory.
func ExpandPath(path string) string {
	if len(path) >= 2 && path[:2] == "~/" {
		return filepath.Join(xdg.Home, path[2:])
	}
	return path
}
