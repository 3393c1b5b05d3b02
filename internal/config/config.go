// Package config reads and writes the habitcore configuration file (~/.habitcore/config.toml).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds habitcore settings. Empty fields mean "use the default".
type Config struct {
	DBPath   string `toml:"db_path,omitempty"`
	LogPath  string `toml:"log_path,omitempty"`
	LogLevel string `toml:"log_level,omitempty"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidKeys returns the sorted list of settable keys.
func ValidKeys() []string {
	keys := []string{"db_path", "log_path", "log_level"}
	sort.Strings(keys)
	return keys
}

// Dir returns ~/.habitcore, or ./.habitcore when the home dir is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".habitcore")
	}
	return filepath.Join(home, ".habitcore")
}

// Path returns the default config file path.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DefaultLogPath is where the JSON log goes unless configured.
func DefaultLogPath() string {
	return filepath.Join(Dir(), "habitcore.log")
}

// Load reads the config from the default path.
func Load() (*Config, error) {
	return LoadFrom(Path())
}

// LoadFrom reads the config at path. A missing file yields an empty Config.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// SaveTo writes the config to path, creating parent directories as needed.
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Get returns the value of key.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "db_path":
		return c.DBPath, nil
	case "log_path":
		return c.LogPath, nil
	case "log_level":
		return c.LogLevel, nil
	default:
		return "", unknownKey(key)
	}
}

// Set assigns value to key after validating it.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "db_path":
		c.DBPath = value
	case "log_path":
		c.LogPath = value
	case "log_level":
		v := strings.ToLower(value)
		if v != "" && !validLogLevels[v] {
			return fmt.Errorf("invalid log_level %q (valid: debug, info, warn, error)", value)
		}
		c.LogLevel = v
	default:
		return unknownKey(key)
	}
	return nil
}

func unknownKey(key string) error {
	return fmt.Errorf("unknown config key %q (valid: %s)", key, strings.Join(ValidKeys(), ", "))
}
