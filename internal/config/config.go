package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (LIVENAV_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: LIVENAV_PORT -> port, etc.
	if err := k.Load(env.Provider("LIVENAV_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LIVENAV_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.LiveClass == "" {
		return fmt.Errorf("live_class is required")
	}
	if strings.ContainsAny(c.LiveClass, " \t\n\r\f") {
		return fmt.Errorf("invalid live_class %q: must be a single class name", c.LiveClass)
	}

	if c.NavSelector == "" {
		return fmt.Errorf("nav_selector is required")
	}
	if _, err := xpath.Compile(c.NavSelector); err != nil {
		return fmt.Errorf("invalid nav_selector %q: %w", c.NavSelector, err)
	}

	return nil
}

// DatabasePath returns the location of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, "livenav.db")
}
