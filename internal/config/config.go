// Package config loads server configuration from a YAML file with
// environment variable overrides (LPF_*).
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the full server configuration.
type Config struct {
	// Port the HTTP server listens on.
	Port int `koanf:"port" yaml:"port"`

	// DatabaseDSN selects the database: a postgres DSN or a SQLite file
	// path.
	DatabaseDSN string `koanf:"database_dsn" yaml:"database_dsn"`

	// APISecret, when set, requires a matching bearer token on every
	// request.
	APISecret string `koanf:"api_secret" yaml:"api_secret"`
}

// DefaultConfig returns the configuration used when nothing is provided.
func DefaultConfig() *Config {
	return &Config{
		Port:        8080,
		DatabaseDSN: "data/lp-factory.db",
	}
}

// Load reads configuration from the given YAML file if it exists, then
// overlays environment variable overrides: LPF_PORT -> port, etc.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("LPF_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "LPF_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.DatabaseDSN == "" {
		return fmt.Errorf("database_dsn is required")
	}
	return nil
}
