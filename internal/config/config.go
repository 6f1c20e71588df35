// Package config resolves liser settings from ~/.liser/config.yaml, the
// environment and command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = "config.yaml"

// Config holds client configuration.
type Config struct {
	BaseURL   string            `yaml:"base_url"`
	BagListID string            `yaml:"baglist_id"`
	Theme     string            `yaml:"theme"`
	LogLevel  string            `yaml:"log_level"`
	Timeout   time.Duration     `yaml:"timeout"`   // 0 means no client-side timeout
	Endpoints map[string]string `yaml:"endpoints"` // operation name -> path override
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		BaseURL:  "http://localhost:8000",
		Theme:    "classic",
		LogLevel: "info",
	}
}

// Dir is the per-user state directory. LISER_HOME overrides ~/.liser.
func Dir() (string, error) {
	if d := strings.TrimSpace(os.Getenv("LISER_HOME")); d != "" {
		return d, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".liser"), nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// Load reads the config file (a missing file yields defaults) and then
// applies environment overrides.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	cfg, err := LoadFile(p)
	if err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv()
	return cfg, nil
}

// LoadFile reads a YAML config on top of Default.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	return cfg, nil
}

// ApplyEnv overrides fields from LISER_* variables.
func (c *Config) ApplyEnv() {
	if v := strings.TrimSpace(os.Getenv("LISER_URL")); v != "" {
		c.BaseURL = strings.TrimRight(v, "/")
	}
	if v := strings.TrimSpace(os.Getenv("LISER_BAGLIST")); v != "" {
		c.BagListID = v
	}
	if v := strings.TrimSpace(os.Getenv("LISER_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("LISER_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
}

// Level maps LogLevel to a slog level, defaulting to info.
func (c Config) Level() slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return l
}
