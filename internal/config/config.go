// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Config holds the hosting server settings. Values come from the process
// environment; a .env file is loaded first by the main package.
type Config struct {
	Port        string `env:"PORT" envDefault:"8080"`
	GinMode     string `env:"GIN_MODE" envDefault:"debug"`
	TemplateDir string `env:"PORTFOLIO_TEMPLATES" envDefault:"templates"`
	StaticDir   string `env:"PORTFOLIO_STATIC" envDefault:"static"`
	ImageDir    string `env:"PORTFOLIO_IMAGES" envDefault:"images"`
	WasmDir     string `env:"PORTFOLIO_WASM" envDefault:"wasm"`
	LogLevel    string `env:"PORTFOLIO_LOG_LEVEL" envDefault:"info"`
}

// Load parses the environment into a Config and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks enumerated settings.
func (c *Config) Validate() error {
	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE %q: must be one of debug, release, test", c.GinMode)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("PORT is required")
	}
	return nil
}

// Level is the configured slog level.
func (c *Config) Level() slog.Level {
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid PORTFOLIO_LOG_LEVEL %q: %w", s, err)
	}
	return lvl, nil
}

// Addr is the listen address.
func (c *Config) Addr() string { return ":" + c.Port }
