// Package config loads game settings from a YAML file, a .env file and the
// environment, in that order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Frontends.
const (
	FrontendWindow   = "window"
	FrontendTerminal = "terminal"
)

type Config struct {
	Game    GameConfig    `yaml:"game"`
	Display DisplayConfig `yaml:"display"`
	Logging LoggingConfig `yaml:"logging"`
	Locale  LocaleConfig  `yaml:"locale"`
}

type GameConfig struct {
	// Seed fixes the galaxy. Zero picks one from the clock.
	Seed uint32 `yaml:"seed"`
}

type DisplayConfig struct {
	Frontend string `yaml:"frontend"`
	Scale    int    `yaml:"scale"`
	Title    string `yaml:"title"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	// File receives log output. Empty means stderr.
	File string `yaml:"file"`
}

type LocaleConfig struct {
	Dir    string `yaml:"dir"`
	Lang   string `yaml:"lang"`
	Domain string `yaml:"domain"`
}

func (d *DisplayConfig) ApplyDefaults() {
	if d.Frontend == "" {
		d.Frontend = FrontendWindow
	}
	if d.Scale == 0 {
		d.Scale = 4
	}
	if d.Title == "" {
		d.Title = "SpaceGame"
	}
}

func (l *LoggingConfig) ApplyDefaults() {
	if l.Level == "" {
		l.Level = "info"
	}
	if l.Format == "" {
		l.Format = "text"
	}
}

func (l *LocaleConfig) ApplyDefaults() {
	if l.Lang == "" {
		l.Lang = "en_US"
	}
	if l.Domain == "" {
		l.Domain = "default"
	}
}

func (c *Config) ApplyDefaults() {
	c.Display.ApplyDefaults()
	c.Logging.ApplyDefaults()
	c.Locale.ApplyDefaults()
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	var c Config
	c.ApplyDefaults()
	return &c
}

// Load reads a YAML config file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	c.ApplyDefaults()
	return &c, nil
}

// Init loads path, then any .env files (default ".env"), then applies
// environment overrides and validates the result.
func Init(path string, envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load env file: %w", err)
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	if err := c.applyEnv(); err != nil {
		return nil, err
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return c, nil
}

func (c *Config) validate() error {
	switch c.Display.Frontend {
	case FrontendWindow, FrontendTerminal:
	default:
		return fmt.Errorf("unknown frontend %q", c.Display.Frontend)
	}
	if c.Display.Scale < 1 || c.Display.Scale > 16 {
		return fmt.Errorf("scale must be between 1 and 16, got %d", c.Display.Scale)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}
	return nil
}
