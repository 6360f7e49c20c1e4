package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the name of the user configuration file (sibling to .td/).
	userConfigFile = ".tdconfig.yaml"
	// envFile holds optional TD_* variables (sibling to .td/).
	envFile = ".env"

	// Default configuration values
	DefaultConfirmDelete = true
	DefaultLogLevel      = "warn"
	DefaultColor         = ColorAuto
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Environment variables that override .tdconfig.yaml.
const (
	EnvSlot          = "TD_SLOT"
	EnvConfirmDelete = "TD_CONFIRM_DELETE"
	EnvLogLevel      = "TD_LOG_LEVEL"
	EnvColor         = "TD_COLOR"
)

// Config represents user configuration from .tdconfig.yaml.
// This file is user-managed and never written by td.
type Config struct {
	// Slot is the key the list is stored under.
	Slot string `yaml:"slot"`

	// ConfirmDelete asks before `td rm` deletes a task.
	ConfirmDelete bool `yaml:"confirm_delete"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// Color is one of auto, always, never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Slot:          DefaultSlot,
		ConfirmDelete: DefaultConfirmDelete,
		LogLevel:      DefaultLogLevel,
		Color:         DefaultColor,
	}
}

// LoadConfig loads .tdconfig.yaml if it exists, otherwise starts from
// defaults, then applies TD_* environment variables. Variables already set
// in the process environment win over those in a .env file next to .td/.
func (s *Storage) LoadConfig() (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(s.ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	dotenv, err := s.readEnvFile()
	if err != nil {
		return nil, err
	}
	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := dotenv[name]
		return v, ok
	}

	if err := applyEnv(cfg, lookup); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ConfigPath returns the path to the user config file.
func (s *Storage) ConfigPath() string {
	return filepath.Join(s.root, userConfigFile)
}

func (s *Storage) readEnvFile() (map[string]string, error) {
	path := filepath.Join(s.root, envFile)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, nil
	}
	env, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", envFile, err)
	}
	return env, nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvSlot); ok && v != "" {
		cfg.Slot = v
	}
	if v, ok := lookup(EnvConfirmDelete); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: expected true or false", EnvConfirmDelete, v)
		}
		cfg.ConfirmDelete = b
	}
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
	if v, ok := lookup(EnvColor); ok && v != "" {
		cfg.Color = v
	}
	return nil
}

// Validate checks config values that have a fixed set of choices.
func (c *Config) Validate() error {
	if err := validateKey(c.Slot); err != nil {
		return fmt.Errorf("invalid slot in config: %w", err)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q (expected debug, info, warn or error)", c.LogLevel)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("invalid color %q (expected auto, always or never)", c.Color)
	}
	return nil
}
