// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles the user configuration file: where it lives, reading
// and writing it, and validating individual settings.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"opep/internal/logger"
	"opep/internal/render"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level application configuration.
// Every field is optional; zero values mean the built-in default.
type Config struct {
	// Pager is the pager command line, or "builtin" for the built-in pager
	Pager string `yaml:"pager,omitempty"`

	// Style is the markdown rendering style (dark, light, dracula, ... or auto)
	Style string `yaml:"style,omitempty"`

	// Width is the word-wrap width; 0 uses the terminal width
	Width int `yaml:"width,omitempty"`

	// PepsDir is a directory with pep-NNNN.md files and a manifest.yaml,
	// used instead of the bundled documents
	PepsDir string `yaml:"peps_dir,omitempty"`

	// LogLevel is one of debug, info, warn or error
	LogLevel string `yaml:"log_level,omitempty"`
}

// Keys lists the settable configuration keys in file order.
var Keys = []string{"pager", "style", "width", "peps_dir", "log_level"}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "opep", "config.yaml"), nil
}

// LoadConfig reads the config from the default path.
func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}
	return LoadConfigFrom(configPath)
}

// LoadConfigFrom reads the config at configPath. A missing file is not an error.
func LoadConfigFrom(configPath string) (Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return cfg, nil
}

func EnsureConfigDir(configPath string) error {
	configDir := filepath.Dir(configPath)
	err := os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

// SaveConfig writes the config to the default path.
func SaveConfig(cfg Config) error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	return SaveConfigTo(configPath, cfg)
}

// SaveConfigTo writes the config to configPath, creating its directory.
func SaveConfigTo(configPath string, cfg Config) error {
	err := EnsureConfigDir(configPath)
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	// Write with permissions rw-r----- (0640)
	err = os.WriteFile(configPath, data, 0640)
	if err != nil {
		return fmt.Errorf("failed to write config file %s: %w", configPath, err)
	}

	return nil
}

// Validate checks every set field.
func (c Config) Validate() error {
	for _, key := range Keys {
		value, _ := c.Get(key)
		if value == "" {
			continue
		}
		if err := validate(key, value); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the value of key as text. Unset values are empty.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "pager":
		return c.Pager, nil
	case "style":
		return c.Style, nil
	case "width":
		if c.Width == 0 {
			return "", nil
		}
		return strconv.Itoa(c.Width), nil
	case "peps_dir":
		return c.PepsDir, nil
	case "log_level":
		return c.LogLevel, nil
	default:
		return "", unknownKeyError(key)
	}
}

// Set validates value and stores it under key. An empty value resets the key.
func (c *Config) Set(key, value string) error {
	if value != "" {
		if err := validate(key, value); err != nil {
			return err
		}
	}

	switch key {
	case "pager":
		c.Pager = value
	case "style":
		c.Style = value
	case "width":
		if value == "" {
			c.Width = 0
		} else {
			c.Width, _ = strconv.Atoi(value)
		}
	case "peps_dir":
		c.PepsDir = value
	case "log_level":
		c.LogLevel = value
	default:
		return unknownKeyError(key)
	}
	return nil
}

func validate(key, value string) error {
	switch key {
	case "pager":
		return nil
	case "style":
		if !render.ValidStyle(value) {
			return fmt.Errorf("style: unknown style %q (available: %s)", value, strings.Join(render.StyleNames(), ", "))
		}
	case "width":
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("width: must be a non-negative integer, got %q", value)
		}
	case "peps_dir":
		if !strings.HasPrefix(value, "/") && !strings.HasPrefix(value, "~/") {
			return fmt.Errorf("peps_dir: path must be absolute or start with '~/'")
		}
	case "log_level":
		if _, err := logger.ParseLevel(value); err != nil {
			return fmt.Errorf("log_level: %w", err)
		}
	default:
		return unknownKeyError(key)
	}
	return nil
}

func unknownKeyError(key string) error {
	return fmt.Errorf("unknown config key %q (available: %s)", key, strings.Join(Keys, ", "))
}

func ResolvePath(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return path, fmt.Errorf("could not get user home directory to resolve path '%s': %w", path, err)
	}

	return filepath.Join(homeDir, path[2:]), nil
}
