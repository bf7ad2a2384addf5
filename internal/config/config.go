// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

// Package config handles application configuration: where the movie list is
// stored, how the terminal is drawn, and how verbose the log is.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"movie-manager/internal/display"
	"movie-manager/internal/logger"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultDataFile is used when no data file is configured. It is relative
	// to the working directory.
	DefaultDataFile = "movies.txt"
)

// Config represents the top-level application configuration
type Config struct {
	// DataFile is the path of the movie list (optional, defaults to movies.txt)
	DataFile string `yaml:"data_file,omitempty"`

	// Color is one of auto, always or never (optional, defaults to auto)
	Color string `yaml:"color,omitempty"`

	// NoClear keeps the screen from being cleared between menu screens
	NoClear bool `yaml:"no_clear,omitempty"`

	// LogLevel is one of debug, info, warn or error (optional, defaults to info)
	LogLevel string `yaml:"log_level,omitempty"`
}

// DataPath returns the effective data file path with "~/" resolved.
func (c Config) DataPath() (string, error) {
	if c.DataFile == "" {
		return DefaultDataFile, nil
	}
	return ResolvePath(c.DataFile)
}

// ColorMode returns the configured color mode, defaulting to auto.
func (c Config) ColorMode() display.Mode {
	mode, err := display.ParseMode(c.Color)
	if err != nil {
		return display.ModeAuto
	}
	return mode
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := display.ParseMode(c.Color); err != nil {
		return err
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

func DefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "movie-manager", "config.yaml"), nil
}

func LoadConfig() (Config, error) {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return Config{}, err
	}

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

func EnsureConfigDir() error {
	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(configPath)
	err = os.MkdirAll(configDir, 0750) // rwxr-x---
	if err != nil {
		return fmt.Errorf("failed to create config directory %s: %w", configDir, err)
	}
	return nil
}

func SaveConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	configPath, err := DefaultConfigPath()
	if err != nil {
		return err
	}

	err = EnsureConfigDir()
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
