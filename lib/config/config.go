// Copyright 2026 The Cachesweep Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for cachesweep.
//
// Configuration is loaded from a single file specified by:
//   - CACHESWEEP_CONFIG environment variable, or
//   - --config flag passed to the command
//
// There are no fallbacks or automatic discovery. Flags always win
// over the file; the file only moves the defaults.
package config

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration for cachesweep.
type Config struct {
	// Sweep holds the default sweep criteria.
	Sweep SweepConfig `yaml:"sweep"`
}

// SweepConfig supplies defaults for the sweep command. Every field
// here has a matching flag; a flag given on the command line takes
// precedence.
type SweepConfig struct {
	// Days is the age cutoff applied when no other criterion is
	// selected. Default: 30.
	Days uint64 `yaml:"days"`

	// MaxSize is a size budget like "10GB" or "512MiB". Empty means
	// no size budget.
	MaxSize string `yaml:"max_size"`

	// Recursive searches for project caches below the given paths.
	Recursive bool `yaml:"recursive"`

	// Hidden includes dot-directories in recursive searches.
	Hidden bool `yaml:"hidden"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Sweep: SweepConfig{Days: 30},
	}
}

// Load loads configuration from the CACHESWEEP_CONFIG environment
// variable, falling back to Default when it is unset.
func Load() (*Config, error) {
	path := os.Getenv("CACHESWEEP_CONFIG")
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile loads configuration from an explicit path. Fields absent
// from the file keep their defaults.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every configured value is usable before any
// sweeping starts.
func (c *Config) Validate() error {
	if c.Sweep.MaxSize != "" {
		if _, err := humanize.ParseBytes(c.Sweep.MaxSize); err != nil {
			return fmt.Errorf("sweep.max_size %q: %w", c.Sweep.MaxSize, err)
		}
	}
	return nil
}
