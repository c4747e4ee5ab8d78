// Copyright mclaunch contributors
// SPDX-License-Identifier: Apache-2.0

// Package config persists the user's launcher preferences between runs.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-shellwords"
	"gopkg.in/yaml.v3"

	"github.com/RafaelrainBR/minecraft-launcher/internal/cache"
)

// DefaultUserName is used when there is no configuration file yet.
const DefaultUserName = "Player"

// Config is the content of launcher_config.yaml. A JSON file is also valid, as JSON is a subset of YAML.
type Config struct {
	// UserName replaces ${auth_player_name}. Empty when the file exists, but doesn't set it.
	UserName string `yaml:"user_name"`
	// LastSelectedVersionID is the version launched last, used when "run" has no argument.
	LastSelectedVersionID string `yaml:"last_selected_version_id,omitempty"`
	// JVMArgs are extra JVM arguments in shell syntax, ex. `-Xmx2G -Dfoo="a b"`
	JVMArgs string `yaml:"jvm_args,omitempty"`
}

// Default is the configuration used when none was saved.
func Default() *Config {
	return &Config{UserName: DefaultUserName}
}

// Load reads the configuration at path, or returns Default if it doesn't exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	} else if err != nil {
		return nil, fmt.Errorf("error reading config %s: %w", path, err)
	}

	c := &Config{}
	if err = yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	if _, err = c.SplitJVMArgs(); err != nil {
		return nil, fmt.Errorf("error parsing config %s: %w", path, err)
	}
	return c, nil
}

// Save writes the configuration to path, replacing any existing file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return cache.WriteFile(path, data, 0o600)
}

// SplitJVMArgs splits JVMArgs the way a shell would.
func (c *Config) SplitJVMArgs() ([]string, error) {
	if c.JVMArgs == "" {
		return nil, nil
	}
	args, err := shellwords.Parse(c.JVMArgs)
	if err != nil {
		return nil, fmt.Errorf("invalid jvm_args %q: %w", c.JVMArgs, err)
	}
	return args, nil
}
