// SPDX-License-Identifier: Apache-2.0
// Copyright (c) Microsoft Corporation.

// Package config handles apigen project configuration.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config represents the apigen.yaml project configuration file.
type Config struct {
	Version     int            `yaml:"version"`
	Schema      string         `yaml:"schema,omitempty"`
	Output      string         `yaml:"output,omitempty"`
	JavaPackage string         `yaml:"javaPackage,omitempty"`
	Mappings    []MappingEntry `yaml:"mappings,omitempty"`
}

// MappingEntry extends the built-in type mapping table from configuration.
// Entries with custom definers can only be declared in code.
type MappingEntry struct {
	Path string `yaml:"path"`
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Default returns the configuration used when no apigen.yaml is present.
func Default() *Config {
	return &Config{
		Version:     CurrentConfigVersion,
		Schema:      "api.json",
		Output:      "generated",
		JavaPackage: "com.microsoft.playwright",
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return errors.New("unsupported config version")
	}
	if c.Schema == "" {
		return errors.New("schema path is required")
	}
	for _, m := range c.Mappings {
		if m.Path == "" || m.From == "" || m.To == "" {
			return errors.New("mapping entries require path, from and to")
		}
	}
	return nil
}

func (c *Config) applyDefaults() {
	def := Default()
	if c.Schema == "" {
		c.Schema = def.Schema
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.JavaPackage == "" {
		c.JavaPackage = def.JavaPackage
	}
}
