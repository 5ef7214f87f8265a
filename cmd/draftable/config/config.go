/*
 * Copyright 2026 The Draftable Compare API Go Authors. All rights reserved.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package config provides the configuration of the CLI: named contexts saved
// in ~/.draftable/config.yaml, environment variables and global flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/draftable/compare-api-go/pkg/errors"
)

var (
	// ErrMissingCredentials is returned when no account or token is set.
	ErrMissingCredentials = errors.InvalidArgument("both account and token must be set")

	// ErrContextNotFound is returned when a named context is not configured.
	ErrContextNotFound = errors.NotFound("context not found in configuration")

	// ErrInvalidOutput is returned for an unknown output format.
	ErrInvalidOutput = errors.InvalidArgument("--output must be 'yaml' or 'json'")
)

// Context holds the connection settings of one environment, e.g. the cloud
// API or a self-hosted deployment.
type Context struct {
	Account  string `yaml:"account" json:"account"`
	Token    string `yaml:"token" json:"token"`
	BaseURL  string `yaml:"base_url,omitempty" json:"base_url,omitempty"`
	Insecure bool   `yaml:"insecure,omitempty" json:"insecure,omitempty"`
}

// Config is the configuration file of the CLI.
type Config struct {
	// Current is the name of the context used when none is given.
	Current string `yaml:"current,omitempty"`

	// Contexts maps names to their settings.
	Contexts map[string]*Context `yaml:"contexts"`
}

// New creates a new configuration.
func New() *Config {
	return &Config{
		Contexts: make(map[string]*Context),
	}
}

// Get returns the context of the given name.
func (c *Config) Get(name string) (*Context, error) {
	ctx, ok := c.Contexts[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrContextNotFound)
	}
	return ctx, nil
}

// Set stores the context under the given name and makes it current.
func (c *Config) Set(name string, ctx *Context) {
	if c.Contexts == nil {
		c.Contexts = make(map[string]*Context)
	}
	c.Contexts[name] = ctx
	c.Current = name
}

// Remove deletes the context of the given name. When it was current, another
// context, if any, becomes current.
func (c *Config) Remove(name string) error {
	if _, ok := c.Contexts[name]; !ok {
		return fmt.Errorf("%s: %w", name, ErrContextNotFound)
	}

	delete(c.Contexts, name)
	if c.Current == name {
		c.Current = ""
		for other := range c.Contexts {
			if c.Current == "" || other < c.Current {
				c.Current = other
			}
		}
	}
	return nil
}

// ensureDir ensures that the directory of the configuration exists.
func ensureDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home dir: %w", err)
	}

	dir := filepath.Join(home, ".draftable")
	if err := os.MkdirAll(dir, 0700); err != nil {
		return "", fmt.Errorf("mkdir: %w", err)
	}
	return dir, nil
}

// Path returns the path of the configuration file.
func Path() (string, error) {
	dir, err := ensureDir()
	if err != nil {
		return "", fmt.Errorf("ensure config dir: %w", err)
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load loads the configuration file, or an empty configuration when there is
// none yet.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom loads the configuration from the given path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if os.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("read config file: %w", err)
	}

	config := New()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("decode config file: %w", err)
	}
	if config.Contexts == nil {
		config.Contexts = make(map[string]*Context)
	}
	return config, nil
}

// Save saves the configuration file.
func Save(config *Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	return SaveTo(path, config)
}

// SaveTo saves the configuration to the given path. The file holds tokens,
// so it is only readable by the owner.
func SaveTo(path string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("encode config file: %w", err)
	}

	if err := os.WriteFile(filepath.Clean(path), data, 0600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
