// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"slices"

	"gopkg.in/yaml.v3"
)

// EnvVar names the environment variable [Load] reads the config path
// from.
const EnvVar = "DEVRAPID_CONFIG"

// Log levels accepted in log_level.
var logLevels = []string{"debug", "info", "warn", "error"}

// Config is the devrapid CLI configuration.
type Config struct {
	// Format is the codec used when a command has no --format flag.
	// Default: json
	Format string `yaml:"format"`

	// Indent pretty-prints JSON output.
	// Default: true
	Indent bool `yaml:"indent"`

	// LogLevel is one of debug, info, warn, error.
	// Default: info
	LogLevel string `yaml:"log_level"`

	// Defaults fill in event fields that `devrapid new` was not given.
	Defaults EventDefaults `yaml:"defaults"`
}

// EventDefaults holds default event field values.
type EventDefaults struct {
	Application string         `yaml:"application"`
	Team        string         `yaml:"team"`
	Target      TargetDefaults `yaml:"target"`

	// AdditionalData is merged under any --data flags.
	AdditionalData map[string]string `yaml:"additional_data"`
}

// TargetDefaults holds the default deployment target.
type TargetDefaults struct {
	Namespace   string `yaml:"namespace"`
	Zone        string `yaml:"zone"`
	Environment string `yaml:"environment"`
}

// Default returns the default configuration. A config file is merged
// over it; the defaults make every field usable, they are not a
// fallback for a missing file.
func Default() *Config {
	return &Config{
		Format:   "json",
		Indent:   true,
		LogLevel: "info",
	}
}

// Load loads configuration from the file named by DEVRAPID_CONFIG.
//
// There are no fallbacks: if the variable is unset this fails. Commands
// that can run without a config file check [EnvVar] themselves.
func Load() (*Config, error) {
	configPath := os.Getenv(EnvVar)
	if configPath == "" {
		return nil, fmt.Errorf("%s environment variable not set; "+
			"set it to the path of your devrapid.yaml config file, or use --config flag", EnvVar)
	}

	return LoadFile(configPath)
}

// LoadFile loads configuration from a specific file path.
//
// Environment variables never override config values. The only
// expansion is ${VAR} and ${VAR:-default} inside default values, so a
// shared file can pick up a team name from the caller's environment.
func LoadFile(path string) (*Config, error) {
	cfg := Default()

	if err := cfg.loadFile(path); err != nil {
		return nil, err
	}

	cfg.expandVariables()

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func (c *Config) expandVariables() {
	c.Defaults.Application = expandVars(c.Defaults.Application)
	c.Defaults.Team = expandVars(c.Defaults.Team)
	c.Defaults.Target.Namespace = expandVars(c.Defaults.Target.Namespace)
	c.Defaults.Target.Zone = expandVars(c.Defaults.Target.Zone)
	c.Defaults.Target.Environment = expandVars(c.Defaults.Target.Environment)
	for key, value := range c.Defaults.AdditionalData {
		c.Defaults.AdditionalData[key] = expandVars(value)
	}
}

var varPattern = regexp.MustCompile(`\$\{([^}:]+)(?::-([^}]*))?\}`)

// expandVars expands ${VAR} and ${VAR:-default} patterns from the
// environment.
func expandVars(s string) string {
	return varPattern.ReplaceAllStringFunc(s, func(match string) string {
		parts := varPattern.FindStringSubmatch(match)
		if len(parts) < 2 {
			return match
		}

		name := parts[1]
		defaultValue := ""
		if len(parts) >= 3 {
			defaultValue = parts[2]
		}

		if value := os.Getenv(name); value != "" {
			return value
		}
		return defaultValue
	})
}

// Validate checks the configuration. formats lists the codec names the
// caller can serve; format must be one of them.
func (c *Config) Validate(formats []string) error {
	var errs []error

	if !slices.Contains(formats, c.Format) {
		errs = append(errs, fmt.Errorf("format must be one of: %v, got %q", formats, c.Format))
	}

	if !slices.Contains(logLevels, c.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level must be one of: %v, got %q", logLevels, c.LogLevel))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}
