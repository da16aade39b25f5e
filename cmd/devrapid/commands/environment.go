// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"crypto/rand"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/clock"
	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/codec/jsonwire"
	"github.com/nada-devrapid/devrapid/lib/codec/registry"
	"github.com/nada-devrapid/devrapid/lib/config"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// Environment is everything a command touches outside its own
// arguments.
type Environment struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Clock supplies event and metadata timestamps.
	Clock clock.Clock

	// Entropy seeds ULID generation.
	Entropy io.Reader

	// LogLevel is raised or lowered once the config is read. May be nil.
	LogLevel *slog.LevelVar

	Logger *slog.Logger
}

// DefaultEnvironment returns the process environment: standard
// streams, the wall clock, crypto/rand, and a logger on stderr.
func DefaultEnvironment() *Environment {
	level := new(slog.LevelVar)
	return &Environment{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Clock:    clock.Real(),
		Entropy:  rand.Reader,
		LogLevel: level,
		Logger:   cli.NewCommandLogger(os.Stderr, level),
	}
}

// stamper returns a ULID and metadata source over the environment's
// clock and entropy.
func (e *Environment) stamper() *schema.Stamper {
	return schema.NewStamperWithEntropy(e.Clock, e.Entropy)
}

// session is the configuration resolved for one command invocation.
type session struct {
	config *config.Config
	codecs *registry.Registry
}

// configFlag registers the --config flag shared by every command that
// reads configuration.
func configFlag(flagSet *pflag.FlagSet, path *string) {
	flagSet.StringVar(path, "config", "", "config file (default $"+config.EnvVar+", else built-in defaults)")
}

// load resolves the configuration for this invocation. An explicit
// path wins over DEVRAPID_CONFIG; with neither, the built-in defaults
// apply. The log level takes effect immediately.
func (e *Environment) load(configPath string) (*session, error) {
	if configPath == "" {
		configPath = os.Getenv(config.EnvVar)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if errors.Is(err, fs.ErrNotExist) {
			return nil, cli.NotFound("config file %s does not exist", configPath)
		}
		if err != nil {
			return nil, cli.Validation("loading config: %w", err)
		}
		cfg = loaded
	}

	codecs := registry.NewRegistry()
	if cfg.Indent {
		codecs.Replace(jsonwire.Codec{Indent: "  "})
	}

	if err := cfg.Validate(codecs.Names()); err != nil {
		return nil, cli.Validation("invalid config %s: %w", configPath, err)
	}

	level, err := cli.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if e.LogLevel != nil {
		e.LogLevel.Set(level)
	}

	return &session{config: cfg, codecs: codecs}, nil
}

// codec returns the codec registered under name, or the configured
// default format when name is empty.
func (s *session) codec(name string) (codec.Codec, error) {
	if name == "" {
		name = s.config.Format
	}
	c, err := s.codecs.Get(name)
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	return c, nil
}
