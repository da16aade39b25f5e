// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
)

func validateCommand(env *Environment) *cli.Command {
	var (
		configPath string
		format     string
		hexMode    bool
	)

	return &cli.Command{
		Name:    "validate",
		Summary: "Check that an encoded event decodes to a valid event",
		Description: `Decode an event and report whether it is valid.

Prints "valid" followed by the event's resource ID and exits 0 when
the input decodes. Otherwise exits 2 with the decode error: a
malformed encoding, a field of the wrong type, a missing field, or a
value that breaks a model rule (resource ID shape, Zulu timestamps,
ULID shape).`,
		Usage: "devrapid validate [--format F] [--hex] [file]",
		Examples: []cli.Example{
			{
				Description: "Validate a hand-written event",
				Command:     "devrapid validate --format json event.jsonc",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("validate", pflag.ContinueOnError)
			configFlag(flagSet, &configPath)
			flagSet.StringVarP(&format, "format", "f", "", "input format (default from config)")
			flagSet.BoolVarP(&hexMode, "hex", "x", false, "treat binary input as hex")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			session, err := env.load(configPath)
			if err != nil {
				return err
			}
			c, err := session.codec(format)
			if err != nil {
				return err
			}
			data, err := readEvent(env.Stdin, args, c, hexMode, "validate")
			if err != nil {
				return err
			}

			event, err := c.Decode(data)
			if err != nil {
				return cli.Validation("invalid %s event: %w", c.Name(), err)
			}
			_, stamped := event.Metadata()
			logger.Debug("validated event", "format", c.Name(), "stamped", stamped)

			if _, err := fmt.Fprintf(env.Stdout, "valid %s\n", event.ResourceID()); err != nil {
				return cli.Internal("writing result: %w", err)
			}
			return nil
		},
	}
}
