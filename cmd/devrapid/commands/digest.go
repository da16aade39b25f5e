// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/codec/cborwire"
)

func digestCommand(env *Environment) *cli.Command {
	var (
		configPath string
		format     string
		hexMode    bool
	)

	return &cli.Command{
		Name:    "digest",
		Summary: "Print the BLAKE3 digest of an event",
		Description: `Decode an event and print its digest: a keyed BLAKE3 hash of the
event's CBOR encoding, as 64 lowercase hex characters.

The digest depends only on the event, not on the format it was read
in, so the same event gives the same digest from JSON, Avro, or CBOR
input. Use it as a deduplication key.`,
		Usage: "devrapid digest [--format F] [--hex] [file]",
		Examples: []cli.Example{
			{
				Description: "Digest a JSON event",
				Command:     "devrapid digest --format json event.json",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("digest", pflag.ContinueOnError)
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
			data, err := readEvent(env.Stdin, args, c, hexMode, "digest")
			if err != nil {
				return err
			}

			event, err := c.Decode(data)
			if err != nil {
				return cli.Validation("invalid %s event: %w", c.Name(), err)
			}
			hash, err := cborwire.Digest(event)
			if err != nil {
				return cli.Internal("hashing event: %w", err)
			}
			logger.Debug("hashed event", "nrn", event.ResourceID().String(), "format", c.Name())

			if _, err := fmt.Fprintln(env.Stdout, hash); err != nil {
				return cli.Internal("writing digest: %w", err)
			}
			return nil
		},
	}
}
