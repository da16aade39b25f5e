// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
)

func convertCommand(env *Environment) *cli.Command {
	var (
		configPath string
		from       string
		to         string
		hexMode    bool
	)

	return &cli.Command{
		Name:    "convert",
		Summary: "Re-encode an event in another format",
		Description: `Decode an event in one format and write it in another.

Input is read from the trailing file argument if given, otherwise from
stdin. The decoded event is fully validated before it is re-encoded, so
convert also rejects events that break the model rules.

With --hex, binary input is read as hex (whitespace ignored) and binary
output is written as hex. JSON input and output are never hex-encoded.`,
		Usage: "devrapid convert --from F --to G [--hex] [file]",
		Examples: []cli.Example{
			{
				Description: "Convert a hand-written JSON event to CBOR",
				Command:     "devrapid convert --from json --to cbor event.json > event.cbor",
			},
			{
				Description: "Inspect an Avro payload as JSON",
				Command:     "devrapid convert --from avro --to json --hex < payload.hex",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("convert", pflag.ContinueOnError)
			configFlag(flagSet, &configPath)
			flagSet.StringVar(&from, "from", "", "input format (default from config)")
			flagSet.StringVar(&to, "to", "", "output format (required)")
			flagSet.BoolVarP(&hexMode, "hex", "x", false, "hex binary input and output")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if to == "" {
				return cli.Validation("--to is required")
			}
			session, err := env.load(configPath)
			if err != nil {
				return err
			}
			source, err := session.codec(from)
			if err != nil {
				return err
			}
			destination, err := session.codec(to)
			if err != nil {
				return err
			}

			data, err := readEvent(env.Stdin, args, source, hexMode, "convert")
			if err != nil {
				return err
			}
			event, err := source.Decode(data)
			if err != nil {
				return cli.Validation("decoding %s input: %w", source.Name(), err)
			}
			encoded, err := destination.Encode(event)
			if err != nil {
				return cli.Internal("encoding %s: %w", destination.Name(), err)
			}

			logger.Debug("converted event",
				"from", source.Name(),
				"to", destination.Name(),
				"input_bytes", len(data),
				"output_bytes", len(encoded),
			)
			return writeEncoded(env.Stdout, destination, encoded, hexMode)
		},
	}
}
