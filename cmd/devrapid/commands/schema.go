// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"

	"github.com/hamba/avro/v2"
	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/codec/avrowire"
)

func schemaCommand(env *Environment) *cli.Command {
	var (
		compact bool
		doc     bool
		html    bool
	)

	return &cli.Command{
		Name:    "schema",
		Summary: "Print the DevEvent Avro schema",
		Description: `Print the Avro schema document that the avro format encodes against.

The document is the one compiled into devrapid: records DevEvent,
NadaResourceNames, Target, and Metadata, with fields in wire order.
Output is indented unless --compact is given.

With --doc, prints a Markdown field reference generated from the
schema instead. Add --html to render that reference as HTML.`,
		Usage: "devrapid schema [--compact] [--doc [--html]]",
		Examples: []cli.Example{
			{
				Description: "Register the schema with a schema registry",
				Command:     "devrapid schema --compact | jq -Rs '{schema: .}'",
			},
			{
				Description: "Publish the field reference",
				Command:     "devrapid schema --doc --html > devevent.html",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("schema", pflag.ContinueOnError)
			flagSet.BoolVarP(&compact, "compact", "c", false, "compact output (no indentation)")
			flagSet.BoolVar(&doc, "doc", false, "print a Markdown field reference")
			flagSet.BoolVar(&html, "html", false, "render the --doc reference as HTML")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("schema takes no positional arguments, got %q", args[0])
			}
			if html && !doc {
				return cli.Validation("--html requires --doc")
			}

			if !doc {
				return cli.WriteHighlighted(env.Stdout, avrowire.SchemaJSON(!compact), "json")
			}

			record := avrowire.Schema().(*avro.RecordSchema)
			reference := schemaReference(record)
			logger.Debug("generated schema reference", "fields", len(record.Fields()), "html", html)
			if html {
				if err := renderHTML(env.Stdout, reference); err != nil {
					return cli.Internal("rendering schema reference: %w", err)
				}
				return nil
			}
			return cli.WriteHighlighted(env.Stdout, reference, "markdown")
		},
	}
}
