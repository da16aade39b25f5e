// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
)

// Root returns the devrapid command tree bound to env.
func Root(env *Environment) *cli.Command {
	return &cli.Command{
		Name:    "devrapid",
		Summary: "DevEvent envelope tooling",
		Description: `devrapid builds, converts, and checks DevEvent envelopes: the
deployment events NADA's pipelines emit, in Avro, JSON, and CBOR.

Commands that read or write events take --config FILE (default
$DEVRAPID_CONFIG). Without either, the built-in defaults apply: JSON
output, indented, log level info.`,
		Logger:     env.Logger,
		HelpOutput: env.Stderr,
		Subcommands: []*cli.Command{
			schemaCommand(env),
			roundtripCommand(env),
			newCommand(env),
			convertCommand(env),
			validateCommand(env),
			digestCommand(env),
			versionCommand(env),
		},
		Examples: []cli.Example{
			{
				Description: "Check every format",
				Command:     "devrapid roundtrip",
			},
			{
				Description: "Hand-write an event and convert it to Avro",
				Command:     "devrapid convert --from json --to avro --hex event.jsonc",
			},
		},
	}
}
