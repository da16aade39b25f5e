// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"log/slog"
	"maps"
	"strings"

	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/clock"
	"github.com/nada-devrapid/devrapid/lib/config"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// newParams holds the flags of "devrapid new". Empty strings fall back
// to the config defaults.
type newParams struct {
	configPath  string
	id          string
	application string
	team        string
	namespace   string
	zone        string
	environment string
	data        []string
	timestamp   string
	stamp       bool
	format      string
	hex         bool
}

func newCommand(env *Environment) *cli.Command {
	var params newParams

	return &cli.Command{
		Name:    "new",
		Summary: "Construct an event and print its encoding",
		Description: `Construct a DevEvent from flags and write it in the chosen format.

Fields not given on the command line come from the "defaults" section of
the config file. --data may be repeated; each key=value pair is merged
over the configured additional_data.

Without --id, a resource ID of the form nrn:nada:push:<ulid> is
generated. Without --timestamp, the current time is used. --stamp adds
receive metadata (received now, fresh ULID).

Binary formats are written raw unless --hex is given or stdout is a
terminal.`,
		Usage: "devrapid new [flags]",
		Examples: []cli.Example{
			{
				Description: "A push event for a preprod deployment, as JSON",
				Command:     "devrapid new --application nada-devrapid --team NADA --namespace q1 --zone fss --environment preprod --data commit=9f2c1e0",
			},
			{
				Description: "The same event as stamped CBOR, hex-encoded",
				Command:     "devrapid new --format cbor --hex --stamp --application nada-devrapid --team NADA --namespace q1 --zone fss --environment preprod",
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("new", pflag.ContinueOnError)
			configFlag(flagSet, &params.configPath)
			flagSet.StringVar(&params.id, "id", "", "resource ID (default nrn:nada:push:<ulid>)")
			flagSet.StringVar(&params.application, "application", "", "application name")
			flagSet.StringVar(&params.team, "team", "", "owning team")
			flagSet.StringVar(&params.namespace, "namespace", "", "target namespace")
			flagSet.StringVar(&params.zone, "zone", "", "target zone")
			flagSet.StringVar(&params.environment, "environment", "", "target environment")
			flagSet.StringArrayVar(&params.data, "data", nil, "additional data as key=value (repeatable)")
			flagSet.StringVar(&params.timestamp, "timestamp", "", "event time, ISO-8601 UTC (default now)")
			flagSet.BoolVar(&params.stamp, "stamp", false, "attach receive metadata")
			flagSet.StringVarP(&params.format, "format", "f", "", "output format (default from config)")
			flagSet.BoolVarP(&params.hex, "hex", "x", false, "hex-encode binary output")
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("new takes no positional arguments, got %q", args[0])
			}
			session, err := env.load(params.configPath)
			if err != nil {
				return err
			}
			c, err := session.codec(params.format)
			if err != nil {
				return err
			}

			stamper := env.stamper()
			fields, err := params.eventFields(env.Clock, stamper, session.config.Defaults)
			if err != nil {
				return err
			}
			event, err := schema.NewEvent(fields)
			if err != nil {
				return cli.Validation("invalid event: %w", err)
			}
			if params.stamp {
				event, err = event.Stamp(stamper)
				if err != nil {
					return cli.Internal("stamping event: %w", err)
				}
			}

			encoded, err := c.Encode(event)
			if err != nil {
				return cli.Internal("encoding %s: %w", c.Name(), err)
			}
			logger.Debug("constructed event", "nrn", event.ResourceID().String(), "format", c.Name(), "bytes", len(encoded))
			return writeEncoded(env.Stdout, c, encoded, params.hex)
		},
	}
}

// eventFields merges the flags over the config defaults and fills in
// the generated values.
func (p *newParams) eventFields(c clock.Clock, stamper *schema.Stamper, defaults config.EventDefaults) (schema.EventFields, error) {
	id := p.id
	if id == "" {
		generated, err := stamper.NewULID()
		if err != nil {
			return schema.EventFields{}, cli.Internal("generating resource ID: %w", err)
		}
		id = "nrn:nada:push:" + generated
	}
	resourceID, err := ref.ParseResourceID(id)
	if err != nil {
		return schema.EventFields{}, cli.Validation("--id %q: %w", id, err)
	}

	additionalData := maps.Clone(defaults.AdditionalData)
	if additionalData == nil {
		additionalData = map[string]string{}
	}
	for _, pair := range p.data {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return schema.EventFields{}, cli.Validation("--data %q: want key=value", pair)
		}
		additionalData[key] = value
	}

	timestamp := p.timestamp
	if timestamp == "" {
		timestamp = schema.Now(c)
	}

	return schema.EventFields{
		ResourceID:  resourceID,
		Application: orDefault(p.application, defaults.Application),
		Target: schema.Target{
			Namespace:   orDefault(p.namespace, defaults.Target.Namespace),
			Zone:        orDefault(p.zone, defaults.Target.Zone),
			Environment: orDefault(p.environment, defaults.Target.Environment),
		},
		AdditionalData: additionalData,
		Team:           orDefault(p.team, defaults.Team),
		Timestamp:      timestamp,
	}, nil
}

func orDefault(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
