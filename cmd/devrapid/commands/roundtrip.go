// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/clock"
	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

func roundtripCommand(env *Environment) *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "roundtrip",
		Summary: "Check every format against a freshly stamped sample event",
		Description: `Build a sample event and check, for every registered format, that
decoding its encoding gives the same event back and that encoding the
decoded event gives the same bytes.

The sample has a generated resource ID (nrn:nada:push:<ulid>), the
application nada-devrapid, target q1/fss/preprod, team NADA, and
metadata stamped now.

Prints one PASS or FAIL line per check and exits 1 if any check failed.`,
		Usage: "devrapid roundtrip [--config FILE]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("roundtrip", pflag.ContinueOnError)
			configFlag(flagSet, &configPath)
			return flagSet
		},
		Run: func(_ context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return cli.Validation("roundtrip takes no positional arguments, got %q", args[0])
			}
			session, err := env.load(configPath)
			if err != nil {
				return err
			}

			event, err := sampleEvent(env.Clock, env.stamper())
			if err != nil {
				return cli.Internal("building sample event: %w", err)
			}
			logger.Debug("built sample event", "nrn", event.ResourceID().String())

			var checks []cli.Check
			for _, name := range session.codecs.Names() {
				c, err := session.codec(name)
				if err != nil {
					return err
				}
				roundTrip, idempotent := checkCodec(c, event, logger)
				checks = append(checks,
					cli.Check{Name: name + " round trip", Err: roundTrip},
					cli.Check{Name: name + " idempotent", Err: idempotent},
				)
			}

			failures, err := cli.WriteChecklist(env.Stdout, checks)
			if err != nil {
				return cli.Internal("writing checklist: %w", err)
			}
			if failures > 0 {
				logger.Warn("round trip checks failed", "failures", failures, "checks", len(checks))
				return &cli.ExitError{Code: 1}
			}
			return nil
		},
	}
}

// sampleEvent builds the roundtrip sample, stamped with fresh metadata.
func sampleEvent(c clock.Clock, stamper *schema.Stamper) (schema.Event, error) {
	id, err := stamper.NewULID()
	if err != nil {
		return schema.Event{}, err
	}
	resourceID, err := ref.ParseResourceID("nrn:nada:push:" + id)
	if err != nil {
		return schema.Event{}, err
	}
	event, err := schema.NewEvent(schema.EventFields{
		ResourceID:  resourceID,
		Application: "nada-devrapid",
		Target: schema.Target{
			Namespace:   "q1",
			Zone:        "fss",
			Environment: "preprod",
		},
		Team:      "NADA",
		Timestamp: schema.Now(c),
	})
	if err != nil {
		return schema.Event{}, err
	}
	return event.Stamp(stamper)
}

// checkCodec returns the round trip and idempotence results for c.
// When encoding or decoding fails, both checks report that failure.
func checkCodec(c codec.Codec, event schema.Event, logger *slog.Logger) (roundTrip, idempotent error) {
	encoded, err := c.Encode(event)
	if err != nil {
		err = fmt.Errorf("encode: %w", err)
		return err, err
	}
	logger.Debug("encoded sample event", "format", c.Name(), "bytes", len(encoded))

	decoded, err := c.Decode(encoded)
	if err != nil {
		err = fmt.Errorf("decode: %w", err)
		return err, err
	}
	if !decoded.Equal(event) {
		roundTrip = errors.New("decoded event differs from the original")
	}

	reencoded, err := c.Encode(decoded)
	if err != nil {
		return roundTrip, fmt.Errorf("re-encode: %w", err)
	}
	if !bytes.Equal(reencoded, encoded) {
		idempotent = fmt.Errorf("bytes differ (%d then %d bytes)", len(encoded), len(reencoded))
	}
	return roundTrip, idempotent
}
