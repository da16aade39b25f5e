// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/clock"
	"github.com/nada-devrapid/devrapid/lib/codec/codectest"
	"github.com/nada-devrapid/devrapid/lib/codec/jsonwire"
	"github.com/nada-devrapid/devrapid/lib/config"
	"github.com/nada-devrapid/devrapid/lib/schema"
	"github.com/nada-devrapid/devrapid/lib/version"
)

// testTime is the fake clock's instant for every harness.
var testTime = time.Date(2024, 1, 15, 10, 30, 5, 0, time.UTC)

// zeroReader is deterministic ULID entropy.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	clear(p)
	return len(p), nil
}

type harness struct {
	env    *Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

// newHarness returns an environment reading stdin from the given
// bytes, with DEVRAPID_CONFIG cleared so the built-in defaults apply.
func newHarness(t *testing.T, stdin []byte) *harness {
	t.Helper()
	t.Setenv(config.EnvVar, "")

	h := &harness{stdout: new(bytes.Buffer), stderr: new(bytes.Buffer)}
	level := new(slog.LevelVar)
	h.env = &Environment{
		Stdin:    bytes.NewReader(stdin),
		Stdout:   h.stdout,
		Stderr:   h.stderr,
		Clock:    clock.Fake(testTime),
		Entropy:  zeroReader{},
		LogLevel: level,
		Logger:   cli.NewCommandLogger(h.stderr, level),
	}
	return h
}

func (h *harness) run(args ...string) error {
	return Root(h.env).Execute(context.Background(), args)
}

// sampleJSON returns the reference event as compact JSON.
func sampleJSON(t *testing.T) []byte {
	t.Helper()
	data, err := jsonwire.New().Encode(codectest.SampleEvent(t))
	if err != nil {
		t.Fatalf("encoding sample: %v", err)
	}
	return data
}

// decodeJSON decodes command output as a JSON event.
func decodeJSON(t *testing.T, output []byte) schema.Event {
	t.Helper()
	event, err := jsonwire.New().Decode(output)
	if err != nil {
		t.Fatalf("decoding output %q: %v", output, err)
	}
	return event
}

// decodeHexOutput decodes a line of hex command output.
func decodeHexOutput(t *testing.T, output []byte) []byte {
	t.Helper()
	data, err := hex.DecodeString(strings.TrimSpace(string(output)))
	if err != nil {
		t.Fatalf("output %q is not hex: %v", output, err)
	}
	return data
}

// requireCategory fails unless err is a ToolError of the given category.
func requireCategory(t *testing.T, err error, category cli.ErrorCategory) {
	t.Helper()
	var toolError *cli.ToolError
	if !errors.As(err, &toolError) {
		t.Fatalf("error %v (%T) is not a ToolError", err, err)
	}
	if toolError.Category != category {
		t.Fatalf("category = %q, want %q (error: %v)", toolError.Category, category, err)
	}
}

func TestRootUnknownCommandSuggestion(t *testing.T) {
	h := newHarness(t, nil)
	err := h.run("convrt")
	if err == nil {
		t.Fatal("unknown command succeeded")
	}
	if !strings.Contains(err.Error(), `did you mean "convert"`) {
		t.Errorf("error = %q, want suggestion for convert", err.Error())
	}
}

func TestRootHelpListsCommands(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.run("--help"); err != nil {
		t.Fatalf("--help: %v", err)
	}
	for _, name := range []string{"schema", "roundtrip", "new", "convert", "validate", "digest", "version"} {
		if !strings.Contains(h.stderr.String(), name) {
			t.Errorf("help output missing %q", name)
		}
	}
}

func TestVersion(t *testing.T) {
	h := newHarness(t, nil)
	if err := h.run("version", "--short"); err != nil {
		t.Fatalf("version --short: %v", err)
	}
	if got := h.stdout.String(); got != version.Short()+"\n" {
		t.Errorf("output = %q, want %q", got, version.Short()+"\n")
	}

	h = newHarness(t, nil)
	if err := h.run("version"); err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(h.stdout.String(), "Platform:") {
		t.Errorf("full version output = %q", h.stdout.String())
	}
}
