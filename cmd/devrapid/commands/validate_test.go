// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/codec/cborwire"
	"github.com/nada-devrapid/devrapid/lib/codec/codectest"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

const offsetTimestampEvent = `{
  // hand-written, with an offset instead of Z
  "nrn": {"id": "nrn:nada:push:test"},
  "application": "nada-devrapid",
  "target": {"namespace": "q1", "zone": "fss", "environment": "preprod"},
  "team": "NADA",
  "timestamp": "2012-05-01T12:13:55+01:00",
}`

func TestValidateAcceptsEvent(t *testing.T) {
	h := newHarness(t, sampleJSON(t))
	if err := h.run("validate", "--format", "json"); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if got := h.stdout.String(); got != "valid nrn:nada:push:test\n" {
		t.Errorf("output = %q", got)
	}
}

func TestValidateUsesConfiguredFormat(t *testing.T) {
	// The built-in default format is json.
	h := newHarness(t, sampleJSON(t))
	if err := h.run("validate"); err != nil {
		t.Fatalf("validate: %v", err)
	}
}

func TestValidateRejectsOffsetTimestamp(t *testing.T) {
	h := newHarness(t, []byte(offsetTimestampEvent))
	err := h.run("validate", "--format", "json")
	if err == nil {
		t.Fatal("offset timestamp accepted")
	}
	requireCategory(t, err, cli.CategoryValidation)
	if !errors.Is(err, schema.ErrInvalidTimestamp) {
		t.Errorf("error = %v, want ErrInvalidTimestamp", err)
	}

	var toolError *cli.ToolError
	errors.As(err, &toolError)
	if toolError.ExitStatus() != 2 {
		t.Errorf("exit status = %d, want 2", toolError.ExitStatus())
	}
}

func TestValidateRejectsMalformedBinary(t *testing.T) {
	h := newHarness(t, []byte("ff ff"))
	err := h.run("validate", "--format", "cbor", "--hex")
	if err == nil {
		t.Fatal("malformed CBOR accepted")
	}
	if !errors.Is(err, codec.ErrMalformedEncoding) {
		t.Errorf("error = %v, want ErrMalformedEncoding", err)
	}
}

func TestDigestIsFormatIndependent(t *testing.T) {
	event := codectest.SampleEvent(t)
	want, err := cborwire.Digest(event)
	if err != nil {
		t.Fatalf("Digest: %v", err)
	}

	h := newHarness(t, sampleJSON(t))
	if err := h.run("digest", "--format", "json"); err != nil {
		t.Fatalf("digest json: %v", err)
	}
	if got := strings.TrimSpace(h.stdout.String()); got != want.String() {
		t.Errorf("json digest = %s, want %s", got, want)
	}

	encoded, err := cborwire.New().Encode(event)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h = newHarness(t, []byte(hex.EncodeToString(encoded)))
	if err := h.run("digest", "--format", "cbor", "--hex"); err != nil {
		t.Fatalf("digest cbor: %v", err)
	}
	if got := strings.TrimSpace(h.stdout.String()); got != want.String() {
		t.Errorf("cbor digest = %s, want %s", got, want)
	}
}

func TestDigestRejectsInvalidEvent(t *testing.T) {
	h := newHarness(t, []byte(offsetTimestampEvent))
	err := h.run("digest")
	if !errors.Is(err, schema.ErrInvalidTimestamp) {
		t.Errorf("error = %v, want ErrInvalidTimestamp", err)
	}
}
