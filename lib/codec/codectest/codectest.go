// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package codectest holds fixtures and round-trip checks shared by the
// wire codec tests. Every codec must pass [RunRoundTrip] and
// [RunIdempotence] over the same [Events].
package codectest

import (
	"bytes"
	"testing"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// SampleULID is a fixed, valid ULID for deterministic fixtures.
const SampleULID = "01HMCZ4B4T7Q8Y6ZJ1R3V2K9WX"

// SampleFields returns the raw values of the reference event:
// nrn:nada:push:test from nada-devrapid, deployed to q1/fss/preprod by
// NADA, without metadata or additional data.
func SampleFields() schema.EventFields {
	return schema.EventFields{
		ResourceID:  ref.MustParseResourceID("nrn:nada:push:test"),
		Application: "nada-devrapid",
		Target: schema.Target{
			Namespace:   "q1",
			Zone:        "fss",
			Environment: "preprod",
		},
		Team:      "NADA",
		Timestamp: "2024-01-15T10:30:00Z",
	}
}

// SampleEvent returns the reference event.
func SampleEvent(t testing.TB) schema.Event {
	t.Helper()
	return mustEvent(t, SampleFields())
}

// SampleMetadata returns fixed receipt metadata.
func SampleMetadata() schema.Metadata {
	return schema.MustNewMetadata("2024-01-15T10:30:05Z", SampleULID)
}

// Events returns the named fixtures every codec must round-trip.
func Events(t testing.TB) map[string]schema.Event {
	t.Helper()

	withData := SampleFields()
	withData.AdditionalData = map[string]string{
		"commit":   "9f2c1e0",
		"pipeline": "github-actions",
		"":         "empty key",
		"unicode":  "blåbærsyltetøy",
	}

	withMetadata := SampleFields()
	metadata := SampleMetadata()
	withMetadata.Metadata = &metadata

	full := SampleFields()
	full.AdditionalData = map[string]string{"commit": "9f2c1e0"}
	full.Metadata = &metadata

	emptyStrings := SampleFields()
	emptyStrings.Application = ""
	emptyStrings.Team = ""
	emptyStrings.Target = schema.Target{}

	return map[string]schema.Event{
		"minimal":         mustEvent(t, SampleFields()),
		"additional data": mustEvent(t, withData),
		"metadata":        mustEvent(t, withMetadata),
		"full":            mustEvent(t, full),
		"empty strings":   mustEvent(t, emptyStrings),
	}
}

func mustEvent(t testing.TB, fields schema.EventFields) schema.Event {
	t.Helper()
	event, err := schema.NewEvent(fields)
	if err != nil {
		t.Fatalf("NewEvent: %v", err)
	}
	return event
}

// RunRoundTrip checks that c.Decode(c.Encode(e)) equals e for every
// fixture.
func RunRoundTrip(t *testing.T, c codec.Codec) {
	t.Helper()
	for name, event := range Events(t) {
		t.Run(name, func(t *testing.T) {
			encoded, err := c.Encode(event)
			if err != nil {
				t.Fatalf("%s Encode: %v", c.Name(), err)
			}
			decoded, err := c.Decode(encoded)
			if err != nil {
				t.Fatalf("%s Decode: %v", c.Name(), err)
			}
			if !decoded.Equal(event) {
				t.Errorf("%s round trip mismatch:\n got: %+v\nwant: %+v", c.Name(), decoded.Fields(), event.Fields())
			}
		})
	}
}

// RunIdempotence checks that encoding a decoded event reproduces the
// original bytes for every fixture.
func RunIdempotence(t *testing.T, c codec.Codec) {
	t.Helper()
	for name, event := range Events(t) {
		t.Run(name, func(t *testing.T) {
			first, err := c.Encode(event)
			if err != nil {
				t.Fatalf("%s Encode: %v", c.Name(), err)
			}
			decoded, err := c.Decode(first)
			if err != nil {
				t.Fatalf("%s Decode: %v", c.Name(), err)
			}
			second, err := c.Encode(decoded)
			if err != nil {
				t.Fatalf("%s re-Encode: %v", c.Name(), err)
			}
			if !bytes.Equal(first, second) {
				t.Errorf("%s encoding not idempotent:\n first: %x\nsecond: %x", c.Name(), first, second)
			}
		})
	}
}
