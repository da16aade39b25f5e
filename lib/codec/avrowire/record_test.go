// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package avrowire

import (
	"testing"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/codec/codectest"
	"github.com/nada-devrapid/devrapid/lib/schema"
	"github.com/nada-devrapid/devrapid/lib/testutil"
)

// handwrittenRecord builds a record field by field, the way a producer
// without the model types would.
func handwrittenRecord(timestamp string) map[string]any {
	return map[string]any{
		"nrn": map[string]any{
			"id": "nrn:nada:push:test",
		},
		"application": "nada-devrapid",
		"target": map[string]any{
			"namespace":   "q1",
			"zone":        "fss",
			"environment": "preprod",
		},
		"additionalData": map[string]any{},
		"team":           "NADA",
		"timestamp":      timestamp,
	}
}

func TestFromRecordHandwritten(t *testing.T) {
	event, err := FromRecord(handwrittenRecord("2024-01-15T10:30:00Z"))
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if want := codectest.SampleEvent(t); !event.Equal(want) {
		t.Errorf("FromRecord = %+v, want %+v", event.Fields(), want.Fields())
	}
}

func TestFromRecordRejectsTimestamps(t *testing.T) {
	for name, timestamp := range map[string]string{
		"without zone": "2012-05-01T12:13:55",
		"with offset":  "2012-05-01T12:13:55+01:00",
		"fractional":   "2012-05-01T12:13:55.123456",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromRecord(handwrittenRecord(timestamp))
			testutil.RequireErrorIs(t, err, schema.ErrInvalidTimestamp)
			testutil.RequireErrorMessage(t, err, "Timestamp should be in ISO8601 - Zulu time")
		})
	}
}

func TestFromRecordRejectsInvalidUTF8(t *testing.T) {
	record := handwrittenRecord("2024-01-15T10:30:00Z")
	record["team"] = "N\xffADA"
	_, err := FromRecord(record)
	testutil.RequireErrorIs(t, err, schema.ErrInvalidUTF8)
}

func TestFromRecordAcceptsFixedForms(t *testing.T) {
	var fixed [schema.TimestampLength]byte
	copy(fixed[:], "2024-01-15T10:30:00Z")

	for name, value := range map[string]any{
		"bytes": []byte("2024-01-15T10:30:00Z"),
		"array": fixed,
	} {
		t.Run(name, func(t *testing.T) {
			record := handwrittenRecord("")
			record["timestamp"] = value
			event, err := FromRecord(record)
			if err != nil {
				t.Fatalf("FromRecord: %v", err)
			}
			if event.Timestamp() != "2024-01-15T10:30:00Z" {
				t.Errorf("Timestamp() = %q", event.Timestamp())
			}
		})
	}
}

func TestFromRecordTypeMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(map[string]any)
	}{
		{"number for application", func(r map[string]any) { r["application"] = 42 }},
		{"string for target", func(r map[string]any) { r["target"] = "q1" }},
		{"number for zone", func(r map[string]any) { r["target"].(map[string]any)["zone"] = 7 }},
		{"number for timestamp", func(r map[string]any) { r["timestamp"] = int64(1336) }},
		{"list for additionalData", func(r map[string]any) { r["additionalData"] = []string{"a"} }},
		{"number in additionalData", func(r map[string]any) { r["additionalData"] = map[string]any{"k": 1} }},
		{"string for metadata", func(r map[string]any) { r["metadata"] = "now" }},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			record := handwrittenRecord("2024-01-15T10:30:00Z")
			test.mutate(record)
			_, err := FromRecord(record)
			testutil.RequireErrorIs(t, err, codec.ErrTypeMismatch)
		})
	}
}

func TestFromRecordMissingField(t *testing.T) {
	for _, key := range []string{"nrn", "application", "target", "team", "timestamp"} {
		t.Run(key, func(t *testing.T) {
			record := handwrittenRecord("2024-01-15T10:30:00Z")
			delete(record, key)
			_, err := FromRecord(record)
			testutil.RequireErrorIs(t, err, codec.ErrMissingField)
		})
	}

	record := handwrittenRecord("2024-01-15T10:30:00Z")
	delete(record["target"].(map[string]any), "environment")
	_, err := FromRecord(record)
	testutil.RequireErrorIs(t, err, codec.ErrMissingField)
}

func TestFromRecordOptionalFields(t *testing.T) {
	record := handwrittenRecord("2024-01-15T10:30:00Z")
	delete(record, "additionalData")
	record["metadata"] = nil

	event, err := FromRecord(record)
	if err != nil {
		t.Fatalf("FromRecord: %v", err)
	}
	if len(event.AdditionalData()) != 0 {
		t.Errorf("AdditionalData() = %v, want empty", event.AdditionalData())
	}
	if _, ok := event.Metadata(); ok {
		t.Error("Metadata() present, want absent")
	}
}

func TestFromRecordMetadata(t *testing.T) {
	metadata := map[string]any{
		"receivedAt": "2024-01-15T10:30:05Z",
		"ulid":       codectest.SampleULID,
	}

	for name, value := range map[string]any{
		"plain":   metadata,
		"wrapped": map[string]any{metadataFullName: metadata},
	} {
		t.Run(name, func(t *testing.T) {
			record := handwrittenRecord("2024-01-15T10:30:00Z")
			record["metadata"] = value
			event, err := FromRecord(record)
			if err != nil {
				t.Fatalf("FromRecord: %v", err)
			}
			got, ok := event.Metadata()
			if !ok || got != codectest.SampleMetadata() {
				t.Errorf("Metadata() = %+v, %t", got, ok)
			}
		})
	}
}

func TestFromRecordMetadataWithoutULID(t *testing.T) {
	for name, metadata := range map[string]map[string]any{
		"absent": {"receivedAt": "2024-01-15T10:30:05Z"},
		"nil":    {"receivedAt": "2024-01-15T10:30:05Z", "ulid": nil},
		"empty":  {"receivedAt": "2024-01-15T10:30:05Z", "ulid": ""},
	} {
		t.Run(name, func(t *testing.T) {
			record := handwrittenRecord("2024-01-15T10:30:00Z")
			record["metadata"] = metadata
			_, err := FromRecord(record)
			testutil.RequireErrorIs(t, err, schema.ErrInvalidULID)
		})
	}
}

func TestRecordRoundTrip(t *testing.T) {
	for name, event := range codectest.Events(t) {
		t.Run(name, func(t *testing.T) {
			decoded, err := FromRecord(ToRecord(event))
			if err != nil {
				t.Fatalf("FromRecord: %v", err)
			}
			if !decoded.Equal(event) {
				t.Errorf("round trip = %+v, want %+v", decoded.Fields(), event.Fields())
			}
		})
	}
}

func TestToRecordShape(t *testing.T) {
	record := ToRecord(codectest.SampleEvent(t))
	if record["metadata"] != nil {
		t.Errorf("metadata = %v, want nil", record["metadata"])
	}
	if id := record["nrn"].(map[string]any)["id"]; id != "nrn:nada:push:test" {
		t.Errorf("nrn.id = %v", id)
	}
	if zone := record["target"].(map[string]any)["zone"]; zone != "fss" {
		t.Errorf("target.zone = %v", zone)
	}
}
