// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package avrowire

import (
	"fmt"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// metadataFullName is the key hamba/avro uses when it decodes the
// metadata union into a generic value.
const metadataFullName = "no.nav.nada.devrapid.schema.Metadata"

// ToRecord converts event into a generic record keyed by the schema's
// field names. Nested records are map[string]any, fixed fields are
// strings, additionalData is map[string]string, and metadata is nil
// when absent.
func ToRecord(event schema.Event) map[string]any {
	target := event.Target()
	record := map[string]any{
		schema.FieldResourceID: map[string]any{
			schema.FieldResourceIDValue: event.ResourceID().String(),
		},
		schema.FieldApplication: event.Application(),
		schema.FieldTarget: map[string]any{
			schema.FieldNamespace:   target.Namespace,
			schema.FieldZone:        target.Zone,
			schema.FieldEnvironment: target.Environment,
		},
		schema.FieldAdditionalData: event.AdditionalData(),
		schema.FieldTeam:           event.Team(),
		schema.FieldTimestamp:      event.Timestamp(),
		schema.FieldMetadata:       nil,
	}
	if metadata, ok := event.Metadata(); ok {
		record[schema.FieldMetadata] = map[string]any{
			schema.FieldReceivedAt: metadata.ReceivedAt(),
			schema.FieldULID:       metadata.ULID(),
		}
	}
	return record
}

// FromRecord builds an Event from a generic record. Every field is type
// checked first: an absent required key fails with
// codec.ErrMissingField and a value of the wrong Go type with
// codec.ErrTypeMismatch. Fixed fields accept a string, a []byte, or a
// byte array of the schema's size. additionalData may be absent,
// map[string]string, or map[string]any with string values. metadata
// may be absent, nil, a record, or a union value wrapped under the
// Metadata record's full name.
//
// The values are then passed through the smart constructors, so a
// record whose timestamp lacks a zone fails with
// schema.ErrInvalidTimestamp exactly as construction would.
func FromRecord(record map[string]any) (schema.Event, error) {
	nrn, err := recordField(record, schema.FieldResourceID, schema.FieldResourceID)
	if err != nil {
		return schema.Event{}, err
	}
	rawID, err := stringField(nrn, schema.FieldResourceIDValue, schema.FieldResourceID+"."+schema.FieldResourceIDValue)
	if err != nil {
		return schema.Event{}, err
	}
	application, err := stringField(record, schema.FieldApplication, schema.FieldApplication)
	if err != nil {
		return schema.Event{}, err
	}
	target, err := targetField(record)
	if err != nil {
		return schema.Event{}, err
	}
	additionalData, err := additionalDataField(record)
	if err != nil {
		return schema.Event{}, err
	}
	team, err := stringField(record, schema.FieldTeam, schema.FieldTeam)
	if err != nil {
		return schema.Event{}, err
	}
	timestamp, err := fixedField(record, schema.FieldTimestamp, schema.FieldTimestamp)
	if err != nil {
		return schema.Event{}, err
	}
	rawMetadata, hasMetadata, err := metadataField(record)
	if err != nil {
		return schema.Event{}, err
	}

	resourceID, err := ref.ParseResourceID(rawID)
	if err != nil {
		return schema.Event{}, err
	}
	fields := schema.EventFields{
		ResourceID:     resourceID,
		Application:    application,
		Target:         target,
		AdditionalData: additionalData,
		Team:           team,
		Timestamp:      timestamp,
	}
	if hasMetadata {
		metadata, err := schema.NewMetadata(rawMetadata[0], rawMetadata[1])
		if err != nil {
			return schema.Event{}, err
		}
		fields.Metadata = &metadata
	}
	return schema.NewEvent(fields)
}

func missingField(path string) error {
	return fmt.Errorf("%s record: field %q: %w", Name, path, codec.ErrMissingField)
}

func mismatchedField(path string, value any, want string) error {
	return fmt.Errorf("%s record: field %q is %T, want %s: %w", Name, path, value, want, codec.ErrTypeMismatch)
}

func recordField(record map[string]any, key, path string) (map[string]any, error) {
	value, ok := record[key]
	if !ok || value == nil {
		return nil, missingField(path)
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return nil, mismatchedField(path, value, "record")
	}
	return nested, nil
}

func stringField(record map[string]any, key, path string) (string, error) {
	value, ok := record[key]
	if !ok || value == nil {
		return "", missingField(path)
	}
	text, ok := value.(string)
	if !ok {
		return "", mismatchedField(path, value, "string")
	}
	return text, nil
}

func fixedField(record map[string]any, key, path string) (string, error) {
	value, ok := record[key]
	if !ok || value == nil {
		return "", missingField(path)
	}
	switch typed := value.(type) {
	case string:
		return typed, nil
	case []byte:
		return string(typed), nil
	case [schema.TimestampLength]byte:
		return string(typed[:]), nil
	case [schema.ULIDLength]byte:
		return string(typed[:]), nil
	default:
		return "", mismatchedField(path, value, "fixed")
	}
}

func targetField(record map[string]any) (schema.Target, error) {
	nested, err := recordField(record, schema.FieldTarget, schema.FieldTarget)
	if err != nil {
		return schema.Target{}, err
	}
	values := make(map[string]string, 3)
	for _, key := range schema.TargetFieldOrder() {
		value, err := stringField(nested, key, schema.FieldTarget+"."+key)
		if err != nil {
			return schema.Target{}, err
		}
		values[key] = value
	}
	return schema.Target{
		Namespace:   values[schema.FieldNamespace],
		Zone:        values[schema.FieldZone],
		Environment: values[schema.FieldEnvironment],
	}, nil
}

func additionalDataField(record map[string]any) (map[string]string, error) {
	value, ok := record[schema.FieldAdditionalData]
	if !ok || value == nil {
		return nil, nil
	}
	switch typed := value.(type) {
	case map[string]string:
		return typed, nil
	case map[string]any:
		data := make(map[string]string, len(typed))
		for key, item := range typed {
			text, ok := item.(string)
			if !ok {
				return nil, mismatchedField(schema.FieldAdditionalData+"."+key, item, "string")
			}
			data[key] = text
		}
		return data, nil
	default:
		return nil, mismatchedField(schema.FieldAdditionalData, value, "map")
	}
}

// metadataField returns receivedAt and ulid, and whether metadata is
// present. An absent or empty ulid is passed on as "" so the
// constructor reports it.
func metadataField(record map[string]any) ([2]string, bool, error) {
	value, ok := record[schema.FieldMetadata]
	if !ok || value == nil {
		return [2]string{}, false, nil
	}
	nested, ok := value.(map[string]any)
	if !ok {
		return [2]string{}, false, mismatchedField(schema.FieldMetadata, value, "record")
	}
	if wrapped, ok := nested[metadataFullName]; ok && len(nested) == 1 {
		if wrapped == nil {
			return [2]string{}, false, nil
		}
		nested, ok = wrapped.(map[string]any)
		if !ok {
			return [2]string{}, false, mismatchedField(schema.FieldMetadata, wrapped, "record")
		}
	}

	path := schema.FieldMetadata + "."
	receivedAt, err := fixedField(nested, schema.FieldReceivedAt, path+schema.FieldReceivedAt)
	if err != nil {
		return [2]string{}, false, err
	}
	var ulid string
	if value, present := nested[schema.FieldULID]; present && value != nil {
		ulid, err = fixedField(nested, schema.FieldULID, path+schema.FieldULID)
		if err != nil {
			return [2]string{}, false, err
		}
	}
	return [2]string{receivedAt, ulid}, true, nil
}
