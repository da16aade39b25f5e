// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package jsonwire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"unicode/utf8"

	"github.com/tidwall/jsonc"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// Name is the format name used in flags and configuration.
const Name = "json"

// ContentType is the media type of the encoded form.
const ContentType = "application/json"

// Wire structs use pointers so that decoding can tell an absent key
// (or an explicit null) from an empty string. Decoding fills them key by
// key in decodeWire.
type (
	resourceIDObject struct {
		ID *string `json:"id"`
	}

	targetObject struct {
		Namespace   *string `json:"namespace"`
		Zone        *string `json:"zone"`
		Environment *string `json:"environment"`
	}

	metadataObject struct {
		ReceivedAt *string `json:"receivedAt"`
		ULID       *string `json:"ulid"`
	}

	eventObject struct {
		ResourceID     *resourceIDObject `json:"nrn"`
		Application    *string           `json:"application"`
		Target         *targetObject     `json:"target"`
		AdditionalData map[string]string `json:"additionalData"`
		Team           *string           `json:"team"`
		Timestamp      *string           `json:"timestamp"`
		Metadata       *metadataObject   `json:"metadata,omitempty"`
	}
)

// Codec implements codec.Codec over JSON. The zero value writes
// compact JSON.
type Codec struct {
	// Indent, when non-empty, is the per-level indentation of encoded
	// output. Decoding is unaffected.
	Indent string
}

var _ codec.Codec = Codec{}

// New returns the compact JSON codec.
func New() Codec { return Codec{} }

// Name returns "json".
func (Codec) Name() string { return Name }

// ContentType returns "application/json".
func (Codec) ContentType() string { return ContentType }

// Encode writes event as JSON with keys in declaration order and
// additionalData keys sorted. HTML characters are not escaped and no
// trailing newline is written.
func (c Codec) Encode(event schema.Event) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	if c.Indent != "" {
		encoder.SetIndent("", c.Indent)
	}
	if err := encoder.Encode(toWire(event)); err != nil {
		return nil, fmt.Errorf("%s: encoding event: %w", Name, err)
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// Decode parses JSON (comments and trailing commas allowed) and
// validates the result. Input must be UTF-8. Keys match field names
// exactly; unknown keys are ignored.
func (Codec) Decode(data []byte) (schema.Event, error) {
	if !utf8.Valid(data) {
		return schema.Event{}, fmt.Errorf("%s: %w: input is not valid UTF-8", Name, codec.ErrMalformedEncoding)
	}
	decoder := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))

	var document json.RawMessage
	if err := decoder.Decode(&document); err != nil {
		return schema.Event{}, decodeError("", err)
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return schema.Event{}, fmt.Errorf("%s: %w: data after the event object", Name, codec.ErrMalformedEncoding)
	}

	wire, err := decodeWire(document)
	if err != nil {
		return schema.Event{}, err
	}
	return fromWire(wire)
}

func decodeError(path string, err error) error {
	kind := codec.ErrMalformedEncoding
	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		kind = codec.ErrTypeMismatch
	}
	if path == "" {
		return fmt.Errorf("%s: %w: %w", Name, kind, err)
	}
	return fmt.Errorf("%s: field %q: %w: %w", Name, path, kind, err)
}

// object is a JSON object with its values still undecoded. Lookups are
// exact; struct decoding in encoding/json folds case.
type object map[string]json.RawMessage

// decode unmarshals the value under key into target. An absent key
// leaves target untouched.
func (o object) decode(key, path string, target any) error {
	raw, ok := o[key]
	if !ok {
		return nil
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return decodeError(path, err)
	}
	return nil
}

// nested returns the object under key, or nil when the key is absent
// or null.
func (o object) nested(key, path string) (object, error) {
	var nested object
	if err := o.decode(key, path, &nested); err != nil {
		return nil, err
	}
	return nested, nil
}

// decodeWire type checks every known key of document and fills the
// wire struct. Presence is checked afterwards by fromWire, so a type
// error anywhere wins over a missing key.
func decodeWire(document json.RawMessage) (eventObject, error) {
	var top object
	if err := json.Unmarshal(document, &top); err != nil {
		return eventObject{}, decodeError("", err)
	}

	var wire eventObject
	nrn, err := top.nested(schema.FieldResourceID, schema.FieldResourceID)
	if err != nil {
		return eventObject{}, err
	}
	if nrn != nil {
		wire.ResourceID = &resourceIDObject{}
		path := schema.FieldResourceID + "." + schema.FieldResourceIDValue
		if err := nrn.decode(schema.FieldResourceIDValue, path, &wire.ResourceID.ID); err != nil {
			return eventObject{}, err
		}
	}

	if err := top.decode(schema.FieldApplication, schema.FieldApplication, &wire.Application); err != nil {
		return eventObject{}, err
	}

	target, err := top.nested(schema.FieldTarget, schema.FieldTarget)
	if err != nil {
		return eventObject{}, err
	}
	if target != nil {
		wire.Target = &targetObject{}
		for _, field := range []struct {
			name  string
			value **string
		}{
			{schema.FieldNamespace, &wire.Target.Namespace},
			{schema.FieldZone, &wire.Target.Zone},
			{schema.FieldEnvironment, &wire.Target.Environment},
		} {
			if err := target.decode(field.name, schema.FieldTarget+"."+field.name, field.value); err != nil {
				return eventObject{}, err
			}
		}
	}

	wire.AdditionalData, err = decodeAdditionalData(top)
	if err != nil {
		return eventObject{}, err
	}

	if err := top.decode(schema.FieldTeam, schema.FieldTeam, &wire.Team); err != nil {
		return eventObject{}, err
	}
	if err := top.decode(schema.FieldTimestamp, schema.FieldTimestamp, &wire.Timestamp); err != nil {
		return eventObject{}, err
	}

	metadata, err := top.nested(schema.FieldMetadata, schema.FieldMetadata)
	if err != nil {
		return eventObject{}, err
	}
	if metadata != nil {
		wire.Metadata = &metadataObject{}
		path := schema.FieldMetadata + "."
		if err := metadata.decode(schema.FieldReceivedAt, path+schema.FieldReceivedAt, &wire.Metadata.ReceivedAt); err != nil {
			return eventObject{}, err
		}
		if err := metadata.decode(schema.FieldULID, path+schema.FieldULID, &wire.Metadata.ULID); err != nil {
			return eventObject{}, err
		}
	}
	return wire, nil
}

// decodeAdditionalData returns nil when the key is absent or null. A
// null value inside the map is a type mismatch, not an empty string.
func decodeAdditionalData(top object) (map[string]string, error) {
	var raw map[string]*string
	if err := top.decode(schema.FieldAdditionalData, schema.FieldAdditionalData, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	data := make(map[string]string, len(raw))
	for _, key := range slices.Sorted(maps.Keys(raw)) {
		value := raw[key]
		if value == nil {
			return nil, fmt.Errorf("%s: field %q is null, want string: %w",
				Name, schema.FieldAdditionalData+"."+key, codec.ErrTypeMismatch)
		}
		data[key] = *value
	}
	return data, nil
}

func toWire(event schema.Event) eventObject {
	id := event.ResourceID().String()
	application := event.Application()
	target := event.Target()
	team := event.Team()
	timestamp := event.Timestamp()

	wire := eventObject{
		ResourceID:  &resourceIDObject{ID: &id},
		Application: &application,
		Target: &targetObject{
			Namespace:   &target.Namespace,
			Zone:        &target.Zone,
			Environment: &target.Environment,
		},
		AdditionalData: event.AdditionalData(),
		Team:           &team,
		Timestamp:      &timestamp,
	}
	if metadata, ok := event.Metadata(); ok {
		receivedAt := metadata.ReceivedAt()
		ulid := metadata.ULID()
		wire.Metadata = &metadataObject{ReceivedAt: &receivedAt, ULID: &ulid}
	}
	return wire
}

func missingField(path string) error {
	return fmt.Errorf("%s: field %q: %w", Name, path, codec.ErrMissingField)
}

// fromWire checks that every required key was present, then runs the
// values through the smart constructors.
func fromWire(wire eventObject) (schema.Event, error) {
	if wire.ResourceID == nil {
		return schema.Event{}, missingField(schema.FieldResourceID)
	}
	if wire.ResourceID.ID == nil {
		return schema.Event{}, missingField(schema.FieldResourceID + "." + schema.FieldResourceIDValue)
	}
	if wire.Application == nil {
		return schema.Event{}, missingField(schema.FieldApplication)
	}
	if wire.Target == nil {
		return schema.Event{}, missingField(schema.FieldTarget)
	}
	for _, field := range []struct {
		name  string
		value *string
	}{
		{schema.FieldNamespace, wire.Target.Namespace},
		{schema.FieldZone, wire.Target.Zone},
		{schema.FieldEnvironment, wire.Target.Environment},
	} {
		if field.value == nil {
			return schema.Event{}, missingField(schema.FieldTarget + "." + field.name)
		}
	}
	if wire.Team == nil {
		return schema.Event{}, missingField(schema.FieldTeam)
	}
	if wire.Timestamp == nil {
		return schema.Event{}, missingField(schema.FieldTimestamp)
	}
	if wire.Metadata != nil && wire.Metadata.ReceivedAt == nil {
		return schema.Event{}, missingField(schema.FieldMetadata + "." + schema.FieldReceivedAt)
	}

	resourceID, err := ref.ParseResourceID(*wire.ResourceID.ID)
	if err != nil {
		return schema.Event{}, err
	}

	fields := schema.EventFields{
		ResourceID:  resourceID,
		Application: *wire.Application,
		Target: schema.Target{
			Namespace:   *wire.Target.Namespace,
			Zone:        *wire.Target.Zone,
			Environment: *wire.Target.Environment,
		},
		AdditionalData: wire.AdditionalData,
		Team:           *wire.Team,
		Timestamp:      *wire.Timestamp,
	}

	if wire.Metadata != nil {
		// An absent ulid is passed as "" so the constructor rejects it.
		var ulid string
		if wire.Metadata.ULID != nil {
			ulid = *wire.Metadata.ULID
		}
		metadata, err := schema.NewMetadata(*wire.Metadata.ReceivedAt, ulid)
		if err != nil {
			return schema.Event{}, err
		}
		fields.Metadata = &metadata
	}

	return schema.NewEvent(fields)
}
