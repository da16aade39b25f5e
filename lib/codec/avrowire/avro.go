// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package avrowire

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/hamba/avro/v2"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// Name is the format name used in flags and configuration.
const Name = "avro"

// ContentType is the media type of the encoded form.
const ContentType = "application/avro"

//go:embed devevent.avsc
var schemaDocument []byte

var (
	eventSchema  *avro.RecordSchema
	stringSchema = avro.MustParse(`"string"`)
	longSchema   = avro.MustParse(`"long"`)
)

func init() {
	parsed, err := avro.ParseBytes(schemaDocument)
	if err != nil {
		panic("avrowire: parsing embedded schema: " + err.Error())
	}
	record, ok := parsed.(*avro.RecordSchema)
	if !ok {
		panic(fmt.Sprintf("avrowire: embedded schema is %s, want record", parsed.Type()))
	}
	eventSchema = record
}

// Schema returns the parsed DevEvent schema.
func Schema() avro.Schema { return eventSchema }

// SchemaJSON returns the schema document. Pretty output is indented
// with two spaces; compact output has no insignificant whitespace.
// Unlike Schema().String() (the Parsing Canonical Form), both keep
// docs and defaults.
func SchemaJSON(pretty bool) string {
	var buffer bytes.Buffer
	var err error
	if pretty {
		err = json.Indent(&buffer, schemaDocument, "", "  ")
	} else {
		err = json.Compact(&buffer, schemaDocument)
	}
	if err != nil {
		// The document parsed in init, so it is valid JSON.
		panic("avrowire: reformatting embedded schema: " + err.Error())
	}
	return buffer.String()
}

// Wire structs mirror devevent.avsc. Fixed fields are byte arrays of
// the schema's size; the nullable metadata union is a pointer.
type (
	resourceIDRecord struct {
		ID string `avro:"id"`
	}

	targetRecord struct {
		Namespace   string `avro:"namespace"`
		Zone        string `avro:"zone"`
		Environment string `avro:"environment"`
	}

	metadataRecord struct {
		ReceivedAt [schema.TimestampLength]byte `avro:"receivedAt"`
		ULID       [schema.ULIDLength]byte      `avro:"ulid"`
	}

	eventRecord struct {
		ResourceID     resourceIDRecord             `avro:"nrn"`
		Application    string                       `avro:"application"`
		Target         targetRecord                 `avro:"target"`
		AdditionalData map[string]string            `avro:"additionalData"`
		Team           string                       `avro:"team"`
		Timestamp      [schema.TimestampLength]byte `avro:"timestamp"`
		Metadata       *metadataRecord              `avro:"metadata"`
	}
)

// Codec implements codec.Codec over binary Avro datums (no container
// file header, no schema fingerprint prefix).
type Codec struct{}

var _ codec.Codec = Codec{}

// New returns the Avro codec.
func New() Codec { return Codec{} }

// Name returns "avro".
func (Codec) Name() string { return Name }

// ContentType returns "application/avro".
func (Codec) ContentType() string { return ContentType }

// Encode writes event as an Avro datum. Fields are written one at a
// time in schema order so that additionalData can be written in
// sorted key order; the output is a single Avro record and any Avro
// reader decodes it.
func (Codec) Encode(event schema.Event) ([]byte, error) {
	wire := toWire(event)
	values := map[string]any{
		schema.FieldResourceID:  wire.ResourceID,
		schema.FieldApplication: wire.Application,
		schema.FieldTarget:      wire.Target,
		schema.FieldTeam:        wire.Team,
		schema.FieldTimestamp:   wire.Timestamp,
	}

	var buffer bytes.Buffer
	for _, field := range eventSchema.Fields() {
		var err error
		switch field.Name() {
		case schema.FieldAdditionalData:
			err = writeSortedMap(&buffer, wire.AdditionalData)
		case schema.FieldMetadata:
			err = writeMetadata(&buffer, field.Type(), wire.Metadata)
		default:
			err = writeValue(&buffer, field.Type(), values[field.Name()])
		}
		if err != nil {
			return nil, fmt.Errorf("%s: encoding field %q: %w", Name, field.Name(), err)
		}
	}
	return buffer.Bytes(), nil
}

// Decode reads one Avro datum and validates the result. Bytes after
// the datum are ErrMalformedEncoding.
func (Codec) Decode(data []byte) (schema.Event, error) {
	var wire eventRecord
	reader := avro.NewReader(nil, 0).Reset(data)
	reader.ReadVal(eventSchema, &wire)
	if err := reader.Error; err != nil && !errors.Is(err, io.EOF) {
		return schema.Event{}, fmt.Errorf("%s: %w: %w", Name, codec.ErrMalformedEncoding, err)
	}
	if reader.Error == nil {
		// Peek sets io.EOF only when the buffer is exhausted.
		reader.Peek()
		if reader.Error == nil {
			return schema.Event{}, fmt.Errorf("%s: %w: data after the datum", Name, codec.ErrMalformedEncoding)
		}
	}
	return fromWire(wire)
}

func writeValue(buffer *bytes.Buffer, fieldSchema avro.Schema, value any) error {
	data, err := avro.Marshal(fieldSchema, value)
	if err != nil {
		return err
	}
	buffer.Write(data)
	return nil
}

// writeSortedMap writes an Avro map as one block in ascending key
// order, followed by the zero-count terminator. An empty map is just
// the terminator.
func writeSortedMap(buffer *bytes.Buffer, data map[string]string) error {
	if len(data) > 0 {
		if err := writeValue(buffer, longSchema, int64(len(data))); err != nil {
			return err
		}
		keys := make([]string, 0, len(data))
		for key := range data {
			keys = append(keys, key)
		}
		slices.Sort(keys)
		for _, key := range keys {
			if err := writeValue(buffer, stringSchema, key); err != nil {
				return err
			}
			if err := writeValue(buffer, stringSchema, data[key]); err != nil {
				return err
			}
		}
	}
	return writeValue(buffer, longSchema, int64(0))
}

// writeMetadata writes the nullable metadata union: the branch index,
// then the record when present.
func writeMetadata(buffer *bytes.Buffer, fieldSchema avro.Schema, metadata *metadataRecord) error {
	union, ok := fieldSchema.(*avro.UnionSchema)
	if !ok {
		return fmt.Errorf("metadata schema is %s, want union", fieldSchema.Type())
	}
	for index, branch := range union.Types() {
		isNull := branch.Type() == avro.Null
		if isNull != (metadata == nil) {
			continue
		}
		if err := writeValue(buffer, longSchema, int64(index)); err != nil {
			return err
		}
		if isNull {
			return nil
		}
		return writeValue(buffer, branch, *metadata)
	}
	return fmt.Errorf("metadata union has no branch for present=%t", metadata != nil)
}

func toWire(event schema.Event) eventRecord {
	target := event.Target()
	wire := eventRecord{
		ResourceID:  resourceIDRecord{ID: event.ResourceID().String()},
		Application: event.Application(),
		Target: targetRecord{
			Namespace:   target.Namespace,
			Zone:        target.Zone,
			Environment: target.Environment,
		},
		AdditionalData: event.AdditionalData(),
		Team:           event.Team(),
	}
	// Valid events hold exactly TimestampLength and ULIDLength bytes.
	copy(wire.Timestamp[:], event.Timestamp())
	if metadata, ok := event.Metadata(); ok {
		record := &metadataRecord{}
		copy(record.ReceivedAt[:], metadata.ReceivedAt())
		copy(record.ULID[:], metadata.ULID())
		wire.Metadata = record
	}
	return wire
}

func fromWire(wire eventRecord) (schema.Event, error) {
	resourceID, err := ref.ParseResourceID(wire.ResourceID.ID)
	if err != nil {
		return schema.Event{}, err
	}

	fields := schema.EventFields{
		ResourceID:  resourceID,
		Application: wire.Application,
		Target: schema.Target{
			Namespace:   wire.Target.Namespace,
			Zone:        wire.Target.Zone,
			Environment: wire.Target.Environment,
		},
		AdditionalData: wire.AdditionalData,
		Team:           wire.Team,
		Timestamp:      string(wire.Timestamp[:]),
	}

	if wire.Metadata != nil {
		metadata, err := schema.NewMetadata(string(wire.Metadata.ReceivedAt[:]), string(wire.Metadata.ULID[:]))
		if err != nil {
			return schema.Event{}, err
		}
		fields.Metadata = &metadata
	}

	return schema.NewEvent(fields)
}
