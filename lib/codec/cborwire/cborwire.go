// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package cborwire

import (
	"fmt"

	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/ref"
	"github.com/nada-devrapid/devrapid/lib/schema"
)

// Name is the format name used in flags and configuration.
const Name = "cbor"

// ContentType is the media type of the encoded form.
const ContentType = "application/cbor"

type resourceIDArray struct {
	_  struct{} `cbor:",toarray"`
	ID string
}

type targetArray struct {
	_           struct{} `cbor:",toarray"`
	Namespace   string
	Zone        string
	Environment string
}

type metadataArray struct {
	_          struct{} `cbor:",toarray"`
	ReceivedAt string
	ULID       string
}

// eventArray is the positional wire form. Field order must match
// schema.EventFieldOrder.
type eventArray struct {
	_              struct{} `cbor:",toarray"`
	ResourceID     resourceIDArray
	Application    string
	Target         targetArray
	AdditionalData map[string]string
	Team           string
	Timestamp      string
	Metadata       *metadataArray
}

// Codec implements codec.Codec over positional CBOR.
type Codec struct{}

var _ codec.Codec = Codec{}

// New returns the CBOR codec.
func New() Codec { return Codec{} }

// Name returns "cbor".
func (Codec) Name() string { return Name }

// ContentType returns "application/cbor".
func (Codec) ContentType() string { return ContentType }

// Encode serializes event as a CBOR array.
func (Codec) Encode(event schema.Event) ([]byte, error) {
	data, err := codec.Marshal(toWire(event))
	if err != nil {
		return nil, fmt.Errorf("%s: encoding event: %w", Name, err)
	}
	return data, nil
}

// Decode parses a CBOR array and validates the result.
func (Codec) Decode(data []byte) (schema.Event, error) {
	var wire eventArray
	if err := codec.Unmarshal(data, &wire); err != nil {
		return schema.Event{}, codec.ClassifyCBORError(Name, err)
	}
	return fromWire(wire)
}

func toWire(event schema.Event) eventArray {
	target := event.Target()
	wire := eventArray{
		ResourceID:  resourceIDArray{ID: event.ResourceID().String()},
		Application: event.Application(),
		Target: targetArray{
			Namespace:   target.Namespace,
			Zone:        target.Zone,
			Environment: target.Environment,
		},
		AdditionalData: event.AdditionalData(),
		Team:           event.Team(),
		Timestamp:      event.Timestamp(),
	}
	if metadata, ok := event.Metadata(); ok {
		wire.Metadata = &metadataArray{
			ReceivedAt: metadata.ReceivedAt(),
			ULID:       metadata.ULID(),
		}
	}
	return wire
}

// fromWire runs the decoded values through the smart constructors.
// Their errors are returned as-is.
func fromWire(wire eventArray) (schema.Event, error) {
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
		Timestamp:      wire.Timestamp,
	}

	if wire.Metadata != nil {
		metadata, err := schema.NewMetadata(wire.Metadata.ReceivedAt, wire.Metadata.ULID)
		if err != nil {
			return schema.Event{}, err
		}
		fields.Metadata = &metadata
	}

	return schema.NewEvent(fields)
}
