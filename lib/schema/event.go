// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"maps"
	"unicode/utf8"

	"github.com/nada-devrapid/devrapid/lib/ref"
)

// Wire field names, shared by every codec. Named-field encodings use
// them as keys; positional encodings use their order.
const (
	FieldResourceID     = "nrn"
	FieldApplication    = "application"
	FieldTarget         = "target"
	FieldAdditionalData = "additionalData"
	FieldTeam           = "team"
	FieldTimestamp      = "timestamp"
	FieldMetadata       = "metadata"

	FieldResourceIDValue = "id"

	FieldNamespace   = "namespace"
	FieldZone        = "zone"
	FieldEnvironment = "environment"

	FieldReceivedAt = "receivedAt"
	FieldULID       = "ulid"
)

// EventFieldOrder returns the declaration order of Event's wire fields.
func EventFieldOrder() []string {
	return []string{
		FieldResourceID,
		FieldApplication,
		FieldTarget,
		FieldAdditionalData,
		FieldTeam,
		FieldTimestamp,
		FieldMetadata,
	}
}

// ResourceIDFieldOrder returns the declaration order of the nested
// resource identifier record.
func ResourceIDFieldOrder() []string {
	return []string{FieldResourceIDValue}
}

// TargetFieldOrder returns the declaration order of Target's wire fields.
func TargetFieldOrder() []string {
	return []string{FieldNamespace, FieldZone, FieldEnvironment}
}

// MetadataFieldOrder returns the declaration order of Metadata's wire
// fields.
func MetadataFieldOrder() []string {
	return []string{FieldReceivedAt, FieldULID}
}

// EventFields carries the raw values for NewEvent.
type EventFields struct {
	ResourceID     ref.ResourceID
	Application    string
	Target         Target
	AdditionalData map[string]string
	Team           string
	Timestamp      string

	// Metadata is optional. Nil means the event has not been stamped.
	Metadata *Metadata
}

// Event is a validated DevEvent envelope. It is an immutable value
// type: accessors return copies, and there are no setters.
type Event struct {
	resourceID     ref.ResourceID
	application    string
	target         Target
	additionalData map[string]string
	team           string
	timestamp      string
	metadata       Metadata
}

// NewEvent validates fields and builds an Event. Checks, in order: the
// resource ID is set (ErrMissingResourceID), the timestamp is Zulu
// (ErrInvalidTimestamp), supplied metadata is valid, and every free-form
// string, additionalData keys included, is valid UTF-8
// (ErrInvalidUTF8). Validation
// errors are returned unwrapped. The additional data map is copied; a
// nil map becomes empty.
func NewEvent(fields EventFields) (Event, error) {
	if fields.ResourceID.IsZero() {
		return Event{}, ErrMissingResourceID
	}
	if err := ValidateTimestamp(fields.Timestamp); err != nil {
		return Event{}, err
	}

	var metadata Metadata
	if fields.Metadata != nil {
		if err := fields.Metadata.validate(); err != nil {
			return Event{}, err
		}
		metadata = *fields.Metadata
	}

	if !validText(fields) {
		return Event{}, ErrInvalidUTF8
	}

	additionalData := make(map[string]string, len(fields.AdditionalData))
	maps.Copy(additionalData, fields.AdditionalData)

	return Event{
		resourceID:     fields.ResourceID,
		application:    fields.Application,
		target:         fields.Target,
		additionalData: additionalData,
		team:           fields.Team,
		timestamp:      fields.Timestamp,
		metadata:       metadata,
	}, nil
}

// validText reports whether every free-form string in fields is valid
// UTF-8. Text encodings cannot carry anything else.
func validText(fields EventFields) bool {
	for _, value := range []string{
		fields.Application,
		fields.Target.Namespace,
		fields.Target.Zone,
		fields.Target.Environment,
		fields.Team,
	} {
		if !utf8.ValidString(value) {
			return false
		}
	}
	for key, value := range fields.AdditionalData {
		if !utf8.ValidString(key) || !utf8.ValidString(value) {
			return false
		}
	}
	return true
}

// ResourceID returns the event source identifier.
func (e Event) ResourceID() ref.ResourceID { return e.resourceID }

// Application returns the application name.
func (e Event) Application() string { return e.application }

// Target returns where the event happened.
func (e Event) Target() Target { return e.target }

// AdditionalData returns a copy of the free-form key/value data. Never
// nil.
func (e Event) AdditionalData() map[string]string {
	data := make(map[string]string, len(e.additionalData))
	maps.Copy(data, e.additionalData)
	return data
}

// Team returns the owning team name.
func (e Event) Team() string { return e.team }

// Timestamp returns the Zulu timestamp of the event.
func (e Event) Timestamp() string { return e.timestamp }

// Metadata returns the receipt metadata and whether it is present.
func (e Event) Metadata() (Metadata, bool) {
	return e.metadata, !e.metadata.IsZero()
}

// IsZero reports whether e is the zero value.
func (e Event) IsZero() bool { return e.resourceID.IsZero() }

// Fields returns the raw values of e. NewEvent(e.Fields()) reproduces e.
func (e Event) Fields() EventFields {
	fields := EventFields{
		ResourceID:     e.resourceID,
		Application:    e.application,
		Target:         e.target,
		AdditionalData: e.AdditionalData(),
		Team:           e.team,
		Timestamp:      e.timestamp,
	}
	if metadata, ok := e.Metadata(); ok {
		fields.Metadata = &metadata
	}
	return fields
}

// WithMetadata returns a copy of e carrying m. A zero m removes the
// metadata.
func (e Event) WithMetadata(m Metadata) Event {
	copied := e
	copied.additionalData = e.AdditionalData()
	copied.metadata = m
	return copied
}

// Stamp returns a copy of e carrying fresh metadata from s.
func (e Event) Stamp(s *Stamper) (Event, error) {
	metadata, err := s.Stamp()
	if err != nil {
		return Event{}, err
	}
	return e.WithMetadata(metadata), nil
}

// Equal reports whether e and other carry the same values. Additional
// data is compared by content.
func (e Event) Equal(other Event) bool {
	return e.resourceID == other.resourceID &&
		e.application == other.application &&
		e.target == other.target &&
		maps.Equal(e.additionalData, other.additionalData) &&
		e.team == other.team &&
		e.timestamp == other.timestamp &&
		e.metadata == other.metadata
}
