// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package schema defines the DevEvent envelope: the value types that
// describe a deployment or operational event and the invariants they
// carry.
//
// The aggregate is [Event]. It exclusively owns a [ref.ResourceID]
// identifying the event source, a [Target] naming where the change
// landed, the application and team names, a free-form string map of
// additional data, a Zulu timestamp, and optional receipt [Metadata].
//
// [NewEvent] and [NewMetadata] are the only ways to obtain valid values.
// Every wire codec decodes into raw fields and then calls these
// constructors, so an invariant can never be bypassed by choosing a
// different encoding. Values are immutable after construction; to
// "update" an event, build a new one (see [Event.WithMetadata]).
//
// Timestamps are strings, not time.Time, because the envelope's wire
// contract is the exact 20-character text form:
//
//	2024-01-15T10:30:00Z
//
// A timestamp with any other zone designator, including a valid
// ISO-8601 offset such as +01:00, is rejected with
// [ErrInvalidTimestamp] rather than normalized.
//
// The field declaration order (see [EventFieldOrder]) is shared by all
// codecs. Positional encodings depend on it, and the Avro schema
// document is tested against it.
package schema
