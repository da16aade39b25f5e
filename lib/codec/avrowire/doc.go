// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package avrowire is the schema-driven binary codec for DevEvent,
// built on github.com/hamba/avro/v2.
//
// The schema is a static document, devevent.avsc, embedded at build
// time and kept next to the model. Its field order is the model's
// declaration order (tested against schema.EventFieldOrder and
// friends). The identifier is a plain string inside the
// NadaResourceNames record; the timestamps are fixed(20) and the ULID
// is fixed(26), so the validation rules live in the model and the
// schema only carries their shapes.
//
// Two surfaces are offered:
//
//   - [Codec] reads and writes binary Avro datums.
//   - [ToRecord] and [FromRecord] convert to and from generic records
//     (nested map[string]any), the form hand-built test records and
//     schema-registry tooling work with.
//
// Both run decoded values through the model's smart constructors.
package avrowire
