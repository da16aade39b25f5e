// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec defines the contract every DevEvent wire codec
// implements and holds the shared CBOR configuration.
//
// Three codecs implement [Codec], each in its own package:
//
//   - avrowire: schema-driven binary (Avro), schema kept as a static
//     document next to the model.
//   - jsonwire: structured human-readable text (JSON), keys equal to the
//     model's field names.
//   - cborwire: compact positional binary (CBOR arrays, no field names).
//
// The registry package assembles them for lookup by name.
//
// # Decode contract
//
// Decoders never populate model fields directly. They read the wire
// form into plain values, then call ref.ParseResourceID,
// schema.NewMetadata, and schema.NewEvent. A structurally valid
// document that breaks an invariant fails with the same error a direct
// constructor call would have produced, unwrapped, so its message is
// unchanged. Failures that happen before the model is reached are
// reported as [ErrMalformedEncoding], [ErrTypeMismatch], or
// [ErrMissingField], wrapped with the format name.
//
// Decoders never invent values: a missing additionalData map decodes
// as empty, missing metadata decodes as absent, and metadata without a
// ULID is rejected.
//
// # CBOR profile
//
// The encoder uses Core Deterministic Encoding (RFC 8949 §4.2): sorted
// map keys, smallest integer encoding, no indefinite-length items.
// Same logical data always produces identical bytes.
//
//	data, err := codec.Marshal(value)
//	err = codec.Unmarshal(data, &value)
//
// For CBOR sequences (one event after another in a file or pipe):
//
//	encoder := codec.NewEncoder(w)
//	decoder := codec.NewDecoder(r)
package codec
