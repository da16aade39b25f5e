// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"

	"github.com/nada-devrapid/devrapid/lib/schema"
)

// Codec-level decode errors. These describe encodings that cannot be
// read into the event's shape at all, before any model invariant is
// checked. Implementations wrap them with format context; match with
// errors.Is.
var (
	// ErrMalformedEncoding: the bytes or text are not a well-formed
	// document of the codec's format (truncated, syntax error,
	// trailing data).
	ErrMalformedEncoding = errors.New("malformed encoding")

	// ErrTypeMismatch: the document is well formed but a field's
	// encoded type disagrees with the model (e.g., a number where a
	// string is expected, or an array of the wrong arity).
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrMissingField: a named-field encoding lacks a required key.
	ErrMissingField = errors.New("missing required field")
)

// Codec converts events to and from one wire format.
//
// Encode never fails for a valid event except on internal encoder
// failures. Decode builds every nested value through the schema's
// smart constructors, so it returns the same validation errors
// (unwrapped, with identical messages) as direct construction would,
// or one of the codec-level errors above wrapped with context.
//
// Implementations are stateless and safe for concurrent use.
type Codec interface {
	// Name is the short format name used in flags and config ("avro",
	// "json", "cbor").
	Name() string

	// ContentType is the media type of the encoded form.
	ContentType() string

	// Encode serializes event.
	Encode(event schema.Event) ([]byte, error)

	// Decode parses data and validates the result.
	Decode(data []byte) (schema.Event, error)
}

// IsDecodeError reports whether err is one of the codec-level decode
// errors (as opposed to a model validation error).
func IsDecodeError(err error) bool {
	return errors.Is(err, ErrMalformedEncoding) ||
		errors.Is(err, ErrTypeMismatch) ||
		errors.Is(err, ErrMissingField)
}
