// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package codec

import (
	"errors"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode is the CBOR encoder configured with Core Deterministic
// Encoding (RFC 8949 §4.2): sorted map keys, smallest integer
// encoding, no indefinite-length items. Same logical data always
// produces identical bytes, which is what makes encoded events
// idempotent and digestable.
var encMode cbor.EncMode

// decMode is the CBOR decoder. Indefinite-length items are rejected
// because the encoder never produces them, and duplicate map keys are
// rejected because additional data must be a plain map.
var decMode cbor.DecMode

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	// Types implementing encoding.TextMarshaler (ref.ResourceID)
	// serialize as CBOR text strings via MarshalText.
	encOptions.TextMarshaler = cbor.TextMarshalerTextString
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		// Mirrors the TextMarshaler setting above for round-trip
		// correctness; UnmarshalText re-runs validation.
		TextUnmarshaler: cbor.TextUnmarshalerTextString,
	}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Marshal encodes v to CBOR using Core Deterministic Encoding.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v. Trailing bytes after the first
// data item are an error.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder is a CBOR stream encoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Encoder = cbor.Encoder

// Decoder is a CBOR stream decoder. Type alias so consumers import
// only lib/codec, not fxamacker/cbor directly.
type Decoder = cbor.Decoder

// NewEncoder returns a CBOR encoder that writes to w using the
// standard Core Deterministic Encoding configuration. Use it to write
// CBOR sequences of events.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder that reads from r using the
// standard decoding configuration.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}

// Diagnose returns the CBOR diagnostic notation (RFC 8949 §8) for the
// entire contents of data.
func Diagnose(data []byte) (string, error) {
	return cbor.Diagnose(data)
}

// ClassifyCBORError maps a decode failure from this package's
// decoder onto the codec error taxonomy: a CBOR item of the wrong
// major type or array arity becomes ErrTypeMismatch, anything else
// (truncation, invalid initial bytes, trailing data) becomes
// ErrMalformedEncoding. The original error stays in the chain.
func ClassifyCBORError(format string, err error) error {
	var typeError *cbor.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return fmt.Errorf("%s: %w: %w", format, ErrTypeMismatch, err)
	}
	return fmt.Errorf("%s: %w: %w", format, ErrMalformedEncoding, err)
}
