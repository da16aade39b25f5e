// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"fmt"
	"strings"
)

// ResourceID is a validated Nada Resource Name (e.g.,
// "nrn:nada:push:01HMCZ4B4T7Q8Y6ZJ1R3V2K9WX").
//
// An NRN must start with "nrn:", be longer than 10 characters, and
// contain at least two ':' separators. The checks run in that order and
// only the first failure is reported.
//
// ResourceID is an immutable value type. The zero value is not valid;
// use IsZero to check.
type ResourceID struct {
	id string
}

// ParseResourceID validates and wraps a raw NRN string. Returns
// ErrInvalidPrefix, ErrTooShort, or ErrMissingSeparators (unwrapped)
// for the first rule the input violates.
func ParseResourceID(raw string) (ResourceID, error) {
	if err := validateResourceID(raw); err != nil {
		return ResourceID{}, err
	}
	return ResourceID{id: raw}, nil
}

// MustParseResourceID is like ParseResourceID but panics on error. Use
// in tests and static initialization where the input is known-valid.
func MustParseResourceID(raw string) ResourceID {
	r, err := ParseResourceID(raw)
	if err != nil {
		panic(fmt.Sprintf("ref.MustParseResourceID(%q): %v", raw, err))
	}
	return r
}

// String returns the NRN exactly as it was parsed.
func (r ResourceID) String() string { return r.id }

// IsZero reports whether the ResourceID is the zero value (uninitialized).
func (r ResourceID) IsZero() bool { return r.id == "" }

// Segments returns the colon-separated parts after the "nrn:" prefix.
//
//	MustParseResourceID("nrn:nada:push:test").Segments() → ["nada", "push", "test"]
func (r ResourceID) Segments() []string {
	if r.id == "" {
		return nil
	}
	return strings.Split(strings.TrimPrefix(r.id, resourcePrefix), ":")
}

// MarshalText implements encoding.TextMarshaler.
func (r ResourceID) MarshalText() ([]byte, error) {
	if r.id == "" {
		return nil, fmt.Errorf("cannot marshal zero ResourceID")
	}
	return []byte(r.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Runs the full
// validation; unlike optional refs, an empty input is an error because
// every event must carry an identifier.
func (r *ResourceID) UnmarshalText(data []byte) error {
	parsed, err := ParseResourceID(string(data))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}
