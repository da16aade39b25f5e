// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"crypto/rand"
	"fmt"
	"io"
	"sync"

	"github.com/oklog/ulid/v2"

	"github.com/nada-devrapid/devrapid/lib/clock"
)

// ULIDLength is the exact length of the metadata identifier.
const ULIDLength = ulid.EncodedSize

// Metadata records when an event was received and gives it a
// lexicographically sortable unique identifier.
//
// Metadata is an immutable value type. The zero value means "no
// metadata" and is never attached to an event.
type Metadata struct {
	receivedAt string
	ulid       string
}

// NewMetadata validates and wraps receipt metadata. receivedAt follows
// the same rule as the event timestamp; id must be a 26-character
// Crockford base32 ULID.
func NewMetadata(receivedAt, id string) (Metadata, error) {
	metadata := Metadata{receivedAt: receivedAt, ulid: id}
	if err := metadata.validate(); err != nil {
		return Metadata{}, err
	}
	return metadata, nil
}

// MustNewMetadata is like NewMetadata but panics on error.
func MustNewMetadata(receivedAt, id string) Metadata {
	metadata, err := NewMetadata(receivedAt, id)
	if err != nil {
		panic(fmt.Sprintf("schema.MustNewMetadata(%q, %q): %v", receivedAt, id, err))
	}
	return metadata
}

func (m Metadata) validate() error {
	if err := ValidateTimestamp(m.receivedAt); err != nil {
		return err
	}
	if len(m.ulid) != ULIDLength {
		return ErrInvalidULID
	}
	if _, err := ulid.ParseStrict(m.ulid); err != nil {
		return ErrInvalidULID
	}
	return nil
}

// ReceivedAt returns the receipt timestamp.
func (m Metadata) ReceivedAt() string { return m.receivedAt }

// ULID returns the unique identifier.
func (m Metadata) ULID() string { return m.ulid }

// IsZero reports whether m is the zero value.
func (m Metadata) IsZero() bool { return m.receivedAt == "" && m.ulid == "" }

// Stamper produces fresh Metadata from an injected clock and a
// monotonic ULID entropy source. ULIDs generated within the same
// millisecond are strictly increasing.
//
// Stamper is safe for concurrent use.
type Stamper struct {
	clock clock.Clock

	mu      sync.Mutex
	entropy *ulid.MonotonicEntropy
}

// NewStamper returns a Stamper reading time from c and randomness from
// crypto/rand.
func NewStamper(c clock.Clock) *Stamper {
	return NewStamperWithEntropy(c, rand.Reader)
}

// NewStamperWithEntropy returns a Stamper reading randomness from r.
// Tests pass a deterministic reader to get reproducible identifiers.
func NewStamperWithEntropy(c clock.Clock, r io.Reader) *Stamper {
	return &Stamper{
		clock:   c,
		entropy: ulid.Monotonic(r, 0),
	}
}

// NewULID returns a fresh ULID for the current clock instant.
func (s *Stamper) NewULID() (string, error) {
	now := s.clock.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := ulid.New(ulid.Timestamp(now), s.entropy)
	if err != nil {
		return "", fmt.Errorf("generating ULID: %w", err)
	}
	return id.String(), nil
}

// Stamp returns Metadata received now, with a fresh ULID.
func (s *Stamper) Stamp() (Metadata, error) {
	id, err := s.NewULID()
	if err != nil {
		return Metadata{}, err
	}
	return NewMetadata(Now(s.clock), id)
}
