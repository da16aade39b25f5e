// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"time"

	"github.com/nada-devrapid/devrapid/lib/clock"
)

const (
	// timestampLayout is yyyy-MM-dd'T'HH:mm:ssVV. With the length pinned
	// to 20 the only zone designator that fits is "Z".
	timestampLayout = time.RFC3339

	// TimestampLength is the exact length of a valid timestamp.
	TimestampLength = 20
)

// ValidateTimestamp reports whether value is a 20-character ISO-8601
// date-time in Zulu time. Every failure returns ErrInvalidTimestamp
// unwrapped.
func ValidateTimestamp(value string) error {
	if len(value) != TimestampLength {
		return ErrInvalidTimestamp
	}
	parsed, err := time.Parse(timestampLayout, value)
	if err != nil {
		return ErrInvalidTimestamp
	}
	if value[TimestampLength-1] != 'Z' {
		return ErrInvalidTimestamp
	}
	if _, offset := parsed.Zone(); offset != 0 {
		return ErrInvalidTimestamp
	}
	return nil
}

// FormatTimestamp renders t in UTC using the envelope's timestamp form.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Now returns the current time of c as an envelope timestamp.
func Now(c clock.Clock) string {
	return FormatTimestamp(c.Now())
}
