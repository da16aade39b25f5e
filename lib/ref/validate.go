// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"errors"
	"strings"
	"unicode/utf8"
)

const (
	// resourcePrefix is the literal scheme every NRN starts with.
	resourcePrefix = "nrn:"

	// minResourceLength is the exclusive lower bound on NRN length, in
	// characters.
	// "nrn:" plus the two separators leaves room for very little, and
	// consumers reject anything this short.
	minResourceLength = 10

	// minSeparators is the minimum number of ':' characters, counting
	// the one in the prefix.
	minSeparators = 2
)

// Validation errors for resource IDs. The messages are part of the
// observable contract: downstream consumers match on them, so they must
// not change.
var (
	ErrInvalidPrefix     = errors.New("IDs must start with `nrn:` prefix")
	ErrTooShort          = errors.New("IDs must be longer than 10 characters")
	ErrMissingSeparators = errors.New("IDs must contain at least two colon separators")
	ErrInvalidUTF8       = errors.New("IDs must be valid UTF-8")
)

// validateResourceID runs the NRN rules in their fixed order and
// returns the first failure. Errors are returned unwrapped so that
// err.Error() is exactly the rule message. The UTF-8 check runs last
// so that the three NRN rules keep their order for any input.
func validateResourceID(raw string) error {
	if !strings.HasPrefix(raw, resourcePrefix) {
		return ErrInvalidPrefix
	}
	if utf8.RuneCountInString(raw) <= minResourceLength {
		return ErrTooShort
	}
	if strings.Count(raw, ":") < minSeparators {
		return ErrMissingSeparators
	}
	if !utf8.ValidString(raw) {
		return ErrInvalidUTF8
	}
	return nil
}
