// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import "errors"

// Validation errors for events and metadata. ErrInvalidTimestamp's
// message is part of the observable contract and must not change.
var (
	ErrInvalidTimestamp  = errors.New("Timestamp should be in ISO8601 - Zulu time") //nolint:staticcheck // consumers match on this exact text
	ErrInvalidULID       = errors.New("ULID must be a 26 character Crockford base32 identifier")
	ErrMissingResourceID = errors.New("event must carry a resource ID")
	ErrInvalidUTF8       = errors.New("event strings must be valid UTF-8")
)
