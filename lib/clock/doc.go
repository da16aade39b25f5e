// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction for testability.
//
// Event timestamps and metadata receipt times are derived from the
// current time. Production code accepts a Clock instead of calling
// time.Now directly. In production, Real() provides the standard
// library behavior. In tests, Fake() provides a clock that only moves
// when Advance or Set is called, so formatted timestamps and ULID time
// prefixes are reproducible.
//
// # Wiring Pattern
//
// Add a Clock field to structs that use time:
//
//	type Stamper struct {
//	    clock clock.Clock
//	    // ...
//	}
//
// In production:
//
//	s := schema.NewStamper(clock.Real())
//
// In tests:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	s := schema.NewStamper(c)
//	c.Advance(5 * time.Second)
package clock
