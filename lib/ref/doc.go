// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package ref provides strongly typed, immutable identity references for
// DevRapid event sources.
//
// The only reference type today is [ResourceID], a Nada Resource Name
// (NRN): a colon-delimited identifier such as "nrn:nada:push:test",
// analogous to a URN. Every event carries exactly one.
//
// All constructors validate their inputs and return errors for invalid
// names. Once constructed, a ref is immutable. The raw string is kept
// verbatim: no trimming, no case folding.
//
// JSON and CBOR marshaling use the raw string via
// encoding.TextMarshaler. UnmarshalText re-runs the same validation as
// the constructor, so a ref decoded from any wire format obeys the same
// invariants as one built in code.
package ref
