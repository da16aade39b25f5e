// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package cborwire is the compact positional binary codec for DevEvent.
//
// Every record is a CBOR array in declaration order, so no field names
// appear on the wire:
//
//	[ [id], application, [namespace, zone, environment],
//	  {additionalData}, team, timestamp, null | [receivedAt, ulid] ]
//
// Both ends must agree on the order; it is fixed by the schema
// package's field order functions and checked by this package's tests.
// Encoding uses the Core Deterministic profile from lib/codec, which
// makes the bytes stable enough to hash: [Digest] returns a BLAKE3
// keyed hash of the encoding, usable as a deduplication key.
package cborwire
