// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package jsonwire is the structured text codec for DevEvent.
//
// Keys are the model's field names and nesting mirrors the model:
//
//	{
//	  "nrn": {"id": "nrn:nada:push:test"},
//	  "application": "nada-devrapid",
//	  "target": {"namespace": "q1", "zone": "fss", "environment": "preprod"},
//	  "additionalData": {},
//	  "team": "NADA",
//	  "timestamp": "2024-01-15T10:30:00Z",
//	  "metadata": {"receivedAt": "2024-01-15T10:30:05Z", "ulid": "01HMCZ4B4T7Q8Y6ZJ1R3V2K9WX"}
//	}
//
// metadata is omitted when the event has none. Decoding accepts
// hand-written input: // line comments, /* block comments */, and
// trailing commas are stripped with github.com/tidwall/jsonc before
// parsing. Unknown keys are ignored.
package jsonwire
