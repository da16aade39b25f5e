// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package schema

import (
	"errors"
	"testing"
	"time"

	"github.com/nada-devrapid/devrapid/lib/clock"
	"github.com/nada-devrapid/devrapid/lib/testutil"
)

func TestValidateTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"zulu", "2024-01-15T10:30:00Z", false},
		{"zulu midnight", "2012-05-01T00:00:00Z", false},
		{"leap day", "2024-02-29T23:59:59Z", false},

		{"positive offset", "2012-05-01T12:13:55+01:00", true},
		{"zero numeric offset", "2012-05-01T12:13:55+00:00", true},
		{"negative offset", "2012-05-01T12:13:55-05:00", true},
		{"no zone", "2012-05-01T12:13:55", true},
		{"no zone padded to length", "2012-05-01T12:13:55 ", true},
		{"local with fraction", "2012-05-01T12:13:55.123", true},
		{"fractional zulu", "2012-05-01T12:13:55.1Z", true},
		{"lowercase z", "2012-05-01T12:13:55z", true},
		{"space separator", "2012-05-01 12:13:55Z", true},
		{"invalid month", "2012-13-01T12:13:55Z", true},
		{"invalid day", "2023-02-29T12:13:55Z", true},
		{"invalid hour", "2012-05-01T25:13:55Z", true},
		{"empty", "", true},
		{"date only", "2012-05-01", true},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := ValidateTimestamp(test.input)
			if !test.wantErr {
				if err != nil {
					t.Fatalf("ValidateTimestamp(%q): unexpected error %v", test.input, err)
				}
				return
			}
			if !errors.Is(err, ErrInvalidTimestamp) {
				t.Fatalf("ValidateTimestamp(%q): err=%v, want ErrInvalidTimestamp", test.input, err)
			}
		})
	}
}

func TestInvalidTimestampMessage(t *testing.T) {
	err := ValidateTimestamp("2012-05-01T12:13:55+01:00")
	testutil.RequireErrorMessage(t, err, "Timestamp should be in ISO8601 - Zulu time")
}

func TestFormatTimestamp(t *testing.T) {
	oslo := time.FixedZone("CEST", 2*60*60)
	input := time.Date(2024, 6, 1, 14, 30, 15, 999_000_000, oslo)

	got := FormatTimestamp(input)
	want := "2024-06-01T12:30:15Z"
	if got != want {
		t.Errorf("FormatTimestamp = %q, want %q", got, want)
	}
	if err := ValidateTimestamp(got); err != nil {
		t.Errorf("formatted timestamp %q does not validate: %v", got, err)
	}
}

func TestNow(t *testing.T) {
	fake := clock.Fake(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	if got := Now(fake); got != "2024-01-15T10:30:00Z" {
		t.Errorf("Now() = %q, want %q", got, "2024-01-15T10:30:00Z")
	}
	fake.Advance(90 * time.Second)
	if got := Now(fake); got != "2024-01-15T10:31:30Z" {
		t.Errorf("Now() after Advance = %q, want %q", got, "2024-01-15T10:31:30Z")
	}
}
