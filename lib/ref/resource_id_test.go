// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package ref

import (
	"encoding/json"
	"errors"
	"slices"
	"testing"
)

func TestParseResourceID(t *testing.T) {
	tests := []struct {
		input   string
		wantErr error
	}{
		// Valid.
		{"nrn:nada:push:test", nil},
		{"nrn:nada:push:01HMCZ4B4T7Q8Y6ZJ1R3V2K9WX", nil},
		{"nrn:a:b:c:d:e", nil},
		{"nrn:abc:def", nil},
		// Prefix is checked first.
		{"test:nada", ErrInvalidPrefix},
		{"", ErrInvalidPrefix},
		{"NRN:nada:push:test", ErrInvalidPrefix},
		{" nrn:nada:push:test", ErrInvalidPrefix},
		{"urn:nada:push:test", ErrInvalidPrefix},
		// Length is checked second.
		{"nrn:nada", ErrTooShort},
		{"nrn:", ErrTooShort},
		{"nrn:a:b:cd", ErrTooShort},
		// Length counts characters, not bytes.
		{"nrn:æø:å", ErrTooShort},
		{"nrn:æø:åæøå", nil},
		{"nrn:blåbærsyltetøy", ErrMissingSeparators},
		// Separators are checked third.
		{"nrn:dataplattform", ErrMissingSeparators},
		{"nrn:abcdefghijk", ErrMissingSeparators},
		// Encoding is checked after the NRN rules.
		{"nrn:nada:push:\xfftest", ErrInvalidUTF8},
		{"nrn:nada:push:\xc3", ErrInvalidUTF8},
		{"nrn:\xff\xff\xff", ErrTooShort},
	}

	for _, test := range tests {
		_, err := ParseResourceID(test.input)
		if test.wantErr == nil {
			if err != nil {
				t.Errorf("ParseResourceID(%q): unexpected error %v", test.input, err)
			}
			continue
		}
		if !errors.Is(err, test.wantErr) {
			t.Errorf("ParseResourceID(%q): err=%v, want %v", test.input, err, test.wantErr)
		}
	}
}

func TestParseResourceIDMessages(t *testing.T) {
	// Consumers match on these strings; they must stay byte-identical.
	tests := []struct {
		input       string
		wantMessage string
	}{
		{"nrn:nada", "IDs must be longer than 10 characters"},
		{"test:nada", "IDs must start with `nrn:` prefix"},
		{"nrn:dataplattform", "IDs must contain at least two colon separators"},
		{"nrn:nada:push:\xfftest", "IDs must be valid UTF-8"},
	}

	for _, test := range tests {
		_, err := ParseResourceID(test.input)
		if err == nil {
			t.Fatalf("ParseResourceID(%q): expected error", test.input)
		}
		if err.Error() != test.wantMessage {
			t.Errorf("ParseResourceID(%q) message = %q, want %q", test.input, err.Error(), test.wantMessage)
		}
	}
}

func TestParseResourceIDPreservesInput(t *testing.T) {
	raw := "nrn:Nada:Push:Test "
	id, err := ParseResourceID(raw)
	if err != nil {
		t.Fatalf("ParseResourceID: %v", err)
	}
	if id.String() != raw {
		t.Errorf("String() = %q, want %q", id.String(), raw)
	}
}

func TestResourceIDSegments(t *testing.T) {
	id := MustParseResourceID("nrn:nada:push:test")
	want := []string{"nada", "push", "test"}
	if got := id.Segments(); !slices.Equal(got, want) {
		t.Errorf("Segments() = %v, want %v", got, want)
	}

	var zero ResourceID
	if got := zero.Segments(); got != nil {
		t.Errorf("zero Segments() = %v, want nil", got)
	}
}

func TestResourceIDRoundTrip(t *testing.T) {
	original := MustParseResourceID("nrn:nada:push:test")

	if original.IsZero() {
		t.Error("IsZero() = true for valid ResourceID")
	}

	type wrapper struct {
		ID ResourceID `json:"id"`
	}
	data, err := json.Marshal(wrapper{ID: original})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"id":"nrn:nada:push:test"}`
	if string(data) != want {
		t.Errorf("Marshal = %s, want %s", data, want)
	}

	var decoded wrapper
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.ID != original {
		t.Errorf("round-trip: got %q, want %q", decoded.ID, original)
	}
}

func TestResourceIDUnmarshalValidates(t *testing.T) {
	type wrapper struct {
		ID ResourceID `json:"id"`
	}

	tests := []struct {
		input   string
		wantErr error
	}{
		{`{"id":"nrn:nada"}`, ErrTooShort},
		{`{"id":"test:nada"}`, ErrInvalidPrefix},
		{`{"id":"nrn:dataplattform"}`, ErrMissingSeparators},
		{`{"id":""}`, ErrInvalidPrefix},
	}

	for _, test := range tests {
		var decoded wrapper
		err := json.Unmarshal([]byte(test.input), &decoded)
		if !errors.Is(err, test.wantErr) {
			t.Errorf("Unmarshal(%s): err=%v, want %v", test.input, err, test.wantErr)
		}
	}
}

func TestResourceIDZeroValue(t *testing.T) {
	var zero ResourceID
	if !zero.IsZero() {
		t.Error("zero value should be IsZero()")
	}
	if zero.String() != "" {
		t.Errorf("zero String() = %q, want empty", zero.String())
	}
	if _, err := zero.MarshalText(); err == nil {
		t.Error("MarshalText on zero value should fail")
	}
}

func TestMustParseResourceIDPanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustParseResourceID should panic on invalid input")
		}
	}()
	MustParseResourceID("nrn:nada")
}
