// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/nada-devrapid/devrapid/lib/testutil"
)

func TestDecodeHexInput(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []byte
		wantErr bool
	}{
		{
			name:  "lowercase hex",
			input: "8281726e",
			want:  []byte{0x82, 0x81, 0x72, 0x6e},
		},
		{
			name:  "uppercase hex",
			input: "8281726E",
			want:  []byte{0x82, 0x81, 0x72, 0x6e},
		},
		{
			name:  "hex with spaces",
			input: "82 81 72 6e",
			want:  []byte{0x82, 0x81, 0x72, 0x6e},
		},
		{
			name:  "hex with newlines and tabs",
			input: "8281\n72\t6e\n",
			want:  []byte{0x82, 0x81, 0x72, 0x6e},
		},
		{
			name:    "invalid hex",
			input:   "not hex data",
			wantErr: true,
		},
		{
			name:    "odd length",
			input:   "828",
			wantErr: true,
		},
		{
			name:    "empty after whitespace",
			input:   "   \n\t  ",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := decodeHexInput([]byte(tt.input))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %x, want %x", got, tt.want)
			}
		})
	}
}

func TestReadInput_FileArg(t *testing.T) {
	content := []byte("test content for file arg")
	path := testutil.WriteFile(t, "event.json", content)

	data, remaining, err := readInput(strings.NewReader("stdin content"), []string{"extra", path}, false)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if !bytes.Equal(data, content) {
		t.Errorf("data = %q, want file content", data)
	}
	if len(remaining) != 1 || remaining[0] != "extra" {
		t.Errorf("remaining = %v, want [extra]", remaining)
	}
}

func TestReadInput_Stdin(t *testing.T) {
	data, remaining, err := readInput(strings.NewReader("82 81"), []string{"not-a-file"}, true)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if !bytes.Equal(data, []byte{0x82, 0x81}) {
		t.Errorf("data = %x, want 8281", data)
	}
	if len(remaining) != 1 || remaining[0] != "not-a-file" {
		t.Errorf("remaining = %v, want the non-file argument kept", remaining)
	}
}

func TestReadInput_DirectoryIsNotAFile(t *testing.T) {
	directory := t.TempDir()
	data, remaining, err := readInput(strings.NewReader("from stdin"), []string{directory}, false)
	if err != nil {
		t.Fatalf("readInput: %v", err)
	}
	if string(data) != "from stdin" || len(remaining) != 1 {
		t.Errorf("data = %q, remaining = %v", data, remaining)
	}
}
