// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestNewCommandLogger_JSONWhenNotTerminal(t *testing.T) {
	var buffer bytes.Buffer
	level := new(slog.LevelVar)
	logger := NewCommandLogger(&buffer, level)

	logger.Debug("hidden")
	logger.Info("encoded", "format", "cbor")

	var record map[string]any
	if err := json.Unmarshal(buffer.Bytes(), &record); err != nil {
		t.Fatalf("log output is not a single JSON record: %v\n%s", err, buffer.String())
	}
	if record["msg"] != "encoded" || record["format"] != "cbor" {
		t.Errorf("record = %v", record)
	}

	buffer.Reset()
	level.Set(slog.LevelDebug)
	logger.Debug("visible")
	if buffer.Len() == 0 {
		t.Error("debug record not written after lowering level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}
	for name, want := range tests {
		got, err := ParseLevel(name)
		if err != nil || got != want {
			t.Errorf("ParseLevel(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("ParseLevel(loud) succeeded")
	}
}
