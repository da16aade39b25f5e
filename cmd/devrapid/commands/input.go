// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/codec"
	"github.com/nada-devrapid/devrapid/lib/codec/jsonwire"
)

// readInput resolves input data from either a file (the last element
// of args, if it names a regular file on disk) or stdin.
//
// When hexMode is true, the raw bytes are treated as hex-encoded
// binary: whitespace is stripped and the hex is decoded.
//
// Returns the input bytes and the args with any consumed file path
// removed. The caller is responsible for validating that the returned
// args are acceptable.
func readInput(stdin io.Reader, args []string, hexMode bool) ([]byte, []string, error) {
	var data []byte
	remainingArgs := args

	if length := len(args); length > 0 {
		candidate := args[length-1]
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			data, err = os.ReadFile(candidate)
			if err != nil {
				return nil, nil, fmt.Errorf("read %s: %w", candidate, err)
			}
			remainingArgs = args[:length-1]
		}
	}

	if data == nil {
		var err error
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
	}

	if hexMode {
		decoded, err := decodeHexInput(data)
		if err != nil {
			return nil, nil, err
		}
		data = decoded
	}

	return data, remainingArgs, nil
}

// decodeHexInput strips whitespace from hex-encoded input and decodes
// it to binary bytes. Whitespace between hex digit pairs is allowed
// (e.g., "82 81 72" or "828172").
func decodeHexInput(data []byte) ([]byte, error) {
	cleaned := bytes.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, data)

	if len(cleaned) == 0 {
		return nil, fmt.Errorf("empty input after stripping whitespace from hex")
	}

	decoded := make([]byte, hex.DecodedLen(len(cleaned)))
	count, err := hex.Decode(decoded, cleaned)
	if err != nil {
		return nil, fmt.Errorf("decode hex: %w", err)
	}
	return decoded[:count], nil
}

// isText reports whether c produces text rather than binary.
func isText(c codec.Codec) bool {
	return c.Name() == jsonwire.Name
}

// readEvent reads one encoded event for a command that takes an
// optional file argument and nothing else. Hex input only applies to
// binary codecs.
func readEvent(stdin io.Reader, args []string, c codec.Codec, hexMode bool, command string) ([]byte, error) {
	data, remainingArgs, err := readInput(stdin, args, hexMode && !isText(c))
	if err != nil {
		return nil, cli.Validation("%w", err)
	}
	if len(remainingArgs) > 0 {
		return nil, cli.Validation("%s takes no positional arguments besides an optional file path, got %q", command, remainingArgs[0])
	}
	if len(data) == 0 {
		return nil, cli.Validation("empty input: expected a %s-encoded event", c.Name())
	}
	return data, nil
}
