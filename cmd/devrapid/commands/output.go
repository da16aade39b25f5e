// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"encoding/hex"
	"fmt"
	"io"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/lib/codec"
)

// writeEncoded writes data produced by c. Text is highlighted on a
// terminal. Binary is written raw unless hexMode is set or w is a
// terminal, in which case it is written as one line of lowercase hex.
func writeEncoded(w io.Writer, c codec.Codec, data []byte, hexMode bool) error {
	if isText(c) {
		return cli.WriteHighlighted(w, string(data), "json")
	}
	if hexMode || cli.IsTerminal(w) {
		_, err := fmt.Fprintln(w, hex.EncodeToString(data))
		return err
	}
	_, err := w.Write(data)
	return err
}
