// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli is the command framework for the devrapid binary.
//
// A [Command] tree dispatches on the first positional argument, parses
// pflag flag sets lazily, and prints structured help. Unknown commands
// and flags produce "did you mean" suggestions based on edit distance.
//
// Errors carry intent: [ToolError] classifies a failure (validation,
// not found, internal) and [ExitError] requests a non-zero exit without
// an extra error line, for commands that already printed their result.
//
// Output helpers detect whether a writer is a terminal. On a terminal,
// JSON is syntax-highlighted with chroma and checklists are styled with
// lipgloss; otherwise output is plain so that pipes and files see
// exactly the encoded bytes.
package cli
