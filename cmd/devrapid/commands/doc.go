// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the devrapid command tree.
//
// Every command reads and writes through an [Environment] so tests can
// drive the full tree with buffers, a fake clock, and fixed entropy.
// Commands that handle events resolve their configuration once per
// invocation (--config, then DEVRAPID_CONFIG, then built-in defaults)
// and look codecs up by name in a registry built from it.
package commands
