// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides YAML configuration loading for the devrapid
// CLI.
//
// Configuration is loaded from a single file specified by either the
// DEVRAPID_CONFIG environment variable (via [Load]) or a --config flag
// (via [LoadFile]). There are no fallbacks, no ~/.config discovery,
// and no automatic file search.
//
// Variable expansion is performed on event default values after
// loading: ${VAR} and ${VAR:-default} patterns are expanded from the
// environment. No other environment variables override config values.
//
// Key exports:
//
//   - [Config] -- output format, indentation, log level, event defaults
//   - [Default] -- returns a Config usable without a file
//   - [Load] and [LoadFile] -- the two entry points for loading
//
// This package depends on no other DevRapid packages.
package config
