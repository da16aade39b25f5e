// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package version provides build version information for the devrapid
// binary.
//
// Version information is injected at build time via -ldflags, for example:
//
//	go build -ldflags "-X github.com/nada-devrapid/devrapid/lib/version.GitCommit=$(git rev-parse --short HEAD)"
package version
