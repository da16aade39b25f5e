// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Package testutil provides shared test helpers for DevRapid packages.
//
// [RequireErrorIs] and [RequireErrorMessage] assert on the validation
// error contract: the sentinel kind (via errors.Is) and, where
// consumers depend on it, the exact message text.
//
// [WriteFile] writes fixture content into a per-test temporary
// directory and returns the path, for tests of commands and loaders
// that read from disk.
//
// [UniqueID] generates monotonically increasing identifiers for test
// disambiguation. Use it instead of time.Now() when tests need unique
// application names or resource ID suffixes.
//
// All helpers call t.Fatalf on failure rather than returning errors,
// since test setup failures are not recoverable.
//
// This package has no DevRapid-internal dependencies.
package testutil
