// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"fmt"
	"sync/atomic"
)

var uniqueCounter atomic.Uint64

// UniqueID returns a string of the form "prefix-N" where N is a
// monotonically increasing integer. Use this instead of time.Now() when
// tests need distinguishable application names or NRN suffixes.
//
//	app := testutil.UniqueID("app")               // "app-1", "app-2", ...
//	id := "nrn:nada:push:" + testutil.UniqueID("t") // "nrn:nada:push:t-3", ...
func UniqueID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, uniqueCounter.Add(1))
}
