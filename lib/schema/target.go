// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package schema

// Target identifies where a deployment landed. All three fields are
// required on the wire; their contents are not validated.
type Target struct {
	// Namespace is the cluster namespace (e.g., "q1").
	Namespace string

	// Zone is the network zone (e.g., "fss").
	Zone string

	// Environment is the deployment environment (e.g., "preprod").
	Environment string
}
