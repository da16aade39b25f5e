// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

package testutil

import (
	"errors"
	"fmt"
)

// RequireErrorIs fails the test unless errors.Is(err, target).
//
//	testutil.RequireErrorIs(t, err, schema.ErrInvalidTimestamp, "decoding %s", name)
func RequireErrorIs(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, err, target error, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %v, got nil: %s", target, formatMessage(msgAndArgs))
	}
	if !errors.Is(err, target) {
		t.Fatalf("error = %v, want %v: %s", err, target, formatMessage(msgAndArgs))
	}
}

// RequireErrorMessage fails the test unless err is non-nil and its
// message is exactly want.
func RequireErrorMessage(t interface {
	Helper()
	Fatalf(format string, args ...any)
}, err error, want string, msgAndArgs ...any) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error %q, got nil: %s", want, formatMessage(msgAndArgs))
	}
	if err.Error() != want {
		t.Fatalf("error message = %q, want %q: %s", err.Error(), want, formatMessage(msgAndArgs))
	}
}

// formatMessage formats optional message arguments into a string.
// Accepts either a single string or a format string followed by args.
func formatMessage(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return "(no message)"
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if format, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs)
}
