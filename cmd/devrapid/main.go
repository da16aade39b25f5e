// Copyright 2026 The DevRapid Authors
// SPDX-License-Identifier: Apache-2.0

// Command devrapid builds, converts, and checks DevEvent envelopes.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nada-devrapid/devrapid/cmd/devrapid/cli"
	"github.com/nada-devrapid/devrapid/cmd/devrapid/commands"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := commands.Root(commands.DefaultEnvironment()).Execute(ctx, os.Args[1:])
	if err == nil {
		return 0
	}

	// Commands that print their own output (like roundtrip) return an
	// ExitError with the desired exit code. Don't print a redundant
	// "error:" line for those.
	if coder, ok := err.(interface{ ExitCode() int }); ok {
		return coder.ExitCode()
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	var toolError *cli.ToolError
	if errors.As(err, &toolError) {
		return toolError.ExitStatus()
	}
	return 1
}
