// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains the symalign command-line interface (CLI).
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/symalign/internal/ctxlog"
	"github.com/matt-FFFFFF/symalign/internal/signalbroker"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	sigCh := signalbroker.New(ctx)
	defer signalbroker.Stop(sigCh)

	go signalbroker.Watch(ctx, sigCh, cancel)

	err := newRootCmd().Run(ctx, os.Args)

	// Check if the context was cancelled (e.g., due to signals)
	if ctx.Err() != nil {
		ctxlog.Error(ctx, "command terminated due to cancellation", "error", ctx.Err())
		return 1
	}

	if err != nil {
		ctxlog.Error(ctx, "command execution failed", "error", err)
		return 1
	}

	ctxlog.Info(ctx, "command completed successfully")

	return 0
}
