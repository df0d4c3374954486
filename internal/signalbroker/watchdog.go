// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/symalign/internal/ctxlog"
)

// Watch monitors the signal channel until it is closed.
// It cancels the context on the second signal of a given type and returns.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Warn(ctx, "watchdog", "detail", "received second signal of type, terminating", "signal", sig.String())
			cancel()

			return
		}

		ctxlog.Warn(ctx, "watchdog", "detail", "received first signal of type, send again to terminate", "signal", sig.String())

		seen[sig] = struct{}{}
	}
}
