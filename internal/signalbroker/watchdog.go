// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
)

// Watch reads sigCh until it is closed, ctx is done, or a signal arrives for the second time.
// On a repeated signal it calls cancel and returns.
func Watch(ctx context.Context, sigCh <-chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for {
		select {
		case <-ctx.Done():
			return
		case sig, ok := <-sigCh:
			if !ok {
				return
			}

			if _, again := seen[sig]; again {
				ctxlog.Warn(ctx, "second signal received, cancelling", "signal", sig.String())
				cancel()

				return
			}

			ctxlog.Warn(ctx, "signal received, waiting for running files; repeat to cancel", "signal", sig.String())

			seen[sig] = struct{}{}
		}
	}
}
