// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main is the entry point for the infrared command-line application.
package main

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/infrared/cmd"
	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
	"github.com/matt-FFFFFF/infrared/internal/signalbroker"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	sigCh := signalbroker.New(ctx)
	go signalbroker.Watch(ctx, sigCh, cancel)

	err := cmd.RootCmd.Run(ctx, os.Args)

	signalbroker.Stop(sigCh)
	cancel()

	if err != nil {
		ctxlog.Error(ctx, "command failed", "error", err)
		os.Exit(1)
	}
}
