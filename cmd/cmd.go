// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package cmd contains the command-line interface (CLI) for infrared.
package cmd

import (
	"os"

	"github.com/matt-FFFFFF/infrared/cmd/run"
	"github.com/matt-FFFFFF/infrared/cmd/show"
	"github.com/matt-FFFFFF/infrared/cmd/version"
	"github.com/urfave/cli/v3"
)

// RootCmd is the root command for the CLI.
var RootCmd = &cli.Command{
	Commands: []*cli.Command{
		run.RunCmd,
		show.ShowCmd,
		version.VersionCmd,
	},
	Writer:    os.Stdout,
	ErrWriter: os.Stderr,
	Name:      "infrared",
	Description: `Infrared parses a batch of source files concurrently and persists a record for each one.
Files are resolved against a base directory, every file is handled in parallel and the
batch fails as soon as any single file fails.`,
	Usage:     "infrared run --base ./src a.js b.js",
	Copyright: "Copyright (c) matt-FFFFFF 2025. All rights reserved.",
	Authors: []any{
		"Matt White (matt-FFFFFF)",
	},
	EnableShellCompletion: true,
}
