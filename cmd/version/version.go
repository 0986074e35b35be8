// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package version implements the version command.
package version

import (
	"context"
	"fmt"

	"github.com/matt-FFFFFF/infrared"
	"github.com/urfave/cli/v3"
)

// VersionCmd prints the build version and commit.
var VersionCmd = &cli.Command{
	Name:  "version",
	Usage: "Print the version",
	Action: func(_ context.Context, cmd *cli.Command) error {
		_, err := fmt.Fprintf(cmd.Root().Writer, "infrared %s (%s)\n", infrared.Version, infrared.Commit)
		return err //nolint:wrapcheck
	},
}
