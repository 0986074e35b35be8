// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package show implements the show command, which prints stored records.
package show

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/TylerBrock/colorjson"
	"github.com/matt-FFFFFF/infrared/internal/color"
	"github.com/matt-FFFFFF/infrared/internal/sourcefile"
	"github.com/urfave/cli/v3"
)

const (
	outFlag = "out"
	indent  = 2
)

var (
	// ErrLoadRecords is returned when records cannot be read from the output directory.
	ErrLoadRecords = errors.New("failed to load records")
	// ErrWriteRecords is returned when records cannot be written to the terminal.
	ErrWriteRecords = errors.New("failed to write records")
)

// ShowCmd prints the records saved by previous runs.
var ShowCmd = NewShowCmd()

// NewShowCmd builds a fresh show command.
func NewShowCmd() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Show stored records",
		ArgsUsage: "[FILE...]",
		Description: `Print the records saved in the output directory as JSON.
With FILE arguments only the records for those identifiers are shown.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    outFlag,
				Aliases: []string{"o"},
				Usage:   "Directory records were written to",
				Value:   sourcefile.DefaultOutputDir,
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			records, err := load(sourcefile.NewStore(cmd.String(outFlag)), cmd.Args().Slice())
			if err != nil {
				return errors.Join(ErrLoadRecords, err)
			}

			out, err := render(records, color.Enabled())
			if err != nil {
				return errors.Join(ErrWriteRecords, err)
			}

			if _, err := fmt.Fprintln(cmd.Root().Writer, string(out)); err != nil {
				return errors.Join(ErrWriteRecords, err)
			}

			return nil
		},
	}
}

func load(store *sourcefile.Store, identifiers []string) ([]sourcefile.Record, error) {
	if len(identifiers) == 0 {
		return store.List() //nolint:wrapcheck
	}

	records := make([]sourcefile.Record, 0, len(identifiers))

	for _, id := range identifiers {
		r, err := store.Load(id)
		if err != nil {
			return nil, err //nolint:wrapcheck
		}

		records = append(records, r)
	}

	return records, nil
}

// render formats records as indented JSON. colorjson only understands generic JSON values,
// so the records take a round trip through encoding/json first.
func render(records []sourcefile.Record, colour bool) ([]byte, error) {
	b, err := json.Marshal(records)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	var generic []any
	if err := json.Unmarshal(b, &generic); err != nil {
		return nil, err //nolint:wrapcheck
	}

	f := colorjson.NewFormatter()
	f.Indent = indent
	f.DisabledColor = !colour

	return f.Marshal(generic) //nolint:wrapcheck
}
