// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package run implements the run command, which processes a batch of files.
package run

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/infrared/internal/config"
	"github.com/matt-FFFFFF/infrared/internal/console"
	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
	"github.com/matt-FFFFFF/infrared/internal/diagnostics"
	"github.com/matt-FFFFFF/infrared/internal/fileprocessor"
	"github.com/matt-FFFFFF/infrared/internal/progress"
	"github.com/matt-FFFFFF/infrared/internal/sourcefile"
	"github.com/urfave/cli/v3"
)

// eventsPerFile is the most progress events the processor reports for one file:
// a dispatch, then a completion or a failure.
const eventsPerFile = 2

const (
	configFlag      = "config"
	baseFlag        = "base"
	outFlag         = "out"
	globFlag        = "glob"
	diagnosticsFlag = "diagnostics"
	debugLogFlag    = "debug-log"

	// DiagnosticsEnvVar enables diagnostics when set to any non-empty value.
	DiagnosticsEnvVar = "DEBUG"
)

// RunCmd processes the files named on the command line and in the project file.
var RunCmd = NewRunCmd()

// NewRunCmd builds a fresh run command.
func NewRunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Parse and persist a batch of files concurrently",
		ArgsUsage: "[FILE...]",
		Description: `Each FILE is resolved against the base directory and parsed in parallel.
A record for each file is written to the output directory.
The command fails as soon as any file fails.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:      configFlag,
				Aliases:   []string{"c"},
				Usage:     "Project file (YAML or HCL). Defaults to infrared.yaml, infrared.yml or infrared.hcl in the working directory",
				TakesFile: true,
			},
			&cli.StringFlag{
				Name:    baseFlag,
				Aliases: []string{"b"},
				Usage:   "Base directory that files are resolved against",
			},
			&cli.StringFlag{
				Name:    outFlag,
				Aliases: []string{"o"},
				Usage:   "Directory records are written to",
			},
			&cli.StringSliceFlag{
				Name:    globFlag,
				Aliases: []string{"g"},
				Usage:   "Glob, relative to the base directory, selecting more files (may be repeated)",
			},
			&cli.BoolFlag{
				Name:  diagnosticsFlag,
				Usage: "Record timing information and write to the debug log. Also enabled by a non-empty " + DiagnosticsEnvVar,
			},
			&cli.StringFlag{
				Name:      debugLogFlag,
				Usage:     "Debug log file used when diagnostics are enabled",
				Value:     diagnostics.DefaultLogFile,
				TakesFile: true,
			},
		},
		Action: actionFunc,
	}
}

func actionFunc(ctx context.Context, cmd *cli.Command) error {
	project, err := resolveProject(cmd)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if err := project.Validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	files, err := project.Identifiers()
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	runID := uuid.NewString()
	ctx = ctxlog.With(ctx, "command", "run")

	reporter := progress.NewChannelReporter(ctx, eventBufferSize(len(files)))
	reporter.Listen(progress.ListenerFunc(func(e progress.Event) {
		ctxlog.Info(ctx, "file "+e.Type.String(), "identifier", e.Identifier, "index", e.Index)
	}))

	defer func() {
		reporter.Close()

		if n := reporter.Dropped(); n > 0 {
			ctxlog.Warn(ctx, "progress events dropped", "count", n)
		}
	}()

	state := &diagnostics.State{}
	parser := sourcefile.NewParser(runID, sourcefile.NewStore(project.OutputDir))

	proc, err := fileprocessor.New[sourcefile.Record](parser, fileprocessor.Options{
		DiagnosticsEnabled: project.Diagnostics,
		Diagnostics:        diagnostics.NewRecorder(state, diagnostics.NewFileSink(project.DebugLog)),
		Notifier:           console.New(cmd.Root().Writer),
		RunID:              runID,
		Reporter:           reporter,
	})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	records, err := proc.Process(ctx, files, project.BasePath)
	if err != nil {
		return cli.Exit(fmt.Sprintf("file processing failed: %s", err.Error()), 1)
	}

	return writeSummary(cmd, records, state, project.Diagnostics)
}

// eventBufferSize holds every event a batch of n files can report, so none are dropped.
func eventBufferSize(n int) int {
	return eventsPerFile*n + 1
}

func resolveProject(cmd *cli.Command) (config.Project, error) {
	var project config.Project

	path := cmd.String(configFlag)
	if path == "" {
		path = config.Find(".")
	}

	if path != "" {
		p, err := config.Load(path)
		if err != nil {
			return project, err //nolint:wrapcheck
		}

		project = *p
	}

	project = project.Merge(config.Project{
		BasePath:    cmd.String(baseFlag),
		Files:       cmd.Args().Slice(),
		Globs:       cmd.StringSlice(globFlag),
		OutputDir:   cmd.String(outFlag),
		Diagnostics: cmd.Bool(diagnosticsFlag) || os.Getenv(DiagnosticsEnvVar) != "",
	})

	if cmd.IsSet(debugLogFlag) || project.DebugLog == "" {
		project.DebugLog = cmd.String(debugLogFlag)
	}

	if project.BasePath == "" {
		project.BasePath = "."
	}

	return project, nil
}

func writeSummary(cmd *cli.Command, records []sourcefile.Record, state *diagnostics.State, timed bool) error {
	w := cmd.Root().Writer

	for _, r := range records {
		if _, err := fmt.Fprintf(w, " %s  %d lines  %d imports\n", r.Identifier, r.Lines, len(r.Imports)); err != nil {
			return cli.Exit("failed to write summary: "+err.Error(), 1)
		}
	}

	msg := fmt.Sprintf("\n Processed %d files", len(records))
	if timed {
		msg += fmt.Sprintf(" in %s", state.Elapsed(diagnostics.Now()))
	}

	if _, err := fmt.Fprintln(w, msg); err != nil {
		return cli.Exit("failed to write summary: "+err.Error(), 1)
	}

	return nil
}
