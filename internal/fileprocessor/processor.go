// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fileprocessor

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
	"github.com/matt-FFFFFF/infrared/internal/progress"
)

// ErrNilHandler is returned by New when no handler is supplied.
var ErrNilHandler = errors.New("file processor requires a handler")

// Notifier is told once per batch that processing has started.
type Notifier interface {
	Started(ctx context.Context)
}

// StartMarker records the diagnostic start marker.
type StartMarker interface {
	MarkStart(ctx context.Context)
}

// Options configure a Processor.
type Options struct {
	// DiagnosticsEnabled gates the start marker. It replaces reading a DEBUG environment variable.
	DiagnosticsEnabled bool
	// Diagnostics records the start marker when DiagnosticsEnabled is true.
	Diagnostics StartMarker
	// Notifier is told that processing started. Optional.
	Notifier Notifier
	// RunID labels log lines for one batch. A random UUID is used when empty.
	RunID string
	// Reporter receives per-file events. Events are only sent before Process returns;
	// outcomes of jobs abandoned after the first failure are never reported.
	Reporter progress.Reporter
}

// Processor runs a handler over a batch of files.
type Processor[T any] struct {
	handler Handler[T]
	opts    Options
}

// New creates a Processor for handler.
func New[T any](handler Handler[T], opts Options) (*Processor[T], error) {
	if handler == nil {
		return nil, ErrNilHandler
	}

	if opts.Reporter == nil {
		opts.Reporter = progress.NullReporter{}
	}

	return &Processor[T]{
		handler: handler,
		opts:    opts,
	}, nil
}

type jobOutcome[T any] struct {
	index int
	value T
	err   error
}

// Process resolves each file against basePath, runs the handler for all of them concurrently and
// returns the results in the same order as files.
// On the first handler error it returns that error unchanged without waiting for the remaining jobs.
// The context passed to handlers is cancelled once Process returns.
func (p *Processor[T]) Process(ctx context.Context, files []string, basePath string) ([]T, error) {
	runID := p.opts.RunID
	if runID == "" {
		runID = uuid.NewString()
	}

	ctx = ctxlog.With(ctx, "runID", runID)
	logger := ctxlog.Logger(ctx)

	if p.opts.DiagnosticsEnabled && p.opts.Diagnostics != nil {
		p.opts.Diagnostics.MarkStart(ctx)
	}

	if p.opts.Notifier != nil {
		p.opts.Notifier.Started(ctx)
	}

	jobs := NewJobs(files, basePath)
	results := make([]T, len(jobs))

	if len(jobs) == 0 {
		logger.Debug("no files to process")
		return results, nil
	}

	jobCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Buffered so that abandoned jobs never block after we have settled.
	outcomes := make(chan jobOutcome[T], len(jobs))

	for _, job := range jobs {
		logger.Debug("dispatching job", "index", job.Index, "identifier", job.Identifier, "path", job.Path)

		go func(j Job) {
			outcomes <- p.run(jobCtx, j)
		}(job)

		p.report(progress.EventDispatched, job.Index, files[job.Index], nil)
	}

	for remaining := len(jobs); remaining > 0; remaining-- {
		select {
		case o := <-outcomes:
			if o.err != nil {
				logger.Debug("job failed, settling batch", "index", o.index, "error", o.err)
				p.report(progress.EventFailed, o.index, files[o.index], o.err)

				return nil, o.err
			}

			results[o.index] = o.value
			p.report(progress.EventCompleted, o.index, files[o.index], nil)
		case <-ctx.Done():
			logger.Debug("batch abandoned", "error", ctx.Err())
			return nil, ctx.Err() //nolint:wrapcheck
		}
	}

	logger.Debug("all jobs succeeded", "count", len(jobs))

	return results, nil
}

func (p *Processor[T]) report(t progress.EventType, index int, identifier string, err error) {
	p.opts.Reporter.Report(progress.Event{
		Type:       t,
		Index:      index,
		Identifier: identifier,
		Err:        err,
		Timestamp:  time.Now(),
	})
}

func (p *Processor[T]) run(ctx context.Context, j Job) (o jobOutcome[T]) {
	o.index = j.Index

	defer func() {
		if r := recover(); r != nil {
			ctxlog.Error(ctx, "handler panicked", "identifier", j.Identifier, "panic", r)
			o.err = &JobPanicError{Job: j, Value: r}
		}
	}()

	o.value, o.err = p.handler.Handle(ctx, j.Path, j.Identifier)

	return o
}
