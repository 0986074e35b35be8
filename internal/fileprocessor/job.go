// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package fileprocessor

import (
	"context"
	"fmt"
	"path/filepath"
)

// Job is one file to process.
type Job struct {
	Index      int    // Position in the input list
	Identifier string // The file identifier as given by the caller
	Path       string // Identifier joined to the base path
}

// NewJobs resolves every identifier against basePath. No existence check is made.
func NewJobs(files []string, basePath string) []Job {
	jobs := make([]Job, len(files))
	for i, f := range files {
		jobs[i] = Job{
			Index:      i,
			Identifier: f,
			Path:       filepath.Join(basePath, f),
		}
	}

	return jobs
}

// Handler parses and persists a single file.
type Handler[T any] interface {
	Handle(ctx context.Context, absolutePath, identifier string) (T, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc[T any] func(ctx context.Context, absolutePath, identifier string) (T, error)

// Handle implements Handler.
func (f HandlerFunc[T]) Handle(ctx context.Context, absolutePath, identifier string) (T, error) {
	return f(ctx, absolutePath, identifier)
}

// JobPanicError is returned when a handler panics. It wraps the recovered value if it was an error.
type JobPanicError struct {
	Job   Job
	Value any
}

// Error implements the error interface.
func (e *JobPanicError) Error() string {
	return fmt.Sprintf("handler panic for %s: %v", e.Job.Identifier, e.Value)
}

// Unwrap returns the recovered value if it is an error.
func (e *JobPanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}

	return nil
}
