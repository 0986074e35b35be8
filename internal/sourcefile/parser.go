// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sourcefile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
	"github.com/spf13/afero"
)

var (
	// ErrReadFile is returned when the source file cannot be read.
	ErrReadFile = errors.New("failed to read source file")
	// ErrEmptyFile is returned for files with no content.
	ErrEmptyFile = errors.New("source file is empty")
)

// Parser reads, analyses and persists source files. It is safe for concurrent use.
type Parser struct {
	RunID string
	Store *Store
	fs    afero.Fs
	now   func() time.Time
}

// NewParser creates a Parser that saves records to store.
func NewParser(runID string, store *Store) *Parser {
	return &Parser{
		RunID: runID,
		Store: store,
		fs:    FsFactory(),
		now:   time.Now,
	}
}

// Handle parses the file at absolutePath and persists its record under identifier.
func (p *Parser) Handle(ctx context.Context, absolutePath, identifier string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err //nolint:wrapcheck
	}

	content, err := afero.ReadFile(p.fs, absolutePath)
	if err != nil {
		return Record{}, errors.Join(ErrReadFile, fmt.Errorf("%s: %w", identifier, err))
	}

	if len(content) == 0 {
		return Record{}, fmt.Errorf("%w: %s", ErrEmptyFile, identifier)
	}

	r := Analyse(content)
	r.RunID = p.RunID
	r.Identifier = identifier
	r.Path = absolutePath
	r.ParsedAt = p.now().UTC()

	if p.Store != nil {
		if err := p.Store.Save(r); err != nil {
			return Record{}, fmt.Errorf("%s: %w", identifier, err)
		}
	}

	ctxlog.Debug(ctx, "parsed source file",
		"identifier", identifier,
		"lines", r.Lines,
		"imports", len(r.Imports))

	return r, nil
}
