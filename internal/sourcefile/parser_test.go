// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sourcefile

import (
	"context"
	"testing"
	"time"

	"github.com/matt-FFFFFF/infrared/internal/fileprocessor"
	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var _ fileprocessor.Handler[Record] = (*Parser)(nil)

func newMemParser(t *testing.T) (*Parser, afero.Fs) {
	t.Helper()

	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	t.Cleanup(stubs.Reset)

	p := NewParser("run-1", NewStore("/out"))
	p.now = func() time.Time { return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC) }

	return p, fs
}

func TestParser_Handle(t *testing.T) {
	p, fs := newMemParser(t)
	require.NoError(t, afero.WriteFile(fs, "/proj/a.js", []byte("const x = require('x');\n"), 0o644))

	r, err := p.Handle(context.Background(), "/proj/a.js", "a.js")
	require.NoError(t, err)
	assert.Equal(t, "run-1", r.RunID)
	assert.Equal(t, "a.js", r.Identifier)
	assert.Equal(t, "/proj/a.js", r.Path)
	assert.Equal(t, 1, r.Lines)
	assert.Equal(t, []string{"x"}, r.Imports)

	stored, err := p.Store.Load("a.js")
	require.NoError(t, err)
	assert.Equal(t, r.SHA256, stored.SHA256)
}

func TestParser_Errors(t *testing.T) {
	p, fs := newMemParser(t)
	require.NoError(t, afero.WriteFile(fs, "/proj/empty.js", nil, 0o644))

	_, err := p.Handle(context.Background(), "/proj/missing.js", "missing.js")
	assert.ErrorIs(t, err, ErrReadFile)

	_, err = p.Handle(context.Background(), "/proj/empty.js", "empty.js")
	assert.ErrorIs(t, err, ErrEmptyFile)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = p.Handle(ctx, "/proj/empty.js", "empty.js")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestParser_WithProcessor(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, fs := newMemParser(t)
	files := []string{"a.js", "lib/b.js", "c.js"}

	for _, f := range files {
		require.NoError(t, afero.WriteFile(fs, "/proj/"+f, []byte("import y from 'y';\n"), 0o644))
	}

	proc, err := fileprocessor.New[Record](p, fileprocessor.Options{})
	require.NoError(t, err)

	records, err := proc.Process(context.Background(), files, "/proj")
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i, f := range files {
		assert.Equal(t, f, records[i].Identifier)
		assert.Equal(t, "/proj/"+f, records[i].Path)
	}

	all, err := p.Store.List()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestParser_WithProcessorFailure(t *testing.T) {
	defer goleak.VerifyNone(t)

	p, fs := newMemParser(t)
	require.NoError(t, afero.WriteFile(fs, "/proj/a.js", []byte("1;\n"), 0o644))

	proc, err := fileprocessor.New[Record](p, fileprocessor.Options{})
	require.NoError(t, err)

	records, err := proc.Process(context.Background(), []string{"a.js", "gone.js"}, "/proj")
	assert.ErrorIs(t, err, ErrReadFile)
	assert.Nil(t, records)
}
