// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingSink struct{}

func (failingSink) WriteLine(string) error {
	return errors.New("disk full")
}

func TestRecorder_MarkStart(t *testing.T) {
	fixed := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	stubs := gostub.Stub(&Now, func() time.Time { return fixed })
	defer stubs.Reset()

	buf := &bytes.Buffer{}
	r := NewRecorder(nil, &WriterSink{W: buf})
	r.MarkStart(context.Background())

	ms, ok := r.State.StartMillis()
	require.True(t, ok)
	assert.Equal(t, fixed.UnixMilli(), ms)
	assert.Equal(t, "[2025-01-02 03:04:05.000] Starting file processing\n", buf.String())
}

func TestRecorder_MarkStartSinkErrorIgnored(t *testing.T) {
	r := NewRecorder(&State{}, failingSink{})

	assert.NotPanics(t, func() { r.MarkStart(context.Background()) })

	_, ok := r.State.StartMillis()
	assert.True(t, ok)
}

func TestRecorder_NilSink(t *testing.T) {
	r := NewRecorder(nil, nil)
	r.MarkStart(context.Background())

	_, ok := r.State.StartMillis()
	assert.True(t, ok)
}

func TestFileSink_Appends(t *testing.T) {
	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	sink := NewFileSink("logs/debug.log")
	require.NoError(t, sink.WriteLine("one"))
	require.NoError(t, sink.WriteLine("two"))

	content, err := afero.ReadFile(fs, "logs/debug.log")
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(content))
}

func TestFileSink_DefaultPath(t *testing.T) {
	fs := afero.NewMemMapFs()
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	sink := NewFileSink("")
	require.NoError(t, sink.WriteLine("hello"))

	exists, err := afero.Exists(fs, DefaultLogFile)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestFileSink_ReadOnlyFs(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	stubs := gostub.Stub(&FsFactory, func() afero.Fs { return fs })
	defer stubs.Reset()

	err := NewFileSink("debug.log").WriteLine("nope")
	assert.ErrorIs(t, err, ErrDebugLogWrite)
}
