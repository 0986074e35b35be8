// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

const (
	// DefaultLogFile is the debug log file name used when none is configured.
	DefaultLogFile = "infrared-debug.log"
	sixFourFour    = 0o644
	sevenFiveFive  = 0o755
)

// ErrDebugLogWrite is returned when a line cannot be appended to the debug log.
var ErrDebugLogWrite = errors.New("failed to write debug log")

// FsFactory returns the filesystem used by FileSink.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Sink is an append-only text sink for diagnostic lines.
type Sink interface {
	WriteLine(line string) error
}

// FileSink appends lines to a file, creating it and its parent directory if required.
type FileSink struct {
	Path string
	fs   afero.Fs
	mu   sync.Mutex
}

// NewFileSink creates a FileSink writing to path on the filesystem returned by FsFactory.
func NewFileSink(path string) *FileSink {
	if path == "" {
		path = DefaultLogFile
	}

	return &FileSink{
		Path: path,
		fs:   FsFactory(),
	}
}

// WriteLine appends line, followed by a newline, to the debug log file.
func (s *FileSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := s.fs.MkdirAll(dir, sevenFiveFive); err != nil {
			return errors.Join(ErrDebugLogWrite, err)
		}
	}

	f, err := s.fs.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, sixFourFour)
	if err != nil {
		return errors.Join(ErrDebugLogWrite, err)
	}

	defer f.Close() //nolint:errcheck

	if _, err := fmt.Fprintln(f, line); err != nil {
		return errors.Join(ErrDebugLogWrite, err)
	}

	return nil
}

// WriterSink writes lines to an io.Writer.
type WriterSink struct {
	W  io.Writer
	mu sync.Mutex
}

// WriteLine implements Sink.
func (s *WriterSink) WriteLine(line string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := fmt.Fprintln(s.W, line); err != nil {
		return errors.Join(ErrDebugLogWrite, err)
	}

	return nil
}
