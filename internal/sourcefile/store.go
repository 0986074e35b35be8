// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sourcefile

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

const (
	// DefaultOutputDir is where records are written when no directory is configured.
	DefaultOutputDir = ".infrared"
	recordExt        = ".yaml"
	sixFourFour      = 0o644
	sevenFiveFive    = 0o755
)

var (
	// ErrPersist is returned when a record cannot be written.
	ErrPersist = errors.New("failed to persist record")
	// ErrLoad is returned when a record cannot be read back.
	ErrLoad = errors.New("failed to load record")
)

// FsFactory returns the filesystem used by new stores and parsers.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Store keeps records as YAML files in a directory.
type Store struct {
	Dir string
	fs  afero.Fs
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string) *Store {
	if dir == "" {
		dir = DefaultOutputDir
	}

	return &Store{Dir: dir, fs: FsFactory()}
}

// Key maps an identifier to a file name inside the store.
// Identifiers that name the same cleaned path share a key; any other two identifiers never do.
func Key(identifier string) string {
	return url.PathEscape(filepath.ToSlash(filepath.Clean(identifier))) + recordExt
}

// Save writes r, replacing any previous record for the same identifier.
func (s *Store) Save(r Record) error {
	b, err := yaml.Marshal(r)
	if err != nil {
		return errors.Join(ErrPersist, err)
	}

	if err := s.fs.MkdirAll(s.Dir, sevenFiveFive); err != nil {
		return errors.Join(ErrPersist, err)
	}

	if err := afero.WriteFile(s.fs, filepath.Join(s.Dir, Key(r.Identifier)), b, sixFourFour); err != nil {
		return errors.Join(ErrPersist, err)
	}

	return nil
}

// Load reads the record for identifier.
func (s *Store) Load(identifier string) (Record, error) {
	return s.read(filepath.Join(s.Dir, Key(identifier)))
}

// List returns every stored record, sorted by identifier.
// A missing store directory yields no records.
func (s *Store) List() ([]Record, error) {
	entries, err := afero.ReadDir(s.fs, s.Dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}

	if err != nil {
		return nil, errors.Join(ErrLoad, err)
	}

	records := make([]Record, 0, len(entries))

	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != recordExt {
			continue
		}

		r, err := s.read(filepath.Join(s.Dir, e.Name()))
		if err != nil {
			return nil, err
		}

		records = append(records, r)
	}

	slices.SortFunc(records, func(a, b Record) int { return strings.Compare(a.Identifier, b.Identifier) })

	return records, nil
}

func (s *Store) read(path string) (Record, error) {
	b, err := afero.ReadFile(s.fs, path)
	if err != nil {
		return Record{}, errors.Join(ErrLoad, err)
	}

	var r Record
	if err := yaml.Unmarshal(b, &r); err != nil {
		return Record{}, errors.Join(ErrLoad, fmt.Errorf("%s: %w", path, err))
	}

	return r, nil
}
