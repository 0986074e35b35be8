// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"
)

// ErrGlob is returned when a glob cannot be expanded.
var ErrGlob = errors.New("failed to expand glob")

func validPattern(p string) bool {
	return p != "" && doublestar.ValidatePattern(filepath.ToSlash(p))
}

// Identifiers returns the explicit files followed by the matches of every glob,
// relative to the base path, in the order they were declared.
// Explicit files are passed through unchanged: they are neither checked nor deduplicated.
func (p Project) Identifiers() ([]string, error) {
	out := append([]string{}, p.Files...)

	if len(p.Globs) == 0 {
		return out, nil
	}

	fsys := afero.NewIOFS(globRoot(FsFactory(), p.BasePath))

	for _, g := range p.Globs {
		matches, err := doublestar.Glob(fsys, filepath.ToSlash(g), doublestar.WithFilesOnly())
		if err != nil {
			return nil, errors.Join(ErrGlob, fmt.Errorf("%s: %w", g, err))
		}

		for _, m := range matches {
			out = append(out, filepath.FromSlash(m))
		}
	}

	return out, nil
}

// globRoot scopes fs to base. A base that cleans to "." is the filesystem itself:
// afero.BasePathFs checks that every joined path keeps the base as a prefix,
// which "." never satisfies once it is joined away.
func globRoot(fs afero.Fs, base string) afero.Fs {
	root := filepath.Clean(base)
	if root == "." {
		return fs
	}

	return afero.NewBasePathFs(fs, root)
}
