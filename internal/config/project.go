// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config loads the project file that describes a batch: where the sources live,
// which files to process and where records and debug logs go.
package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/spf13/afero"
)

// DefaultFileNames are searched, in order, when no project file is given.
var DefaultFileNames = []string{"infrared.yaml", "infrared.yml", "infrared.hcl"}

var (
	// ErrReadConfig is returned when the project file cannot be read.
	ErrReadConfig = errors.New("failed to read project file")
	// ErrParseConfig is returned when the project file cannot be decoded.
	ErrParseConfig = errors.New("failed to parse project file")
	// ErrUnsupportedFormat is returned for project files that are neither YAML nor HCL.
	ErrUnsupportedFormat = errors.New("unsupported project file format")
	// ErrInvalidConfig wraps every validation problem.
	ErrInvalidConfig = errors.New("invalid project configuration")
	// ErrNoBasePath is a validation problem.
	ErrNoBasePath = errors.New("base_path must be set")
	// ErrEmptyFileEntry is a validation problem.
	ErrEmptyFileEntry = errors.New("file entries must not be empty")
	// ErrBadGlob is a validation problem.
	ErrBadGlob = errors.New("invalid glob pattern")
)

// FsFactory returns the filesystem project files and globs are read from.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Project is the decoded project file.
type Project struct {
	BasePath    string   `yaml:"base_path" hcl:"base_path,optional"`
	Files       []string `yaml:"files" hcl:"files,optional"`
	Globs       []string `yaml:"globs" hcl:"globs,optional"`
	OutputDir   string   `yaml:"output_dir" hcl:"output_dir,optional"`
	DebugLog    string   `yaml:"debug_log" hcl:"debug_log,optional"`
	Diagnostics bool     `yaml:"diagnostics" hcl:"diagnostics,optional"`
}

// Load reads and decodes the project file at path. The format follows the extension.
func Load(path string) (*Project, error) {
	b, err := afero.ReadFile(FsFactory(), path)
	if err != nil {
		return nil, errors.Join(ErrReadConfig, err)
	}

	return Decode(path, b)
}

// Find returns the first of DefaultFileNames present in dir, or "".
func Find(dir string) string {
	fs := FsFactory()

	for _, name := range DefaultFileNames {
		p := filepath.Join(dir, name)
		if ok, _ := afero.Exists(fs, p); ok {
			return p
		}
	}

	return ""
}

// Decode decodes src, using filename to pick the format.
func Decode(filename string, src []byte) (*Project, error) {
	p := &Project{}

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(src, p); err != nil {
			return nil, errors.Join(ErrParseConfig, err)
		}
	case ".hcl":
		if err := hclsimple.Decode(filename, src, nil, p); err != nil {
			return nil, errors.Join(ErrParseConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filename)
	}

	return p, nil
}

// Merge overlays the non-zero fields of o onto a copy of p. Files and globs are appended.
func (p Project) Merge(o Project) Project {
	if o.BasePath != "" {
		p.BasePath = o.BasePath
	}

	if o.OutputDir != "" {
		p.OutputDir = o.OutputDir
	}

	if o.DebugLog != "" {
		p.DebugLog = o.DebugLog
	}

	p.Diagnostics = p.Diagnostics || o.Diagnostics
	p.Files = append(append([]string{}, p.Files...), o.Files...)
	p.Globs = append(append([]string{}, p.Globs...), o.Globs...)

	return p
}

// Validate reports every problem with p at once.
func (p Project) Validate() error {
	var result *multierror.Error

	if p.BasePath == "" {
		result = multierror.Append(result, ErrNoBasePath)
	}

	for i, f := range p.Files {
		if strings.TrimSpace(f) == "" {
			result = multierror.Append(result, fmt.Errorf("%w: files[%d]", ErrEmptyFileEntry, i))
		}
	}

	for _, g := range p.Globs {
		if !validPattern(g) {
			result = multierror.Append(result, fmt.Errorf("%w: %q", ErrBadGlob, g))
		}
	}

	if err := result.ErrorOrNil(); err != nil {
		return errors.Join(ErrInvalidConfig, err)
	}

	return nil
}
