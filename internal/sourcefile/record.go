// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package sourcefile

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"slices"
	"time"
)

// Record describes one parsed source file.
type Record struct {
	RunID      string    `yaml:"run_id" json:"runId"`
	Identifier string    `yaml:"identifier" json:"identifier"`
	Path       string    `yaml:"path" json:"path"`
	Size       int64     `yaml:"size" json:"size"`
	Lines      int       `yaml:"lines" json:"lines"`
	SHA256     string    `yaml:"sha256" json:"sha256"`
	Imports    []string  `yaml:"imports,omitempty" json:"imports,omitempty"`
	ParsedAt   time.Time `yaml:"parsed_at" json:"parsedAt"`
}

var importPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?m)^\s*import\s+(?:[\w*{}\s,$]+\s+from\s+)?['"]([^'"]+)['"]`),
	regexp.MustCompile(`require\(\s*['"]([^'"]+)['"]\s*\)`),
	regexp.MustCompile(`import\(\s*['"]([^'"]+)['"]\s*\)`),
}

// Analyse builds the content-derived fields of a Record.
func Analyse(content []byte) Record {
	sum := sha256.Sum256(content)

	return Record{
		Size:    int64(len(content)),
		Lines:   countLines(content),
		SHA256:  hex.EncodeToString(sum[:]),
		Imports: imports(content),
	}
}

func countLines(content []byte) int {
	if len(content) == 0 {
		return 0
	}

	n := 0
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), len(content)+1)

	for sc.Scan() {
		n++
	}

	return n
}

// imports returns the unique module specifiers in order of first appearance.
func imports(content []byte) []string {
	type hit struct {
		pos  int
		spec string
	}

	var hits []hit

	for _, re := range importPatterns {
		for _, m := range re.FindAllSubmatchIndex(content, -1) {
			hits = append(hits, hit{pos: m[2], spec: string(content[m[2]:m[3]])})
		}
	}

	slices.SortFunc(hits, func(a, b hit) int { return a.pos - b.pos })

	var out []string

	for _, h := range hits {
		if !slices.Contains(out, h.spec) {
			out = append(out, h.spec)
		}
	}

	return out
}
