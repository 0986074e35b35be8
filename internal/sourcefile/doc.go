// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package sourcefile is the default parse-and-persist handler.
// It reads a JavaScript source file, extracts a small Record describing it and
// stores that record as YAML in an output directory.
package sourcefile
