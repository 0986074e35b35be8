// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package fileprocessor fans a list of files out to a parse-and-persist handler and fans the results back in.
//
// Every file becomes one Job, resolved against a base directory and run in its own goroutine.
// Process returns the results in input order when every job succeeds, or the first error as soon as it is observed.
// Jobs still running after the first failure are left to finish; their outcomes are discarded.
package fileprocessor
