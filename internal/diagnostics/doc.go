// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package diagnostics holds the optional timing instrumentation used while processing a batch of files.
// When enabled, a start marker in epoch milliseconds is captured and a line is appended to a debug log.
// The state outlives a single batch so that collaborators can compute elapsed time later.
package diagnostics
