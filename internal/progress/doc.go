// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package progress carries per-file events out of a running batch.
// Reporters must not block: a slow listener loses events rather than stalling the batch.
package progress
