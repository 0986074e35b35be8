// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package ctxlog carries a *slog.Logger in a context.Context.
//
// The default logger writes to stderr using PrettyHandler. Its level comes from
// an environment variable derived from the executable name, so for a binary
// called "infrared" the variable is INFRARED_LOG_LEVEL. Valid values are
// DEBUG, INFO, WARN and ERROR; anything else means WARN.
package ctxlog
