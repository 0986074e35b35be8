// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"context"

	"github.com/matt-FFFFFF/infrared/internal/ctxlog"
)

// StartMessage is the fixed message written to the debug log when processing starts.
const StartMessage = "Starting file processing"

// Recorder captures the start marker into State and writes the start line to Sink.
type Recorder struct {
	State *State
	Sink  Sink
}

// NewRecorder creates a Recorder. A nil state gets a fresh State.
func NewRecorder(state *State, sink Sink) *Recorder {
	if state == nil {
		state = &State{}
	}

	return &Recorder{
		State: state,
		Sink:  sink,
	}
}

// MarkStart records the start marker and appends "<timestamp> Starting file processing" to the sink.
// A failure to write the log line is logged and otherwise ignored, diagnostics never fail a batch.
func (r *Recorder) MarkStart(ctx context.Context) {
	now := Now()
	r.State.Start(now)

	if r.Sink == nil {
		return
	}

	if err := r.Sink.WriteLine(Timestamp(now) + " " + StartMessage); err != nil {
		ctxlog.Warn(ctx, "unable to write debug log", "error", err)
	}
}
