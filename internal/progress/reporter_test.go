// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestEventType_String(t *testing.T) {
	assert.Equal(t, "dispatched", EventDispatched.String())
	assert.Equal(t, "completed", EventCompleted.String())
	assert.Equal(t, "failed", EventFailed.String())
	assert.Equal(t, "unknown", EventType(99).String())
}

func TestChannelReporter_DeliversQueuedEventsOnClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewChannelReporter(context.Background(), 10)

	var (
		mu  sync.Mutex
		got []string
	)

	r.Listen(ListenerFunc(func(e Event) {
		mu.Lock()
		defer mu.Unlock()

		got = append(got, e.Identifier)
	}))

	r.Report(Event{Type: EventDispatched, Identifier: "a.js"})
	r.Report(Event{Type: EventCompleted, Identifier: "b.js"})
	r.Close()

	assert.Equal(t, []string{"a.js", "b.js"}, got)
}

func TestChannelReporter_DropsWhenFull(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewChannelReporter(context.Background(), 1)

	r.Report(Event{Identifier: "kept"})
	r.Report(Event{Identifier: "dropped"})

	var got []string

	r.Listen(ListenerFunc(func(e Event) { got = append(got, e.Identifier) }))
	r.Close()

	assert.Equal(t, []string{"kept"}, got)
	assert.Equal(t, int64(1), r.Dropped())
}

func TestChannelReporter_ReportAfterClose(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := NewChannelReporter(context.Background(), 1)
	r.Close()

	assert.NotPanics(t, func() { r.Report(Event{Identifier: "late"}) })
	assert.NotPanics(t, r.Close)
	assert.Zero(t, r.Dropped(), "events after close are ignored, not counted")
}

func TestNullReporter(t *testing.T) {
	var r Reporter = NullReporter{}

	assert.NotPanics(t, func() {
		r.Report(Event{})
		r.Close()
	})
}
