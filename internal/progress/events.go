// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"time"
)

// EventType says what happened to a file.
type EventType int

const (
	// EventDispatched means the file has been handed to the handler.
	EventDispatched EventType = iota
	// EventCompleted means the handler succeeded.
	EventCompleted
	// EventFailed means the handler failed and the batch has settled on this error.
	EventFailed
)

// String implements fmt.Stringer.
func (et EventType) String() string {
	switch et {
	case EventDispatched:
		return "dispatched"
	case EventCompleted:
		return "completed"
	case EventFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Event describes a state change of one file in a batch.
type Event struct {
	Type       EventType
	Index      int    // Position of the file in the input list
	Identifier string // File identifier as given by the caller
	Err        error  // Set for EventFailed
	Timestamp  time.Time
}

// Reporter receives events.
type Reporter interface {
	// Report must not block.
	Report(event Event)
	// Close signals that no more events will be sent.
	Close()
}

// Listener consumes events delivered by a ChannelReporter.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(Event)

// OnEvent implements Listener.
func (f ListenerFunc) OnEvent(event Event) {
	f(event)
}

// NullReporter discards every event.
type NullReporter struct{}

// Report implements Reporter.
func (NullReporter) Report(Event) {}

// Close implements Reporter.
func (NullReporter) Close() {}
