// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package progress

import (
	"context"
	"sync"
	"sync/atomic"
)

// ChannelReporter buffers events in a channel and hands them to a Listener on its own goroutine.
type ChannelReporter struct {
	ch     chan Event
	ctx    context.Context
	cancel context.CancelFunc
	mu     sync.RWMutex
	closed bool
	wg      sync.WaitGroup
	once    sync.Once
	dropped atomic.Int64
}

// NewChannelReporter creates a ChannelReporter holding up to bufferSize undelivered events.
func NewChannelReporter(ctx context.Context, bufferSize int) *ChannelReporter {
	rctx, cancel := context.WithCancel(ctx)

	return &ChannelReporter{
		ch:     make(chan Event, bufferSize),
		ctx:    rctx,
		cancel: cancel,
	}
}

// Report queues event. It is dropped if the buffer is full or the reporter is closed.
func (cr *ChannelReporter) Report(event Event) {
	cr.mu.RLock()
	defer cr.mu.RUnlock()

	if cr.closed {
		return
	}

	select {
	case cr.ch <- event:
	default:
		cr.dropped.Add(1)
	}
}

// Dropped returns how many events were discarded because the buffer was full.
func (cr *ChannelReporter) Dropped() int64 {
	return cr.dropped.Load()
}

// Listen delivers events to l until the reporter is closed or its context is done.
// Events already queued when Close is called are still delivered.
func (cr *ChannelReporter) Listen(l Listener) {
	cr.wg.Add(1)

	go func() {
		defer cr.wg.Done()

		for {
			select {
			case event, ok := <-cr.ch:
				if !ok {
					return
				}

				l.OnEvent(event)
			case <-cr.ctx.Done():
				return
			}
		}
	}()
}

// Close stops accepting events, waits for the listener to drain the queue and returns.
func (cr *ChannelReporter) Close() {
	cr.once.Do(func() {
		cr.mu.Lock()
		cr.closed = true
		close(cr.ch)
		cr.mu.Unlock()

		cr.wg.Wait()
		cr.cancel()
	})
}
