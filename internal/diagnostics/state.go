// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package diagnostics

import (
	"sync"
	"time"
)

// TimestampFormat is the layout used for human-readable timestamps in the debug log.
const TimestampFormat = "2006-01-02 15:04:05.000"

// Now returns the current time. It is a variable so tests can stub the clock.
var Now = time.Now

// Timestamp returns a human-readable representation of t.
func Timestamp(t time.Time) string {
	return "[" + t.Format(TimestampFormat) + "]"
}

// State is the shared diagnostic state: whether a timer is running and when it started.
// It is safe for concurrent use.
type State struct {
	mu          sync.RWMutex
	started     bool
	startMillis int64
}

// Start records t as the start marker, replacing any previous marker.
func (s *State) Start(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = true
	s.startMillis = t.UnixMilli()
}

// StartMillis returns the start marker in milliseconds since the epoch.
// The boolean is false if no marker has been recorded.
func (s *State) StartMillis() (int64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.startMillis, s.started
}

// Elapsed returns the duration between the start marker and now.
// It returns zero if no marker has been recorded.
func (s *State) Elapsed(now time.Time) time.Duration {
	ms, ok := s.StartMillis()
	if !ok {
		return 0
	}

	return time.Duration(now.UnixMilli()-ms) * time.Millisecond
}

// Reset clears the start marker.
func (s *State) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.started = false
	s.startMillis = 0
}
