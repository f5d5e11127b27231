package readmodel

import (
	"sync"
	"time"
)

// DefaultStaleThreshold is the idle gap after which the snapshot is
// considered stale and a full reload should be scheduled.
const DefaultStaleThreshold = 5 * time.Minute

// StalenessMonitor tracks the time of the last observed request and
// reports when the gap since then exceeds the threshold.
type StalenessMonitor struct {
	mu        sync.Mutex
	last      time.Time
	threshold time.Duration
}

// NewStalenessMonitor returns a monitor with the given threshold.
// A non-positive threshold falls back to DefaultStaleThreshold.
func NewStalenessMonitor(threshold time.Duration) *StalenessMonitor {
	if threshold <= 0 {
		threshold = DefaultStaleThreshold
	}
	return &StalenessMonitor{threshold: threshold}
}

// Observe records a request at now and reports whether the snapshot went
// stale since the previous one. The very first observation is never
// stale: there is nothing cached worth distrusting before the first load.
func (m *StalenessMonitor) Observe(now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	stale := !m.last.IsZero() && now.Sub(m.last) > m.threshold
	m.last = now
	return stale
}
