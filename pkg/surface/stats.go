package surface

import "sync/atomic"

// Stats holds the core's monotonic diagnostic counters. The core mutates
// them only from the frame thread; they are atomic so an external exporter
// (telemetry scrape, test assertions from a helper goroutine) can read a
// snapshot without pausing the frame loop. No derived metrics live here —
// averaging belongs to consumers.
type Stats struct {
	created         atomic.Int64
	destroyed       atomic.Int64
	eventsProcessed atomic.Int64
	eventsUnhandled atomic.Int64
	poolHits        atomic.Int64
	poolMisses      atomic.Int64
}

// NewStats returns zeroed counters.
func NewStats() *Stats {
	return &Stats{}
}

// StatsSnapshot is a point-in-time copy of all counters.
type StatsSnapshot struct {
	Created         int64 `json:"created"`
	Destroyed       int64 `json:"destroyed"`
	EventsProcessed int64 `json:"events_processed"`
	EventsUnhandled int64 `json:"events_unhandled"`
	PoolHits        int64 `json:"pool_hits"`
	PoolMisses      int64 `json:"pool_misses"`
}

// IncCreated counts one surface creation.
func (s *Stats) IncCreated() {
	if s == nil {
		return
	}
	s.created.Add(1)
}

// IncDestroyed counts one surface close.
func (s *Stats) IncDestroyed() {
	if s == nil {
		return
	}
	s.destroyed.Add(1)
}

// IncEventsProcessed counts one routed event.
func (s *Stats) IncEventsProcessed() {
	if s == nil {
		return
	}
	s.eventsProcessed.Add(1)
}

// IncEventsUnhandled counts one event no surface consumed.
func (s *Stats) IncEventsUnhandled() {
	if s == nil {
		return
	}
	s.eventsUnhandled.Add(1)
}

// IncPoolHits counts one acquire served from the free list.
func (s *Stats) IncPoolHits() {
	if s == nil {
		return
	}
	s.poolHits.Add(1)
}

// IncPoolMisses counts one acquire that allocated fresh.
func (s *Stats) IncPoolMisses() {
	if s == nil {
		return
	}
	s.poolMisses.Add(1)
}

// Snapshot copies all counters.
func (s *Stats) Snapshot() StatsSnapshot {
	if s == nil {
		return StatsSnapshot{}
	}
	return StatsSnapshot{
		Created:         s.created.Load(),
		Destroyed:       s.destroyed.Load(),
		EventsProcessed: s.eventsProcessed.Load(),
		EventsUnhandled: s.eventsUnhandled.Load(),
		PoolHits:        s.poolHits.Load(),
		PoolMisses:      s.poolMisses.Load(),
	}
}

// Reset zeroes all counters. Used for test isolation.
func (s *Stats) Reset() {
	if s == nil {
		return
	}
	s.created.Store(0)
	s.destroyed.Store(0)
	s.eventsProcessed.Store(0)
	s.eventsUnhandled.Store(0)
	s.poolHits.Store(0)
	s.poolMisses.Store(0)
}
