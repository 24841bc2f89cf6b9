package surface

import "github.com/oklog/ulid/v2"

// DefaultPoolCap bounds each variant's free list when no cap is
// configured. Releases beyond the cap discard the instance instead of
// growing the pool without bound.
const DefaultPoolCap = 8

// Pool recycles Surface instances per variant so the show/close churn of a
// session does not translate into allocation churn. An instance is owned by
// exactly one call site between Acquire and Release.
type Pool struct {
	free  [variantCount][]*Surface
	caps  [variantCount]int
	stats *Stats
}

// NewPool creates a pool. caps overrides the free-list bound per variant;
// defaultCap applies to the rest (<= 0 means DefaultPoolCap).
func NewPool(caps map[Variant]int, defaultCap int, stats *Stats) *Pool {
	if defaultCap <= 0 {
		defaultCap = DefaultPoolCap
	}
	p := &Pool{stats: stats}
	for v := Variant(0); v < variantCount; v++ {
		p.caps[v] = defaultCap
	}
	for v, c := range caps {
		if v.Valid() && c >= 0 {
			p.caps[v] = c
		}
	}
	return p
}

// Acquire hands out a reset, ready-to-configure instance: recycled from
// the variant's free list when possible, freshly allocated otherwise.
func (p *Pool) Acquire(v Variant) *Surface {
	if list := p.free[v]; len(list) > 0 {
		i := len(list) - 1
		s := list[i]
		list[i] = nil
		p.free[v] = list[:i]
		s.pooled = false
		s.state = StateCreated
		p.stats.IncPoolHits()
		return s
	}
	p.stats.IncPoolMisses()
	spec := variantTable[v]
	return &Surface{
		variant:  v,
		state:    StateCreated,
		caps:     spec.caps,
		behavior: spec.newBehavior(),
		tag:      ulid.Make().String(),
	}
}

// Release returns an instance to its variant's free list after clearing
// all caller state. Each acquired instance must be released exactly once;
// a second release fails with DoubleReleaseError. Past the cap the
// instance is discarded but still marked released, so a late double
// release is caught rather than resurrecting the instance.
func (p *Pool) Release(s *Surface) error {
	if s == nil {
		return nil
	}
	if s.pooled {
		return &DoubleReleaseError{Tag: s.tag}
	}
	s.reset()
	s.pooled = true
	if len(p.free[s.variant]) >= p.caps[s.variant] {
		return nil
	}
	p.free[s.variant] = append(p.free[s.variant], s)
	return nil
}

// Len returns the current free-list size for a variant.
func (p *Pool) Len(v Variant) int {
	if !v.Valid() {
		return 0
	}
	return len(p.free[v])
}

// Drain empties every free list. Called at manager teardown.
func (p *Pool) Drain() {
	for v := range p.free {
		for i := range p.free[v] {
			p.free[v][i] = nil
		}
		p.free[v] = nil
	}
}
