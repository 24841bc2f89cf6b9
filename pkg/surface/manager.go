package surface

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/emberforge/scrim/pkg/bus"
)

// Lifecycle subjects published on the optional bus. Payload is the
// surface id.
const (
	SubjectShown        = "surface.shown"
	SubjectHidden       = "surface.hidden"
	SubjectClosed       = "surface.closed"
	SubjectFocusChanged = "surface.focus.changed"
)

// Options configures a Manager.
type Options struct {
	// Logger receives debug/warn lines. Nil means slog.Default().
	Logger *slog.Logger
	// Bus, when set, receives lifecycle events. Delivery is synchronous.
	Bus *bus.Bus
	// FocusHistoryDepth bounds the focus restore history.
	FocusHistoryDepth int
	// PoolCaps overrides the pooled free-list bound per variant.
	PoolCaps map[Variant]int
	// DefaultPoolCap applies to variants absent from PoolCaps.
	DefaultPoolCap int
}

// Manager is the facade and the only entry point external code touches.
// It owns the stack, focus state, router, pool, and statistics for one UI
// session. Construct it explicitly and pass it to whatever owns the frame
// loop; there is no ambient global instance.
//
// The manager is strictly single-threaded: every method must be called
// from the frame thread.
type Manager struct {
	log      *slog.Logger
	bus      *bus.Bus
	registry map[string]*Surface
	stack    *Stack
	focus    *FocusManager
	router   *EventRouter
	pool     *Pool
	stats    *Stats

	// scratch is reused by Render to sort the visible set without
	// per-frame allocation.
	scratch []*Surface
}

// NewManager constructs a manager with its pool and counters.
func NewManager(opts Options) *Manager {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	stats := NewStats()
	m := &Manager{
		log:      log.With(slog.String("component", "surface")),
		bus:      opts.Bus,
		registry: make(map[string]*Surface),
		stack:    NewStack(),
		focus:    NewFocusManager(opts.FocusHistoryDepth),
		pool:     NewPool(opts.PoolCaps, opts.DefaultPoolCap, stats),
		stats:    stats,
	}
	m.router = NewEventRouter(m.focus, m.stack, m.resolveShown, stats)
	return m
}

// CreateAndShow acquires a surface from the pool (allocating if the free
// list is empty), configures it, pushes it on the stack, and transfers
// focus to it. Fails with DuplicateIDError for a live id and
// InvalidVariantError for an unknown variant.
func (m *Manager) CreateAndShow(v Variant, id string, cfg Config) (*Surface, error) {
	if !v.Valid() {
		return nil, &InvalidVariantError{Name: v.String()}
	}
	if id == "" {
		return nil, fmt.Errorf("surface id must not be empty")
	}
	if _, live := m.registry[id]; live {
		return nil, &DuplicateIDError{ID: id}
	}

	s := m.pool.Acquire(v)
	s.apply(id, cfg)

	m.registry[id] = s
	m.stack.Push(id)
	s.state = StateShown
	s.behavior.OnShow(s)
	m.recomputeVisibility()

	if s.caps.Has(CapFocus) {
		if err := m.focus.SetFocus(id); err != nil {
			// A modal lock is held elsewhere; the surface shows without
			// taking focus rather than failing the whole creation.
			m.log.Debug("focus transfer skipped", "surface", id, "err", err)
		} else {
			m.publish(SubjectFocusChanged, id)
		}
	}

	m.stats.IncCreated()
	m.publish(SubjectShown, id)
	m.log.Debug("surface shown", "surface", id, "variant", v.String(), "stack", m.stack.Len())
	return s, nil
}

// Close destroys a surface: removes it from the stack, restores focus,
// and releases the instance back to the pool. Closing an id that is not
// registered is a logged no-op — two code paths dismissing the same
// dialog is normal, not a caller mistake.
func (m *Manager) Close(id string) {
	s := m.registry[id]
	if s == nil {
		m.log.Debug("close ignored: unknown surface", "surface", id)
		return
	}

	hadFocus := m.focus.Current() == id

	m.stack.Remove(id)
	delete(m.registry, id)
	if s.state == StateShown {
		s.behavior.OnHide(s)
	}
	s.state = StateDestroyed
	m.focus.Drop(id)
	m.recomputeVisibility()

	if hadFocus {
		next := ""
		if p := s.parentID; p != "" && m.focusable(p) {
			if err := m.focus.SetFocus(p); err == nil {
				next = p
			}
		}
		if next == "" {
			next = m.focus.Restore(m.focusable)
		}
		if next != "" {
			m.publish(SubjectFocusChanged, next)
		}
	}

	if err := m.pool.Release(s); err != nil {
		m.log.Warn("pool release failed", "surface", id, "err", err)
	}
	m.stats.IncDestroyed()
	m.publish(SubjectClosed, id)
	m.log.Debug("surface closed", "surface", id, "stack", m.stack.Len())
}

// GoBack closes the current stack top. This is the single back-navigation
// primitive; ESC/back handling in consumers routes through here. On an
// empty stack it is a no-op.
func (m *Manager) GoBack() {
	top, ok := m.stack.Top()
	if !ok {
		return
	}
	m.Close(top)
}

// CloseAll pops the stack empty through GoBack. "Return to root" flows
// are this plus re-showing the root surface; nothing bypasses the stack.
func (m *Manager) CloseAll() {
	for m.stack.Len() > 0 {
		m.GoBack()
	}
}

// SetFocus transfers focus to a shown, focusable surface. Fails with
// FocusLockedError while a modal lock is held by another surface.
func (m *Manager) SetFocus(id string) error {
	s := m.registry[id]
	if s == nil || s.state != StateShown {
		return fmt.Errorf("set focus: no shown surface %q", id)
	}
	if !s.caps.Has(CapFocus) {
		return fmt.Errorf("set focus: surface %q is not focusable", id)
	}
	if err := m.focus.SetFocus(id); err != nil {
		return err
	}
	m.publish(SubjectFocusChanged, id)
	return nil
}

// Lock grants a surface exclusive input until Unlock. Used by blocking
// confirmations that must not cede focus to background input.
func (m *Manager) Lock(id string) error {
	if _, live := m.registry[id]; !live {
		return fmt.Errorf("lock: no surface %q", id)
	}
	return m.focus.Lock(id)
}

// Unlock releases a modal lock. Fails with NotLockHolderError unless id
// holds the lock.
func (m *Manager) Unlock(id string) error {
	return m.focus.Unlock(id)
}

// Dispatch routes one logical input event for this frame tick and reports
// whether any surface consumed it.
func (m *Manager) Dispatch(ev Event) bool {
	return m.router.Dispatch(ev)
}

// Update advances the focused surface plus every always-active surface by
// dt seconds.
func (m *Manager) Update(dt float64) {
	cur := m.focus.Current()
	for _, id := range m.stack.ids {
		s := m.registry[id]
		if s == nil {
			continue
		}
		if id == cur || s.alwaysActive {
			s.behavior.OnUpdate(s, dt)
		}
	}
}

// Render draws the visible surfaces in z-order, stable with respect to
// stack order for equal z.
func (m *Manager) Render(t RenderTarget) {
	m.scratch = m.scratch[:0]
	for _, id := range m.stack.ids {
		s := m.registry[id]
		if s == nil || !s.caps.Has(CapRender) {
			continue
		}
		if s.state != StateShown && s.state != StateHidden {
			continue
		}
		m.scratch = append(m.scratch, s)
	}
	sort.SliceStable(m.scratch, func(i, j int) bool {
		return m.scratch[i].zOrder < m.scratch[j].zOrder
	})
	for _, s := range m.scratch {
		s.behavior.OnRender(s, t)
	}
}

// Statistics returns a snapshot of the diagnostic counters.
func (m *Manager) Statistics() StatsSnapshot {
	return m.stats.Snapshot()
}

// ResetStatistics zeroes the counters. Intended for test isolation.
func (m *Manager) ResetStatistics() {
	m.stats.Reset()
}

// Get returns a live surface by id.
func (m *Manager) Get(id string) (*Surface, bool) {
	s, ok := m.registry[id]
	return s, ok
}

// Focused returns the focused surface id, or "".
func (m *Manager) Focused() string {
	return m.focus.Current()
}

// LockHolder returns the modal lock holder id, or "".
func (m *Manager) LockHolder() string {
	return m.focus.LockHolder()
}

// StackIDs returns the stack contents bottom-to-top.
func (m *Manager) StackIDs() []string {
	return m.stack.IDs()
}

// Len returns the number of live surfaces.
func (m *Manager) Len() int {
	return len(m.registry)
}

// Teardown closes every surface and drains the pool. The manager must not
// be used afterwards.
func (m *Manager) Teardown() {
	m.CloseAll()
	m.pool.Drain()
	m.log.Debug("surface manager torn down")
}

// recomputeVisibility re-derives SHOWN/HIDDEN from the stack: a surface
// is hidden exactly while a modal surface sits above it.
func (m *Manager) recomputeVisibility() {
	blocked := false
	for i := len(m.stack.ids) - 1; i >= 0; i-- {
		s := m.registry[m.stack.ids[i]]
		if s == nil {
			continue
		}
		switch {
		case blocked && s.state == StateShown:
			s.state = StateHidden
			s.behavior.OnHide(s)
			m.publish(SubjectHidden, s.id)
		case !blocked && s.state == StateHidden:
			s.state = StateShown
			s.behavior.OnShow(s)
			m.publish(SubjectShown, s.id)
		}
		if s.modal {
			blocked = true
		}
	}
}

// resolveShown returns the surface for id only when it is live and shown.
func (m *Manager) resolveShown(id string) *Surface {
	s := m.registry[id]
	if s == nil || s.state != StateShown {
		return nil
	}
	return s
}

// focusable reports whether id names a shown surface that can take focus.
func (m *Manager) focusable(id string) bool {
	s := m.resolveShown(id)
	return s != nil && s.caps.Has(CapFocus)
}

func (m *Manager) publish(subject, id string) {
	if m.bus == nil {
		return
	}
	if err := m.bus.Publish(subject, id); err != nil {
		m.log.Warn("lifecycle publish failed", "subject", subject, "err", err)
	}
}
