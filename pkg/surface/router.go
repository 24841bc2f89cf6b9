package surface

// EventRouter decides which surface sees an input event. Dispatch walks
// three priority tiers and stops at the first eligible candidate:
//
//  1. the modal lock holder, if any
//  2. the focused surface
//  3. the stack top
//
// A candidate that declines an event does NOT fall through to a lower
// tier; the event counts as unhandled. Leaking declined input across
// layers is exactly the bug modal surfaces exist to prevent.
type EventRouter struct {
	focus   *FocusManager
	stack   *Stack
	resolve func(id string) *Surface
	stats   *Stats
}

// NewEventRouter wires a router to the focus, stack, and registry lookup.
// resolve must return nil for ids that are not live and shown.
func NewEventRouter(focus *FocusManager, stack *Stack, resolve func(id string) *Surface, stats *Stats) *EventRouter {
	return &EventRouter{focus: focus, stack: stack, resolve: resolve, stats: stats}
}

// Dispatch routes one logical event and reports whether any surface
// consumed it.
func (r *EventRouter) Dispatch(ev Event) bool {
	r.stats.IncEventsProcessed()

	if holder := r.focus.LockHolder(); holder != "" {
		return r.deliver(holder, ev)
	}
	if cur := r.focus.Current(); cur != "" {
		return r.deliver(cur, ev)
	}
	if top, ok := r.stack.Top(); ok {
		return r.deliver(top, ev)
	}
	r.stats.IncEventsUnhandled()
	return false
}

func (r *EventRouter) deliver(id string, ev Event) bool {
	if s := r.resolve(id); s != nil && s.handleEvent(ev) {
		return true
	}
	r.stats.IncEventsUnhandled()
	return false
}
