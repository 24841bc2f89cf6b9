package surface

import "testing"

// spyBehavior records delivered events and consumes them according to
// consume. It stands in for a variant behavior in routing tests.
type spyBehavior struct {
	consume bool
	events  []Event
}

func (b *spyBehavior) OnShow(s *Surface)                   {}
func (b *spyBehavior) OnHide(s *Surface)                   {}
func (b *spyBehavior) OnUpdate(s *Surface, dt float64)     {}
func (b *spyBehavior) OnRender(s *Surface, t RenderTarget) {}
func (b *spyBehavior) Reset()                              { b.events = nil }

func (b *spyBehavior) OnEvent(s *Surface, ev Event) bool {
	b.events = append(b.events, ev)
	return b.consume
}

func spySurface(id string, consume bool) (*Surface, *spyBehavior) {
	spy := &spyBehavior{consume: consume}
	s := &Surface{
		id:       id,
		variant:  VariantComposite,
		state:    StateShown,
		caps:     CapRender | CapFocus | CapEvents,
		behavior: spy,
		tag:      id,
	}
	return s, spy
}

type routerFixture struct {
	focus    *FocusManager
	stack    *Stack
	stats    *Stats
	router   *EventRouter
	surfaces map[string]*Surface
}

func newRouterFixture() *routerFixture {
	fx := &routerFixture{
		focus:    NewFocusManager(0),
		stack:    NewStack(),
		stats:    NewStats(),
		surfaces: make(map[string]*Surface),
	}
	fx.router = NewEventRouter(fx.focus, fx.stack, func(id string) *Surface {
		s := fx.surfaces[id]
		if s == nil || s.state != StateShown {
			return nil
		}
		return s
	}, fx.stats)
	return fx
}

func (fx *routerFixture) add(id string, consume bool) *spyBehavior {
	s, spy := spySurface(id, consume)
	fx.surfaces[id] = s
	fx.stack.Push(id)
	return spy
}

func TestRouterLockHolderFirst(t *testing.T) {
	fx := newRouterFixture()
	a := fx.add("a", true)
	b := fx.add("b", true)
	fx.focus.SetFocus("b")
	fx.focus.Lock("a")

	if !fx.router.Dispatch(SubmitEvent{}) {
		t.Fatal("Dispatch = false, want consumed by lock holder")
	}
	if len(a.events) != 1 {
		t.Fatalf("lock holder saw %d events, want 1", len(a.events))
	}
	if len(b.events) != 0 {
		t.Fatalf("focused surface saw %d events under foreign lock, want 0", len(b.events))
	}
}

func TestRouterFocusedBeforeStackTop(t *testing.T) {
	fx := newRouterFixture()
	a := fx.add("a", true)
	top := fx.add("top", true)
	fx.focus.SetFocus("a")

	if !fx.router.Dispatch(SubmitEvent{}) {
		t.Fatal("Dispatch = false, want consumed by focused surface")
	}
	if len(a.events) != 1 || len(top.events) != 0 {
		t.Fatalf("events: focused %d, top %d; want 1 and 0", len(a.events), len(top.events))
	}
}

func TestRouterStackTopFallback(t *testing.T) {
	fx := newRouterFixture()
	fx.add("bottom", true)
	top := fx.add("top", true)

	// No lock, no focus: the stack top gets the event.
	if !fx.router.Dispatch(NavEvent{Direction: DirDown}) {
		t.Fatal("Dispatch = false, want consumed by stack top")
	}
	if len(top.events) != 1 {
		t.Fatalf("stack top saw %d events, want 1", len(top.events))
	}
}

func TestRouterNoFallThroughBetweenTiers(t *testing.T) {
	fx := newRouterFixture()
	holder := fx.add("holder", false) // declines everything
	below := fx.add("below", true)
	fx.focus.SetFocus("below")
	fx.focus.Lock("holder")

	if fx.router.Dispatch(SubmitEvent{}) {
		t.Fatal("Dispatch = true, want unhandled when lock holder declines")
	}
	if len(holder.events) != 1 {
		t.Fatalf("lock holder saw %d events, want 1", len(holder.events))
	}
	if len(below.events) != 0 {
		t.Fatalf("lower tier saw %d events after decline, want 0", len(below.events))
	}

	snap := fx.stats.Snapshot()
	if snap.EventsProcessed != 1 || snap.EventsUnhandled != 1 {
		t.Fatalf("stats = processed %d unhandled %d, want 1 and 1",
			snap.EventsProcessed, snap.EventsUnhandled)
	}
}

func TestRouterEmptyStackUnhandled(t *testing.T) {
	fx := newRouterFixture()
	if fx.router.Dispatch(SubmitEvent{}) {
		t.Fatal("Dispatch = true on empty router")
	}
	snap := fx.stats.Snapshot()
	if snap.EventsProcessed != 1 || snap.EventsUnhandled != 1 {
		t.Fatalf("stats = processed %d unhandled %d, want 1 and 1",
			snap.EventsProcessed, snap.EventsUnhandled)
	}
}

func TestRouterSkipsNonShownCandidate(t *testing.T) {
	fx := newRouterFixture()
	spy := fx.add("a", true)
	fx.surfaces["a"].state = StateHidden
	fx.focus.SetFocus("a")

	if fx.router.Dispatch(SubmitEvent{}) {
		t.Fatal("Dispatch = true, want unhandled for hidden candidate")
	}
	if len(spy.events) != 0 {
		t.Fatalf("hidden surface saw %d events, want 0", len(spy.events))
	}
}
