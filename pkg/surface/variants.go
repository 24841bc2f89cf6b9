package surface

import "strconv"

// RenderTarget is the drawing sink handed to the render pass. The host
// supplies the implementation; the core draws nothing itself beyond what
// the variant behaviors write.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, r rune)
}

// Behavior is the per-variant implementation of a surface. Dispatch goes
// through the variant table rather than subclass chains so the pool can
// recycle every variant the same way.
type Behavior interface {
	// OnShow runs when the surface becomes visible, including when a
	// modal blocker above it goes away.
	OnShow(s *Surface)
	// OnHide runs when a modal surface is pushed above, and before close.
	OnHide(s *Surface)
	// OnEvent processes one logical event. True means consumed.
	OnEvent(s *Surface, ev Event) bool
	// OnUpdate advances per-frame state by dt seconds.
	OnUpdate(s *Surface, dt float64)
	// OnRender draws the surface.
	OnRender(s *Surface, t RenderTarget)
	// Reset clears behavior state for pool reuse.
	Reset()
}

type variantSpec struct {
	caps         Caps
	modal        bool
	alwaysActive bool
	zOrder       int
	newBehavior  func() Behavior
}

// variantTable is the closed dispatch table. Adding a variant means adding
// a row here; nothing else in the core changes.
var variantTable = [variantCount]variantSpec{
	VariantMenu: {
		caps:        CapRender | CapFocus | CapEvents,
		zOrder:      10,
		newBehavior: func() Behavior { return &menuBehavior{} },
	},
	VariantDialog: {
		caps:        CapRender | CapFocus | CapEvents,
		modal:       true,
		zOrder:      100,
		newBehavior: func() Behavior { return &dialogBehavior{} },
	},
	VariantForm: {
		caps:        CapRender | CapFocus | CapEvents,
		modal:       true,
		zOrder:      100,
		newBehavior: func() Behavior { return &formBehavior{} },
	},
	VariantComposite: {
		caps:        CapRender | CapFocus | CapEvents,
		zOrder:      10,
		newBehavior: func() Behavior { return &compositeBehavior{} },
	},
	VariantHUD: {
		caps:         CapRender,
		alwaysActive: true,
		zOrder:       1000,
		newBehavior:  func() Behavior { return &hudBehavior{} },
	},
}

// drawText writes a string clipped to the target width.
func drawText(t RenderTarget, x, y int, text string) {
	w, h := t.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		if x >= w {
			return
		}
		if x >= 0 {
			t.SetContent(x, y, r)
		}
		x++
	}
}

// menuBehavior keeps a selection cursor. The owner interprets cursor
// positions; the behavior only reports movement and activation.
type menuBehavior struct {
	cursor int
}

func (b *menuBehavior) OnShow(s *Surface) {}
func (b *menuBehavior) OnHide(s *Surface) {}

func (b *menuBehavior) OnEvent(s *Surface, ev Event) bool {
	switch e := ev.(type) {
	case NavEvent:
		switch e.Direction {
		case DirUp:
			if b.cursor > 0 {
				b.cursor--
			}
		case DirDown:
			b.cursor++
		default:
			return false
		}
		s.emit("menu.highlight", b.cursor)
		return true
	case SubmitEvent:
		return s.emit("menu.select", b.cursor)
	case ButtonEvent:
		return s.emit("menu.button", e.Button)
	case MessageEvent:
		return s.emit(e.Type, e.Payload)
	default:
		// BackEvent stays unconsumed; back navigation belongs to the
		// manager's GoBack, not to individual menus.
		return false
	}
}

func (b *menuBehavior) OnUpdate(s *Surface, dt float64) {}

func (b *menuBehavior) OnRender(s *Surface, t RenderTarget) {
	drawText(t, 0, 0, "menu:"+s.ID())
	drawText(t, 0, 1, "> item "+strconv.Itoa(b.cursor))
}

func (b *menuBehavior) Reset() { b.cursor = 0 }

// dialogBehavior is a two-choice confirmation. Left/right flips the
// choice; submit reports it.
type dialogBehavior struct {
	confirm bool
}

func (b *dialogBehavior) OnShow(s *Surface) { b.confirm = true }
func (b *dialogBehavior) OnHide(s *Surface) {}

func (b *dialogBehavior) OnEvent(s *Surface, ev Event) bool {
	switch e := ev.(type) {
	case NavEvent:
		switch e.Direction {
		case DirLeft, DirRight:
			b.confirm = !b.confirm
			s.emit("dialog.highlight", b.confirm)
			return true
		}
		return false
	case SubmitEvent:
		if b.confirm {
			return s.emit("dialog.confirm", nil)
		}
		return s.emit("dialog.cancel", nil)
	case BackEvent:
		return s.emit("dialog.cancel", nil)
	case ButtonEvent:
		return s.emit("dialog.button", e.Button)
	case MessageEvent:
		return s.emit(e.Type, e.Payload)
	default:
		return false
	}
}

func (b *dialogBehavior) OnUpdate(s *Surface, dt float64) {}

func (b *dialogBehavior) OnRender(s *Surface, t RenderTarget) {
	w, h := t.Size()
	y := h / 2
	label := "dialog:" + s.ID() + " [cancel]"
	if b.confirm {
		label = "dialog:" + s.ID() + " [confirm]"
	}
	x := (w - len(label)) / 2
	if x < 0 {
		x = 0
	}
	drawText(t, x, y, label)
}

func (b *dialogBehavior) Reset() { b.confirm = true }

// formBehavior collects text into ordered fields. Up/down moves between
// fields, text appends to the active one, submit reports all values.
type formBehavior struct {
	field  int
	values []string
}

func (b *formBehavior) OnShow(s *Surface) {
	if len(b.values) == 0 {
		b.values = append(b.values, "")
	}
}

func (b *formBehavior) OnHide(s *Surface) {}

func (b *formBehavior) OnEvent(s *Surface, ev Event) bool {
	switch e := ev.(type) {
	case TextEvent:
		for len(b.values) <= b.field {
			b.values = append(b.values, "")
		}
		b.values[b.field] += e.Text
		return true
	case NavEvent:
		switch e.Direction {
		case DirUp:
			if b.field > 0 {
				b.field--
			}
			return true
		case DirDown:
			b.field++
			for len(b.values) <= b.field {
				b.values = append(b.values, "")
			}
			return true
		}
		return false
	case SubmitEvent:
		vals := make([]string, len(b.values))
		copy(vals, b.values)
		return s.emit("form.submit", vals)
	case BackEvent:
		return s.emit("form.cancel", nil)
	case MessageEvent:
		return s.emit(e.Type, e.Payload)
	default:
		return false
	}
}

func (b *formBehavior) OnUpdate(s *Surface, dt float64) {}

func (b *formBehavior) OnRender(s *Surface, t RenderTarget) {
	drawText(t, 0, 0, "form:"+s.ID())
	for i, v := range b.values {
		marker := "  "
		if i == b.field {
			marker = "* "
		}
		drawText(t, 0, 1+i, marker+v)
	}
}

func (b *formBehavior) Reset() {
	b.field = 0
	b.values = b.values[:0]
}

// compositeBehavior is entirely handler-driven: every event becomes a
// message, and the owner decides consumption. This is the escape hatch for
// domain-specific surfaces that the closed variant set cannot anticipate.
type compositeBehavior struct{}

func (b *compositeBehavior) OnShow(s *Surface) {
	s.emit("composite.shown", s.ID())
}

func (b *compositeBehavior) OnHide(s *Surface) {
	s.emit("composite.hidden", s.ID())
}

func (b *compositeBehavior) OnEvent(s *Surface, ev Event) bool {
	switch e := ev.(type) {
	case NavEvent:
		return s.emit("composite.nav", e.Direction)
	case SubmitEvent:
		return s.emit("composite.submit", nil)
	case BackEvent:
		return s.emit("composite.back", nil)
	case TextEvent:
		return s.emit("composite.text", e.Text)
	case ButtonEvent:
		return s.emit("composite.button", e.Button)
	case MessageEvent:
		return s.emit(e.Type, e.Payload)
	default:
		return false
	}
}

func (b *compositeBehavior) OnUpdate(s *Surface, dt float64) {}

func (b *compositeBehavior) OnRender(s *Surface, t RenderTarget) {
	_, h := t.Size()
	drawText(t, 0, h-1, "composite:"+s.ID())
}

func (b *compositeBehavior) Reset() {}

// hudBehavior renders only. It takes no input and cannot hold focus, but
// keeps updating under modal surfaces because the variant is always-active.
type hudBehavior struct {
	elapsed float64
}

func (b *hudBehavior) OnShow(s *Surface) {}
func (b *hudBehavior) OnHide(s *Surface) {}

func (b *hudBehavior) OnEvent(s *Surface, ev Event) bool { return false }

func (b *hudBehavior) OnUpdate(s *Surface, dt float64) {
	b.elapsed += dt
}

func (b *hudBehavior) OnRender(s *Surface, t RenderTarget) {
	w, _ := t.Size()
	label := "hud:" + s.ID()
	x := w - len(label)
	if x < 0 {
		x = 0
	}
	drawText(t, x, 0, label)
}

func (b *hudBehavior) Reset() { b.elapsed = 0 }
