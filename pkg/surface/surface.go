// Package surface implements the surface manager core for frame-stepped UIs.
// It arbitrates which of many possibly-overlapping surfaces (menus, dialogs,
// forms, HUD panels) is visible, which one owns input focus, how they stack,
// and how logical input events and frame updates reach them. Surface
// instances are recycled through a bounded per-variant pool to keep
// allocation churn out of the frame loop.
package surface

import "fmt"

// Variant identifies the kind of surface. It is a closed enumeration:
// the variant selects the behavior and capability set, not a class identity,
// so the pool can treat all variants uniformly.
type Variant int

const (
	VariantMenu Variant = iota
	VariantDialog
	VariantForm
	VariantComposite
	VariantHUD

	variantCount
)

var variantNames = [variantCount]string{
	VariantMenu:      "menu",
	VariantDialog:    "dialog",
	VariantForm:      "form",
	VariantComposite: "composite",
	VariantHUD:       "hud",
}

// String returns the variant's config/log name.
func (v Variant) String() string {
	if v < 0 || v >= variantCount {
		return fmt.Sprintf("variant(%d)", int(v))
	}
	return variantNames[v]
}

// Valid reports whether v names a known variant.
func (v Variant) Valid() bool {
	return v >= 0 && v < variantCount
}

// ParseVariant resolves a config name to a Variant.
func ParseVariant(name string) (Variant, error) {
	for v, n := range variantNames {
		if n == name {
			return Variant(v), nil
		}
	}
	return 0, &InvalidVariantError{Name: name}
}

// State is a surface's lifecycle state.
type State int

const (
	// StateCreated means the instance is configured but not yet shown.
	StateCreated State = iota
	// StateShown means the surface is visible and eligible for input.
	StateShown
	// StateHidden means a modal surface sits above; the surface stays
	// alive and rendered but receives no input.
	StateHidden
	// StateDestroyed means the surface was closed. A destroyed surface
	// never appears in the stack or as the focus target.
	StateDestroyed
)

var stateNames = [...]string{
	StateCreated:   "created",
	StateShown:     "shown",
	StateHidden:    "hidden",
	StateDestroyed: "destroyed",
}

// String returns the state's log name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return fmt.Sprintf("state(%d)", int(s))
	}
	return stateNames[s]
}

// Caps is the capability set of a variant.
type Caps uint8

const (
	// CapRender marks surfaces that draw during the render pass.
	CapRender Caps = 1 << iota
	// CapFocus marks surfaces that can own input focus.
	CapFocus
	// CapEvents marks surfaces that consume input events.
	CapEvents
)

// Has reports whether all capabilities in want are present.
func (c Caps) Has(want Caps) bool {
	return c&want == want
}

// MessageHandler is supplied by the surface's owner at creation time.
// The core invokes it for events it cannot itself interpret and forwards
// the returned bool through the router's consumption protocol. The core
// attaches no meaning to messageType or payload.
type MessageHandler func(messageType string, payload any) bool

// Config carries the caller-supplied setup for one surface. Data is opaque
// to the core; everything else tunes core behavior. Zero values defer to
// the variant's defaults.
type Config struct {
	// ZOrder places the surface in the render order; higher draws later.
	// Zero means the variant's default band.
	ZOrder int
	// ParentID names the surface that should regain focus when this one
	// closes. Lookup only; no ownership.
	ParentID string
	// Modal hides the previous stack top and blocks input below while
	// this surface is shown. ORed with the variant default.
	Modal bool
	// AlwaysActive keeps the surface updating even while unfocused.
	// ORed with the variant default.
	AlwaysActive bool
	// Handler receives messages the surface's behavior emits.
	Handler MessageHandler
	// Data is for the owner's use only. The core never inspects it.
	Data any
}

// Surface is one manageable UI unit tracked by the core. Instances are
// pooled: after Close the same instance may be handed to an unrelated
// call site, so all caller-visible state is cleared on release.
type Surface struct {
	id           string
	variant      Variant
	state        State
	zOrder       int
	parentID     string
	modal        bool
	alwaysActive bool
	handler      MessageHandler
	data         any

	behavior Behavior
	caps     Caps

	// tag identifies the pooled instance across reuse, for diagnostics.
	tag string
	// pooled is set while the instance is owned by the free list (or was
	// discarded past the pool cap). Guards against double release.
	pooled bool
}

// ID returns the caller-supplied surface id.
func (s *Surface) ID() string { return s.id }

// Variant returns the surface's variant tag.
func (s *Surface) Variant() Variant { return s.variant }

// State returns the current lifecycle state.
func (s *Surface) State() State { return s.state }

// ZOrder returns the effective z-order; higher renders later.
func (s *Surface) ZOrder() int { return s.zOrder }

// ParentID returns the focus-return hint, or "".
func (s *Surface) ParentID() string { return s.parentID }

// Modal reports whether this surface blocks the surfaces below it.
func (s *Surface) Modal() bool { return s.modal }

// AlwaysActive reports whether the surface updates while unfocused.
func (s *Surface) AlwaysActive() bool { return s.alwaysActive }

// Caps returns the variant's capability set.
func (s *Surface) Caps() Caps { return s.caps }

// Data returns the opaque owner payload from Config.
func (s *Surface) Data() any { return s.data }

// Tag returns the pooled-instance tag. Stable across reuse.
func (s *Surface) Tag() string { return s.tag }

// apply configures a fresh or recycled instance for a new owner.
// Variant defaults fill any zero-valued Config fields.
func (s *Surface) apply(id string, cfg Config) {
	spec := variantTable[s.variant]

	s.id = id
	s.state = StateCreated
	s.zOrder = cfg.ZOrder
	if s.zOrder == 0 {
		s.zOrder = spec.zOrder
	}
	s.parentID = cfg.ParentID
	s.modal = cfg.Modal || spec.modal
	s.alwaysActive = cfg.AlwaysActive || spec.alwaysActive
	s.handler = cfg.Handler
	s.data = cfg.Data
}

// reset clears all caller state so the instance retains no references into
// the previous owner's object graph. Called on release to the pool.
func (s *Surface) reset() {
	s.id = ""
	s.zOrder = 0
	s.parentID = ""
	s.modal = false
	s.alwaysActive = false
	s.handler = nil
	s.data = nil
	if s.behavior != nil {
		s.behavior.Reset()
	}
}

// handleEvent runs the variant behavior for one logical event and reports
// whether the event was consumed.
func (s *Surface) handleEvent(ev Event) bool {
	if !s.caps.Has(CapEvents) || s.behavior == nil {
		return false
	}
	return s.behavior.OnEvent(s, ev)
}

// emit forwards a message to the owner's handler, if any.
func (s *Surface) emit(messageType string, payload any) bool {
	if s.handler == nil {
		return false
	}
	return s.handler(messageType, payload)
}
