package surface

import (
	"reflect"
	"strings"
	"testing"
)

// fakeTarget records cells for render assertions.
type fakeTarget struct {
	w, h  int
	cells map[[2]int]rune
}

func newFakeTarget(w, h int) *fakeTarget {
	return &fakeTarget{w: w, h: h, cells: make(map[[2]int]rune)}
}

func (t *fakeTarget) Size() (int, int) { return t.w, t.h }

func (t *fakeTarget) SetContent(x, y int, r rune) {
	if x < 0 || y < 0 || x >= t.w || y >= t.h {
		return
	}
	t.cells[[2]int{x, y}] = r
}

func (t *fakeTarget) row(y int) string {
	var sb strings.Builder
	for x := 0; x < t.w; x++ {
		r, ok := t.cells[[2]int{x, y}]
		if !ok {
			r = ' '
		}
		sb.WriteRune(r)
	}
	return strings.TrimRight(sb.String(), " ")
}

func (t *fakeTarget) contains(text string) bool {
	for y := 0; y < t.h; y++ {
		if strings.Contains(t.row(y), text) {
			return true
		}
	}
	return false
}

// messageRecorder captures handler callbacks for behavior tests.
type messageRecorder struct {
	types    []string
	payloads []any
	consume  bool
}

func (r *messageRecorder) handle(messageType string, payload any) bool {
	r.types = append(r.types, messageType)
	r.payloads = append(r.payloads, payload)
	return r.consume
}

func behaviorSurface(v Variant, rec *messageRecorder) *Surface {
	spec := variantTable[v]
	s := &Surface{
		variant:  v,
		caps:     spec.caps,
		behavior: spec.newBehavior(),
	}
	s.apply("t", Config{Handler: rec.handle})
	return s
}

func TestVariantNames(t *testing.T) {
	for v := Variant(0); v < variantCount; v++ {
		parsed, err := ParseVariant(v.String())
		if err != nil {
			t.Fatalf("ParseVariant(%q): %v", v.String(), err)
		}
		if parsed != v {
			t.Fatalf("ParseVariant(%q) = %v, want %v", v.String(), parsed, v)
		}
	}
	if _, err := ParseVariant("popup"); err == nil {
		t.Fatal("ParseVariant(popup) succeeded, want error")
	}
	if Variant(99).Valid() {
		t.Fatal("Variant(99).Valid() = true")
	}
}

func TestVariantDefaults(t *testing.T) {
	tests := []struct {
		variant Variant
		modal   bool
		always  bool
		zOrder  int
	}{
		{VariantMenu, false, false, 10},
		{VariantDialog, true, false, 100},
		{VariantForm, true, false, 100},
		{VariantComposite, false, false, 10},
		{VariantHUD, false, true, 1000},
	}
	for _, tt := range tests {
		s := behaviorSurface(tt.variant, &messageRecorder{})
		if s.Modal() != tt.modal || s.AlwaysActive() != tt.always || s.ZOrder() != tt.zOrder {
			t.Errorf("%s: modal=%v always=%v z=%d, want modal=%v always=%v z=%d",
				tt.variant, s.Modal(), s.AlwaysActive(), s.ZOrder(),
				tt.modal, tt.always, tt.zOrder)
		}
	}
}

func TestConfigOverridesVariantDefaults(t *testing.T) {
	s := behaviorSurface(VariantMenu, &messageRecorder{})
	s.apply("m", Config{ZOrder: 500, Modal: true, AlwaysActive: true})
	if s.ZOrder() != 500 || !s.Modal() || !s.AlwaysActive() {
		t.Fatalf("overrides not applied: z=%d modal=%v always=%v",
			s.ZOrder(), s.Modal(), s.AlwaysActive())
	}

	// A modal variant stays modal even if the config leaves it false.
	d := behaviorSurface(VariantDialog, &messageRecorder{})
	if !d.Modal() {
		t.Fatal("dialog lost its modal default")
	}
}

func TestMenuBehavior(t *testing.T) {
	rec := &messageRecorder{consume: true}
	s := behaviorSurface(VariantMenu, rec)

	if !s.handleEvent(NavEvent{Direction: DirDown}) {
		t.Fatal("nav down not consumed")
	}
	if !s.handleEvent(NavEvent{Direction: DirDown}) {
		t.Fatal("nav down not consumed")
	}
	if !s.handleEvent(SubmitEvent{}) {
		t.Fatal("submit not consumed")
	}
	// Back is the manager's business, not the menu's.
	if s.handleEvent(BackEvent{}) {
		t.Fatal("menu consumed back event")
	}

	wantTypes := []string{"menu.highlight", "menu.highlight", "menu.select"}
	if !reflect.DeepEqual(rec.types, wantTypes) {
		t.Fatalf("messages = %v, want %v", rec.types, wantTypes)
	}
	if got := rec.payloads[2]; got != 2 {
		t.Fatalf("menu.select payload = %v, want 2", got)
	}

	// Cursor clamps at the top.
	s.handleEvent(NavEvent{Direction: DirUp})
	s.handleEvent(NavEvent{Direction: DirUp})
	s.handleEvent(NavEvent{Direction: DirUp})
	s.handleEvent(SubmitEvent{})
	if got := rec.payloads[len(rec.payloads)-1]; got != 0 {
		t.Fatalf("menu.select payload after clamping = %v, want 0", got)
	}
}

func TestDialogBehavior(t *testing.T) {
	rec := &messageRecorder{consume: true}
	s := behaviorSurface(VariantDialog, rec)
	s.behavior.OnShow(s)

	// Defaults to confirm; submit reports it.
	if !s.handleEvent(SubmitEvent{}) {
		t.Fatal("submit not consumed")
	}
	// Toggle to cancel and submit again.
	s.handleEvent(NavEvent{Direction: DirLeft})
	s.handleEvent(SubmitEvent{})
	// Back always cancels.
	s.handleEvent(BackEvent{})

	wantTypes := []string{"dialog.confirm", "dialog.highlight", "dialog.cancel", "dialog.cancel"}
	if !reflect.DeepEqual(rec.types, wantTypes) {
		t.Fatalf("messages = %v, want %v", rec.types, wantTypes)
	}
}

func TestFormBehavior(t *testing.T) {
	rec := &messageRecorder{consume: true}
	s := behaviorSurface(VariantForm, rec)
	s.behavior.OnShow(s)

	for _, r := range "abc" {
		s.handleEvent(TextEvent{Text: string(r)})
	}
	s.handleEvent(NavEvent{Direction: DirDown})
	s.handleEvent(TextEvent{Text: "x"})
	s.handleEvent(SubmitEvent{})

	if got := rec.types[len(rec.types)-1]; got != "form.submit" {
		t.Fatalf("last message = %q, want form.submit", got)
	}
	vals, ok := rec.payloads[len(rec.payloads)-1].([]string)
	if !ok {
		t.Fatalf("form.submit payload type %T, want []string", rec.payloads[len(rec.payloads)-1])
	}
	if want := []string{"abc", "x"}; !reflect.DeepEqual(vals, want) {
		t.Fatalf("form values = %v, want %v", vals, want)
	}

	// The submitted slice is a copy; later edits must not alias into it.
	s.handleEvent(TextEvent{Text: "y"})
	if vals[1] != "x" {
		t.Fatalf("submitted values mutated to %v after further input", vals)
	}
}

func TestCompositeBehaviorForwardsEverything(t *testing.T) {
	rec := &messageRecorder{consume: true}
	s := behaviorSurface(VariantComposite, rec)

	s.handleEvent(NavEvent{Direction: DirLeft})
	s.handleEvent(SubmitEvent{})
	s.handleEvent(BackEvent{})
	s.handleEvent(TextEvent{Text: "q"})
	s.handleEvent(ButtonEvent{Button: "select"})
	s.handleEvent(MessageEvent{Type: "game.pause", Payload: 7})

	wantTypes := []string{
		"composite.nav", "composite.submit", "composite.back",
		"composite.text", "composite.button", "game.pause",
	}
	if !reflect.DeepEqual(rec.types, wantTypes) {
		t.Fatalf("messages = %v, want %v", rec.types, wantTypes)
	}
	if rec.payloads[5] != 7 {
		t.Fatalf("forwarded payload = %v, want 7", rec.payloads[5])
	}
}

func TestCompositeConsumptionFollowsHandler(t *testing.T) {
	rec := &messageRecorder{consume: false}
	s := behaviorSurface(VariantComposite, rec)
	if s.handleEvent(SubmitEvent{}) {
		t.Fatal("composite consumed event its handler declined")
	}
}

func TestHUDBehavior(t *testing.T) {
	s := behaviorSurface(VariantHUD, &messageRecorder{})

	// No event capability: events are never delivered.
	if s.Caps().Has(CapEvents) || s.Caps().Has(CapFocus) {
		t.Fatal("hud has input capabilities")
	}
	if s.handleEvent(SubmitEvent{}) {
		t.Fatal("hud consumed an event")
	}

	s.behavior.OnUpdate(s, 0.5)
	s.behavior.OnUpdate(s, 0.25)
	if got := s.behavior.(*hudBehavior).elapsed; got != 0.75 {
		t.Fatalf("elapsed = %v, want 0.75", got)
	}
}

func TestDrawTextClipping(t *testing.T) {
	tgt := newFakeTarget(5, 2)
	drawText(tgt, 3, 0, "hello") // clipped at width
	drawText(tgt, 0, 5, "off")   // outside height
	drawText(tgt, -2, 1, "abcd") // negative start clips the head

	if got := tgt.row(0); got != "   he" {
		t.Fatalf("row 0 = %q, want %q", got, "   he")
	}
	if got := tgt.row(1); got != "cd" {
		t.Fatalf("row 1 = %q, want %q", got, "cd")
	}
}

func TestBehaviorRender(t *testing.T) {
	tgt := newFakeTarget(40, 10)
	s := behaviorSurface(VariantDialog, &messageRecorder{})
	s.behavior.OnShow(s)
	s.behavior.OnRender(s, tgt)
	if !tgt.contains("dialog:t [confirm]") {
		t.Fatalf("dialog render missing label; rows: %q", tgt.row(5))
	}
}
