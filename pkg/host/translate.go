package host

import "github.com/emberforge/scrim/pkg/surface"

// Translate decodes a host event into the core's logical vocabulary.
// The second return is false for events with no logical meaning (resizes,
// unbound keys); those never reach the router.
func Translate(ev Event) (surface.Event, bool) {
	key, ok := ev.(KeyEvent)
	if !ok {
		return nil, false
	}
	switch key.Key {
	case KeyUp:
		return surface.NavEvent{Direction: surface.DirUp}, true
	case KeyDown:
		return surface.NavEvent{Direction: surface.DirDown}, true
	case KeyLeft:
		return surface.NavEvent{Direction: surface.DirLeft}, true
	case KeyRight:
		return surface.NavEvent{Direction: surface.DirRight}, true
	case KeyEnter:
		return surface.SubmitEvent{}, true
	case KeyEscape:
		return surface.BackEvent{}, true
	case KeyRune:
		return surface.TextEvent{Text: string(key.Rune)}, true
	default:
		return nil, false
	}
}
