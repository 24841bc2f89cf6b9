package host

import (
	"github.com/gdamore/tcell/v2"
)

// TcellBackend implements Backend on a real terminal via tcell.
type TcellBackend struct {
	screen tcell.Screen
}

// NewTcell creates a tcell backend.
func NewTcell() (*TcellBackend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &TcellBackend{screen: screen}, nil
}

// NewTcellWithScreen wraps an existing tcell screen (for testing with
// tcell's SimulationScreen).
func NewTcellWithScreen(screen tcell.Screen) *TcellBackend {
	return &TcellBackend{screen: screen}
}

// Init enters the terminal.
func (b *TcellBackend) Init() error {
	if err := b.screen.Init(); err != nil {
		return err
	}
	b.screen.HideCursor()
	return nil
}

// Fini restores the terminal.
func (b *TcellBackend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *TcellBackend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets one cell with the default style.
func (b *TcellBackend) SetContent(x, y int, r rune) {
	b.screen.SetContent(x, y, r, nil, tcell.StyleDefault)
}

// Show flushes to the terminal.
func (b *TcellBackend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *TcellBackend) Clear() {
	b.screen.Clear()
}

// PollEvent blocks for the next input event.
func (b *TcellBackend) PollEvent() Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch e := ev.(type) {
		case *tcell.EventResize:
			w, h := e.Size()
			return ResizeEvent{Width: w, Height: h}
		case *tcell.EventKey:
			if ke, ok := decodeKey(e); ok {
				return ke
			}
			// Unbound key; keep polling.
		}
	}
}

func decodeKey(e *tcell.EventKey) (KeyEvent, bool) {
	switch e.Key() {
	case tcell.KeyRune:
		return KeyEvent{Key: KeyRune, Rune: e.Rune()}, true
	case tcell.KeyEnter:
		return KeyEvent{Key: KeyEnter}, true
	case tcell.KeyEscape:
		return KeyEvent{Key: KeyEscape}, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return KeyEvent{Key: KeyBackspace}, true
	case tcell.KeyTab:
		return KeyEvent{Key: KeyTab}, true
	case tcell.KeyUp:
		return KeyEvent{Key: KeyUp}, true
	case tcell.KeyDown:
		return KeyEvent{Key: KeyDown}, true
	case tcell.KeyLeft:
		return KeyEvent{Key: KeyLeft}, true
	case tcell.KeyRight:
		return KeyEvent{Key: KeyRight}, true
	default:
		return KeyEvent{}, false
	}
}
