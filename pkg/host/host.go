// Package host adapts terminal I/O to the surface core. The core only
// sees already-decoded logical events and a RenderTarget; this package
// owns the device side: a real tcell terminal for interactive use and a
// simulation backend for tests.
package host

// Backend is the terminal abstraction the demo host loop runs against.
// Size and SetContent make every Backend a surface.RenderTarget.
type Backend interface {
	// Init prepares the backend (raw mode, alt screen for real terminals).
	Init() error

	// Fini restores the terminal state.
	Fini()

	// Size returns the current dimensions.
	Size() (width, height int)

	// SetContent sets one cell.
	SetContent(x, y int, r rune)

	// Show flushes buffered cells to the terminal.
	Show()

	// Clear clears the screen.
	Clear()

	// PollEvent blocks until an input event is available. Returns nil
	// when the backend is shutting down or the script is exhausted.
	PollEvent() Event
}

// Event is a decoded terminal input event.
type Event interface {
	isHostEvent()
}

// KeyEvent is one key press.
type KeyEvent struct {
	Key  Key
	Rune rune
}

func (KeyEvent) isHostEvent() {}

// ResizeEvent reports a terminal size change.
type ResizeEvent struct {
	Width  int
	Height int
}

func (ResizeEvent) isHostEvent() {}

// Key identifies special keys.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)
