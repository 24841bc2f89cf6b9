package host

import "strings"

// SimBackend is an in-memory Backend for tests and headless runs. Events
// come from a script; rendered cells can be inspected as rows of text.
type SimBackend struct {
	width  int
	height int
	cells  map[cellPos]rune
	script []Event
}

type cellPos struct{ x, y int }

// NewSim creates a simulation backend with a fixed size.
func NewSim(width, height int) *SimBackend {
	return &SimBackend{
		width:  width,
		height: height,
		cells:  make(map[cellPos]rune),
	}
}

// Post appends an event to the script.
func (b *SimBackend) Post(ev Event) {
	b.script = append(b.script, ev)
}

// Init implements Backend.
func (b *SimBackend) Init() error { return nil }

// Fini implements Backend.
func (b *SimBackend) Fini() {}

// Size returns the simulated dimensions.
func (b *SimBackend) Size() (width, height int) {
	return b.width, b.height
}

// SetContent records one cell.
func (b *SimBackend) SetContent(x, y int, r rune) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.cells[cellPos{x, y}] = r
}

// Show is a no-op for the simulation.
func (b *SimBackend) Show() {}

// Clear wipes all recorded cells.
func (b *SimBackend) Clear() {
	b.cells = make(map[cellPos]rune)
}

// PollEvent pops the next scripted event, nil when exhausted.
func (b *SimBackend) PollEvent() Event {
	if len(b.script) == 0 {
		return nil
	}
	ev := b.script[0]
	b.script = b.script[1:]
	return ev
}

// Row returns the rendered text of row y with trailing spaces trimmed.
func (b *SimBackend) Row(y int) string {
	end := -1
	for x := 0; x < b.width; x++ {
		if _, ok := b.cells[cellPos{x, y}]; ok {
			end = x
		}
	}
	if end < 0 {
		return ""
	}
	row := make([]rune, end+1)
	for x := 0; x <= end; x++ {
		r, ok := b.cells[cellPos{x, y}]
		if !ok {
			r = ' '
		}
		row[x] = r
	}
	return string(row)
}

// Contains reports whether any row contains text.
func (b *SimBackend) Contains(text string) bool {
	for y := 0; y < b.height; y++ {
		if strings.Contains(b.Row(y), text) {
			return true
		}
	}
	return false
}
