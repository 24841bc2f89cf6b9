package surface

// Event is a logical input event flowing into the core, one per frame tick.
// Events arrive already decoded; device handling happens in the host layer.
type Event interface {
	isEvent()
}

// Direction is a logical navigation direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

var directionNames = [...]string{
	DirUp:    "up",
	DirDown:  "down",
	DirLeft:  "left",
	DirRight: "right",
}

// String returns the direction's log name.
func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "direction(?)"
	}
	return directionNames[d]
}

// NavEvent moves a selection cursor or field focus within a surface.
type NavEvent struct {
	Direction Direction
}

func (NavEvent) isEvent() {}

// SubmitEvent activates the current selection (confirm, choose, submit).
type SubmitEvent struct{}

func (SubmitEvent) isEvent() {}

// BackEvent requests dismissal of the current surface. Consumers that want
// stack navigation route this through the manager's GoBack instead.
type BackEvent struct{}

func (BackEvent) isEvent() {}

// TextEvent carries text input for form-style surfaces.
type TextEvent struct {
	Text string
}

func (TextEvent) isEvent() {}

// ButtonEvent is a named logical button or action press.
type ButtonEvent struct {
	Button string
}

func (ButtonEvent) isEvent() {}

// MessageEvent carries an owner-defined message through the router. The
// core forwards it to the target surface's handler untouched.
type MessageEvent struct {
	Type    string
	Payload any
}

func (MessageEvent) isEvent() {}
