package game

// EventKind says what happened to a key, or that the window was closed
type EventKind uint8

// Event kinds
const (
	KeyDown EventKind = iota + 1
	KeyUp
	Quit
)

// Key is a backend neutral key code
type Key uint8

// Keys the game cares about, everything else is KeyOther
const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyEscape
)

// Event is a single input event from the front end
type Event struct {
	Kind EventKind
	Key  Key
}

// InputSource is polled once per frame for events since the last poll
type InputSource interface {
	Poll() []Event
}

// InputFunc adapts a function to an InputSource
type InputFunc func() []Event

// Poll calls f
func (f InputFunc) Poll() []Event {
	return f()
}

// direction a key steers the worm in, and whether it steers at all
func (k Key) direction() (Direction, bool) {
	switch k {
	case KeyArrowUp, KeyW:
		return Up, true
	case KeyArrowDown, KeyS:
		return Down, true
	case KeyArrowLeft, KeyA:
		return Left, true
	case KeyArrowRight, KeyD:
		return Right, true
	}
	return 0, false
}

// quits reports whether ev ends the game
func (ev Event) quits() bool {
	return ev.Kind == Quit || ev.Key == KeyEscape
}
