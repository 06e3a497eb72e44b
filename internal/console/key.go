package console

// Key is a discrete input event as seen by the game loop.
type Key int

const (
	// KeyNone is any input the game does not act on.
	KeyNone Key = iota
	KeyQuit
	KeyToggleFullscreen
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable key name.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyQuit:
		return "quit"
	case KeyToggleFullscreen:
		return "toggle_fullscreen"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	default:
		return "unknown"
	}
}

// Delta returns the unit movement for a directional key.
// ok is false for keys that do not move.
func (k Key) Delta() (dx, dy int, ok bool) {
	switch k {
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}
