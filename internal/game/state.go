// Package game provides the main game loop and session state.
package game

// State represents the current loop state.
type State int

const (
	// StateRunning renders frames and handles input.
	StateRunning State = iota
	// StateExiting is terminal; the loop stops after the current frame.
	StateExiting
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateExiting:
		return "exiting"
	default:
		return "unknown"
	}
}
