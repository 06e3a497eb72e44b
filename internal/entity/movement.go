package entity

// Terrain is the map capability movement is validated against.
type Terrain interface {
	InBounds(x, y int) bool
	IsBlocked(x, y int) (bool, error)
}

// TryMove moves e by (dx, dy) if the destination is inside the map and not
// blocked. A rejected move leaves e untouched and returns false.
func TryMove(e *Entity, dx, dy int, t Terrain) bool {
	nx, ny := e.X+dx, e.Y+dy

	if !t.InBounds(nx, ny) {
		return false
	}
	blocked, err := t.IsBlocked(nx, ny)
	if err != nil || blocked {
		return false
	}

	e.Move(dx, dy)
	return true
}
