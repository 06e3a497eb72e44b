// Package world provides the tile map that entities move across.
package world

// Tile represents a single map cell.
// A tile that blocks movement is fully impassable; sight blocking is tracked
// separately so a tile may in principle block one but not the other.
type Tile struct {
	Blocked     bool
	BlocksSight bool
}

// Floor returns an open tile that neither blocks movement nor sight.
func Floor() Tile {
	return Tile{}
}

// Wall returns a tile that blocks both movement and sight.
func Wall() Tile {
	return Tile{Blocked: true, BlocksSight: true}
}
