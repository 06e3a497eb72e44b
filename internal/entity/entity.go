// Package entity provides the drawable, movable objects that live on the map.
package entity

import (
	"github.com/google/uuid"

	"github.com/samdwyer/rogue/internal/console"
)

// Handle identifies an entity for the lifetime of a session.
type Handle uuid.UUID

// NilHandle never refers to a spawned entity.
var NilHandle = Handle(uuid.Nil)

// String returns the handle in canonical UUID form.
func (h Handle) String() string {
	return uuid.UUID(h).String()
}

// Entity is anything drawn on the map with a single glyph: the player, NPCs.
type Entity struct {
	Handle Handle
	Name   string
	X, Y   int           // Current position on the map
	Glyph  rune          // Display character
	Color  console.Color // Foreground color
}

// Move updates the entity position by the given delta.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Position returns the current x, y coordinates.
func (e *Entity) Position() (int, int) {
	return e.X, e.Y
}
