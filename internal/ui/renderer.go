package ui

import (
	"github.com/samdwyer/rogue/internal/console"
	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/world"
)

// Renderer draws the map and entities into an offscreen frame.
type Renderer struct {
	palette gamedata.Palette
}

// NewRenderer creates a renderer using the given palette.
func NewRenderer(palette gamedata.Palette) *Renderer {
	return &Renderer{palette: palette}
}

// Render draws every entity, then paints each map cell's background by
// whether it blocks sight. Cells of con beyond the map are left alone.
func (r *Renderer) Render(con *console.Frame, m *world.TileMap, entities []*entity.Entity) {
	for _, e := range entities {
		con.Put(e.X, e.Y, e.Glyph, e.Color)
	}

	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			// Coordinates come from the map's own extent.
			wall, _ := m.BlocksSight(x, y)
			con.SetBackground(x, y, r.tileBackground(wall))
		}
	}
}

func (r *Renderer) tileBackground(wall bool) console.Color {
	if wall {
		return r.palette.DarkWall
	}
	return r.palette.DarkGround
}
