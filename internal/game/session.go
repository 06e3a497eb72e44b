package game

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rogue/internal/entity"
	"github.com/samdwyer/rogue/internal/gamedata"
	"github.com/samdwyer/rogue/internal/telemetry"
	"github.com/samdwyer/rogue/internal/world"
)

// Session is the simulation state of one game: a single map and the
// entities on it.
type Session struct {
	Map      *world.TileMap
	Entities *entity.Store
	Player   entity.Handle // Entity driven by input
}

// NewSession builds the map and spawns every entity.
func NewSession(ctx context.Context, layout gamedata.LayoutDef, spawns []gamedata.SpawnDef) (*Session, error) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.build")
	defer span.End()

	m, err := world.New(layout.Width, layout.Height)
	if err != nil {
		return nil, err
	}
	for _, w := range layout.Walls {
		if err := m.SetWall(w.X, w.Y); err != nil {
			return nil, fmt.Errorf("place wall: %w", err)
		}
	}

	s := &Session{
		Map:      m,
		Entities: entity.NewStore(),
		Player:   entity.NilHandle,
	}
	for _, def := range spawns {
		if !m.InBounds(def.X, def.Y) {
			return nil, fmt.Errorf("spawn %s: %w: (%d,%d)", def.Name, world.ErrOutOfBounds, def.X, def.Y)
		}
		h, err := s.Entities.Spawn(def.Name, def.X, def.Y, def.GlyphRune(), def.ConsoleColor())
		if err != nil {
			return nil, err
		}
		if def.Controlled {
			if s.Player != entity.NilHandle {
				return nil, fmt.Errorf("spawn %s: only one entity may be controlled", def.Name)
			}
			s.Player = h
		}
	}
	if s.Player == entity.NilHandle {
		return nil, fmt.Errorf("no controlled entity among %d spawns", len(spawns))
	}

	span.SetAttributes(
		attribute.Int("map.width", m.Width()),
		attribute.Int("map.height", m.Height()),
		attribute.Int("map.walls", len(layout.Walls)),
		attribute.Int("entities", s.Entities.Len()),
	)
	return s, nil
}

// LoadSession builds a session from the embedded game data.
func LoadSession(ctx context.Context) (*Session, error) {
	layout, err := gamedata.LoadLayout()
	if err != nil {
		return nil, err
	}
	spawns, err := gamedata.LoadSpawns()
	if err != nil {
		return nil, err
	}
	return NewSession(ctx, layout, spawns)
}

// Controlled returns the player entity.
func (s *Session) Controlled() *entity.Entity {
	e, _ := s.Entities.Get(s.Player)
	return e
}
