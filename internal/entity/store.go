package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/mattn/go-runewidth"

	"github.com/samdwyer/rogue/internal/console"
)

// ErrInvalidGlyph is returned when a glyph does not occupy exactly one cell.
var ErrInvalidGlyph = errors.New("glyph must occupy a single cell")

// Store holds entities in insertion order.
type Store struct {
	entities []*Entity
	index    map[Handle]*Entity
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		entities: make([]*Entity, 0),
		index:    make(map[Handle]*Entity),
	}
}

// Spawn creates an entity and returns its handle.
func (s *Store) Spawn(name string, x, y int, glyph rune, color console.Color) (Handle, error) {
	if runewidth.RuneWidth(glyph) != 1 {
		return NilHandle, fmt.Errorf("spawn %s: %w: %q", name, ErrInvalidGlyph, glyph)
	}

	e := &Entity{
		Handle: Handle(uuid.New()),
		Name:   name,
		X:      x,
		Y:      y,
		Glyph:  glyph,
		Color:  color,
	}
	s.entities = append(s.entities, e)
	s.index[e.Handle] = e
	return e.Handle, nil
}

// Get returns the entity for a handle.
func (s *Store) Get(h Handle) (*Entity, bool) {
	e, ok := s.index[h]
	return e, ok
}

// All returns every entity in the order it was spawned. The slice is a copy;
// the entities it points to are shared with the store.
func (s *Store) All() []*Entity {
	return slices.Clone(s.entities)
}

// Len returns the number of entities.
func (s *Store) Len() int {
	return len(s.entities)
}
