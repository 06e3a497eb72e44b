package world

import "fmt"

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45
)

// TileMap is a fixed-size grid of tiles indexed [x][y].
// Its dimensions never change after construction.
type TileMap struct {
	width  int
	height int
	tiles  [][]Tile
}

// New creates a map where every tile is open floor.
func New(width, height int) (*TileMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}

	tiles := make([][]Tile, width)
	for x := range tiles {
		tiles[x] = make([]Tile, height)
		for y := range tiles[x] {
			tiles[x][y] = Floor()
		}
	}

	return &TileMap{
		width:  width,
		height: height,
		tiles:  tiles,
	}, nil
}

// Width returns the number of columns.
func (m *TileMap) Width() int {
	return m.width
}

// Height returns the number of rows.
func (m *TileMap) Height() int {
	return m.height
}

// InBounds reports whether (x, y) lies within the map extent.
func (m *TileMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.width && y >= 0 && y < m.height
}

// Tile returns the tile at (x, y).
func (m *TileMap) Tile(x, y int) (Tile, error) {
	if !m.InBounds(x, y) {
		return Tile{}, m.outOfBounds(x, y)
	}
	return m.tiles[x][y], nil
}

// SetWall turns the tile at (x, y) into a wall.
func (m *TileMap) SetWall(x, y int) error {
	if !m.InBounds(x, y) {
		return m.outOfBounds(x, y)
	}
	m.tiles[x][y] = Wall()
	return nil
}

// IsBlocked reports whether the tile at (x, y) blocks movement.
func (m *TileMap) IsBlocked(x, y int) (bool, error) {
	t, err := m.Tile(x, y)
	if err != nil {
		return false, err
	}
	return t.Blocked, nil
}

// BlocksSight reports whether the tile at (x, y) blocks line of sight.
func (m *TileMap) BlocksSight(x, y int) (bool, error) {
	t, err := m.Tile(x, y)
	if err != nil {
		return false, err
	}
	return t.BlocksSight, nil
}

func (m *TileMap) outOfBounds(x, y int) error {
	return fmt.Errorf("%w: (%d,%d) outside %dx%d", ErrOutOfBounds, x, y, m.width, m.height)
}
