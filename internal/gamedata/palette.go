package gamedata

import "github.com/samdwyer/rogue/internal/console"

// PaletteDef holds the map background colors as hex strings.
type PaletteDef struct {
	DarkWall   string `json:"darkWall"`   // Background of sight-blocking tiles
	DarkGround string `json:"darkGround"` // Background of open tiles
}

// Palette is a parsed PaletteDef.
type Palette struct {
	DarkWall   console.Color
	DarkGround console.Color
}

// Parse converts the hex strings into colors.
func (p PaletteDef) Parse() (Palette, error) {
	wall, err := ParseHexColor(p.DarkWall)
	if err != nil {
		return Palette{}, err
	}
	ground, err := ParseHexColor(p.DarkGround)
	if err != nil {
		return Palette{}, err
	}
	return Palette{DarkWall: wall, DarkGround: ground}, nil
}

// LoadPalette loads the palette from the embedded palette.json file.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	return def.Parse()
}
