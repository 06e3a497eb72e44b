package gamedata

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samdwyer/rogue/internal/console"
)

// SpawnDef defines an entity placed at session start.
type SpawnDef struct {
	Name       string `json:"name"`       // Display name (e.g., "player")
	Glyph      string `json:"glyph"`      // Single character for rendering (e.g., "@")
	Color      string `json:"color"`      // Hex color code (e.g., "#FFFF00")
	X          int    `json:"x"`          // Starting column
	Y          int    `json:"y"`          // Starting row
	Controlled bool   `json:"controlled"` // Driven by player input
}

// GlyphRune returns the glyph as a rune for rendering.
func (s *SpawnDef) GlyphRune() rune {
	r, _ := utf8.DecodeRuneInString(s.Glyph)
	if r == utf8.RuneError {
		return '?'
	}
	return r
}

// ConsoleColor returns the color as a console.Color.
func (s *SpawnDef) ConsoleColor() console.Color {
	color, err := ParseHexColor(s.Color)
	if err != nil {
		return console.White // fallback
	}
	return color
}

// SpawnsFile represents the structure of spawns.json.
type SpawnsFile struct {
	Spawns []SpawnDef `json:"spawns"`
}

// LoadSpawns loads spawn definitions from the embedded spawns.json file.
// Exactly one spawn must be marked controlled.
func LoadSpawns() ([]SpawnDef, error) {
	file, err := Load[SpawnsFile]("spawns.json")
	if err != nil {
		return nil, err
	}
	if err := validateSpawns(file.Spawns); err != nil {
		return nil, err
	}
	return file.Spawns, nil
}

func validateSpawns(spawns []SpawnDef) error {
	controlled := 0
	for _, s := range spawns {
		if utf8.RuneCountInString(s.Glyph) != 1 {
			return fmt.Errorf("spawns.json: %s: glyph %q must be a single character", s.Name, s.Glyph)
		}
		if _, err := ParseHexColor(s.Color); err != nil {
			return fmt.Errorf("spawns.json: %s: %w", s.Name, err)
		}
		if s.Controlled {
			controlled++
		}
	}
	if controlled != 1 {
		return errors.New("spawns.json: exactly one spawn must be controlled")
	}
	return nil
}
