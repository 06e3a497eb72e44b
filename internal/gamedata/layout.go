package gamedata

import "errors"

// Point is a map coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// LayoutDef describes a hand-built map.
type LayoutDef struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Walls  []Point `json:"walls"`
}

// LoadLayout loads the map layout from the embedded map.json file.
func LoadLayout() (LayoutDef, error) {
	layout, err := Load[LayoutDef]("map.json")
	if err != nil {
		return LayoutDef{}, err
	}
	if layout.Width <= 0 || layout.Height <= 0 {
		return LayoutDef{}, errors.New("map.json: width and height must be positive")
	}
	return layout, nil
}
