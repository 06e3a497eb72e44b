package gamedata

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/samdwyer/rogue/internal/console"
)

// ParseHexColor converts a hex color string (e.g., "#FF0000" or "FF0000") to a console.Color.
func ParseHexColor(hex string) (console.Color, error) {
	hex = strings.TrimSpace(hex)
	if len(strings.TrimPrefix(hex, "#")) != 6 {
		return console.Color{}, fmt.Errorf("invalid hex color length: %s", hex)
	}
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}

	c, err := colorful.Hex(hex)
	if err != nil {
		return console.Color{}, fmt.Errorf("invalid hex color %s: %w", hex, err)
	}

	r, g, b := c.RGB255()
	return console.Color{R: r, G: g, B: b}, nil
}
