package game

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/samdwyer/rogue/internal/world"
)

// Environment variables read by ConfigFromEnv.
const (
	EnvTitle = "ROGUE_TITLE"
	EnvFPS   = "ROGUE_FPS"
)

// Config holds game configuration options.
type Config struct {
	// Title shown by the terminal or window.
	Title string
	// FPS caps how often frames are presented. Zero or less disables the cap.
	FPS int

	// Root console size in cells.
	ScreenWidth  int
	ScreenHeight int

	// Map console size in cells, blitted onto the root console at (0,0).
	MapWidth  int
	MapHeight int
}

// DefaultConfig returns the standard 80x50 layout at 20 frames per second.
func DefaultConfig() Config {
	return Config{
		Title:        "rogue",
		FPS:          20,
		ScreenWidth:  80,
		ScreenHeight: 50,
		MapWidth:     world.DefaultWidth,
		MapHeight:    world.DefaultHeight,
	}
}

// ConfigFromEnv starts from DefaultConfig and applies environment overrides.
func ConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if title := os.Getenv(EnvTitle); title != "" {
		cfg.Title = title
	}
	if raw := os.Getenv(EnvFPS); raw != "" {
		fps, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("parse %s: %w", EnvFPS, err)
		}
		cfg.FPS = fps
	}

	return cfg, cfg.Validate()
}

// Validate checks that the consoles have sensible sizes.
func (c Config) Validate() error {
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		return errors.New("screen size must be positive")
	}
	if c.MapWidth <= 0 || c.MapHeight <= 0 {
		return errors.New("map size must be positive")
	}
	if c.MapWidth > c.ScreenWidth || c.MapHeight > c.ScreenHeight {
		return fmt.Errorf("map console %dx%d does not fit screen %dx%d",
			c.MapWidth, c.MapHeight, c.ScreenWidth, c.ScreenHeight)
	}
	return nil
}
