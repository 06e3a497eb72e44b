package world

import "errors"

var (
	// ErrOutOfBounds is returned when coordinates fall outside the map extent.
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrInvalidSize is returned when a map is created with non-positive dimensions.
	ErrInvalidSize = errors.New("invalid map size")
)
