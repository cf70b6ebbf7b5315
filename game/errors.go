package game

import "errors"

var (
	// ErrInvalidDimensions is returned when a board would have no cells.
	ErrInvalidDimensions = errors.New("invalid board dimensions")

	// ErrInsufficientSpace is returned when the mine count does not fit the board,
	// once the safe zone around the first selection is excluded.
	ErrInsufficientSpace = errors.New("insufficient space for mines")

	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinates out of bounds")

	// ErrInvalidSnapshot is returned when a serialized board cannot be parsed.
	ErrInvalidSnapshot = errors.New("invalid board snapshot")
)
