package models

import "errors"

var (
	// ErrInvalidDimensions is returned when a board is requested with a
	// non-positive number of rows or columns.
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	// ErrTooManyMines is returned when the mine count is negative or does
	// not fit on the board.
	ErrTooManyMines = errors.New("mine count does not fit the board")
	// ErrOutOfRange is returned for coordinates outside the board.
	ErrOutOfRange = errors.New("cell out of board range")
)
