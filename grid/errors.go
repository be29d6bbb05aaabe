package grid

import "errors"

// Sentinel errors for grid construction and queries.
var (
	// ErrEmptyGrid indicates the input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a cell coordinate outside [0,H)x[0,W).
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrBlocked indicates a cell is occupied.
	ErrBlocked = errors.New("grid: cell is blocked")
)
