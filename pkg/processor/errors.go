package processor

import "errors"

// Fatal errors abort the whole export run.
var (
	// ErrNothingToExport means the object set was empty.
	ErrNothingToExport = errors.New("processor: nothing to export")

	// ErrZeroBrickSize means the resolved brick size is zero or negative
	// on at least one axis.
	ErrZeroBrickSize = errors.New("processor: brick size must be positive on all axes")
)

// Recoverable errors drop a single definition and let the run continue.
var (
	// ErrOutOfBounds means a definition has vertices outside the brick
	// bounds.
	ErrOutOfBounds = errors.New("processor: definition outside brick bounds")

	// ErrZeroSize means a definition has zero extent on at least one
	// axis.
	ErrZeroSize = errors.New("processor: definition has zero size on at least one axis")

	// ErrTooFewVertices means a collision definition has fewer than the
	// two vertices a bounding box needs.
	ErrTooFewVertices = errors.New("processor: collision definition has less than 2 vertices")
)
