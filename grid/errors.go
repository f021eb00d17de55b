package grid

import "errors"

var (
	// ErrShapeMismatch means a record's tile count is not height*width.
	ErrShapeMismatch = errors.New("grid: tile count does not match height*width")
	// ErrNegativeDimension means a record has a negative height or width.
	ErrNegativeDimension = errors.New("grid: negative dimension")
	// ErrTooLarge means height*width does not fit in an int.
	ErrTooLarge = errors.New("grid: height*width overflows int")
	// ErrDuplicateField means an encoded record repeats height, width or tiles.
	ErrDuplicateField = errors.New("grid: duplicate field")
	// ErrMissingField means an encoded record lacks height, width or tiles.
	ErrMissingField = errors.New("grid: missing field")
)
