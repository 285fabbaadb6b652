package epicycles

import "errors"

var (
	// ErrInvalidParameter indicates a caller supplied a parameter violating a
	// precondition, e.g. an odd number of Fourier components, an empty list of
	// epicycle components or a non-positive number of sample points.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrDegenerateContour indicates input geometry violating a numeric
	// precondition, e.g. coincident consecutive points or an axis without extent.
	ErrDegenerateContour = errors.New("degenerate contour")
)
