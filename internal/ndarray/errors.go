package ndarray

import "errors"

// Sentinel errors for the ndarray package. Operations return these (possibly
// wrapped with fmt.Errorf("...: %w", Err) for context); callers match with
// errors.Is. Panics are reserved for programmer errors such as calling At
// with the wrong number of indices.
var (
	// ErrInvalidShape is returned when a constructor or reshape receives a
	// shape with negative extents, or a data slice whose length does not
	// match the shape's element count.
	ErrInvalidShape = errors.New("ndarray: invalid shape")

	// ErrDimensionMismatch indicates a rank or axis mismatch, e.g. matrix
	// multiply with incompatible inner dimensions, or MainDiagonal on a
	// non-square array.
	ErrDimensionMismatch = errors.New("ndarray: dimension mismatch")

	// ErrOutOfRange indicates a slice index beyond the shape bounds, or a
	// slice of a rank-0 array.
	ErrOutOfRange = errors.New("ndarray: index out of range")

	// ErrShapeMismatch is returned by the fused-product family, which
	// requires all operands to share one shape exactly (no broadcasting).
	ErrShapeMismatch = errors.New("ndarray: shape mismatch")

	// ErrUnsupported marks an operation that is not implemented for the
	// given rank combination or element kind.
	ErrUnsupported = errors.New("ndarray: unsupported operation")
)
