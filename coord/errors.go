package coord

import "errors"

// Sentinel errors for coordinate arithmetic.
var (
	// ErrArityMismatch is returned when two Coords (or a Coord and a size)
	// do not share the same number of dimensions.
	ErrArityMismatch = errors.New("coord: arity mismatch")

	// ErrOutOfRange is returned when a coordinate component is not within
	// the corresponding size dimension.
	ErrOutOfRange = errors.New("coord: component out of range")

	// ErrOverflow is returned when a product or power computation would
	// overflow uint64. Mirrors the source's "overflow-safe multiply".
	ErrOverflow = errors.New("coord: arithmetic overflow")

	// ErrEmptyArity is returned when a Coord or size of arity zero is used
	// where at least one dimension is required.
	ErrEmptyArity = errors.New("coord: arity must be >= 1")
)
