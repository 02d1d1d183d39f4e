package operator

import "errors"

var (
	// ErrNilMatrix indicates a nil mat.Matrix was handed to a constructor.
	ErrNilMatrix = errors.New("operator: matrix must not be nil")
	// ErrNilOperator indicates a nil inner Operator was handed to a constructor.
	ErrNilOperator = errors.New("operator: inner operator must not be nil")
	// ErrBadShape indicates a requested shape with a non-positive dimension.
	ErrBadShape = errors.New("operator: rows and columns must be positive")
	// ErrOutOfRange indicates an index outside the declared shape.
	ErrOutOfRange = errors.New("operator: index out of range")
	// ErrDimensionMismatch indicates a vector length incompatible with the
	// operator's declared input or output dimensionality.
	ErrDimensionMismatch = errors.New("operator: dimension mismatch")
	// ErrNotFinite indicates a NaN or ±Inf value where finite input is required.
	ErrNotFinite = errors.New("operator: value must be finite")
	// ErrZeroDiagonal indicates a zero diagonal entry in a preconditioner.
	ErrZeroDiagonal = errors.New("operator: diagonal entry is zero")
)
