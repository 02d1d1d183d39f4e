package solve

import "errors"

var (
	// ErrNilGuess indicates a nil initial-guess vector.
	ErrNilGuess = errors.New("solve: initial guess must not be nil")
	// ErrNilTarget indicates a nil target (right-hand side) vector.
	ErrNilTarget = errors.New("solve: target vector must not be nil")
	// ErrNilOperator indicates a nil operator passed to Learn.
	ErrNilOperator = errors.New("solve: operator must not be nil")
	// ErrNegativeTolerance indicates SetTolerance received a negative value.
	ErrNegativeTolerance = errors.New("solve: tolerance must be non-negative")
	// ErrNonPositiveMaxIterations indicates SetMaxIterations received v ≤ 0.
	ErrNonPositiveMaxIterations = errors.New("solve: max iterations must be positive")
	// ErrDimensionMismatch indicates guess, target and operator dimensions disagree.
	ErrDimensionMismatch = errors.New("solve: dimension mismatch")
	// ErrBreakdown indicates a zero curvature denominator: the operator is
	// not positive definite along the current search direction.
	ErrBreakdown = errors.New("solve: iteration breakdown on zero curvature")
)
