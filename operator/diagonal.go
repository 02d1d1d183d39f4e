package operator

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Diagonal composes a square inner operator with an elementwise division by
// a caller-supplied diagonal (or diagonal approximation of the underlying
// matrix). Apply delegates to the inner operator unchanged; Precondition is
// the extra step the preconditioned conjugate gradient solver needs.
//
// Zero and non-finite diagonal entries are rejected at construction rather
// than substituted with a floor, so a breakdown surfaces at the API boundary
// instead of as a contaminated solve.
type Diagonal struct {
	inner Operator
	inv   []float64
}

// NewDiagonal wraps op with the preconditioning diagonal diag.
//
// Errors:
//   - ErrNilOperator when op is nil.
//   - ErrDimensionMismatch when op is not square or len(diag) differs
//     from its dimension.
//   - ErrZeroDiagonal / ErrNotFinite for unusable diagonal entries.
func NewDiagonal(op Operator, diag []float64) (*Diagonal, error) {
	if op == nil {
		return nil, ErrNilOperator
	}
	n := op.InDim()
	if op.OutDim() != n || len(diag) != n {
		return nil, ErrDimensionMismatch
	}

	inv := make([]float64, n)
	for i, d := range diag {
		if math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, ErrNotFinite
		}
		if d == 0 {
			return nil, ErrZeroDiagonal
		}
		inv[i] = 1 / d
	}

	return &Diagonal{inner: op, inv: inv}, nil
}

// InDim returns the dimension of the wrapped square operator.
func (d *Diagonal) InDim() int { return len(d.inv) }

// OutDim returns the dimension of the wrapped square operator.
func (d *Diagonal) OutDim() int { return len(d.inv) }

// Apply computes the un-preconditioned product dst = A·src.
func (d *Diagonal) Apply(dst, src []float64) error {
	return d.inner.Apply(dst, src)
}

// Precondition computes dst[i] = src[i] / diag[i].
func (d *Diagonal) Precondition(dst, src []float64) error {
	n := len(d.inv)
	if err := checkApply(dst, src, n, n); err != nil {
		return err
	}
	floats.MulTo(dst, src, d.inv)

	return nil
}
