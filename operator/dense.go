package operator

import "gonum.org/v1/gonum/mat"

// Dense exposes an explicit gonum matrix as an Operator: w = A·v.
// The wrapped matrix may be square or rectangular; it is read-only for the
// lifetime of the operator, so a Dense value is safe to share across
// goroutines.
type Dense struct {
	a    mat.Matrix
	rows int
	cols int
}

// NewDense wraps a into a matrix-vector product operator.
// Returns ErrNilMatrix when a is nil.
func NewDense(a mat.Matrix) (*Dense, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()

	return &Dense{a: a, rows: r, cols: c}, nil
}

// InDim returns the column count of the wrapped matrix.
func (d *Dense) InDim() int { return d.cols }

// OutDim returns the row count of the wrapped matrix.
func (d *Dense) OutDim() int { return d.rows }

// Apply computes dst = A·src.
func (d *Dense) Apply(dst, src []float64) error {
	if err := checkApply(dst, src, d.cols, d.rows); err != nil {
		return err
	}

	// VecDense shares the backing slices, so the product lands in dst
	// without an extra copy.
	out := mat.NewVecDense(d.rows, dst)
	out.MulVec(d.a, mat.NewVecDense(d.cols, src))

	return nil
}
