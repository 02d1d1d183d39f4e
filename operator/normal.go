package operator

import "gonum.org/v1/gonum/mat"

// NormalEquations exposes a rectangular m×n matrix A as the square n×n
// operator w = Aᵀ(A·v). Solving AᵀA·x = Aᵀb with the plain conjugate
// gradient recurrence recovers the least-squares minimizer of ‖Ax−b‖²
// without ever materializing AᵀA, which would be dense even for sparse A.
//
// Apply keeps an internal scratch vector of length m, so a NormalEquations
// value must not be shared between concurrent Apply calls; the solvers only
// ever call it from the iteration loop.
type NormalEquations struct {
	a       mat.Matrix
	rows    int
	cols    int
	scratch []float64
}

// NewNormalEquations wraps the rectangular matrix a.
// Returns ErrNilMatrix when a is nil.
func NewNormalEquations(a mat.Matrix) (*NormalEquations, error) {
	if a == nil {
		return nil, ErrNilMatrix
	}
	r, c := a.Dims()

	return &NormalEquations{a: a, rows: r, cols: c, scratch: make([]float64, r)}, nil
}

// InDim returns n, the column count of the underlying matrix.
func (ne *NormalEquations) InDim() int { return ne.cols }

// OutDim returns n; the composed operator is square by construction.
func (ne *NormalEquations) OutDim() int { return ne.cols }

// Rows returns m, the row count of the underlying rectangular matrix.
func (ne *NormalEquations) Rows() int { return ne.rows }

// Apply computes dst = Aᵀ(A·src) with two matrix-vector products.
func (ne *NormalEquations) Apply(dst, src []float64) error {
	if err := checkApply(dst, src, ne.cols, ne.cols); err != nil {
		return err
	}

	t := mat.NewVecDense(ne.rows, ne.scratch)
	t.MulVec(ne.a, mat.NewVecDense(ne.cols, src))
	out := mat.NewVecDense(ne.cols, dst)
	out.MulVec(ne.a.T(), t)

	return nil
}

// ApplyTranspose computes dst = Aᵀ·rhs, the normal-equations right-hand
// side for a target vector rhs of the original over-constrained system.
func (ne *NormalEquations) ApplyTranspose(dst, rhs []float64) error {
	if len(rhs) != ne.rows || len(dst) != ne.cols {
		return ErrDimensionMismatch
	}

	out := mat.NewVecDense(ne.cols, dst)
	out.MulVec(ne.a.T(), mat.NewVecDense(ne.rows, rhs))

	return nil
}
