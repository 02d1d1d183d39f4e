package solve

import "github.com/katalvlaran/krylov/operator"

// LeastSquaresConjugateGradient minimizes ‖A·x − b‖² for a rectangular,
// generally over-constrained A by running the plain CG recurrence on the
// normal equations AᵀA·x = Aᵀb through an operator.Normal. When an exact
// solution exists it is recovered; otherwise the least-squares minimizer
// is. Nothing at the call site distinguishes the two cases — only the
// operator differs from ConjugateGradient.
//
// The guess has the length of x (columns of A); the target has the length
// of b (rows of A). Convergence is judged on the normal-equations residual
// ‖Aᵀ(b − A·x)‖, which is zero exactly at the minimizer.
type LeastSquaresConjugateGradient struct {
	Control
	vectors
}

// NewLeastSquaresConjugateGradient constructs a least-squares minimizer
// from a guess of length n and a target of length m. Both are copied.
func NewLeastSquaresConjugateGradient(guess, target []float64) (*LeastSquaresConjugateGradient, error) {
	vs, err := newVectors(guess, target, false)
	if err != nil {
		return nil, err
	}

	return &LeastSquaresConjugateGradient{Control: newControl(), vectors: vs}, nil
}

// Learn minimizes against op until convergence, budget exhaustion or a
// requested stop, and returns the (guess, minimizer) pair.
func (ls *LeastSquaresConjugateGradient) Learn(op operator.Normal) (Result, error) {
	if op == nil {
		return Result{}, ErrNilOperator
	}
	n := len(ls.guess)
	if op.InDim() != n || op.OutDim() != n || op.Rows() != len(ls.target) {
		return Result{}, ErrDimensionMismatch
	}

	// Normal-equations right-hand side: bn = Aᵀ·b.
	bn := make([]float64, n)
	if err := op.ApplyTranspose(bn, ls.target); err != nil {
		return Result{}, err
	}

	x, err := conjugateLoop(&ls.Control, op, bn, ls.guess)

	return Result{Input: clone(ls.guess), Output: x}, err
}
