package solve

import (
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/krylov/operator"
)

// PreconditionedConjugateGradient runs the CG recurrence in the inner
// product induced by a preconditioner M ≈ A:
//
//	z  = M⁻¹·r
//	α  = (r·z)/(p·A·p)
//	x += α·p
//	r −= α·A·p
//	β  = (r'·z')/(r·z)
//	p  = z' + β·p
//
// The closer M approximates A, the fewer iterations are needed; a diagonal
// preconditioner that matches a diagonal system exactly converges in one
// iteration regardless of how many distinct diagonal values the system has.
// Convergence is still judged on the true residual norm ‖r‖.
type PreconditionedConjugateGradient struct {
	Control
	vectors
}

// NewPreconditionedConjugateGradient constructs a PCG solver for guess and
// target vectors of equal length. Both vectors are copied.
func NewPreconditionedConjugateGradient(guess, target []float64) (*PreconditionedConjugateGradient, error) {
	vs, err := newVectors(guess, target, true)
	if err != nil {
		return nil, err
	}

	return &PreconditionedConjugateGradient{Control: newControl(), vectors: vs}, nil
}

// Learn runs the preconditioned recurrence against op until convergence,
// budget exhaustion or a requested stop.
func (pcg *PreconditionedConjugateGradient) Learn(op operator.Preconditioner) (Result, error) {
	if op == nil {
		return Result{}, ErrNilOperator
	}
	n := len(pcg.guess)
	if op.InDim() != n || op.OutDim() != n {
		return Result{}, ErrDimensionMismatch
	}

	x := clone(pcg.guess)
	r := make([]float64, n)
	z := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	if err := op.Apply(ap, x); err != nil {
		return Result{}, err
	}
	for i := range r {
		r[i] = pcg.target[i] - ap[i]
	}
	if err := op.Precondition(z, r); err != nil {
		return Result{}, err
	}
	copy(p, z)
	rz := vek.Dot(r, z)

	err := pcg.run(n, math.Sqrt(vek.Dot(r, r)), func(int) (float64, error) {
		if err := op.Apply(ap, p); err != nil {
			return 0, err
		}
		denom := vek.Dot(p, ap)
		if denom == 0 {
			return 0, ErrBreakdown
		}
		alpha := rz / denom
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		if err := op.Precondition(z, r); err != nil {
			return 0, err
		}
		next := vek.Dot(r, z)
		beta := next / rz
		for i := range p {
			p[i] = z[i] + beta*p[i]
		}
		rz = next

		return math.Sqrt(vek.Dot(r, r)), nil
	})

	return Result{Input: clone(pcg.guess), Output: x}, err
}
