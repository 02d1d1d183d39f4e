package solve

import (
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/krylov/operator"
)

// ConjugateGradient solves A·x = b for a symmetric positive-definite
// operator A using the standard CG recurrence:
//
//	α  = (r·r)/(p·A·p)
//	x += α·p
//	r' = r − α·A·p
//	β  = (r'·r')/(r·r)
//	p  = r' + β·p
//
// In exact arithmetic CG reaches the solution in at most as many iterations
// as A has distinct eigenvalues; a uniform-diagonal system converges in one.
type ConjugateGradient struct {
	Control
	vectors
}

// NewConjugateGradient constructs a CG solver for guess and target vectors
// of equal length. Both vectors are copied.
func NewConjugateGradient(guess, target []float64) (*ConjugateGradient, error) {
	vs, err := newVectors(guess, target, true)
	if err != nil {
		return nil, err
	}

	return &ConjugateGradient{Control: newControl(), vectors: vs}, nil
}

// Learn runs the recurrence against op until convergence, budget
// exhaustion or a requested stop, and returns the (guess, iterate) pair.
func (cg *ConjugateGradient) Learn(op operator.Operator) (Result, error) {
	if op == nil {
		return Result{}, ErrNilOperator
	}
	n := len(cg.guess)
	if op.InDim() != n || op.OutDim() != n {
		return Result{}, ErrDimensionMismatch
	}

	x, err := conjugateLoop(&cg.Control, op, cg.target, cg.guess)

	return Result{Input: clone(cg.guess), Output: x}, err
}

// conjugateLoop is the CG core shared with the least-squares minimizer;
// the two differ only in the operator and right-hand side they hand in.
func conjugateLoop(c *Control, op operator.Operator, b, guess []float64) ([]float64, error) {
	n := len(guess)
	x := clone(guess)
	r := make([]float64, n)
	p := make([]float64, n)
	ap := make([]float64, n)

	if err := op.Apply(ap, x); err != nil {
		return x, err
	}
	for i := range r {
		r[i] = b[i] - ap[i]
	}
	copy(p, r)
	rr := vek.Dot(r, r)

	err := c.run(n, math.Sqrt(rr), func(int) (float64, error) {
		if err := op.Apply(ap, p); err != nil {
			return 0, err
		}
		denom := vek.Dot(p, ap)
		if denom == 0 {
			return 0, ErrBreakdown
		}
		alpha := rr / denom
		for i := range x {
			x[i] += alpha * p[i]
			r[i] -= alpha * ap[i]
		}
		next := vek.Dot(r, r)
		beta := next / rr
		for i := range p {
			p[i] = r[i] + beta*p[i]
		}
		rr = next

		return math.Sqrt(next), nil
	})

	return x, err
}
