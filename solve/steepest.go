package solve

import (
	"math"

	"github.com/viterin/vek"

	"github.com/katalvlaran/krylov/operator"
)

// SteepestDescent solves A·x = b for a symmetric positive-definite operator
// A by stepping along the residual each iteration:
//
//	r  = b − A·x
//	α  = (r·r)/(r·A·r)
//	x += α·r
//
// Convergence is linear with a rate governed by the condition number of A;
// when every eigenvalue of A is equal (a uniform diagonal) the first step
// is exact.
type SteepestDescent struct {
	Control
	vectors
}

// NewSteepestDescent constructs a steepest-descent solver for guess and
// target vectors of equal length. Both vectors are copied.
func NewSteepestDescent(guess, target []float64) (*SteepestDescent, error) {
	vs, err := newVectors(guess, target, true)
	if err != nil {
		return nil, err
	}

	return &SteepestDescent{Control: newControl(), vectors: vs}, nil
}

// Learn runs the descent against op until convergence, budget exhaustion
// or a requested stop, and returns the (guess, iterate) pair.
func (sd *SteepestDescent) Learn(op operator.Operator) (Result, error) {
	if op == nil {
		return Result{}, ErrNilOperator
	}
	n := len(sd.guess)
	if op.InDim() != n || op.OutDim() != n {
		return Result{}, ErrDimensionMismatch
	}

	x := clone(sd.guess)
	r := make([]float64, n)
	ar := make([]float64, n)

	if err := op.Apply(ar, x); err != nil {
		return Result{}, err
	}
	for i := range r {
		r[i] = sd.target[i] - ar[i]
	}
	rr := vek.Dot(r, r)

	err := sd.run(n, math.Sqrt(rr), func(int) (float64, error) {
		if err := op.Apply(ar, r); err != nil {
			return 0, err
		}
		denom := vek.Dot(r, ar)
		if denom == 0 {
			return 0, ErrBreakdown
		}
		alpha := rr / denom
		for i := range x {
			x[i] += alpha * r[i]
			r[i] -= alpha * ar[i]
		}
		rr = vek.Dot(r, r)

		return math.Sqrt(rr), nil
	})

	return Result{Input: clone(sd.guess), Output: x}, err
}
