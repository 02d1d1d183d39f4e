package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/krylov/operator"
	"github.com/katalvlaran/krylov/solve"
)

// TestNewConjugateGradient_Validation covers nil and mismatched vectors.
func TestNewConjugateGradient_Validation(t *testing.T) {
	_, err := solve.NewConjugateGradient(nil, []float64{1})
	assert.ErrorIs(t, err, solve.ErrNilGuess)

	_, err = solve.NewConjugateGradient([]float64{0}, nil)
	assert.ErrorIs(t, err, solve.ErrNilTarget)

	_, err = solve.NewConjugateGradient([]float64{0}, []float64{1, 2})
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)

	_, err = solve.NewConjugateGradient([]float64{}, []float64{})
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)
}

// TestConjugateGradient_UniformDiagonalOneIteration: a matrix with a single
// repeated eigenvalue d converges to x = b/d in exactly one iteration.
func TestConjugateGradient_UniformDiagonalOneIteration(t *testing.T) {
	op := diagOperator(t, 4, 4, 4, 4)
	cg, err := solve.NewConjugateGradient(make([]float64, 4), []float64{2, 4, 8, 12})
	require.NoError(t, err)

	res, err := cg.Learn(op)
	require.NoError(t, err)

	assert.Equal(t, 1, cg.Iteration())
	assert.True(t, cg.ResultValid())
	assert.InDeltaSlice(t, []float64{0.5, 1, 2, 3}, res.Output, 1e-12)
}

// TestConjugateGradient_DistinctEigenvalueIterations: CG over an n×n
// diagonal system converges in exactly as many iterations as there are
// distinct diagonal values.
func TestConjugateGradient_DistinctEigenvalueIterations(t *testing.T) {
	cases := []struct {
		name     string
		diagonal []float64
		want     int
	}{
		{"five distinct over five", []float64{1, 2, 3, 4, 5}, 5},
		{"three distinct over five", []float64{1, 1, 2, 2, 3}, 3},
		{"two distinct over four", []float64{7, 7, 9, 9}, 2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			op := diagOperator(t, tc.diagonal...)
			b := []float64{1, 1, 1, 1, 1}[:len(tc.diagonal)]
			cg, err := solve.NewConjugateGradient(make([]float64, len(tc.diagonal)), b)
			require.NoError(t, err)

			res, err := cg.Learn(op)
			require.NoError(t, err)

			assert.Equal(t, tc.want, cg.Iteration())
			assert.True(t, cg.ResultValid())
			for i, d := range tc.diagonal {
				assert.InDelta(t, 1/d, res.Output[i], 1e-10)
			}
		})
	}
}

// TestConjugateGradient_RepeatedLearnIdempotent: re-running with the same
// operator and guess reproduces the result exactly.
func TestConjugateGradient_RepeatedLearnIdempotent(t *testing.T) {
	op := diagOperator(t, 1, 3, 5)
	cg, err := solve.NewConjugateGradient(make([]float64, 3), []float64{2, 2, 2})
	require.NoError(t, err)

	first, err := cg.Learn(op)
	require.NoError(t, err)
	second, err := cg.Learn(op)
	require.NoError(t, err)

	assert.Equal(t, first.Input, second.Input)
	assert.Equal(t, first.Output, second.Output)
}

// TestConjugateGradient_SetInitialGuess: an exact guess converges with
// zero iterations; the result pair still reports the configured input.
func TestConjugateGradient_SetInitialGuess(t *testing.T) {
	op := diagOperator(t, 2, 2)
	cg, err := solve.NewConjugateGradient(make([]float64, 2), []float64{2, 6})
	require.NoError(t, err)

	require.NoError(t, cg.SetInitialGuess([]float64{1, 3}))
	res, err := cg.Learn(op)
	require.NoError(t, err)

	assert.Zero(t, cg.Iteration(), "exact guess needs no steps")
	assert.True(t, cg.ResultValid())
	assert.Equal(t, []float64{1, 3}, res.Input)
	assert.Equal(t, []float64{1, 3}, res.Output)
}

// TestConjugateGradient_OperatorMismatchLeavesStateIntact verifies Learn
// validates before mutating any solver state.
func TestConjugateGradient_OperatorMismatchLeavesStateIntact(t *testing.T) {
	cg, err := solve.NewConjugateGradient(make([]float64, 3), []float64{1, 1, 1})
	require.NoError(t, err)

	_, err = cg.Learn(nil)
	assert.ErrorIs(t, err, solve.ErrNilOperator)

	_, err = cg.Learn(diagOperator(t, 1, 2))
	assert.ErrorIs(t, err, solve.ErrDimensionMismatch)

	assert.Equal(t, solve.StateNotStarted, cg.State(), "failed Learn must not touch state")
	assert.Zero(t, cg.Iteration())
}

// TestConjugateGradient_MaxIterationsReached: exhausting the budget is a
// valid, non-error outcome distinguished by ResultValid.
func TestConjugateGradient_MaxIterationsReached(t *testing.T) {
	op := diagOperator(t, 1, 2, 3, 4, 5)
	cg, err := solve.NewConjugateGradient(make([]float64, 5), []float64{1, 1, 1, 1, 1})
	require.NoError(t, err)
	require.NoError(t, cg.SetMaxIterations(2))

	res, err := cg.Learn(op)
	require.NoError(t, err, "running out of budget is not an error")

	assert.Equal(t, solve.StateMaxIterations, cg.State())
	assert.Equal(t, 2, cg.Iteration())
	assert.False(t, cg.ResultValid())
	assert.Len(t, res.Output, 5, "the partial iterate is still returned")
}

// TestConjugateGradient_Breakdown: a zero operator has no positive
// curvature along any direction and must surface ErrBreakdown.
func TestConjugateGradient_Breakdown(t *testing.T) {
	zero, err := operator.NewSparse(2, 2)
	require.NoError(t, err)

	cg, err := solve.NewConjugateGradient(make([]float64, 2), []float64{1, 1})
	require.NoError(t, err)

	_, err = cg.Learn(zero)
	assert.ErrorIs(t, err, solve.ErrBreakdown)
	assert.False(t, cg.ResultValid())
}
