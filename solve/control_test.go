package solve_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/krylov/operator"
	"github.com/katalvlaran/krylov/solve"
)

// diagOperator builds a dense operator over diag(values...).
func diagOperator(t *testing.T, values ...float64) *operator.Dense {
	t.Helper()
	op, err := operator.NewDense(mat.NewDiagDense(len(values), values))
	require.NoError(t, err)

	return op
}

// recorder is a Listener capturing every lifecycle callback; when stopAt is
// positive it requests a stop after that iteration's StepFinished.
type recorder struct {
	started     int
	stepStarted []int
	stepEnded   []int
	finalState  solve.State
	finalIter   int
	finished    int

	stopAt  int
	stopper interface{ RequestStop() }
}

func (r *recorder) AlgorithmStarted(int) { r.started++ }

func (r *recorder) StepStarted(iteration int) {
	r.stepStarted = append(r.stepStarted, iteration)
}

func (r *recorder) StepFinished(iteration int, _ float64) {
	r.stepEnded = append(r.stepEnded, iteration)
	if r.stopAt > 0 && iteration == r.stopAt {
		r.stopper.RequestStop()
	}
}

func (r *recorder) AlgorithmFinished(final solve.State, iterations int) {
	r.finished++
	r.finalState = final
	r.finalIter = iterations
}

// TestControl_Defaults verifies the documented zero-configuration values.
func TestControl_Defaults(t *testing.T) {
	cg, err := solve.NewConjugateGradient([]float64{0}, []float64{1})
	require.NoError(t, err)

	assert.Equal(t, solve.DefaultTolerance, cg.Tolerance())
	assert.Equal(t, solve.DefaultMaxIterations, cg.MaxIterations())
	assert.Equal(t, solve.StateNotStarted, cg.State())
	assert.Zero(t, cg.Iteration())
	assert.False(t, cg.ResultValid())
}

// TestControl_SetterValidation verifies that invalid setter arguments fail
// with the documented sentinel and leave the previous value intact.
func TestControl_SetterValidation(t *testing.T) {
	cg, err := solve.NewConjugateGradient([]float64{0}, []float64{1})
	require.NoError(t, err)

	require.NoError(t, cg.SetTolerance(1e-6))
	assert.ErrorIs(t, cg.SetTolerance(-1), solve.ErrNegativeTolerance)
	assert.Equal(t, 1e-6, cg.Tolerance(), "failed setter must retain the previous tolerance")

	require.NoError(t, cg.SetMaxIterations(42))
	assert.ErrorIs(t, cg.SetMaxIterations(0), solve.ErrNonPositiveMaxIterations)
	assert.ErrorIs(t, cg.SetMaxIterations(-3), solve.ErrNonPositiveMaxIterations)
	assert.Equal(t, 42, cg.MaxIterations(), "failed setter must retain the previous budget")

	assert.ErrorIs(t, cg.SetInitialGuess(nil), solve.ErrNilGuess)
	assert.ErrorIs(t, cg.SetInitialGuess([]float64{1, 2}), solve.ErrDimensionMismatch)
}

// TestControl_ListenerLifecycle verifies the notification sequence of a
// full converging run: one start, per-step pairs, one finish carrying the
// terminal state and iteration count.
func TestControl_ListenerLifecycle(t *testing.T) {
	op := diagOperator(t, 1, 2, 3)
	cg, err := solve.NewConjugateGradient(make([]float64, 3), []float64{1, 1, 1})
	require.NoError(t, err)

	rec := &recorder{}
	cg.AddListener(rec)
	_, err = cg.Learn(op)
	require.NoError(t, err)

	assert.Equal(t, 1, rec.started)
	assert.Equal(t, 1, rec.finished)
	assert.Equal(t, solve.StateConverged, rec.finalState)
	assert.Equal(t, cg.Iteration(), rec.finalIter)
	assert.Equal(t, rec.stepStarted, rec.stepEnded, "every started step must finish")
	assert.Len(t, rec.stepStarted, cg.Iteration())
}

// TestControl_ListenerStop verifies cooperative early stop: a stop request
// after iteration k terminates the run at exactly k iterations, and
// removing the listener restores the natural convergence count.
func TestControl_ListenerStop(t *testing.T) {
	op := diagOperator(t, 1, 2, 3, 4, 5)
	cg, err := solve.NewConjugateGradient(make([]float64, 5), []float64{1, 1, 1, 1, 1})
	require.NoError(t, err)

	// Natural convergence count first: five distinct eigenvalues.
	_, err = cg.Learn(op)
	require.NoError(t, err)
	natural := cg.Iteration()
	require.Equal(t, 5, natural)

	rec := &recorder{stopAt: 2, stopper: cg}
	cg.AddListener(rec)
	_, err = cg.Learn(op)
	require.NoError(t, err)

	assert.Equal(t, 2, cg.Iteration(), "stop at k must report k iterations")
	assert.Equal(t, []int{1, 2}, rec.stepStarted)
	assert.Equal(t, []int{1, 2}, rec.stepEnded)
	assert.Equal(t, solve.StateStopped, cg.State())
	assert.False(t, cg.ResultValid())

	// Removing the listener must restore the natural run.
	cg.RemoveListener(rec)
	_, err = cg.Learn(op)
	require.NoError(t, err)
	assert.Equal(t, natural, cg.Iteration())
	assert.True(t, cg.ResultValid())
}

// TestState_String pins the state names reported to listeners and logs.
func TestState_String(t *testing.T) {
	assert.Equal(t, "NotStarted", solve.StateNotStarted.String())
	assert.Equal(t, "Iterating", solve.StateIterating.String())
	assert.Equal(t, "Converged", solve.StateConverged.String())
	assert.Equal(t, "MaxIterationsReached", solve.StateMaxIterations.String())
	assert.Equal(t, "Stopped", solve.StateStopped.String())
}
