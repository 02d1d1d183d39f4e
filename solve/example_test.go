package solve_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/krylov/operator"
	"github.com/katalvlaran/krylov/solve"
)

// ExampleConjugateGradient solves a uniform diagonal system — a single
// repeated eigenvalue, so one iteration lands exactly on x = b/d.
func ExampleConjugateGradient() {
	op, _ := operator.NewDense(mat.NewDiagDense(2, []float64{2, 2}))

	cg, _ := solve.NewConjugateGradient([]float64{0, 0}, []float64{2, 4})
	res, _ := cg.Learn(op)

	fmt.Println(res.Output)
	fmt.Println(cg.Iteration(), cg.ResultValid())
	// Output:
	// [1 2]
	// 1 true
}

// ExampleLeastSquaresConjugateGradient fits two unknowns to three
// contradictory equations; only the operator differs from plain CG.
func ExampleLeastSquaresConjugateGradient() {
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 0,
		0, 1,
	})
	ne, _ := operator.NewNormalEquations(a)

	ls, _ := solve.NewLeastSquaresConjugateGradient([]float64{0, 0}, []float64{1, 3, 2})
	res, _ := ls.Learn(ne)

	fmt.Printf("x = [%.1f %.1f]\n", res.Output[0], res.Output[1])
	// Output:
	// x = [2.0 2.0]
}
