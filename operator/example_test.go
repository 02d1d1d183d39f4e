package operator_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/krylov/operator"
)

// ExampleDense wraps an explicit matrix into the matrix-free contract.
func ExampleDense() {
	a := mat.NewDense(2, 2, []float64{
		2, 0,
		0, 3,
	})
	op, _ := operator.NewDense(a)

	dst := make([]float64, 2)
	_ = op.Apply(dst, []float64{1, 1})
	fmt.Println(dst)
	// Output:
	// [2 3]
}

// ExampleNormalEquations shows the over-constrained view: a 3×2 system
// exposed as the square operator AᵀA without materializing it.
func ExampleNormalEquations() {
	a := mat.NewDense(3, 2, []float64{
		1, 0,
		1, 0,
		0, 1,
	})
	ne, _ := operator.NewNormalEquations(a)

	fmt.Println(ne.Rows(), ne.InDim(), ne.OutDim())

	dst := make([]float64, 2)
	_ = ne.Apply(dst, []float64{1, 1}) // AᵀA = diag(2, 1)
	fmt.Println(dst)
	// Output:
	// 3 2 2
	// [2 1]
}
