package operator

// Operator is a fixed linear map exposed as a matrix-vector product.
// Implementations must be deterministic: the same src always produces the
// same dst. Apply must not mutate src and must fully overwrite dst.
type Operator interface {
	// InDim returns the length of vectors the operator consumes.
	InDim() int
	// OutDim returns the length of vectors the operator produces.
	OutDim() int
	// Apply computes dst = Op(src). dst and src must not alias.
	// Returns ErrDimensionMismatch when either length is wrong.
	Apply(dst, src []float64) error
}

// Preconditioner augments a square Operator with an approximate-inverse
// solve step, as required by solve.PreconditionedConjugateGradient.
type Preconditioner interface {
	Operator
	// Precondition computes dst = M⁻¹·src for the preconditioning map M.
	Precondition(dst, src []float64) error
}

// Normal augments a square Operator representing AᵀA with access to the
// transpose product of the underlying rectangular A, as required by
// solve.LeastSquaresConjugateGradient to form the right-hand side Aᵀb.
type Normal interface {
	Operator
	// Rows reports the row count m of the underlying rectangular matrix.
	Rows() int
	// ApplyTranspose computes dst = Aᵀ·rhs; len(rhs) must equal Rows().
	ApplyTranspose(dst, rhs []float64) error
}

// checkApply validates Apply slice lengths against the declared dimensions.
func checkApply(dst, src []float64, in, out int) error {
	if len(src) != in || len(dst) != out {
		return ErrDimensionMismatch
	}

	return nil
}
