// Package operator defines the matrix-free contract consumed by the solve
// package, together with the concrete operators shipped with krylov.
//
// An Operator is a fixed linear map exposed purely as "apply to vector":
//
//	type Operator interface {
//	    InDim() int
//	    OutDim() int
//	    Apply(dst, src []float64) error
//	}
//
// Apply must not mutate src, must fully overwrite dst, and must fail with
// ErrDimensionMismatch when either slice does not match the operator's
// declared dimensions. dst and src must not alias.
//
// The concrete operators are:
//
//   - Dense — wraps a gonum mat.Matrix; w = A·v. Works for square and
//     rectangular matrices.
//
//   - Sparse — a DOK builder (Set/Add/At) compiled lazily to CSR on first
//     Apply. Suited to large systems with few non-zero entries.
//
//   - Diagonal — composes an inner square Operator with an elementwise
//     "precondition" step dividing by a caller-supplied diagonal. Implements
//     Preconditioner for use with solve.PreconditionedConjugateGradient.
//
//   - NormalEquations — wraps a rectangular m×n matrix A and exposes
//     w = Aᵀ(A·v) without ever materializing AᵀA, so the plain conjugate
//     gradient recurrence minimizes ‖Ax−b‖² through the normal equations
//     AᵀA·x = Aᵀb. ApplyTranspose builds that right-hand side.
//
// Swapping the operator is the whole design: the same solver loop handles
// square, preconditioned and over-constrained systems.
//
// # Errors
//
//	ErrNilMatrix         — nil mat.Matrix handed to a constructor.
//	ErrNilOperator       — nil inner Operator handed to a constructor.
//	ErrBadShape          — non-positive row or column count.
//	ErrOutOfRange        — Set/Add/At index outside the declared shape.
//	ErrDimensionMismatch — vector length does not match operator dimensions.
//	ErrNotFinite         — NaN or ±Inf where a finite value is required.
//	ErrZeroDiagonal      — zero diagonal entry handed to NewDiagonal.
//
// All errors are sentinels; match with errors.Is.
//
// # Integration
//
//   - Consumed by github.com/katalvlaran/krylov/solve.
//   - valence.MultipartiteMatrix implements Operator without living here;
//     any type satisfying the interface plugs into the solvers.
package operator
