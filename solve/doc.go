// Package solve implements matrix-free iterative linear solvers sharing one
// iteration state machine. It provides flexible, observable routines for
// driving a solution vector toward A·x = b given nothing but an
// operator.Operator — an "apply to vector" capability — so the same loop
// serves explicit dense systems, sparse systems, preconditioned systems and
// least-squares problems.
//
// The solvers offered are:
//
//   - SteepestDescent
//
//   - Update: r = b − A·x; α = (r·r)/(r·A·r); x += α·r.
//
//   - Converges linearly; rate governed by the condition number of A.
//
//   - One operator application per iteration.
//
//   - ConjugateGradient
//
//   - Update: α = (r·r)/(p·A·p); x += α·p; r −= α·A·p;
//     β = (r'·r')/(r·r); p = r' + β·p.
//
//   - Exact-arithmetic property: at most k iterations for a symmetric
//     positive-definite matrix with k distinct eigenvalues.
//
//   - PreconditionedConjugateGradient
//
//   - Same recurrence in the inner-product space induced by an
//     operator.Preconditioner; a diagonal preconditioner that matches the
//     matrix exactly converges in one iteration.
//
//   - LeastSquaresConjugateGradient
//
//   - The CG recurrence applied to an operator.Normal (AᵀA without
//     materialization); recovers the exact solution of a consistent
//     rectangular system and the least-squares minimizer of an
//     inconsistent one. Only the operator differs from plain CG.
//
// # Iteration control
//
// Every solver embeds a Control: tolerance (DefaultTolerance), iteration
// budget (DefaultMaxIterations), iteration counter, lifecycle state and a
// listener list. A run moves
//
//	StateNotStarted → StateIterating → StateConverged
//	                                 | StateMaxIterations
//	                                 | StateStopped
//
// Reaching the iteration budget is not an error — Learn still returns the
// final iterate; ResultValid reports whether the run actually converged.
// Listeners are notified synchronously at algorithm start, before and after
// each step, and at algorithm end; RequestStop is a cooperative flag polled
// once per iteration, not a preemptive interrupt.
//
// # API
//
// All solvers share the same shape:
//
//	cg, err := solve.NewConjugateGradient(guess, target)
//	cg.SetTolerance(1e-8)
//	res, err := cg.Learn(op) // res.Input = guess copy, res.Output = iterate
//
// Learn is idempotent up to floating-point determinism: repeated calls with
// an unchanged operator and guess produce the same result, because each run
// restarts from the configured guess.
//
// # Errors
//
//	ErrNilGuess / ErrNilTarget / ErrNilOperator — nil required argument.
//	ErrNegativeTolerance                        — SetTolerance(v), v < 0.
//	ErrNonPositiveMaxIterations                 — SetMaxIterations(v), v ≤ 0.
//	ErrDimensionMismatch                        — guess/target/operator
//	                                              lengths disagree.
//	ErrBreakdown                                — zero curvature direction
//	                                              (operator not positive
//	                                              definite on the residual).
//
// Failed setters leave the previous value untouched; Learn validates before
// mutating any solver state. Solver values are not safe for concurrent
// Learn calls.
//
// # Integration
//
//   - Operators come from github.com/katalvlaran/krylov/operator.
//   - github.com/katalvlaran/krylov/valence builds a graph-diffusion
//     operator and feeds it to ConjugateGradient.
package solve
