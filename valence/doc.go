// Package valence spreads seeded scores across a weighted multipartite
// graph by solving an implicit linear system with the conjugate gradient
// solver — no matrix is ever materialized.
//
// # MultipartiteMatrix
//
// Elements are partitioned into ordered groups (for the text application:
// group 0 = terms, group 1 = documents). AddRelationship records a
// symmetric weighted edge between elements of *different* groups;
// intra-group edges are structural violations rejected at add time.
// SetElementScore marks an element as a seed with a score and a trust
// (confidence) weight. Init freezes the graph, compiles the adjacency into
// CSR form and returns the right-hand side
//
//	b[i] = trust[i] · seed[i]
//
// which callers pass to the solver as both initial guess and target. As an
// operator the matrix evaluates
//
//	(A·x)[i] = (trust[i] + W[i]/power) · x[i] − (1/power) · Σⱼ w[i,j]·x[j]
//
// with W[i] = Σⱼ |w[i,j]|, i.e. A = T + (1/power)·L for the weighted graph
// Laplacian L. A is symmetric positive semidefinite and positive definite
// on every connected component containing a seed, so CG applies. At the
// diffusion equilibrium an unseeded element takes exactly the weighted
// average of its neighbors, while a seeded element balances its own score
// against that average; raising power weakens the Laplacian term relative
// to the trust anchors, so seeds retain more of their score and influence
// carries further through the graph. power ≤ 0 is rejected at construction.
//
// Apply may be parallelized over a fixed-size worker pool (WithWorkers);
// workers own disjoint row spans, so results are identical for any pool
// size. Each solver iteration is a synchronization barrier because Apply
// returns only after the pool joins.
//
// # Spreader
//
// Spreader is the term/document façade: register seed scores
// (AddWeightedTerm, AddWeightedDocument — trust defaults to 1), register
// the bipartite content graph (AddDocumentTermOccurrences,
// AddDocumentTermWeights), optionally rescale the seed sets to [-1, +1]
// (CenterWeightsRange), then SpreadValence. Identifiers are assigned
// deterministic indices by sorting, the whole mapping is rebuilt on every
// call, and the result maps diffused scores back to terms and documents.
//
// # Errors
//
//	ErrBadPower           — spreading power ≤ 0.
//	ErrBadGroupSizes      — no groups, or a non-positive group size.
//	ErrBadTrust           — trust ≤ 0.
//	ErrNotFinite          — NaN/±Inf weight or score.
//	ErrSameGroup          — relationship inside a single group.
//	ErrOutOfRange         — group or element index out of range.
//	ErrDimensionMismatch  — Apply vector of the wrong length.
//	ErrNotInitialized     — Apply before Init.
//	ErrAlreadyInitialized — second Init, or mutation after Init.
//	ErrEmptyModel         — SpreadValence with no terms or no documents.
//
// # Integration
//
//   - Implements github.com/katalvlaran/krylov/operator.Operator.
//   - Solved by github.com/katalvlaran/krylov/solve.ConjugateGradient.
package valence
