// Package krylov is a matrix-free iterative solver toolkit: steepest
// descent, conjugate gradient, preconditioned conjugate gradient and an
// over-constrained (least-squares) conjugate-gradient minimizer, all written
// against a small operator abstraction instead of a concrete matrix type —
// plus a graph-diffusion application (valence spreading) built on top of it.
//
// 🚀 What is krylov?
//
//	A focused numeric library that brings together:
//		• Operators: plain dense, sparse CSR, diagonal-preconditioned and
//		  normal-equations matrix-vector products behind one interface
//		• Solvers: SteepestDescent, ConjugateGradient, PreconditionedCG,
//		  LeastSquaresCG — one shared iteration state machine, one update
//		  rule each
//		• Valence: MultipartiteMatrix, an implicit weighted-graph operator
//		  that diffuses seeded scores across a multipartite element set,
//		  and Spreader, a term/document façade over it
//
// ✨ Why choose krylov?
//
//   - Matrix-free – solvers never see a matrix, only "apply to vector";
//     swap the operator and the same CG loop solves square systems,
//     preconditioned systems and least-squares problems
//   - Observable – iteration listeners fire at start, per step and at end,
//     with cooperative stop
//   - Deterministic – identical results for any worker-pool size
//
// Everything is organized under three subpackages:
//
//	operator/ — Dense, Sparse, Diagonal (preconditioner), NormalEquations
//	solve/    — iteration Control, listeners, the four solvers
//	valence/  — MultipartiteMatrix + Spreader (term/document diffusion)
//
// Quick ASCII example — two document groups bridged by shared terms:
//
//	    good ─── doc1          bad ─── doc3
//	      │    ╱                 │    ╱
//	    great╱── doc2 ── film ── doc4
//
//	seeding good=+1, bad=-1 and solving diffuses signed scores to every
//	document and term reachable in the graph.
//
// Dive into the per-package doc.go files for contracts, complexity and
// error tables.
//
//	go get github.com/katalvlaran/krylov
package krylov
