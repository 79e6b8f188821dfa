// Package gradix is a byte-granular, coordinate-wise gradient search
// engine for black-box integer objectives.
//
// 🚀 What is gradix?
//
//	A small, deterministic library that drives an opaque cost function
//	f: (x₀,…,x_{n−1}) → ℤ toward a local minimum or maximum by probing
//	and mutating only the low byte of each 64-bit input word:
//
//	  • Discrete gradients: ±1 probes classify every coordinate as
//	    stationary, ascending or descending — two evaluations each.
//	  • Geometric line search: step-doubling along all weighted axes,
//	    then per-coordinate refinement.
//	  • Epoch loop: rebuild the gradient, search, stop on plateaus or
//	    when the cost stops moving.
//
// ✨ Why choose gradix?
//
//   - Evaluation-frugal — cost functions are expensive; every probe is
//     accounted for and the evaluation order is fully deterministic.
//   - Byte-exact — all mutations are 8-bit modular; the upper 56 bits
//     of every word survive any run untouched.
//   - Self-contained — an Engine owns its scratch buffers and random
//     source; no package-level state.
//
// Under the hood, everything is organized under four subpackages:
//
//	core/     — assignment vectors, the Objective capability, byte-wrap primitives
//	gradient/ — the ±1 partial-derivative estimator and gradient vectors
//	entropy/  — a reseeding long-period random source
//	descent/  — line searches, Minimize/Maximize epochs, the Engine
//
// Quick sketch:
//
//	eng, _ := descent.New()
//	defer eng.Close()
//	out, cost, _ := eng.Minimize(f, core.Vector{0x00, 0x00})
//
// Dive into the per-package documentation for the exact estimator
// contract, step-doubling rules and convergence conditions.
package gradix
