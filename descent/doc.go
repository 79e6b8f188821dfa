// Package descent implements the gradix search engine: geometric line
// searches driven by discrete byte-granular gradients, wrapped in an
// epoch loop with plateau detection.
//
// Overview:
//
//   - An Engine owns the per-instance resources of the search — the
//     reusable gradient scratch buffer and the reseeding random
//     source — and exposes four entry points: Minimize, Maximize,
//     DescendOnce and AscendOnce.
//   - Each epoch builds a fresh gradient (2n objective evaluations),
//     normalizes it into per-coordinate weights, and runs a two-phase
//     line search: geometric step-doubling along all weighted axes at
//     once, then per-coordinate refinement.
//   - The search terminates on a plateau (an all-stationary gradient),
//     when a line search fails to move the cost, or after MaxEpochs.
//
// Determinism and evaluation order:
//
//   - For a pure objective and a fixed start point, the sequence of
//     objective evaluations is fully deterministic: coordinates are
//     visited strictly in index order, steps double strictly as
//     1, 2, 4, …. Objectives with side effects (counters) observe the
//     same sequence on every run.
//   - The random source only fires on the plateau-escape path, which
//     is dormant at the default MaxRandomInput of 0.
//
// Line-search details (descending; ascending mirrors with the
// comparison flipped and direction labels swapped):
//
//   - Phase 1 applies ⌊pct·step⌋ to every non-stationary coordinate
//     simultaneously — Ascending coordinates are decremented,
//     Descending ones incremented — doubling step until an evaluation
//     fails to improve, then restores the last good point.
//   - Phase 2 (skipped for single-coordinate vectors) repeats the
//     doubling for one coordinate at a time, in index order. Descend
//     skips coordinates with pct < 0.01; ascend skips only exact
//     zeros. The asymmetry is part of the observable contract.
//
// Guarantees:
//
//   - Minimize never returns a cost above f(x0); Maximize never below.
//   - Only low bytes mutate: out[i] >> 8 == x0[i] >> 8 for every i.
//   - Per epoch the engine spends 2n + L evaluations, L being the
//     line-search probes.
//
// An Engine is not safe for concurrent use: replicate engines per
// goroutine or serialize calls externally.
package descent
