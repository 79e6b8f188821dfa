// Package gradient estimates discrete gradients of black-box integer
// objectives by ±1 probing of each coordinate's low byte.
//
// Overview:
//
//   - Estimate probes one coordinate with +1 and −1 (two objective
//     evaluations, the vector is returned bitwise unchanged) and
//     classifies the coordinate as Stationary, Ascending or Descending
//     with an unsigned improvement magnitude.
//   - Build runs Estimate over every coordinate into a reusable
//     scratch vector: exactly 2n evaluations per call.
//   - Normalize turns magnitudes into per-coordinate weights in [0, 1]
//     so the line searches can scale their steps.
//
// Direction semantics (named from the descent point of view):
//
//   - Ascending:  the objective grows when the coordinate is
//     incremented — a descent step subtracts, an ascent step adds.
//   - Descending: the objective grows when the coordinate is
//     decremented — a descent step adds, an ascent step subtracts.
//   - Stationary: neither ±1 probe dropped below the current cost;
//     the coordinate contributes no step.
//
// Invariants:
//
//   - After Build, Dir == Stationary ⇔ Value == 0, and every Pct is 0.
//   - After Normalize with a non-zero maximum, the coordinate(s) with
//     the maximum Value carry Pct == 1.0 and all others lie in [0, 1].
//
// Classification is exhaustive over totally ordered signed costs; the
// fall-through arm panics because no triple of probe values can reach it.
package gradient
