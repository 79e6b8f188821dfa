package gradient

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/gradix/core"
)

// Estimate probes coordinate i of x with +1 and −1 low-byte steps and
// classifies the response relative to the current cost f0.
//
// Cost: exactly two evaluations of f. x is returned bitwise unchanged.
//
// Classification (all comparisons signed):
//
//	f0 ≤ f− ∧ f0 ≤ f+              → Stationary, Value 0
//	f+ < f0 ∧ f0 ≤ f−              → Descending, Value f0−f+
//	f− < f0 ∧ f0 ≤ f+              → Ascending,  Value f0−f−
//	both strictly below, f− < f+   → Ascending,  Value f0−f−
//	both strictly below, f− ≥ f+   → Descending, Value f0−f+
//
// When both probes strictly improve, the side with the larger drop
// wins the tie-break.
func Estimate(f core.Objective, x core.Vector, i int, f0 int64) Element {
	// 1) Probe +1: bump the low byte, evaluate, remember the cost.
	orig := x[i]
	x[i] = core.AddByte(orig, 1)
	fPlus := f(x)

	// 2) Probe −1 from the original word, then restore it.
	x[i] = core.SubByte(orig, 1)
	fMinus := f(x)
	x[i] = orig

	// 3) Classify. Magnitudes are computed in uint64 so the difference
	//    stays exact even when the signed subtraction would overflow.
	switch {
	case f0 <= fMinus && f0 <= fPlus:
		return Element{Dir: Stationary}
	case fPlus < f0 && f0 <= fMinus:
		return Element{Dir: Descending, Value: uint64(f0) - uint64(fPlus)}
	case fMinus < f0 && f0 <= fPlus:
		return Element{Dir: Ascending, Value: uint64(f0) - uint64(fMinus)}
	case fMinus < fPlus:
		// Both probes strictly below f0; −1 dropped further.
		return Element{Dir: Ascending, Value: uint64(f0) - uint64(fMinus)}
	case fMinus >= fPlus:
		// Both probes strictly below f0; +1 dropped at least as far.
		return Element{Dir: Descending, Value: uint64(f0) - uint64(fPlus)}
	}

	// Unreachable: the five cases cover every ordering of (f−, f0, f+).
	panic("gradient: probe classification fell through")
}

// Build estimates every coordinate of x into dst, reusing its backing
// array. dst grows on demand and is never shrunk by the caller, so a
// long-lived scratch amortizes to zero allocations.
//
// Cost: exactly 2·len(x) evaluations of f. Every Pct is zeroed.
func Build(f core.Objective, x core.Vector, f0 int64, dst Vector) Vector {
	dst = dst[:0]
	var i int
	for i = range x {
		dst = append(dst, Estimate(f, x, i, f0))
	}

	return dst
}

// MaxValue returns the largest magnitude across the gradient, or 0 for
// an all-stationary (plateau) gradient.
func (g Vector) MaxValue() uint64 {
	var max uint64
	for i := range g {
		if g[i].Value > max {
			max = g[i].Value
		}
	}

	return max
}

// Normalize recomputes every weight as
//
//	Pct ← β·Pct + (1−β)·Value/max
//
// where max is MaxValue(). With β = 0 (the default momentum) this is
// plain normalization: the maximum coordinate gets weight 1.0 and all
// others land in [0, 1]. A plateau gradient (max == 0) is left as-is.
func (g Vector) Normalize(beta float64) {
	max := g.MaxValue()
	if max == 0 {
		return
	}

	// 1) Gather current weights and fresh ratios into dense slices.
	blend := make([]float64, len(g))
	ratio := make([]float64, len(g))
	var i int
	for i = range g {
		blend[i] = g[i].Pct
		ratio[i] = float64(g[i].Value) / float64(max)
	}

	// 2) blend ← β·blend + (1−β)·ratio.
	floats.Scale(beta, blend)
	floats.AddScaled(blend, 1-beta, ratio)

	// 3) Scatter the blended weights back onto the gradient.
	for i = range g {
		g[i].Pct = blend[i]
	}
}
