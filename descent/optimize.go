package descent

import (
	"github.com/katalvlaran/gradix/core"
)

// goal selects which line search an optimization run drives.
type goal int

const (
	goalMinimize goal = iota
	goalMaximize
)

// Minimize drives a copy of x0 to a local minimum of f.
//
// Returns the final assignment (freshly allocated; x0 is read-only),
// its cost, and an error for invalid inputs or a closed engine.
//
// The result cost never exceeds f(x0). Termination: an all-stationary
// gradient (plateau), an epoch whose line search leaves the cost
// unchanged (convergence), or MaxEpochs.
func (e *Engine) Minimize(f core.Objective, x0 core.Vector) (core.Vector, int64, error) {
	return e.run(f, x0, goalMinimize)
}

// Maximize drives a copy of x0 to a local maximum of f.
// Symmetric to Minimize; the result cost is never below f(x0).
func (e *Engine) Maximize(f core.Objective, x0 core.Vector) (core.Vector, int64, error) {
	return e.run(f, x0, goalMaximize)
}

// run is the shared outer loop: epochs of snapshot → gradient →
// plateau check → normalize → line search → convergence check.
func (e *Engine) run(f core.Objective, x0 core.Vector, dir goal) (core.Vector, int64, error) {
	// 1) Validate lifecycle and inputs.
	if err := e.check(f, x0); err != nil {
		return nil, 0, err
	}

	// 2) Working copy (returned to the caller) plus the epoch snapshot
	//    the plateau escape perturbs.
	x := x0.Clone()
	prev := x0.Clone()
	fCur := f(x)

	// 3) Epoch loop.
	var epoch int
	var fNext int64
	for epoch = 0; epoch < e.opts.MaxEpochs; epoch++ {
		// 3.1) Snapshot the epoch start.
		prev.CopyFrom(x)

		// 3.2) Build the gradient: 2n probes around the current point.
		g := e.buildGradient(f, x, fCur)

		// 3.3) Plateau: every coordinate stationary. Attempt random
		//      escapes, or stop here with the current point.
		if g.MaxValue() == 0 {
			var escaped bool
			if fCur, escaped = e.escapePlateau(f, x, prev, x0, fCur); !escaped {
				break
			}

			continue
		}

		// 3.4) Magnitudes → weights.
		g.Normalize(e.opts.Momentum)

		// 3.5) Line search along the weighted gradient.
		if dir == goalMinimize {
			fNext = descend(f, g, x, fCur)
		} else {
			fNext = ascend(f, g, x, fCur)
		}

		// 3.6) Converged: the search could not move the cost.
		if fNext == fCur {
			break
		}
		fCur = fNext
	}

	return x, fCur, nil
}

// escapePlateau flips random low-byte bits of the epoch snapshot until
// a gradient appears, at most MaxRandomInput times. The cost is
// re-read from the caller's start point on every attempt, not from the
// perturbed copy. With the default MaxRandomInput of 0 the loop body
// never runs and the first plateau ends the search.
func (e *Engine) escapePlateau(f core.Objective, x, prev, start core.Vector, fCur int64) (int64, bool) {
	for i := 0; i < e.opts.MaxRandomInput; i++ {
		e.perturb(prev)
		fCur = f(start)
		if e.buildGradient(f, prev, fCur).MaxValue() != 0 {
			x.CopyFrom(prev)

			return fCur, true
		}
	}

	return fCur, false
}

// DescendOnce performs exactly one gradient build plus one descending
// line search on x, in place.
//
// Returns stationary = true — with x untouched — when the starting
// gradient is all-zero, signaling a local extremum to external
// meta-optimizers that interleave descent with other transformations.
// The returned cost is f at x's final position either way.
func (e *Engine) DescendOnce(f core.Objective, x core.Vector) (bool, int64, error) {
	return e.once(f, x, goalMinimize)
}

// AscendOnce is the ascending twin of DescendOnce.
func (e *Engine) AscendOnce(f core.Objective, x core.Vector) (bool, int64, error) {
	return e.once(f, x, goalMaximize)
}

// once is the shared single-step driver.
func (e *Engine) once(f core.Objective, x core.Vector, dir goal) (bool, int64, error) {
	if err := e.check(f, x); err != nil {
		return false, 0, err
	}

	f0 := f(x)
	g := e.buildGradient(f, x, f0)
	if g.MaxValue() == 0 {
		return true, f0, nil
	}
	g.Normalize(e.opts.Momentum)

	if dir == goalMinimize {
		f0 = descend(f, g, x, f0)
	} else {
		f0 = ascend(f, g, x, f0)
	}

	return false, f0, nil
}
