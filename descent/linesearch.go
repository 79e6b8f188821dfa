package descent

import (
	"github.com/katalvlaran/gradix/core"
	"github.com/katalvlaran/gradix/gradient"
)

// stepDelta scales a coordinate weight by the current step and
// truncates the product to an 8-bit modular delta. The multiply runs
// in float64; truncation happens after, so tie-break outcomes depend
// on double precision only.
func stepDelta(pct float64, step uint64) uint8 {
	return uint8(uint64(pct * float64(step)))
}

// applyDescent shifts every weighted coordinate of x one step against
// the gradient: coordinates along which f grows under +1 (Ascending)
// are decremented, those growing under −1 (Descending) incremented.
// Stationary coordinates are untouched.
func applyDescent(x core.Vector, g gradient.Vector, step uint64) {
	var delta uint8
	for i := range g {
		delta = stepDelta(g[i].Pct, step)
		switch g[i].Dir {
		case gradient.Ascending:
			x[i] = core.SubByte(x[i], delta)
		case gradient.Descending:
			x[i] = core.AddByte(x[i], delta)
		case gradient.Stationary:
			// no contribution
		}
	}
}

// applyAscent shifts every weighted coordinate of x one step along the
// gradient: Ascending coordinates are incremented, Descending ones
// decremented. Stationary coordinates are untouched.
func applyAscent(x core.Vector, g gradient.Vector, step uint64) {
	var delta uint8
	for i := range g {
		delta = stepDelta(g[i].Pct, step)
		switch g[i].Dir {
		case gradient.Ascending:
			x[i] = core.AddByte(x[i], delta)
		case gradient.Descending:
			x[i] = core.SubByte(x[i], delta)
		case gradient.Stationary:
			// no contribution
		}
	}
}

// descend walks x downhill along the normalized gradient g, starting
// from cost f0. Phase 1 doubles a step applied to all weighted axes at
// once; phase 2 refines one coordinate at a time. x ends at the best
// point found; the matching cost is returned.
func descend(f core.Objective, g gradient.Vector, x core.Vector, f0 int64) int64 {
	// In-flight snapshot; one allocation per line search.
	prev := x.Clone()
	fPrev := f0

	// Phase 1: all-axes geometric doubling. Steps go 1, 2, 4, … until
	// an evaluation stops improving, then the last good point is
	// restored.
	var step uint64 = 1
	var fNext int64
	for {
		prev.CopyFrom(x)
		applyDescent(x, g, step)
		fNext = f(x)
		if fNext >= fPrev {
			x.CopyFrom(prev)

			break
		}
		fPrev = fNext
		step <<= 1
	}

	// Phase 2: per-coordinate refinement, pointless with a single
	// coordinate (phase 1 already walked that axis alone).
	if len(x) == 1 {
		return fPrev
	}
	var i int
	for i = range g {
		// Coordinates that barely register in the gradient are not
		// worth their probes.
		if g[i].Pct < refineSkipPct {
			continue
		}
		step = 1
		for {
			prev.CopyFrom(x)
			delta := stepDelta(g[i].Pct, step)
			switch g[i].Dir {
			case gradient.Ascending:
				x[i] = core.SubByte(x[i], delta)
			case gradient.Descending:
				x[i] = core.AddByte(x[i], delta)
			case gradient.Stationary:
				// weight 0, filtered above
			}
			fNext = f(x)
			if fNext >= fPrev {
				x.CopyFrom(prev)

				break
			}
			fPrev = fNext
			step <<= 1
		}
	}

	return fPrev
}

// ascend mirrors descend with the improvement comparison flipped and
// the direction labels interpreted for growth. Its phase-2 skip test
// is pct == 0 exactly, not the 0.01 threshold descend uses.
func ascend(f core.Objective, g gradient.Vector, x core.Vector, f0 int64) int64 {
	prev := x.Clone()
	fPrev := f0

	// Phase 1: all-axes geometric doubling, uphill.
	var step uint64 = 1
	var fNext int64
	for {
		prev.CopyFrom(x)
		applyAscent(x, g, step)
		fNext = f(x)
		if fNext <= fPrev {
			x.CopyFrom(prev)

			break
		}
		fPrev = fNext
		step <<= 1
	}

	// Phase 2: per-coordinate refinement.
	if len(x) == 1 {
		return fPrev
	}
	var i int
	for i = range g {
		if g[i].Pct == 0 {
			continue
		}
		step = 1
		for {
			prev.CopyFrom(x)
			delta := stepDelta(g[i].Pct, step)
			switch g[i].Dir {
			case gradient.Ascending:
				x[i] = core.AddByte(x[i], delta)
			case gradient.Descending:
				x[i] = core.SubByte(x[i], delta)
			case gradient.Stationary:
				// weight 0, filtered above
			}
			fNext = f(x)
			if fNext <= fPrev {
				x.CopyFrom(prev)

				break
			}
			fPrev = fNext
			step <<= 1
		}
	}

	return fPrev
}
