package descent_test

import (
	"testing"

	"github.com/katalvlaran/gradix/core"
	"github.com/katalvlaran/gradix/descent"
)

// benchObjective is the two-well landscape used across benchmarks.
func benchObjective(x core.Vector) int64 {
	return absDist(x, 0, 0x40) + absDist(x, 1, 0xC0)
}

// BenchmarkMinimize measures a full two-coordinate optimization run,
// engine construction excluded.
func BenchmarkMinimize(b *testing.B) {
	eng, err := descent.New()
	if err != nil {
		b.Fatal(err)
	}
	defer eng.Close()
	x0 := core.Vector{0x00, 0x00}
	b.ResetTimer() // exclude engine construction
	for i := 0; i < b.N; i++ {
		_, _, _ = eng.Minimize(benchObjective, x0)
	}
}

// BenchmarkDescendOnce measures a single gradient build + line search
// on an eight-coordinate assignment.
func BenchmarkDescendOnce(b *testing.B) {
	eng, err := descent.New()
	if err != nil {
		b.Fatal(err)
	}
	defer eng.Close()
	f := func(x core.Vector) int64 {
		var sum int64
		for i := range x {
			sum += int64(uint8(x[i])) << uint(i)
		}

		return sum
	}
	x := make(core.Vector, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := range x {
			x[j] = 0x80 // reset the walk each iteration
		}
		_, _, _ = eng.DescendOnce(f, x)
	}
}
