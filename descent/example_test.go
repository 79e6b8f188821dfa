// Package descent_test provides runnable examples for the engine.
// Each example is runnable via "go test -run Example", showing both
// code and expected output.
package descent_test

import (
	"fmt"

	"github.com/katalvlaran/gradix/core"
	"github.com/katalvlaran/gradix/descent"
)

// ExampleEngine_Minimize drives a two-coordinate objective with
// independent wells at 0x40 and 0xC0 down to its minimum.
func ExampleEngine_Minimize() {
	// 1) Build an engine with the shipped defaults.
	eng, err := descent.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer eng.Close()

	// 2) The objective scores distance from the two byte targets.
	//    Only the low byte of each word matters.
	f := func(x core.Vector) int64 {
		d0 := int64(uint8(x[0])) - 0x40
		if d0 < 0 {
			d0 = -d0
		}
		d1 := int64(uint8(x[1])) - 0xC0
		if d1 < 0 {
			d1 = -d1
		}

		return d0 + d1
	}

	// 3) Minimize from the all-zero assignment.
	out, cost, err := eng.Minimize(f, core.Vector{0x00, 0x00})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Printf("x=[%#02x %#02x] cost=%d\n", out[0], out[1], cost)
	// Output: x=[0x40 0xc0] cost=0
}

// ExampleEngine_DescendOnce shows the single-step driver external
// meta-optimizers use: repeat until the engine reports a stationary
// start, then the vector sits at a local extremum.
func ExampleEngine_DescendOnce() {
	eng, err := descent.New()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	defer eng.Close()

	// The low byte itself as an unsigned value: minimal at 0x00.
	f := func(x core.Vector) int64 { return int64(uint8(x[0])) }

	x := core.Vector{0x80}
	for {
		stationary, cost, err := eng.DescendOnce(f, x)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		if stationary {
			fmt.Printf("minimum at %#02x cost=%d\n", x[0], cost)

			break
		}
	}
	// Output: minimum at 0x00 cost=0
}
