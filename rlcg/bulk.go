package rlcg

import (
	"fmt"
	"iter"
)

// SampleSlice returns the next n outputs in the current direction,
// committing only the final state back to the generator.
func (g *Generator) SampleSlice(n int) []uint64 {
	vOut := make([]uint64, n)
	g.SampleSliceAssign(vOut)
	return vOut
}

// SampleSliceAssign fills vOut with the next outputs in the current
// direction, committing only the final state back to the generator.
// The result is identical to len(vOut) scalar Sample calls.
func (g *Generator) SampleSliceAssign(vOut []uint64) {
	g.generateAssign(g.direction, true, vOut)
}

// SampleDirectionSliceAssign fills vOut with the next outputs in direction d,
// committing the final state. The persistent direction is updated to d.
func (g *Generator) SampleDirectionSliceAssign(d Direction, vOut []uint64) {
	if !d.isValid() {
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
	g.direction = d
	g.generateAssign(d, true, vOut)
}

// PeekSliceAssign fills vOut with the outputs SampleSliceAssign would
// produce, without mutating the generator.
func (g *Generator) PeekSliceAssign(vOut []uint64) {
	g.generateAssign(g.direction, false, vOut)
}

// PeekDirectionSliceAssign fills vOut with the next outputs in direction d,
// without mutating the generator.
func (g *Generator) PeekDirectionSliceAssign(d Direction, vOut []uint64) {
	if !d.isValid() {
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}
	g.generateAssign(d, false, vOut)
}

// generateAssign walks direction d from the current state, writing outputs
// to vOut. Intermediate states are scratch; only when commit is set does the
// final state land back in the generator.
func (g *Generator) generateAssign(d Direction, commit bool, vOut []uint64) {
	x := g.x
	shift := g.Parameters.d

	switch d {
	case Forward:
		for i := range vOut {
			x = g.nextState(x)
			vOut[i] = x >> shift
		}
	case Backward:
		for i := range vOut {
			x = g.prevState(x)
			vOut[i] = x >> shift
		}
	default:
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}

	if commit {
		g.x = x
	}
}

// Seq returns a lazy, unbounded stream of outputs walking in direction d.
// Ranging over it never commits state: every range restarts from the
// generator's state at that moment.
func (g *Generator) Seq(d Direction) iter.Seq[uint64] {
	if !d.isValid() {
		panic(fmt.Sprintf("invalid direction %d", int(d)))
	}

	return func(yield func(uint64) bool) {
		x := g.x
		shift := g.Parameters.d
		for {
			if d == Forward {
				x = g.nextState(x)
			} else {
				x = g.prevState(x)
			}
			if !yield(x >> shift) {
				return
			}
		}
	}
}
