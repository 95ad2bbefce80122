// Package rlcg implements a reversible linear congruential generator:
// an LCG over a power-of-two modulus whose state transition can be run
// forwards or backwards, producing the exact same outputs either way.
//
// The forward recurrence is
//
//	x = (a*x + c) mod m
//
// and the backward recurrence, using the multiplicative inverse of a,
//
//	x = a^-1 * (x - c) mod m.
//
// Since m is a power of two, both reductions are a single mask.
// Outputs are x >> d, discarding the statistically weak low bits.
//
// This generator is not cryptographically secure.
package rlcg

import "fmt"

// Direction selects which way a Generator walks its sequence.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String implements the [fmt.Stringer] interface.
func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

func (d Direction) isValid() bool {
	return d == Forward || d == Backward
}

// Generator is a reversible linear congruential generator.
//
// A Generator is owned by a single goroutine; use ShallowCopy to hand an
// independent copy to another.
type Generator struct {
	// Parameters is the compiled parameter set of this Generator.
	Parameters Parameters

	x         uint64
	direction Direction
}

// NewGenerator creates a new Generator with the given parameters and seed.
// The seed is reduced modulo M, and the initial direction is Forward.
func NewGenerator(params Parameters, seed uint64) *Generator {
	return &Generator{
		Parameters: params,
		x:          seed & params.mask,
		direction:  Forward,
	}
}

// New creates a new Generator with the default parameters [ParamsKnuth64].
func New(seed uint64) *Generator {
	return NewGenerator(ParamsKnuth64.Compile(), seed)
}

// nextState returns the state one step forward of x.
func (g *Generator) nextState(x uint64) uint64 {
	return (g.Parameters.a*x + g.Parameters.c) & g.Parameters.mask
}

// prevState returns the state one step backward of x.
// x - c may wrap; the wrapped value is congruent modulo m since m divides
// 2^64, so the final mask still lands in [0, m).
func (g *Generator) prevState(x uint64) uint64 {
	return g.Parameters.aInverse * (x - g.Parameters.c) & g.Parameters.mask
}

// Next steps the generator one step forward and returns the new output.
func (g *Generator) Next() uint64 {
	g.x = g.nextState(g.x)
	return g.x >> g.Parameters.d
}

// Prev steps the generator one step backward and returns the new output.
// A Next followed by a Prev lands back on the output before the Next.
func (g *Generator) Prev() uint64 {
	g.x = g.prevState(g.x)
	return g.x >> g.Parameters.d
}

// Sample steps the generator in its current direction and returns the new
// output.
func (g *Generator) Sample() uint64 {
	if g.direction == Forward {
		return g.Next()
	}
	return g.Prev()
}

// Peek returns the output Sample would produce, without moving the state.
func (g *Generator) Peek() uint64 {
	return g.PeekDirection(g.direction)
}

// PeekDirection returns the output one step in direction d, without moving
// the state or the persistent direction.
func (g *Generator) PeekDirection(d Direction) uint64 {
	switch d {
	case Forward:
		return g.nextState(g.x) >> g.Parameters.d
	case Backward:
		return g.prevState(g.x) >> g.Parameters.d
	}
	panic(fmt.Sprintf("invalid direction %d", int(d)))
}

// Reverse flips the walking direction. The state is untouched, so reversing
// twice round-trips exactly.
func (g *Generator) Reverse() {
	if g.direction == Forward {
		g.direction = Backward
	} else {
		g.direction = Forward
	}
}

// Direction returns the current walking direction.
func (g *Generator) Direction() Direction {
	return g.direction
}

// State returns the internal state x.
func (g *Generator) State() uint64 {
	return g.x
}

// ShallowCopy creates a copy of the Generator that can be stepped
// independently.
func (g *Generator) ShallowCopy() *Generator {
	return &Generator{
		Parameters: g.Parameters,
		x:          g.x,
		direction:  g.direction,
	}
}
