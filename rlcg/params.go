package rlcg

import (
	"fmt"

	"github.com/sp301415/revlcg/num"
)

// ParametersLiteral is a structure for ReversibleLCG parameters.
type ParametersLiteral struct {
	// M is the modulus.
	// Must be a power of two; 0 is read as 2^64.
	M uint64
	// A is the multiplier.
	// A must be coprime to M (odd, for a power-of-two M) for backward
	// stepping to be exact. This is not validated: with an even A the
	// derived inverse is not a true inverse and backward steps silently
	// diverge from the forward sequence.
	A uint64
	// C is the increment.
	C uint64
	// D is the number of low-order state bits discarded from outputs.
	// Truncation improves statistical quality of the low bits, which are
	// weak in any power-of-two LCG.
	D int
}

// Compile transforms ParametersLiteral to read-only Parameters, memoizing
// the multiplier inverse in the package-level cache.
// If there is any invalid parameter in the literal, it panics.
// Default parameters are guaranteed to be compiled without panics.
func (p ParametersLiteral) Compile() Parameters {
	return p.CompileWithCache(defaultInverseCache)
}

// CompileWithCache is Compile with a caller-supplied inverse cache.
func (p ParametersLiteral) CompileWithCache(cache *InverseCache) Parameters {
	switch {
	case !num.IsPowerOfTwo(p.M):
		panic(fmt.Sprintf("modulus %d is not a power of two", p.M))
	case p.D < 0 || p.D > 63:
		panic(fmt.Sprintf("discard bits %d out of range [0, 63]", p.D))
	}

	mask := p.M - 1

	return Parameters{
		m:        p.M,
		a:        p.A,
		c:        p.C,
		d:        p.D,
		mask:     mask,
		aInverse: cache.Inverse(p.A, p.M),
	}
}

// Parameters is a read-only structure for ReversibleLCG parameters.
type Parameters struct {
	// m is the modulus. 0 stands for 2^64.
	m uint64
	// a is the multiplier.
	a uint64
	// c is the increment.
	c uint64
	// d is the number of low-order state bits discarded from outputs.
	d int

	// mask is m - 1, used in place of division since m is a power of two.
	mask uint64
	// aInverse is the multiplicative inverse of a modulo m,
	// reduced into [0, m).
	aInverse uint64
}

// M returns the modulus. 0 stands for 2^64.
func (p Parameters) M() uint64 {
	return p.m
}

// A returns the multiplier.
func (p Parameters) A() uint64 {
	return p.a
}

// C returns the increment.
func (p Parameters) C() uint64 {
	return p.c
}

// D returns the number of low-order state bits discarded from outputs.
func (p Parameters) D() int {
	return p.d
}

// AInverse returns the multiplicative inverse of the multiplier modulo M.
func (p Parameters) AInverse() uint64 {
	return p.aInverse
}

// MaxOutput returns (M-1) >> D, the largest value the generator can emit.
func (p Parameters) MaxOutput() uint64 {
	return p.mask >> p.d
}
