package rlcg

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// maxOrbitModulus bounds the modulus OrbitLength accepts: the scan keeps one
// bit of memory per state.
const maxOrbitModulus = 1 << 32

// OrbitLength walks the forward recurrence of params from seed, counting
// steps until a state repeats or limit steps have been taken. It returns the
// step count and whether the orbit closed within the limit.
//
// This is a diagnostic for parameter quality on toy moduli: full-period
// parameters (c odd, a ≡ 1 mod 4) close their orbit after exactly M steps
// from any seed.
//
// Panics if the modulus exceeds 2^32.
func OrbitLength(params Parameters, seed uint64, limit uint64) (uint64, bool) {
	if params.m == 0 || params.m > maxOrbitModulus {
		panic(fmt.Sprintf("modulus %d too large to scan", params.m))
	}

	visited := bitset.New(uint(params.m))
	x := seed & params.mask
	visited.Set(uint(x))

	for steps := uint64(1); steps <= limit; steps++ {
		x = (params.a*x + params.c) & params.mask
		if visited.Test(uint(x)) {
			return steps, true
		}
		visited.Set(uint(x))
	}
	return limit, false
}
