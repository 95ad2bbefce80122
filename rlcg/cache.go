package rlcg

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/sp301415/revlcg/num"
)

// inverseCacheSize bounds the default cache. In practice only a handful of
// (multiplier, modulus) pairs ever exist in one process.
const inverseCacheSize = 128

type inverseKey struct {
	a, m uint64
}

// InverseCache memoizes multiplicative inverses of LCG multipliers, keyed by
// the (multiplier, modulus) pair. Deriving an inverse is far more expensive
// than a generator step, and it is invariant for a fixed parameter set.
//
// Safe for concurrent use.
type InverseCache struct {
	entries *lru.Cache[inverseKey, uint64]
}

// NewInverseCache creates a new InverseCache.
func NewInverseCache() *InverseCache {
	entries, err := lru.New[inverseKey, uint64](inverseCacheSize)
	if err != nil {
		panic(err)
	}
	return &InverseCache{
		entries: entries,
	}
}

// defaultInverseCache backs ParametersLiteral.Compile.
var defaultInverseCache = NewInverseCache()

// Inverse returns the multiplicative inverse of a modulo m, reduced into
// [0, m). m must be a power of two; 0 stands for 2^64.
//
// If a and m are not coprime the result is not a true inverse; see
// ParametersLiteral.A.
func (c *InverseCache) Inverse(a, m uint64) uint64 {
	k := inverseKey{a: a, m: m}
	if v, ok := c.entries.Get(k); ok {
		return v
	}

	var v uint64
	if m == 0 {
		v = num.InverseModTwo64(a)
	} else {
		v = num.XGCDCoefficient(a, m) & (m - 1)
	}
	c.entries.Add(k, v)
	return v
}
