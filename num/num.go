// Package num implements various utility functions regarding numeric types.
package num

// IsPowerOfTwo returns whether x is a power of two.
// Note that 0 reports true: the bit trick x & (x-1) == 0 admits it,
// and callers treating 0 as 2^64 rely on that.
func IsPowerOfTwo(x uint64) bool {
	return x&(x-1) == 0
}

// XGCDCoefficient returns the Bézout coefficient x in
//
//	a*x + b*y = gcd(a, b)
//
// computed with the extended Euclidean algorithm.
// Coefficients are tracked in wraparound uint64 arithmetic,
// so a negative x comes back in two's complement form.
// This is exact modulo any modulus dividing 2^64;
// callers working modulo a power of two mask the result.
//
// If gcd(a, b) != 1, the result is not a modular inverse of a.
// No check is performed here.
func XGCDCoefficient(a, b uint64) uint64 {
	u, v := uint64(1), uint64(0)
	for b != 0 {
		q := a / b
		u, v = v, u-q*v
		a, b = b, a%b
	}
	return u
}

// InverseModTwo64 returns the multiplicative inverse of a modulo 2^64.
// a must be odd; no inverse exists otherwise and the result is garbage.
//
// Newton iteration: starting from a, which inverts itself modulo 8,
// each round doubles the number of correct low bits.
func InverseModTwo64(a uint64) uint64 {
	x := a
	for i := 0; i < 5; i++ {
		x *= 2 - a*x
	}
	return x
}
