package rlcg

// Skip advances the generator n steps in its current direction without
// producing outputs, in O(log n) time.
//
// The n-fold composition of x -> a*x + c is itself affine; its coefficients
// are accumulated by repeated squaring (Brown's arbitrary-stride technique).
// The backward recurrence is handled the same way, rewritten as an LCG with
// multiplier a^-1 and increment -(a^-1 * c).
func (g *Generator) Skip(n uint64) {
	a, c := g.Parameters.a, g.Parameters.c
	if g.direction == Backward {
		a = g.Parameters.aInverse
		c = -(a * g.Parameters.c)
	}

	// Composing (h, f) with itself gives (h*h, f*(h+1)).
	mul, add := uint64(1), uint64(0)
	h, f := a, c
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			mul *= h
			add = add*h + f
		}
		f *= h + 1
		h *= h
	}

	// Wraparound products are congruent modulo m; one mask at the end
	// suffices.
	g.x = (mul*g.x + add) & g.Parameters.mask
}
