package rlcg

var (
	// ParamsKnuth64 is the default parameter set:
	// Knuth's MMIX multiplier and increment with a 2^63 modulus,
	// discarding the weak low 32 bits of state.
	// Outputs are 31-bit values.
	ParamsKnuth64 = ParametersLiteral{
		M: 1 << 63,
		A: 6364136223846793005,
		C: 1442695040888963407,
		D: 32,
	}
)
