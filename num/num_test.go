package num_test

import (
	"testing"

	"github.com/sp301415/revlcg/num"
	"github.com/stretchr/testify/assert"
)

func TestIsPowerOfTwo(t *testing.T) {
	for _, x := range []uint64{0, 1, 2, 8, 256, 1 << 63} {
		assert.True(t, num.IsPowerOfTwo(x), "x = %d", x)
	}
	for _, x := range []uint64{3, 9, 257, ^uint64(0)} {
		assert.False(t, num.IsPowerOfTwo(x), "x = %d", x)
	}
}

func TestXGCDCoefficient(t *testing.T) {
	t.Run("Reference", func(t *testing.T) {
		assert.Equal(t, uint64(47), num.XGCDCoefficient(46, 240))
	})

	t.Run("InverseModPowerOfTwo", func(t *testing.T) {
		for _, a := range []uint64{3, 5, 6364136223846793005, 0xda942042e4dd58b5} {
			for _, m := range []uint64{1 << 16, 1 << 32, 1 << 63} {
				mask := m - 1
				aInv := num.XGCDCoefficient(a, m) & mask
				assert.Equal(t, uint64(1), a*aInv&mask, "a = %d, m = %d", a, m)
			}
		}
	})

	t.Run("NegativeCoefficientWraps", func(t *testing.T) {
		// x in 3x + 8y = 1 is 3, but for a = 5, b = 8 it is -3,
		// which wraps to 2^64 - 3.
		assert.Equal(t, uint64(3), num.XGCDCoefficient(3, 8))
		assert.Equal(t, ^uint64(2), num.XGCDCoefficient(5, 8))
	})
}
