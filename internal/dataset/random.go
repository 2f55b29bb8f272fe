package dataset

import (
	"math/rand/v2"

	"github.com/shopspring/decimal"
)

// NewRand returns a PCG source keyed on seed. Equal seeds yield equal streams.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// between returns a uniform integer in [lo, hi].
func between(r *rand.Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

func pick[T any](r *rand.Rand, xs []T) T {
	return xs[r.IntN(len(xs))]
}

// oneIn reports true with probability 1/n.
func oneIn(r *rand.Rand, n int) bool {
	return between(r, 1, n) == 1
}

// Round2 rounds half away from zero to two decimals.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
