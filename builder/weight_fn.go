package builder

import (
	"fmt"
	"math/rand"
)

// WeightFn produces an edge weight from an optional RNG. It must be
// deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// ConstantWeightFn always yields value. Panics if value == 0.
func ConstantWeightFn(value int64) WeightFn {
	if value == 0 {
		panic("ConstantWeightFn: value must be non-zero")
	}

	return func(_ *rand.Rand) int64 { return value }
}

// UniformWeightFn samples integers uniformly in [lo, hi] inclusive.
// Panics if lo < 1 or hi < lo. With a nil rng it yields lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 1 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || lo == hi {
			return lo
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}
