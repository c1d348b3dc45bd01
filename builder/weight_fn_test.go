// Unit tests for the WeightFn implementations.
package builder_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/netroute/builder"
	"github.com/stretchr/testify/assert"
)

func TestWeightFnConstructorsPanic(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_zero", func() builder.WeightFn { return builder.ConstantWeightFn(0) }},
		{"UniformWeightFn_loZero", func() builder.WeightFn { return builder.UniformWeightFn(0, 5) }},
		{"UniformWeightFn_hiBelowLo", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Panics(t, func() { tc.constructor() })
		})
	}
}

func TestUniformWeightFn(t *testing.T) {
	t.Parallel()
	fn := builder.UniformWeightFn(1, 10)
	assert.EqualValues(t, 1, fn(nil), "nil rng falls back to lo")

	rng := rand.New(rand.NewSource(99))
	seen := make(map[int64]bool)
	for i := 0; i < 2000; i++ {
		w := fn(rng)
		assert.GreaterOrEqual(t, w, int64(1))
		assert.LessOrEqual(t, w, int64(10))
		seen[w] = true
	}
	assert.Len(t, seen, 10, "every value in [1,10] is drawn")
}

func TestConstantWeightFn(t *testing.T) {
	t.Parallel()
	assert.EqualValues(t, -4, builder.ConstantWeightFn(-4)(nil))
}
