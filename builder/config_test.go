// Unit tests for builderConfig and BuilderOption application order.
package builder

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig()
	assert.Nil(t, cfg.rng)
	assert.Equal(t, "1", cfg.idFn(0))
	assert.Equal(t, DefaultMinWeight, cfg.weightFn(nil))
	assert.Equal(t, []string{"1", "2", "3"}, cfg.ids(3))
}

func TestIDSchemeOverride(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithIDScheme(ExcelColumnIDFn), WithIDScheme(ZeroBasedIDFn))
	assert.Equal(t, "7", cfg.idFn(7), "last option wins")

	assert.Panics(t, func() { WithIDScheme(nil) })
}

func TestRNGOptions(t *testing.T) {
	t.Parallel()
	a := newBuilderConfig(WithSeed(11))
	b := newBuilderConfig(WithSeed(11))
	require.NotNil(t, a.rng)
	assert.Equal(t, a.rng.Int63(), b.rng.Int63())

	r := rand.New(rand.NewSource(5))
	c := newBuilderConfig(WithSeed(11), WithRand(r))
	assert.Same(t, r, c.rng)

	assert.Panics(t, func() { WithRand(nil) })
}

func TestWeightOptions(t *testing.T) {
	t.Parallel()
	cfg := newBuilderConfig(WithSeed(1), WithUniformWeight(3, 4))
	for i := 0; i < 100; i++ {
		w := cfg.weightFn(cfg.rng)
		require.True(t, w == 3 || w == 4, "got %d", w)
	}
	assert.Panics(t, func() { WithWeightFn(nil) })
	assert.Panics(t, func() { WithUniformWeight(0, 4) })
}
