// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • idFn     = OneBasedIDFn       ("1","2","3",...)
//   • rng      = nil                (stochastic constructors require WithSeed/WithRand)
//   • weightFn = UniformWeightFn(DefaultMinWeight, DefaultMaxWeight)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Vertex ID strategy: zero-based index -> ID.
	idFn IDFn
	// RNG for stochastic choices; nil means "no randomness".
	rng *rand.Rand
	// Per-edge weight generator.
	weightFn WeightFn
}

// newBuilderConfig starts from the defaults and applies opts in order
// (last wins). Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:     OneBasedIDFn,
		weightFn: UniformWeightFn(DefaultMinWeight, DefaultMaxWeight),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// ids renders indices [0,n) through the configured ID scheme.
func (c builderConfig) ids(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = c.idFn(i)
	}

	return out
}
