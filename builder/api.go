// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// api.go: public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Generate(policy, n, edgeTarget, seed) is the policy-level front door built on BuildGraph.
//   - Determinism: same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return sentinel errors wrapped with %w.

package builder

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/netroute/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors validate parameters first and return sentinel
// errors; they preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("%s: nil constructor at index %d: %w", methodBuildGraph, i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", methodBuildGraph, err)
		}
	}

	return g, nil
}

// Policy selects one of the generation strategies understood by Generate.
type Policy int

const (
	// PolicyRandom builds a random spanning tree plus random extra edges.
	PolicyRandom Policy = iota
	// PolicyScaleFree builds a Barabási–Albert preferential-attachment graph.
	PolicyScaleFree
	// PolicySmallWorld builds a Watts–Strogatz ring lattice with rewiring.
	PolicySmallWorld
	// PolicyGrid builds a ⌊√n⌋×⌊√n⌋ orthogonal lattice.
	PolicyGrid
)

var policyNames = [...]string{
	PolicyRandom:     "random",
	PolicyScaleFree:  "scale_free",
	PolicySmallWorld: "small_world",
	PolicyGrid:       "grid",
}

// String returns the policy token accepted by ParsePolicy.
func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}

	return policyNames[p]
}

// ParsePolicy maps a token ("random", "scale_free", "small_world", "grid")
// to its Policy. Matching ignores case and accepts '-' for '_'.
func ParsePolicy(s string) (Policy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range policyNames {
		if name == norm {
			return Policy(i), nil
		}
	}

	return 0, fmt.Errorf("ParsePolicy(%q): %w", s, ErrUnknownPolicy)
}

// Policies lists every policy in declaration order.
func Policies() []Policy {
	return []Policy{PolicyRandom, PolicyScaleFree, PolicySmallWorld, PolicyGrid}
}

// Generate builds a graph of roughly n vertices under policy, aiming for
// edgeTarget edges where the policy takes a target, seeded with seed.
// Every edge weight is redrawn by the Reweight post-pass.
//
// Per policy:
//   - PolicyRandom:     RandomConnected(n, edgeTarget).
//   - PolicyScaleFree:  ScaleFree(n, max(1, edgeTarget/n)).
//   - PolicySmallWorld: SmallWorld(n, max(2, edgeTarget/n), DefaultRewireProb).
//   - PolicyGrid:       Grid(s, s) with s = ⌊√n⌋; trailing vertices are dropped.
//
// Options are applied after WithSeed(seed), so WithRand overrides the seed.
//
// Errors: ErrTooFewVertices (n < 2), ErrBadSize (edgeTarget < 0),
// ErrUnknownPolicy, or a wrapped constructor error.
func Generate(policy Policy, n, edgeTarget int, seed int64, opts ...BuilderOption) (*core.Graph, error) {
	if n < minGenerateVertices {
		return nil, fmt.Errorf("%s: n=%d (must be ≥ %d): %w", methodGenerate, n, minGenerateVertices, ErrTooFewVertices)
	}
	if edgeTarget < 0 {
		return nil, fmt.Errorf("%s: edgeTarget=%d: %w", methodGenerate, edgeTarget, ErrBadSize)
	}

	var con Constructor
	switch policy {
	case PolicyRandom:
		con = RandomConnected(n, edgeTarget)
	case PolicyScaleFree:
		con = ScaleFree(n, max(minScaleFreeDegree, edgeTarget/n))
	case PolicySmallWorld:
		con = SmallWorld(n, max(minSmallWorldDegree, edgeTarget/n), DefaultRewireProb)
	case PolicyGrid:
		s := int(math.Sqrt(float64(n)))
		con = Grid(s, s)
	default:
		return nil, fmt.Errorf("%s: %v: %w", methodGenerate, policy, ErrUnknownPolicy)
	}

	bopts := append([]BuilderOption{WithSeed(seed)}, opts...)
	g, err := BuildGraph(nil, bopts, con, Reweight())
	if err != nil {
		return nil, fmt.Errorf("%s(%v): %w", methodGenerate, policy, err)
	}

	return g, nil
}
