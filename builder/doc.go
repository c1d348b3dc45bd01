// Package builder generates core.Graph instances for path-search
// experiments, in a functional-options style.
//
// Two levels of API:
//
//   - Generate(policy, n, edgeTarget, seed, opts...) picks a generation
//     policy (random-connected, scale-free, small-world, grid), seeds the RNG
//     and runs the Reweight post-pass so every edge weight is an independent
//     draw from [DefaultMinWeight, DefaultMaxWeight].
//   - BuildGraph(gopts, bopts, cons...) composes Constructors directly:
//     RandomConnected, ScaleFree, SmallWorld, Grid, Complete and Reweight.
//
// Configuration primitives:
//
//   - BuilderOption mutates the private builderConfig before use.
//   - IDFn maps a zero-based index to a vertex ID. OneBasedIDFn ("1".."n")
//     is the default; ZeroBasedIDFn, ExcelColumnIDFn and PrefixedIDFn are
//     alternatives.
//   - WeightFn draws an edge weight: UniformWeightFn (default [1,10]) or
//     ConstantWeightFn.
//
// Guarantees:
//
//   - Same inputs, options and seed produce the same graph.
//   - Option constructors panic on programmer error (nil funcs, empty
//     ranges); constructors return sentinel errors wrapped with the method
//     name, e.g. "ScaleFree: m=0 (must be ≥ 1): builder: parameter too small".
//   - RandomConnected and Grid are connected by construction, and so is
//     ScaleFree. SmallWorld rewiring may disconnect the graph.
package builder
