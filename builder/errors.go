// SPDX-License-Identifier: MIT
// Package: netroute/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with `%w` and the method name:
//       fmt.Errorf("%s: n=%d: %w", methodScaleFree, n, ErrTooFewVertices)
//   • Option constructors (WithX) panic on programmer error; constructors
//     and Generate never panic.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, m, k)
// is below the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrBadSize indicates a negative edge target or another invalid count.
var ErrBadSize = errors.New("builder: invalid size")

// ErrUnknownPolicy indicates Generate or ParsePolicy received a policy it
// does not implement.
var ErrUnknownPolicy = errors.New("builder: unknown generation policy")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (use WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder could not complete a topology,
// or BuildGraph received a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
