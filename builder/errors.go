// SPDX-License-Identifier: MIT
// Package: eulerpath/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not proceed, such as
// a nil constructor or a nil target graph.
var ErrConstructFailed = errors.New("builder: construction failed")
