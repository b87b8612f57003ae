// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables (package-level) are exposed.
//   - Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   - Sentinels are never wrapped with formatted strings at definition site;
//     implementations attach context via %w.
//   - Constructors never panic; only option constructors (WithX...) do, for
//     meaningless inputs.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, n1, n2) is smaller
// than the constructor's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value lies outside the
// closed interval [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that RandomGNP was called without an RNG
// resolved into the config (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates BuildGraph received a nil Constructor. When
// the assembled edge set fails graph.New's validation, BuildGraph instead
// wraps graph.New's own error (graph.ErrInvalidGraph).
var ErrConstructFailed = errors.New("builder: construction failed")
