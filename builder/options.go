// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// options.go — functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs; the
// constructors they configure never panic themselves.

package builder

import "math/rand"

// BuilderOption customizes a builderConfig before construction begins.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for RandomGNP. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed. Use in tests and
// examples to lock RandomGNP's outcome.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}
