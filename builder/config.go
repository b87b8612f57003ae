// SPDX-License-Identifier: MIT
// Package: moddecomp/builder
//
// config.go — internal configuration and deterministic defaults.
//
// builderConfig is the single source of truth for builder knobs. graph.Graph
// fixes vertex ids to 0..n-1 and carries no edge weights, so there is no
// vertex-ID scheme and no weight policy to configure here; the only knob
// left is the RNG behind RandomGNP.

package builder

import "math/rand"

// builderConfig aggregates the knobs used by constructors. It is passed by
// value (immutable to callers).
type builderConfig struct {
	rng *rand.Rand // nil means "no randomness configured"
}

// newBuilderConfig resolves a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
