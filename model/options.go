// SPDX-License-Identifier: MIT

// Package model: functional configuration for model constructors.
//
// Options resolve into an immutable modelConfig inside Build; constructors
// receive the resolved value and never see the setters. Defaults are
// constants so the documentation and the code cannot drift.
package model

import "math/rand"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultSeed feeds the deterministic RNG when the caller does not
	// choose one; fixed so unseeded builds are still reproducible.
	DefaultSeed int64 = 1

	// DefaultPeriodic controls the chain boundary: false ⇒ open chain,
	// true ⇒ ring (site n−1 couples back to site 0).
	DefaultPeriodic = false
)

// CoeffFn generates a coefficient for models with stochastic weights.
// Implementations must be pure functions of the provided RNG stream.
type CoeffFn func(rng *rand.Rand) float64

// ConstCoeff returns a CoeffFn that ignores the RNG and always yields v.
func ConstCoeff(v float64) CoeffFn {
	return func(*rand.Rand) float64 { return v }
}

// UniformCoeff returns a CoeffFn drawing uniformly from [lo, hi).
func UniformCoeff(lo, hi float64) CoeffFn {
	return func(rng *rand.Rand) float64 { return lo + (hi-lo)*rng.Float64() }
}

// Option mutates the internal model configuration.
type Option func(*modelConfig)

// modelConfig is the resolved configuration constructors receive.
type modelConfig struct {
	seed     int64
	periodic bool
	coeffFn  CoeffFn
	rng      *rand.Rand
}

// WithSeed fixes the RNG seed for stochastic constructors.
func WithSeed(seed int64) Option {
	return func(c *modelConfig) { c.seed = seed }
}

// WithPeriodic closes chain models into rings.
func WithPeriodic() Option {
	return func(c *modelConfig) { c.periodic = true }
}

// WithOpenChain keeps chain models open (the default).
func WithOpenChain() Option {
	return func(c *modelConfig) { c.periodic = false }
}

// WithCoeffFn sets the coefficient generator used by stochastic models.
func WithCoeffFn(fn CoeffFn) Option {
	return func(c *modelConfig) {
		if fn != nil {
			c.coeffFn = fn
		}
	}
}

// gatherOptions applies setters over the defaults and finalizes the RNG.
// Last-writer-wins; the RNG is created once from the effective seed.
func gatherOptions(opts ...Option) modelConfig {
	c := modelConfig{
		seed:     DefaultSeed,
		periodic: DefaultPeriodic,
		coeffFn:  UniformCoeff(-1, 1),
	}
	for _, set := range opts {
		set(&c)
	}
	c.rng = rand.New(rand.NewSource(c.seed))

	return c
}
