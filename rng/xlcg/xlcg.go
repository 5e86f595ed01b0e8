// Package xlcg implements a generator that mixes its state with a 32-bit
// xorshift before reducing it with a Lehmer (multiplicative LCG) step.
// It is fast and reproducible, and not suitable for cryptographic use.
package xlcg

import (
	"math"

	"github.com/tutils/trand/rng"
)

var _ rng.Generator = (*Generator)(nil)

// Lehmer parameters (MINSTD, modulo the Mersenne prime 2^31-1)
const (
	Multiplier = 48271
	Modulus    = 2147483647
)

// Generator is not safe for concurrent use, see trand.NewSyncGenerator
type Generator struct {
	state int64
}

// New create a new Generator. Without WithSeed the seed is read from the clock.
// Only the low 32 bits of the seed are mixed, so seeds outside [0, 2^32),
// clock seeds included, give sequences that differ from tools that mix the full integer.
func New(opts ...Option) *Generator {
	opt := newOptions(opts...)
	g := &Generator{}
	if opt.hasSeed {
		g.state = opt.seed
	} else {
		g.state = rng.SeedFromClock(opt.clock)
	}
	return g
}

// NewWithSeed create a new Generator starting at seed
func NewWithSeed(seed int64) *Generator {
	return New(WithSeed(seed))
}

// State implements rng.Generator.
func (g *Generator) State() int64 {
	return g.state
}

// Step advances the state once and returns it. The result is in [0, Modulus).
// The first step of a seed at or above 2^32 (or below zero) uses its low 32 bits.
func (g *Generator) Step() int64 {
	// only the low 32 bits take part in the mix
	x := uint32(g.state)
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	g.state = int64(uint64(x) * Multiplier % Modulus)
	return g.state
}

// Float64 advances the state and returns it normalized into [0.0, 1.0)
func (g *Generator) Float64() float64 {
	return float64(g.Step()) / Modulus
}

// Next implements rng.Generator. The result is truncated toward zero.
// When minVal > maxVal the range is not reordered and results fall in (maxVal, minVal].
func (g *Generator) Next(minVal, maxVal int64) int64 {
	normalized := g.Float64()
	if minVal == maxVal {
		return minVal
	}
	return toInt64(float64(minVal) + normalized*span(minVal, maxVal))
}

// toInt64 truncates f toward zero, saturating at the int64 limits
func toInt64(f float64) int64 {
	switch {
	case f >= 0x1p63:
		return math.MaxInt64
	case f < -0x1p63:
		return math.MinInt64
	}
	return int64(f)
}

// span returns maxVal-minVal without overflowing int64
func span(minVal, maxVal int64) float64 {
	if maxVal >= minVal {
		return float64(uint64(maxVal) - uint64(minVal))
	}
	return -float64(uint64(minVal) - uint64(maxVal))
}
