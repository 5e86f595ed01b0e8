package xlcg

import (
	"github.com/tutils/trand/rng"
)

// Options is the options of Generator
type Options struct {
	seed    int64
	hasSeed bool
	clock   rng.Clock
}

// Option is option setter for Generator
type Option func(opts *Options)

func newOptions(opts ...Option) *Options {
	opt := &Options{}
	for _, o := range opts {
		o(opt)
	}

	if opt.clock == nil {
		opt.clock = rng.SystemClock
	}

	return opt
}

// WithSeed sets the initial state. Any value is accepted, including zero and negatives.
func WithSeed(seed int64) Option {
	return func(opts *Options) {
		opts.seed = seed
		opts.hasSeed = true
	}
}

// WithClock sets the clock used to seed when no seed is given
func WithClock(clock rng.Clock) Option {
	return func(opts *Options) {
		opts.clock = clock
	}
}
