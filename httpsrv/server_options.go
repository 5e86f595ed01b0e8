package httpsrv

import (
	"time"

	"github.com/tutils/trand/rng"
)

// ServerOptions is the options of Server
type ServerOptions struct {
	addr          string
	clock         rng.Clock
	maxConns      int
	counterPeriod time.Duration
}

// ServerOption is option setter for Server
type ServerOption func(opts *ServerOptions)

// default server options
const (
	DefaultListenAddress = "0.0.0.0:8080"
	DefaultCounterPeriod = time.Second
)

func newServerOptions(opts ...ServerOption) *ServerOptions {
	opt := &ServerOptions{}
	for _, o := range opts {
		o(opt)
	}

	if opt.addr == "" {
		opt.addr = DefaultListenAddress
	}
	if opt.clock == nil {
		opt.clock = rng.SystemClock
	}
	if opt.counterPeriod <= 0 {
		opt.counterPeriod = DefaultCounterPeriod
	}

	return opt
}

// WithListenAddress sets listen address opt
func WithListenAddress(addr string) ServerOption {
	return func(opts *ServerOptions) {
		opts.addr = addr
	}
}

// WithClock sets the clock used to seed sessions created without a seed
func WithClock(clock rng.Clock) ServerOption {
	return func(opts *ServerOptions) {
		opts.clock = clock
	}
}

// WithMaxConns limits simultaneous connections, 0 means unlimited
func WithMaxConns(n int) ServerOption {
	return func(opts *ServerOptions) {
		opts.maxConns = n
	}
}

// WithCounterPeriod sets how often the draw rate is refreshed
func WithCounterPeriod(period time.Duration) ServerOption {
	return func(opts *ServerOptions) {
		opts.counterPeriod = period
	}
}
