package trand

import (
	"sync"

	"github.com/tutils/trand/rng"
)

var _ rng.Generator = (*SyncGenerator)(nil)

// SyncGenerator is concurrency safe generator
type SyncGenerator struct {
	g  rng.Generator
	mu sync.Mutex
}

// Next implements rng.Generator. Each call is one serialized step.
func (s *SyncGenerator) Next(minVal, maxVal int64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.Next(minVal, maxVal)
}

// State implements rng.Generator.
func (s *SyncGenerator) State() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.g.State()
}

// Draw takes n values under a single lock so they are consecutive in the sequence
func (s *SyncGenerator) Draw(minVal, maxVal int64, n int) (values []int64, state int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	values = make([]int64, n)
	for i := range values {
		values[i] = s.g.Next(minVal, maxVal)
	}
	return values, s.g.State()
}

// NewSyncGenerator create a new SyncGenerator
func NewSyncGenerator(g rng.Generator) *SyncGenerator {
	return &SyncGenerator{g: g}
}
