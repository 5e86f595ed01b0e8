package xlcg

import "math/rand"

var _ rand.Source = (*Source)(nil)
var _ rand.Source64 = (*Source)(nil)

// Source adapts Generator to math/rand.
// Every state is below 2^31, so each output packs three steps.
type Source struct {
	g *Generator
}

// NewSource has the signature of rand.NewSource
func NewSource(seed int64) rand.Source {
	return &Source{g: NewWithSeed(seed)}
}

// Seed implements rand.Source by starting a fresh generator
func (s *Source) Seed(seed int64) {
	s.g = NewWithSeed(seed)
}

// Int63 implements rand.Source
func (s *Source) Int63() int64 {
	hi := s.g.Step()
	mid := s.g.Step()
	lo := s.g.Step()
	return hi<<32 | mid<<1 | lo&1
}

// Uint64 implements rand.Source64
func (s *Source) Uint64() uint64 {
	hi := uint64(s.g.Step())
	mid := uint64(s.g.Step())
	lo := uint64(s.g.Step())
	return hi<<33 | mid<<2 | lo&3
}
