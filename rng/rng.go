package rng

import "time"

// Generator produces pseudo-random integers scaled into a caller range
type Generator interface {
	// Next advances the generator and returns a value scaled into [minVal, maxVal)
	Next(minVal, maxVal int64) int64
	// State returns the current seed
	State() int64
}

// Clock is a wall-clock source
type Clock func() time.Time

// SystemClock reads the real wall clock
var SystemClock Clock = time.Now

// SeedFromClock returns the clock reading in milliseconds since the Unix epoch
func SeedFromClock(c Clock) int64 {
	return c().UnixMilli()
}
