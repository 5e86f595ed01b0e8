// Package stats draws samples from a generator and summarizes how they are spread.
package stats

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/spacemonkeygo/monotime"
	"github.com/tutils/trand/rng"
	"golang.org/x/exp/slices"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

var (
	ErrEmptyRange = errors.New("stats: min must be below max")
	ErrNoSamples  = errors.New("stats: sample size must be positive")
)

// MaxBuckets bounds the chi-square histogram. Wider ranges share buckets.
const MaxBuckets = 1 << 16

// Report summarizes a sample
type Report struct {
	Count     int           `json:"count"`
	Min       int64         `json:"min"`
	Max       int64         `json:"max"`
	Median    float64       `json:"median"`
	Mean      float64       `json:"mean"`
	StdDev    float64       `json:"stdDev"`
	Buckets   int           `json:"buckets"`
	ChiSquare float64       `json:"chiSquare"`
	PValue    float64       `json:"pValue"`
	Elapsed   time.Duration `json:"elapsed"`
}

// Sample draws n values in [minVal, maxVal) from g
func Sample(g rng.Generator, minVal, maxVal int64, n int) (*Report, error) {
	if minVal >= maxVal {
		return nil, fmt.Errorf("%w: [%d, %d)", ErrEmptyRange, minVal, maxVal)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoSamples, n)
	}

	values := make([]int64, n)
	start := monotime.Monotonic()
	for i := range values {
		values[i] = g.Next(minVal, maxVal)
	}
	elapsed := monotime.Monotonic() - start

	span := float64(maxVal) - float64(minVal)
	buckets := MaxBuckets
	if span < MaxBuckets {
		buckets = int(span)
	}

	xs := make([]float64, n)
	obs := make([]float64, buckets)
	for i, v := range values {
		xs[i] = float64(v)
		var b int
		if buckets == MaxBuckets {
			b = int((float64(v) - float64(minVal)) / span * MaxBuckets)
		} else {
			b = int(v - minVal)
		}
		if b >= buckets {
			b = buckets - 1
		}
		obs[b]++
	}
	expected := make([]float64, buckets)
	for i := range expected {
		expected[i] = float64(n) / float64(buckets)
	}

	r := &Report{
		Count:   n,
		Buckets: buckets,
		Elapsed: elapsed,
	}
	r.Mean, r.StdDev = stat.MeanStdDev(xs, nil)
	if n == 1 {
		r.StdDev = 0
	}

	slices.Sort(values)
	r.Min, r.Max = values[0], values[n-1]
	if n%2 == 1 {
		r.Median = float64(values[n/2])
	} else {
		r.Median = (float64(values[n/2-1]) + float64(values[n/2])) / 2
	}

	if buckets > 1 {
		r.ChiSquare = stat.ChiSquare(obs, expected)
		dist := distuv.ChiSquared{K: float64(buckets - 1)}
		r.PValue = 1 - dist.CDF(r.ChiSquare)
	} else {
		r.PValue = 1
	}
	if math.IsNaN(r.PValue) {
		r.PValue = 0
	}
	return r, nil
}
