// Package statistics summarises samples drawn from a generator and checks
// them against the uniform distribution on [0, 1).
package statistics

import (
	"fmt"
	"math"
)

const (
	uniformMean     = 0.5
	uniformVariance = 1.0 / 12.0
)

// Statistics accumulates samples in [0, 1).
type Statistics struct {
	Samples int
	Sum     float64
	SumSq   float64 // Sum of squares for variance calculation
	Min     float64
	Max     float64
	Buckets []int // equal-width histogram over [0, 1)
}

// New returns an empty Statistics with the given number of histogram
// buckets.
func New(buckets int) *Statistics {
	if buckets < 1 {
		buckets = 1
	}
	return &Statistics{
		Min:     math.Inf(1),
		Max:     math.Inf(-1),
		Buckets: make([]int, buckets),
	}
}

// Add incorporates one sample.
func (s *Statistics) Add(x float64) {
	s.Samples++
	s.Sum += x
	s.SumSq += x * x
	if x < s.Min {
		s.Min = x
	}
	if x > s.Max {
		s.Max = x
	}

	i := int(x * float64(len(s.Buckets)))
	if i < 0 {
		i = 0
	}
	if i >= len(s.Buckets) {
		i = len(s.Buckets) - 1
	}
	s.Buckets[i]++
}

// Merge folds o into s. Both must have the same number of buckets.
func (s *Statistics) Merge(o *Statistics) error {
	if len(o.Buckets) != len(s.Buckets) {
		return fmt.Errorf("bucket mismatch: %d != %d", len(o.Buckets), len(s.Buckets))
	}
	s.Samples += o.Samples
	s.Sum += o.Sum
	s.SumSq += o.SumSq
	s.Min = math.Min(s.Min, o.Min)
	s.Max = math.Max(s.Max, o.Max)
	for i, c := range o.Buckets {
		s.Buckets[i] += c
	}
	return nil
}

// Mean returns the arithmetic mean of all samples
func (s *Statistics) Mean() float64 {
	if s.Samples == 0 {
		return 0
	}
	return s.Sum / float64(s.Samples)
}

// Variance returns the sample variance
func (s *Statistics) Variance() float64 {
	if s.Samples < 2 {
		return 0
	}
	mean := s.Mean()
	return (s.SumSq - float64(s.Samples)*mean*mean) / float64(s.Samples-1)
}

// StdDev returns the sample standard deviation
func (s *Statistics) StdDev() float64 {
	return math.Sqrt(s.Variance())
}

// StdError returns the standard error of the mean
func (s *Statistics) StdError() float64 {
	if s.Samples == 0 {
		return 0
	}
	return s.StdDev() / math.Sqrt(float64(s.Samples))
}

// ConfidenceInterval95 returns the 95% confidence interval for the mean
func (s *Statistics) ConfidenceInterval95() (float64, float64) {
	mean := s.Mean()
	margin := 1.96 * s.StdError()
	return mean - margin, mean + margin
}

// ChiSquare returns the chi-square statistic of the histogram against a
// flat distribution, with len(Buckets)-1 degrees of freedom.
func (s *Statistics) ChiSquare() float64 {
	if s.Samples == 0 {
		return 0
	}
	expected := float64(s.Samples) / float64(len(s.Buckets))
	var chi float64
	for _, c := range s.Buckets {
		d := float64(c) - expected
		chi += d * d / expected
	}
	return chi
}

// ChiSquareCritical returns the chi-square value that a uniform source
// exceeds with probability 0.001, using the Wilson-Hilferty
// approximation.
func (s *Statistics) ChiSquareCritical() float64 {
	k := float64(len(s.Buckets) - 1)
	if k < 1 {
		return math.Inf(1)
	}
	const z = 3.090232 // upper 0.1% point of the standard normal
	h := 2 / (9 * k)
	return k * math.Pow(1-h+z*math.Sqrt(h), 3)
}

// Validate reports samples outside [0, 1) and gross departures from
// uniformity.
func (s *Statistics) Validate() error {
	if s.Samples == 0 {
		return fmt.Errorf("no samples")
	}
	if s.Min < 0 || s.Max >= 1 {
		return fmt.Errorf("samples outside [0, 1): min=%v max=%v", s.Min, s.Max)
	}

	// Six standard errors of the uniform distribution.
	tolerance := 6 * math.Sqrt(uniformVariance/float64(s.Samples))
	if math.Abs(s.Mean()-uniformMean) > tolerance {
		return fmt.Errorf("mean %.6f deviates from %.1f by more than %.6f", s.Mean(), uniformMean, tolerance)
	}

	if len(s.Buckets) > 1 && s.ChiSquare() > s.ChiSquareCritical() {
		return fmt.Errorf("chi-square %.2f exceeds critical value %.2f", s.ChiSquare(), s.ChiSquareCritical())
	}
	return nil
}
