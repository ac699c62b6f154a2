// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"fmt"
	"math"
)

// Series represents an ordered sequence of observations.
type Series struct {
	Name   string
	Values []float64
}

// New creates a new named series from values.
func New(name string, values []float64) *Series {
	return &Series{Name: name, Values: values}
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Variance calculates the sample variance of the series.
func (s *Series) Variance() float64 {
	if len(s.Values) < 2 {
		return 0
	}
	mean := s.Mean()
	sumSq := 0.0
	for _, v := range s.Values {
		d := v - mean
		sumSq += d * d
	}
	return sumSq / float64(len(s.Values)-1)
}

// Std calculates the standard deviation of the series.
func (s *Series) Std() float64 {
	return math.Sqrt(s.Variance())
}

// Diff calculates the first difference of the series. The leading
// observation, which has no predecessor, is dropped, so the result is one
// element shorter.
func (s *Series) Diff() *Series {
	if len(s.Values) < 2 {
		return &Series{Name: s.Name, Values: []float64{}}
	}
	result := make([]float64, len(s.Values)-1)
	for i := 1; i < len(s.Values); i++ {
		result[i-1] = s.Values[i] - s.Values[i-1]
	}
	return &Series{Name: s.Name, Values: result}
}

// Lag returns the series shifted back by k observations: element i of the
// result is element i of the original, truncated so that it aligns with
// the last len-k observations.
func (s *Series) Lag(k int) *Series {
	if k <= 0 || k >= len(s.Values) {
		return &Series{Name: s.Name, Values: []float64{}}
	}
	result := make([]float64, len(s.Values)-k)
	copy(result, s.Values[:len(s.Values)-k])
	return &Series{Name: s.Name, Values: result}
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)
	return &Series{Name: s.Name, Values: values}
}

// Validate reports whether the series is usable for analysis: non-nil,
// non-empty, and free of NaN or infinite values.
func (s *Series) Validate() error {
	if s == nil || len(s.Values) == 0 {
		return errors.New("series is empty")
	}
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("series %q has invalid value at index %d", s.Name, i)
		}
	}
	return nil
}
