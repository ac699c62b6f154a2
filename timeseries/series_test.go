package timeseries

import (
	"math"
	"testing"
)

func TestSeriesBasicStats(t *testing.T) {
	s := New("test", []float64{2, 4, 6, 8})

	if s.Len() != 4 {
		t.Errorf("Len: expected 4, got %d", s.Len())
	}
	if s.Mean() != 5 {
		t.Errorf("Mean: expected 5, got %f", s.Mean())
	}

	// Sample variance of 2,4,6,8 is 20/3.
	want := 20.0 / 3.0
	if math.Abs(s.Variance()-want) > 1e-12 {
		t.Errorf("Variance: expected %f, got %f", want, s.Variance())
	}
	if math.Abs(s.Std()-math.Sqrt(want)) > 1e-12 {
		t.Errorf("Std: expected %f, got %f", math.Sqrt(want), s.Std())
	}
}

func TestSeriesDiff(t *testing.T) {
	s := New("test", []float64{1, 4, 9, 16, 25})
	d := s.Diff()

	if d.Len() != s.Len()-1 {
		t.Fatalf("Diff length: expected %d, got %d", s.Len()-1, d.Len())
	}
	want := []float64{3, 5, 7, 9}
	for i, v := range want {
		if d.Values[i] != v {
			t.Errorf("Diff[%d]: expected %f, got %f", i, v, d.Values[i])
		}
	}

	// Differencing a single observation leaves nothing.
	if New("t", []float64{1}).Diff().Len() != 0 {
		t.Error("Diff of length-1 series should be empty")
	}
}

func TestSeriesLag(t *testing.T) {
	s := New("test", []float64{1, 2, 3, 4, 5})
	l := s.Lag(2)

	if l.Len() != 3 {
		t.Fatalf("Lag length: expected 3, got %d", l.Len())
	}
	want := []float64{1, 2, 3}
	for i, v := range want {
		if l.Values[i] != v {
			t.Errorf("Lag[%d]: expected %f, got %f", i, v, l.Values[i])
		}
	}

	if s.Lag(5).Len() != 0 {
		t.Error("Lag beyond series length should be empty")
	}
}

func TestSeriesCopyIsDeep(t *testing.T) {
	s := New("test", []float64{1, 2, 3})
	c := s.Copy()
	c.Values[0] = 100

	if s.Values[0] != 1 {
		t.Error("Copy should not share backing storage with the original")
	}
	if c.Name != s.Name {
		t.Errorf("Copy name: expected %q, got %q", s.Name, c.Name)
	}
}

func TestSeriesValidate(t *testing.T) {
	if err := New("ok", []float64{1, 2, 3}).Validate(); err != nil {
		t.Errorf("valid series should pass, got %v", err)
	}
	if err := New("empty", nil).Validate(); err == nil {
		t.Error("empty series should fail validation")
	}
	if err := New("nan", []float64{1, math.NaN(), 3}).Validate(); err == nil {
		t.Error("series with NaN should fail validation")
	}
	if err := New("inf", []float64{1, math.Inf(1), 3}).Validate(); err == nil {
		t.Error("series with Inf should fail validation")
	}
}
