package timeseries

import (
	"errors"
	"math"
	"testing"
)

func TestNewPairValidation(t *testing.T) {
	x := New("x", []float64{1, 2, 3})
	y := New("y", []float64{4, 5, 6})

	if _, err := NewPair(x, y); err != nil {
		t.Errorf("valid pair should construct, got %v", err)
	}

	if _, err := NewPair(nil, y); !errors.Is(err, ErrMissingSeries) {
		t.Errorf("nil x: expected ErrMissingSeries, got %v", err)
	}
	if _, err := NewPair(x, New("y", nil)); !errors.Is(err, ErrMissingSeries) {
		t.Errorf("empty y: expected ErrMissingSeries, got %v", err)
	}
	if _, err := NewPair(x, New("y", []float64{1, 2})); !errors.Is(err, ErrLengthMismatch) {
		t.Errorf("length mismatch: expected ErrLengthMismatch, got %v", err)
	}
	if _, err := NewPair(x, New("y", []float64{1, math.NaN(), 3})); err == nil {
		t.Error("NaN in y should fail construction")
	}
}

func TestPairOfNames(t *testing.T) {
	pair, err := PairOf([]float64{1, 2}, []float64{3, 4})
	if err != nil {
		t.Fatalf("PairOf: %v", err)
	}
	if pair.X.Name != "x" || pair.Y.Name != "y" {
		t.Errorf("expected default names x/y, got %q/%q", pair.X.Name, pair.Y.Name)
	}
}

func TestPairDiffLockstep(t *testing.T) {
	pair, err := PairOf([]float64{1, 3, 6, 10}, []float64{10, 20, 40, 70})
	if err != nil {
		t.Fatalf("PairOf: %v", err)
	}

	d := pair.Diff()
	if d.Len() != pair.Len()-1 {
		t.Fatalf("Diff length: expected %d, got %d", pair.Len()-1, d.Len())
	}
	wantX := []float64{2, 3, 4}
	wantY := []float64{10, 20, 30}
	for i := range wantX {
		if d.X.Values[i] != wantX[i] || d.Y.Values[i] != wantY[i] {
			t.Errorf("Diff[%d]: got (%f, %f), want (%f, %f)",
				i, d.X.Values[i], d.Y.Values[i], wantX[i], wantY[i])
		}
	}
}

func TestPairCopyIsDeep(t *testing.T) {
	pair, _ := PairOf([]float64{1, 2, 3}, []float64{4, 5, 6})
	c := pair.Copy()
	c.X.Values[0] = 100
	c.Y.Values[0] = 100

	if pair.X.Values[0] != 1 || pair.Y.Values[0] != 4 {
		t.Error("Copy should not share backing storage with the original")
	}
}
