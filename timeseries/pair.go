package timeseries

import (
	"errors"
	"fmt"
)

// Pair-construction errors.
var (
	ErrMissingSeries  = errors.New("pair requires both x and y series")
	ErrLengthMismatch = errors.New("pair series must have equal length")
)

// Pair is an aligned pair of series: a candidate cause x and an effect y.
// Observations at the same index belong to the same time step.
type Pair struct {
	X *Series
	Y *Series
}

// NewPair creates an aligned pair from two series. Both series must be
// present, non-empty, of equal length, and free of NaN or infinite values.
func NewPair(x, y *Series) (*Pair, error) {
	if x == nil || x.Len() == 0 || y == nil || y.Len() == 0 {
		return nil, ErrMissingSeries
	}
	if x.Len() != y.Len() {
		return nil, fmt.Errorf("%w: x has %d observations, y has %d",
			ErrLengthMismatch, x.Len(), y.Len())
	}
	if err := x.Validate(); err != nil {
		return nil, err
	}
	if err := y.Validate(); err != nil {
		return nil, err
	}
	return &Pair{X: x, Y: y}, nil
}

// PairOf creates a pair directly from two value slices, naming the series
// "x" and "y".
func PairOf(x, y []float64) (*Pair, error) {
	return NewPair(New("x", x), New("y", y))
}

// Len returns the common length of the pair.
func (p *Pair) Len() int {
	return p.X.Len()
}

// Diff applies a first difference to both series in lockstep, so the
// result stays aligned and is one observation shorter.
func (p *Pair) Diff() *Pair {
	return &Pair{X: p.X.Diff(), Y: p.Y.Diff()}
}

// Copy creates a deep copy of the pair.
func (p *Pair) Copy() *Pair {
	return &Pair{X: p.X.Copy(), Y: p.Y.Copy()}
}
