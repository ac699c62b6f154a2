package autolag

import (
	"fmt"

	"github.com/sartorproj/grangerscope/stats"
	"github.com/sartorproj/grangerscope/timeseries"
)

// stationarityAlpha is the significance level of the stationarity rule.
const stationarityAlpha = 0.05

// Diagnostic holds the stationarity test outcomes for one series.
type Diagnostic struct {
	ADFPValue     float64
	KPSSPValue    float64
	NonStationary bool
}

// PairDiagnostics holds the diagnostics of both series of a pair.
type PairDiagnostics struct {
	X Diagnostic
	Y Diagnostic
}

func (d PairDiagnostics) anyNonStationary() bool {
	return d.X.NonStationary || d.Y.NonStationary
}

// StationarityResult is the outcome of stationarity enforcement.
type StationarityResult struct {
	// Pair is the stationary pair handed to the lag sweeps. It is a
	// fresh copy and never aliases the caller's series.
	Pair *timeseries.Pair

	// Order is the number of lockstep first differences applied.
	Order int

	// Initial holds the diagnostics of the very first evaluation, before
	// any differencing. Reports show these to explain why differencing
	// was needed.
	Initial PairDiagnostics

	// Final holds the diagnostics at convergence.
	Final PairDiagnostics
}

// The differencing loop is an explicit state machine rather than an open
// ended while: every transition either converges, consumes one
// observation, or fails, so termination is guaranteed by the shrinking
// sample.
type enforceState int

const (
	stateTesting enforceState = iota
	stateDifferencing
	stateConverged
	stateFailed
)

// EnforceStationarity tests both series of the pair and applies first
// differences in lockstep until both are stationary. A series counts as
// non-stationary when either test vetoes it: ADF failing to reject its
// unit root null, or KPSS rejecting its stationarity null.
//
// Differencing stops with ErrStationarityNotAchieved once the shrinking
// sample can no longer feed the tests, instead of looping toward a
// degenerate series.
func EnforceStationarity(pair *timeseries.Pair) (*StationarityResult, error) {
	current := pair.Copy()
	order := 0
	var initial, last PairDiagnostics
	var failure error

	state := stateTesting
	for {
		switch state {
		case stateTesting:
			diag, err := diagnosePair(current)
			if err != nil {
				failure = err
				state = stateFailed
				continue
			}
			last = diag
			if order == 0 {
				initial = diag
			}
			if diag.anyNonStationary() {
				state = stateDifferencing
			} else {
				state = stateConverged
			}

		case stateDifferencing:
			if current.Len()-1 < stats.MinObs {
				failure = fmt.Errorf("sample exhausted after %d differences", order)
				state = stateFailed
				continue
			}
			current = current.Diff()
			order++
			state = stateTesting

		case stateConverged:
			return &StationarityResult{
				Pair:    current,
				Order:   order,
				Initial: initial,
				Final:   last,
			}, nil

		case stateFailed:
			return nil, fmt.Errorf("%w: %v", ErrStationarityNotAchieved, failure)
		}
	}
}

func diagnosePair(pair *timeseries.Pair) (PairDiagnostics, error) {
	x, err := diagnoseSeries(pair.X)
	if err != nil {
		return PairDiagnostics{}, err
	}
	y, err := diagnoseSeries(pair.Y)
	if err != nil {
		return PairDiagnostics{}, err
	}
	return PairDiagnostics{X: x, Y: y}, nil
}

func diagnoseSeries(series *timeseries.Series) (Diagnostic, error) {
	adf, err := stats.ADF(series, 0)
	if err != nil {
		return Diagnostic{}, err
	}
	kpss, err := stats.KPSS(series, "c", 0)
	if err != nil {
		return Diagnostic{}, err
	}
	return Diagnostic{
		ADFPValue:     adf.PValue,
		KPSSPValue:    kpss.PValue,
		NonStationary: adf.PValue > stationarityAlpha || kpss.PValue < stationarityAlpha,
	}, nil
}
