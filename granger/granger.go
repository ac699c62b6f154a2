// Package granger implements Granger causality tests for aligned pairs of
// time series.
package granger

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/sartorproj/grangerscope/stats"
	"github.com/sartorproj/grangerscope/timeseries"
)

// Result holds the joint-significance tests of the cause's lagged terms at
// one lag order.
type Result struct {
	Lag        int
	FStat      float64
	FPValue    float64
	Chi2Stat   float64
	Chi2PValue float64
	LRStat     float64
	LRPValue   float64
}

// Significant reports whether the F-test or the chi-square test falls
// below alpha. The likelihood ratio p-value is reported but deliberately
// not part of the rule.
func (r *Result) Significant(alpha float64) bool {
	return r.FPValue < alpha || r.Chi2PValue < alpha
}

// Test asks whether the pair's x series helps predict its y series beyond
// y's own history, at exactly the given lag order. It compares a
// restricted regression of y on its own lags 1..lag against an
// unrestricted one that adds the same lags of x, and returns the p-values
// of an F-test, a chi-square test, and a likelihood ratio test of the
// added terms. The pair is expected to be stationary.
func Test(pair *timeseries.Pair, lag int) (*Result, error) {
	if lag < 1 {
		return nil, fmt.Errorf("granger: lag must be positive, got %d", lag)
	}

	n := pair.Len()
	nObs := n - lag
	kJoint := 2*lag + 1
	dfResid := nObs - kJoint
	if dfResid < 1 {
		return nil, fmt.Errorf("granger: %d observations leave no residual degrees of freedom at lag %d", n, lag)
	}

	yv := pair.Y.Values
	xv := pair.X.Values

	resp := make([]float64, nObs)
	own := mat.NewDense(nObs, lag+1, nil)
	joint := mat.NewDense(nObs, kJoint, nil)
	for i := 0; i < nObs; i++ {
		t := i + lag
		resp[i] = yv[t]
		own.Set(i, 0, 1)
		joint.Set(i, 0, 1)
		for j := 1; j <= lag; j++ {
			own.Set(i, j, yv[t-j])
			joint.Set(i, j, yv[t-j])
			joint.Set(i, lag+j, xv[t-j])
		}
	}

	restricted, err := stats.OLS(own, resp)
	if err != nil {
		return nil, fmt.Errorf("granger: restricted fit at lag %d: %w", lag, err)
	}
	unrestricted, err := stats.OLS(joint, resp)
	if err != nil {
		return nil, fmt.Errorf("granger: unrestricted fit at lag %d: %w", lag, err)
	}

	result := &Result{Lag: lag}

	// In exact arithmetic the restricted RSS cannot be smaller; clamp the
	// floating point residue.
	num := restricted.RSS - unrestricted.RSS
	if num < 0 {
		num = 0
	}
	if unrestricted.RSS <= 0 || num == 0 {
		// Degenerate regressions carry no usable evidence.
		result.FPValue = 1
		result.Chi2PValue = 1
		result.LRPValue = 1
		return result, nil
	}

	q := float64(lag)
	chi2 := distuv.ChiSquared{K: q}

	result.FStat = (num / q) / (unrestricted.RSS / float64(dfResid))
	fDist := distuv.F{D1: q, D2: float64(dfResid)}
	result.FPValue = clampP(1 - fDist.CDF(result.FStat))

	result.Chi2Stat = float64(nObs) * num / unrestricted.RSS
	result.Chi2PValue = clampP(1 - chi2.CDF(result.Chi2Stat))

	result.LRStat = float64(nObs) * math.Log(restricted.RSS/unrestricted.RSS)
	result.LRPValue = clampP(1 - chi2.CDF(result.LRStat))

	return result, nil
}

func clampP(p float64) float64 {
	if p < 0 || math.IsNaN(p) {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}
