// Package granger implements Granger causality tests.
//
// A series x Granger-causes a series y when past values of x improve the
// prediction of y beyond what y's own past provides. The test fixes a lag
// order, regresses y on its own lags with and without the matching lags
// of x, and asks whether the added terms are jointly significant.
//
// Three test statistics are computed for each lag order, matching the
// classical sum-of-squared-residuals formulation:
//
//   - an F-test with (lag, n-2*lag-1) degrees of freedom
//   - a chi-square test with lag degrees of freedom
//   - a likelihood ratio test, also chi-square with lag degrees of freedom
//
// Usage:
//
//	res, err := granger.Test(stationaryPair, 3)
//	if err == nil && res.Significant(0.05) {
//	    // x carries predictive information about y at lag 3
//	}
//
// The input pair is expected to be stationary; run it through the autolag
// package's stationarity enforcement first.
package granger
