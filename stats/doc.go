// Package stats provides statistical tests and the regression core for
// time series analysis.
//
// This package includes the stationarity tests the differencing loop is
// driven by, and the ordinary least squares fit shared by the causality
// and autoregression packages.
//
// # Stationarity Tests
//
// Test for unit roots and stationarity:
//
//	// Augmented Dickey-Fuller: null = unit root (non-stationary)
//	adf, err := stats.ADF(series, 0) // 0 = automatic lag selection
//	if adf.PValue < 0.05 {
//	    // series is stationary
//	}
//
//	// KPSS: null = stationary
//	kpss, err := stats.KPSS(series, "c", 0) // constant-only regression
//	if kpss.PValue < 0.05 {
//	    // series is non-stationary
//	}
//
// The two tests have opposite null hypotheses; GrangerScope treats a
// series as non-stationary when either test says so.
//
// # OLS
//
// The OLS fit takes a gonum design matrix and exposes the residual sum of
// squares, standard errors, and Gaussian log-likelihood the tests above
// and the model-fitting packages are built from:
//
//	fit, err := stats.OLS(design, response)
package stats
