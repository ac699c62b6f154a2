// Package grangerscope provides Granger causality analysis and automatic
// causal-lag selection for pairs of time series.
//
// GrangerScope answers two questions about an ordered pair of series
// (a candidate cause x and an effect y): how many times must the pair be
// differenced before both series are stationary, and at which lag order
// does x Granger-cause y, as judged by competing information criteria.
//
// # Pipeline
//
// The analysis runs as a fixed pipeline:
//
//  1. Validate the configuration against the sample size.
//  2. Difference both series in lockstep until ADF and KPSS tests agree
//     that both are stationary.
//  3. For every lag up to the configured maximum, run Granger causality
//     tests (F, chi-square, likelihood ratio) on the stationary pair.
//  4. For the same lags, fit an unrestricted bivariate VAR and a
//     restricted univariate AR, collecting AIC, BIC, HQIC, and FPE.
//  5. Restrict to significant lags and pick, per criterion, the lag that
//     minimizes the unrestricted model's score, re-expressed on the
//     original (undifferenced) time scale.
//
// # Quick start
//
//	pair, _ := timeseries.NewPair(x, y)
//	result, err := autolag.Analyze(pair, autolag.DefaultConfig(12))
//	if err != nil {
//	    // handle it
//	}
//	report.Write(os.Stdout, result)
//
// # Packages
//
//   - timeseries: series and aligned-pair data structures
//   - stats: stationarity tests (ADF, KPSS) and the OLS core
//   - granger: per-lag Granger causality tests
//   - vecar: bivariate VAR and univariate AR fitting with model criteria
//   - autolag: stationarity enforcement and automatic lag selection
//   - report: textual report rendering
//   - plot: chart rendering for p-values and model criteria
package grangerscope
