// Package autolag automates causal lag selection for a pair of series.
//
// Given a candidate cause x and an effect y, the pipeline determines how
// many first differences make both series stationary, sweeps Granger
// causality tests and comparative autoregressive fits across every lag up
// to a configured maximum, and resolves one best lag per information
// criterion among the significant lags.
//
// # Running an analysis
//
//	pair, err := timeseries.PairOf(xValues, yValues)
//	result, err := autolag.Analyze(pair, autolag.DefaultConfig(12))
//
// The result carries four tables: stationarity diagnostics with the
// differencing order, the per-lag causality p-values, the per-lag model
// metrics for the unrestricted and restricted models, and the selected
// lag per criterion. Selected lags are reported both on the stationary
// scale and adjusted back to the original series by adding the
// differencing order.
//
// # Stages
//
// The stages are exported individually for callers that need partial
// results:
//
//	st, err := autolag.EnforceStationarity(pair)
//	causality, err := autolag.ScanCausality(st.Pair, 12)
//	metrics := autolag.CollectMetrics(st.Pair, 12)
//	selection := autolag.SelectLags(causality, metrics, st.Order, 0.05)
//
// Stationarity enforcement must complete before either sweep; the two
// sweeps only read the stationary pair and are independent of each other.
//
// # Failure behavior
//
// ErrInvalidConfig and ErrStationarityNotAchieved are fatal and abort the
// pipeline before any table is produced. Model fit failures at individual
// lags are not fatal: the affected entry is marked unavailable, the sweep
// continues, and selection simply skips that lag.
package autolag
