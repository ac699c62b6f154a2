// Package report renders analysis results as tabular text.
//
// The report mirrors the analysis tables: the stationarity diagnostics
// that motivated differencing, the causality lags that reached
// significance, and the optimal lag per information criterion with its
// adjustment back to the original time scale.
//
//	result, err := autolag.Analyze(pair, cfg)
//	if err == nil {
//	    report.Write(os.Stdout, result)
//	}
//
// The stationarity table shows the diagnostics from before any
// differencing, so a reader can see why the series needed it.
package report
