// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for a single ordered sequence of
// observations and the Pair type for an aligned cause/effect pair, along
// with differencing, summary statistics, and CSV loading.
//
// # Creating a Pair
//
// Create an aligned pair from two slices:
//
//	pair, err := timeseries.PairOf(xValues, yValues)
//
// Or from named series:
//
//	x := timeseries.New("temperature", tempValues)
//	y := timeseries.New("demand", demandValues)
//	pair, err := timeseries.NewPair(x, y)
//
// Construction validates that both series are present, equal in length,
// and free of NaN or infinite values; every downstream consumer relies on
// those invariants.
//
// # Differencing
//
// First differences apply to both series in lockstep so alignment is
// preserved:
//
//	diffed := pair.Diff() // one observation shorter
//
// # Loading from CSV
//
// Load a pair from a two-column CSV file:
//
//	opts := timeseries.DefaultCSVOptions()
//	opts.XColumn = "rainfall"
//	opts.YColumn = "riverflow"
//	pair, err := timeseries.LoadPairCSV("data.csv", opts)
//
// Rows with a missing or non-numeric value in either column are dropped
// as a whole.
package timeseries
