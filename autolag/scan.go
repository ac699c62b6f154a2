package autolag

import (
	"sort"

	"github.com/sartorproj/grangerscope/granger"
	"github.com/sartorproj/grangerscope/timeseries"
)

// CausalityTable maps lag order to its causality test results. It always
// holds exactly one record per lag from 1 to the configured maximum.
type CausalityTable map[int]granger.Result

// ScanCausality runs the causality test at every lag from 1 through
// maxLag on the stationary pair. The sweep never short-circuits: an early
// significant lag does not stop it, because later lags still feed the
// criterion comparison.
func ScanCausality(pair *timeseries.Pair, maxLag int) (CausalityTable, error) {
	table := make(CausalityTable, maxLag)
	for lag := 1; lag <= maxLag; lag++ {
		res, err := granger.Test(pair, lag)
		if err != nil {
			return nil, err
		}
		table[lag] = *res
	}
	return table, nil
}

// SignificantLags returns, in ascending order, the lags whose F-test or
// chi-square p-value falls below alpha. The likelihood ratio p-value is
// recorded in the table but is not part of the filter.
func (t CausalityTable) SignificantLags(alpha float64) []int {
	lags := make([]int, 0, len(t))
	for lag, rec := range t {
		if rec.Significant(alpha) {
			lags = append(lags, lag)
		}
	}
	sort.Ints(lags)
	return lags
}

// Lags returns every recorded lag in ascending order.
func (t CausalityTable) Lags() []int {
	lags := make([]int, 0, len(t))
	for lag := range t {
		lags = append(lags, lag)
	}
	sort.Ints(lags)
	return lags
}
