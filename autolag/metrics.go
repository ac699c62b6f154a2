package autolag

import (
	"github.com/sartorproj/grangerscope/timeseries"
	"github.com/sartorproj/grangerscope/vecar"
)

// MetricEntry holds the fit-quality scores of one model at one lag, or
// the error that prevented the fit. Unavailable entries are excluded from
// selection but do not abort the sweep.
type MetricEntry struct {
	AIC  float64
	BIC  float64
	HQIC float64

	// FPE holds the final prediction error for unrestricted entries and
	// the residual variance for restricted entries. The two fill the same
	// slot but are only ever compared within their own table.
	FPE float64

	Available bool
	Err       error
}

// ModelMetrics holds the per-lag scores of the unrestricted joint model
// and the restricted single-series model.
type ModelMetrics struct {
	Unrestricted map[int]MetricEntry
	Restricted   map[int]MetricEntry
}

// CollectMetrics fits, for every lag from 1 through maxLag, an
// unrestricted bivariate VAR over the pair and a restricted AR over the
// effect series alone, recording AIC, BIC, HQIC, and FPE (or residual
// variance) from each. A fit failure at one lag marks that entry
// unavailable; the sweep always completes.
func CollectMetrics(pair *timeseries.Pair, maxLag int) *ModelMetrics {
	metrics := &ModelMetrics{
		Unrestricted: make(map[int]MetricEntry, maxLag),
		Restricted:   make(map[int]MetricEntry, maxLag),
	}

	for lag := 1; lag <= maxLag; lag++ {
		if joint, err := vecar.FitVAR(pair, lag); err != nil {
			metrics.Unrestricted[lag] = MetricEntry{Err: err}
		} else {
			metrics.Unrestricted[lag] = MetricEntry{
				AIC:       joint.AIC,
				BIC:       joint.BIC,
				HQIC:      joint.HQIC,
				FPE:       joint.FPE,
				Available: true,
			}
		}

		if own, err := vecar.FitAR(pair.Y, lag); err != nil {
			metrics.Restricted[lag] = MetricEntry{Err: err}
		} else {
			metrics.Restricted[lag] = MetricEntry{
				AIC:       own.AIC,
				BIC:       own.BIC,
				HQIC:      own.HQIC,
				FPE:       own.Sigma2,
				Available: true,
			}
		}
	}

	return metrics
}
