package vecar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/grangerscope/stats"
	"github.com/sartorproj/grangerscope/timeseries"
)

// ARModel is a fitted univariate autoregression with a constant term.
type ARModel struct {
	Lag  int
	NObs int

	// Coefficients ordered constant, then lags 1..Lag.
	Coeffs []float64

	// Sigma2 is the maximum likelihood residual variance estimate.
	Sigma2 float64
	LogLik float64

	AIC  float64
	BIC  float64
	HQIC float64
}

// FitAR fits an autoregression of the given lag order to a single series
// by least squares and computes AIC, BIC, and HQIC from the Gaussian
// log-likelihood.
func FitAR(series *timeseries.Series, lag int) (*ARModel, error) {
	if lag < 1 {
		return nil, fmt.Errorf("vecar: lag must be positive, got %d", lag)
	}

	n := series.Len()
	nObs := n - lag
	k := lag + 1
	if nObs-k < 1 {
		return nil, fmt.Errorf("vecar: %d observations cannot support an AR(%d)", n, lag)
	}

	values := series.Values
	design := mat.NewDense(nObs, k, nil)
	resp := make([]float64, nObs)
	for i := 0; i < nObs; i++ {
		t := i + lag
		resp[i] = values[t]
		design.Set(i, 0, 1)
		for j := 1; j <= lag; j++ {
			design.Set(i, j, values[t-j])
		}
	}

	fit, err := stats.OLS(design, resp)
	if err != nil {
		return nil, fmt.Errorf("vecar: ar fit at lag %d: %w", lag, err)
	}

	T := float64(nObs)
	llf := fit.LogLik()
	kf := float64(k)

	return &ARModel{
		Lag:    lag,
		NObs:   nObs,
		Coeffs: fit.Coeffs,
		Sigma2: fit.RSS / T,
		LogLik: llf,
		AIC:    -2*llf + 2*kf,
		BIC:    -2*llf + kf*math.Log(T),
		HQIC:   -2*llf + 2*kf*math.Log(math.Log(T)),
	}, nil
}
