// Package vecar fits bivariate vector autoregressions and univariate
// autoregressions and reports their model selection criteria.
package vecar

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/grangerscope/stats"
	"github.com/sartorproj/grangerscope/timeseries"
)

// VARModel is a fitted bivariate vector autoregression with a constant
// term. Both equations regress on the same design: a constant followed by
// lags 1..Lag of x and y.
type VARModel struct {
	Lag  int
	NObs int

	// Per-equation coefficients, ordered constant, then x and y at each lag.
	XCoeffs []float64
	YCoeffs []float64

	AIC  float64
	BIC  float64
	HQIC float64
	FPE  float64
}

// FitVAR fits a VAR of the given lag order to the pair by equationwise
// least squares and computes AIC, BIC, HQIC, and the final prediction
// error from the maximum likelihood residual covariance.
func FitVAR(pair *timeseries.Pair, lag int) (*VARModel, error) {
	if lag < 1 {
		return nil, fmt.Errorf("vecar: lag must be positive, got %d", lag)
	}

	n := pair.Len()
	nObs := n - lag
	dfModel := 2*lag + 1 // regressors per equation
	dfResid := nObs - dfModel
	if dfResid < 1 {
		return nil, fmt.Errorf("vecar: %d observations cannot support a VAR(%d)", n, lag)
	}

	xv := pair.X.Values
	yv := pair.Y.Values

	design := mat.NewDense(nObs, dfModel, nil)
	respX := make([]float64, nObs)
	respY := make([]float64, nObs)
	for i := 0; i < nObs; i++ {
		t := i + lag
		respX[i] = xv[t]
		respY[i] = yv[t]
		design.Set(i, 0, 1)
		col := 1
		for j := 1; j <= lag; j++ {
			design.Set(i, col, xv[t-j])
			col++
			design.Set(i, col, yv[t-j])
			col++
		}
	}

	fitX, err := stats.OLS(design, respX)
	if err != nil {
		return nil, fmt.Errorf("vecar: x equation at lag %d: %w", lag, err)
	}
	fitY, err := stats.OLS(design, respY)
	if err != nil {
		return nil, fmt.Errorf("vecar: y equation at lag %d: %w", lag, err)
	}

	// Maximum likelihood residual covariance of the two equations.
	var sxx, syy, sxy float64
	for i := 0; i < nObs; i++ {
		sxx += fitX.Residuals[i] * fitX.Residuals[i]
		syy += fitY.Residuals[i] * fitY.Residuals[i]
		sxy += fitX.Residuals[i] * fitY.Residuals[i]
	}
	T := float64(nObs)
	sxx /= T
	syy /= T
	sxy /= T

	det := sxx*syy - sxy*sxy
	if det <= 0 {
		return nil, fmt.Errorf("vecar: residual covariance is singular at lag %d", lag)
	}
	logDet := math.Log(det)

	// Criteria in log-determinant form; freeParams counts both equations.
	freeParams := float64(2 * dfModel)
	model := &VARModel{
		Lag:     lag,
		NObs:    nObs,
		XCoeffs: fitX.Coeffs,
		YCoeffs: fitY.Coeffs,
		AIC:     logDet + 2*freeParams/T,
		BIC:     logDet + math.Log(T)*freeParams/T,
		HQIC:    logDet + 2*math.Log(math.Log(T))*freeParams/T,
	}

	// FPE estimates the determinant of the out-of-sample forecast error
	// covariance: ((T + m)/(T - m))^K * det, with m regressors per
	// equation and K = 2 equations.
	ratio := float64(nObs+dfModel) / float64(dfResid)
	model.FPE = ratio * ratio * det

	return model, nil
}
