package stats

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// MinObs is the smallest sample size the statistical tests accept. Below
// this the regressions behind them are meaningless.
const MinObs = 10

// OLSFit holds the result of an ordinary least squares regression.
type OLSFit struct {
	Coeffs    []float64
	StdErrs   []float64 // nil when no residual degrees of freedom remain
	Residuals []float64
	RSS       float64
	NObs      int
	NRegress  int
}

// OLS regresses y on the columns of x. The design matrix must already
// contain a constant column if an intercept is wanted.
func OLS(x *mat.Dense, y []float64) (*OLSFit, error) {
	n, k := x.Dims()
	if n == 0 || n != len(y) {
		return nil, errors.New("ols: design matrix and response length mismatch")
	}
	if n <= k {
		return nil, fmt.Errorf("ols: %d observations cannot support %d regressors", n, k)
	}

	yCol := mat.NewDense(n, 1, y)
	var beta mat.Dense
	if err := beta.Solve(x, yCol); err != nil {
		return nil, fmt.Errorf("ols: design matrix is rank deficient: %w", err)
	}

	coeffs := make([]float64, k)
	for i := range coeffs {
		coeffs[i] = beta.At(i, 0)
	}

	residuals := make([]float64, n)
	rss := 0.0
	for i := 0; i < n; i++ {
		pred := 0.0
		for j := 0; j < k; j++ {
			pred += coeffs[j] * x.At(i, j)
		}
		residuals[i] = y[i] - pred
		rss += residuals[i] * residuals[i]
	}

	fit := &OLSFit{
		Coeffs:    coeffs,
		Residuals: residuals,
		RSS:       rss,
		NObs:      n,
		NRegress:  k,
	}

	// Standard errors need (X'X)^-1; skip them when the cross product is
	// numerically singular, callers that need them check for nil.
	var xtx, xtxInv mat.Dense
	xtx.Mul(x.T(), x)
	if err := xtxInv.Inverse(&xtx); err == nil {
		s2 := rss / float64(n-k)
		fit.StdErrs = make([]float64, k)
		for i := 0; i < k; i++ {
			fit.StdErrs[i] = math.Sqrt(s2 * xtxInv.At(i, i))
		}
	}

	return fit, nil
}

// LogLik returns the Gaussian log-likelihood of the fit evaluated at the
// maximum likelihood variance estimate RSS/n.
func (f *OLSFit) LogLik() float64 {
	n := float64(f.NObs)
	sigma2 := f.RSS / n
	if sigma2 <= 0 {
		sigma2 = math.SmallestNonzeroFloat64
	}
	return -n / 2 * (math.Log(2*math.Pi*sigma2) + 1)
}
