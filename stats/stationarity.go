package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/grangerscope/timeseries"
)

// ADFResult represents the result of an Augmented Dickey-Fuller test.
type ADFResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	NObs         int
	IsStationary bool
}

// ADF performs the Augmented Dickey-Fuller test for a unit root, using a
// constant-only regression. The null hypothesis is that the series has a
// unit root (is non-stationary); a p-value below 0.05 rejects it.
//
// When maxLag <= 0 the lag length defaults to floor((n-1)^(1/3)).
func ADF(series *timeseries.Series, maxLag int) (*ADFResult, error) {
	n := series.Len()
	if n < MinObs {
		return nil, fmt.Errorf("adf: need at least %d observations, have %d", MinObs, n)
	}

	if maxLag <= 0 {
		maxLag = int(math.Floor(math.Pow(float64(n-1), 1.0/3.0)))
	}
	if maxLag >= n-2 {
		maxLag = n - 3
	}
	if maxLag < 0 {
		maxLag = 0
	}

	nObs := n - maxLag - 1
	if nObs < MinObs {
		return nil, fmt.Errorf("adf: %d observations leave too short a regression sample for lag %d", n, maxLag)
	}

	diff := series.Diff()

	// Regression: delta_y_t = alpha + beta*y_{t-1} + sum gamma_i*delta_y_{t-i}.
	// beta = 0 under the unit root null.
	y := make([]float64, nObs)
	x := mat.NewDense(nObs, 2+maxLag, nil)
	for i := 0; i < nObs; i++ {
		t := i + maxLag
		y[i] = diff.Values[t]
		x.Set(i, 0, 1)
		x.Set(i, 1, series.Values[t])
		for j := 1; j <= maxLag; j++ {
			x.Set(i, 1+j, diff.Values[t-j])
		}
	}

	fit, err := OLS(x, y)
	if err != nil {
		return nil, fmt.Errorf("adf: %w", err)
	}
	if fit.StdErrs == nil || fit.StdErrs[1] == 0 {
		return nil, fmt.Errorf("adf: standard error of the unit root coefficient is not computable")
	}

	tStat := fit.Coeffs[1] / fit.StdErrs[1]
	pValue := mackinnonPValue(tStat)

	return &ADFResult{
		Statistic:    tStat,
		PValue:       pValue,
		Lags:         maxLag,
		NObs:         nObs,
		IsStationary: pValue < 0.05,
	}, nil
}

// KPSSResult represents the result of a KPSS test.
type KPSSResult struct {
	Statistic    float64
	PValue       float64
	Lags         int
	IsStationary bool
}

// KPSS performs the Kwiatkowski-Phillips-Schmidt-Shin test for
// stationarity. The null hypothesis is that the series is stationary; a
// p-value below 0.05 rejects it. regression is "c" for level stationarity
// (constant only) or "ct" for trend stationarity.
//
// When nlags <= 0 the lag length defaults to ceil(12*(n/100)^(1/4)).
func KPSS(series *timeseries.Series, regression string, nlags int) (*KPSSResult, error) {
	n := series.Len()
	if n < MinObs {
		return nil, fmt.Errorf("kpss: need at least %d observations, have %d", MinObs, n)
	}

	if nlags <= 0 {
		nlags = int(math.Ceil(12 * math.Pow(float64(n)/100, 0.25)))
	}
	if nlags >= n {
		nlags = n - 1
	}

	residuals := detrend(series, regression)

	// Partial sums of the residuals.
	cumSum := make([]float64, n)
	cumSum[0] = residuals[0]
	for i := 1; i < n; i++ {
		cumSum[i] = cumSum[i-1] + residuals[i]
	}

	// Newey-West long-run variance with Bartlett weights.
	s2 := 0.0
	for _, r := range residuals {
		s2 += r * r
	}
	s2 /= float64(n)
	for l := 1; l <= nlags; l++ {
		cov := 0.0
		for i := l; i < n; i++ {
			cov += residuals[i] * residuals[i-l]
		}
		cov /= float64(n)
		weight := 1 - float64(l)/float64(nlags+1)
		s2 += 2 * weight * cov
	}
	if s2 <= 0 {
		s2 = 1e-10
	}

	etaSq := 0.0
	for _, cs := range cumSum {
		etaSq += cs * cs
	}
	stat := etaSq / (float64(n) * float64(n) * s2)

	pValue := kpssPValue(stat, regression)

	return &KPSSResult{
		Statistic:    stat,
		PValue:       pValue,
		Lags:         nlags,
		IsStationary: pValue >= 0.05,
	}, nil
}

// detrend removes a constant ("c") or a constant plus linear trend ("ct")
// from the series and returns the residuals.
func detrend(series *timeseries.Series, regression string) []float64 {
	n := series.Len()
	residuals := make([]float64, n)

	if regression == "ct" {
		sumT, sumY, sumTY, sumT2 := 0.0, 0.0, 0.0, 0.0
		for i, v := range series.Values {
			t := float64(i)
			sumT += t
			sumY += v
			sumTY += t * v
			sumT2 += t * t
		}
		nf := float64(n)
		b := (nf*sumTY - sumT*sumY) / (nf*sumT2 - sumT*sumT)
		a := (sumY - b*sumT) / nf
		for i, v := range series.Values {
			residuals[i] = v - a - b*float64(i)
		}
		return residuals
	}

	mean := series.Mean()
	for i, v := range series.Values {
		residuals[i] = v - mean
	}
	return residuals
}

// pValueKnot pairs a test statistic with the tail probability at that
// point; p-values between knots are linearly interpolated.
type pValueKnot struct {
	stat float64
	p    float64
}

// MacKinnon (1994) approximate tail probabilities for the ADF statistic
// with a constant-only regression.
var adfKnots = []pValueKnot{
	{-3.96, 0.001},
	{-3.43, 0.01},
	{-2.86, 0.05},
	{-2.57, 0.10},
	{-1.94, 0.25},
	{-1.62, 0.50},
	{-0.50, 0.80},
	{0.60, 0.95},
}

func mackinnonPValue(stat float64) float64 {
	return interpolatePValue(stat, adfKnots, false)
}

// KPSS critical value tables from Kwiatkowski et al. (1992). The statistic
// grows with evidence against stationarity, so probabilities fall as the
// statistic rises.
var (
	kpssKnotsC = []pValueKnot{
		{0.347, 0.10},
		{0.463, 0.05},
		{0.574, 0.025},
		{0.739, 0.01},
	}
	kpssKnotsCT = []pValueKnot{
		{0.119, 0.10},
		{0.146, 0.05},
		{0.176, 0.025},
		{0.216, 0.01},
	}
)

func kpssPValue(stat float64, regression string) float64 {
	knots := kpssKnotsC
	if regression == "ct" {
		knots = kpssKnotsCT
	}
	// Outside the tabulated range the p-value is clamped to the nearest
	// table bound, mirroring the usual treatment of the KPSS tables.
	return interpolatePValue(stat, knots, true)
}

// interpolatePValue linearly interpolates the tail probability between
// knots. Knots are ordered by statistic; descending marks tables whose
// probabilities fall as the statistic rises.
func interpolatePValue(stat float64, knots []pValueKnot, descending bool) float64 {
	if stat <= knots[0].stat {
		return knots[0].p
	}
	last := knots[len(knots)-1]
	if stat >= last.stat {
		if descending {
			return last.p
		}
		return 0.99
	}
	for i := 1; i < len(knots); i++ {
		if stat <= knots[i].stat {
			lo, hi := knots[i-1], knots[i]
			frac := (stat - lo.stat) / (hi.stat - lo.stat)
			return lo.p + frac*(hi.p-lo.p)
		}
	}
	return last.p
}
