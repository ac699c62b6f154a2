// Package charts renders the analysis result tables as line charts.
package charts

import (
	"errors"
	"image/color"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/sartorproj/grangerscope/autolag"
)

// Save renders the three analysis charts as PNG files in dir and returns
// the written paths: the causality p-values by lag, the information
// criteria of the unrestricted model, and the prediction error of the
// restricted and unrestricted models.
func Save(result *autolag.Result, dir string) ([]string, error) {
	renderers := []struct {
		file   string
		render func(*autolag.Result) (*plot.Plot, error)
	}{
		{"granger_pvalues.png", PValues},
		{"information_criteria.png", InformationCriteria},
		{"prediction_error.png", PredictionError},
	}

	var paths []string
	for _, r := range renderers {
		p, err := r.render(result)
		if err != nil {
			return paths, err
		}
		path := filepath.Join(dir, r.file)
		if err := p.Save(8*vg.Inch, 5*vg.Inch, path); err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// PValues plots the F-test and chi-square p-values by lag, with a dashed
// line at the 0.05 significance level.
func PValues(result *autolag.Result) (*plot.Plot, error) {
	lags := result.Causality.Lags()
	if len(lags) == 0 {
		return nil, errors.New("charts: causality table is empty")
	}

	fPts := make(plotter.XYs, len(lags))
	chiPts := make(plotter.XYs, len(lags))
	for i, lag := range lags {
		rec := result.Causality[lag]
		fPts[i] = plotter.XY{X: float64(lag), Y: rec.FPValue}
		chiPts[i] = plotter.XY{X: float64(lag), Y: rec.Chi2PValue}
	}

	p := newLagPlot("Granger test p-values", "p-value")
	if err := plotutil.AddLines(p, "F-test", fPts, "Chi-square", chiPts); err != nil {
		return nil, err
	}

	threshold, err := plotter.NewLine(plotter.XYs{
		{X: float64(lags[0]), Y: 0.05},
		{X: float64(lags[len(lags)-1]), Y: 0.05},
	})
	if err != nil {
		return nil, err
	}
	threshold.LineStyle.Color = color.RGBA{R: 200, A: 255}
	threshold.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(threshold)
	p.Legend.Add("0.05 level", threshold)

	return p, nil
}

// InformationCriteria plots the unrestricted model's AIC, BIC, and HQIC
// by lag. Lags whose fit failed are left out.
func InformationCriteria(result *autolag.Result) (*plot.Plot, error) {
	var aic, bic, hqic plotter.XYs
	for _, lag := range result.Causality.Lags() {
		entry, ok := result.Metrics.Unrestricted[lag]
		if !ok || !entry.Available {
			continue
		}
		x := float64(lag)
		aic = append(aic, plotter.XY{X: x, Y: entry.AIC})
		bic = append(bic, plotter.XY{X: x, Y: entry.BIC})
		hqic = append(hqic, plotter.XY{X: x, Y: entry.HQIC})
	}
	if len(aic) == 0 {
		return nil, errors.New("charts: no available unrestricted metrics")
	}

	p := newLagPlot("Information criteria", "criterion value")
	if err := plotutil.AddLines(p, "AIC", aic, "BIC", bic, "HQIC", hqic); err != nil {
		return nil, err
	}
	return p, nil
}

// PredictionError plots the unrestricted model's final prediction error
// against the restricted model's residual variance by lag. The two scales
// differ; the chart shows each curve's shape across lags, not a direct
// comparison.
func PredictionError(result *autolag.Result) (*plot.Plot, error) {
	var unrestricted, restricted plotter.XYs
	for _, lag := range result.Causality.Lags() {
		if entry, ok := result.Metrics.Unrestricted[lag]; ok && entry.Available {
			unrestricted = append(unrestricted, plotter.XY{X: float64(lag), Y: entry.FPE})
		}
		if entry, ok := result.Metrics.Restricted[lag]; ok && entry.Available {
			restricted = append(restricted, plotter.XY{X: float64(lag), Y: entry.FPE})
		}
	}
	if len(unrestricted) == 0 && len(restricted) == 0 {
		return nil, errors.New("charts: no available metrics")
	}

	p := newLagPlot("Prediction error", "FPE / residual variance")
	if err := plotutil.AddLines(p,
		"Unrestricted FPE", unrestricted,
		"Restricted variance", restricted); err != nil {
		return nil, err
	}
	return p, nil
}

func newLagPlot(title, yLabel string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Lag"
	p.Y.Label.Text = yLabel
	p.Legend.Top = true
	return p
}
