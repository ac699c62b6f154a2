package autolag

import "math"

// Criterion names, as they appear in SelectionResult and reports.
const (
	CriterionAIC  = "AIC"
	CriterionBIC  = "BIC"
	CriterionHQIC = "HQIC"
	CriterionFPE  = "FPE"
)

// Criteria lists the selection criteria in reporting order.
var Criteria = []string{CriterionAIC, CriterionBIC, CriterionHQIC, CriterionFPE}

// SelectedLag pairs a lag on the stationary scale with its equivalent on
// the original series. Differencing consumed Order leading time steps, so
// the causal horizon on the original series is longer by that amount.
type SelectedLag struct {
	Lag         int
	AdjustedLag int
}

// SelectionResult maps a criterion name to its selected lag. It is empty
// when no lag passed the significance filter; callers treat that as a
// valid terminal outcome, not an error.
type SelectionResult map[string]SelectedLag

// SelectLags picks, for each criterion, the significant lag that
// minimizes the unrestricted model's score. Candidate lags are those the
// causality table marks significant at alpha; lags with unavailable or
// non-finite metrics are skipped. Ties go to the smaller lag, since
// candidates are visited in ascending order and only a strictly smaller
// score displaces the incumbent.
func SelectLags(causality CausalityTable, metrics *ModelMetrics, diffOrder int, alpha float64) SelectionResult {
	selection := make(SelectionResult)

	candidates := causality.SignificantLags(alpha)
	if len(candidates) == 0 {
		return selection
	}

	for _, criterion := range Criteria {
		bestLag := 0
		bestValue := 0.0
		found := false

		for _, lag := range candidates {
			entry, ok := metrics.Unrestricted[lag]
			if !ok || !entry.Available {
				continue
			}
			value := entry.value(criterion)
			if math.IsNaN(value) || math.IsInf(value, 0) {
				continue
			}
			if !found || value < bestValue {
				bestLag = lag
				bestValue = value
				found = true
			}
		}

		if found {
			selection[criterion] = SelectedLag{
				Lag:         bestLag,
				AdjustedLag: bestLag + diffOrder,
			}
		}
	}

	return selection
}

func (e MetricEntry) value(criterion string) float64 {
	switch criterion {
	case CriterionAIC:
		return e.AIC
	case CriterionBIC:
		return e.BIC
	case CriterionHQIC:
		return e.HQIC
	case CriterionFPE:
		return e.FPE
	}
	return math.NaN()
}
