// Package report renders the analysis result tables as text.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/sartorproj/grangerscope/autolag"
)

// defaultAlpha is the significance level the report tables are filtered
// at, matching the analysis default.
const defaultAlpha = 0.05

// Write renders the full analysis report: the initial stationarity
// diagnostics, the differencing order, the significant causality lags,
// and the optimal lag per criterion.
func Write(w io.Writer, result *autolag.Result) error {
	fmt.Fprintln(w, "GRANGER CAUSALITY AND OPTIMAL LAG ANALYSIS")
	fmt.Fprintln(w)

	if err := writeStationarity(w, result.Stationarity); err != nil {
		return err
	}
	if err := writeCausality(w, result.Causality); err != nil {
		return err
	}
	return writeSelection(w, result.Selection)
}

func writeStationarity(w io.Writer, st *autolag.StationarityResult) error {
	fmt.Fprintln(w, "Initial stationarity tests (ADF and KPSS)")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Series\tADF p-value\tKPSS p-value\tVerdict")
	fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%s\n",
		st.Pair.X.Name, st.Initial.X.ADFPValue, st.Initial.X.KPSSPValue, verdict(st.Initial.X))
	fmt.Fprintf(tw, "%s\t%.4f\t%.4f\t%s\n",
		st.Pair.Y.Name, st.Initial.Y.ADFPValue, st.Initial.Y.KPSSPValue, verdict(st.Initial.Y))
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if st.Order > 0 {
		fmt.Fprintf(w, "Differences applied to reach stationarity: %d\n", st.Order)
	} else {
		fmt.Fprintln(w, "Both series were already stationary; no differencing required.")
	}
	fmt.Fprintln(w)
	return nil
}

func verdict(d autolag.Diagnostic) string {
	if d.NonStationary {
		return "Non-stationary"
	}
	return "Stationary"
}

func writeCausality(w io.Writer, table autolag.CausalityTable) error {
	significant := table.SignificantLags(defaultAlpha)
	if len(significant) == 0 {
		fmt.Fprintln(w, "No lag reached significance in the Granger tests.")
		fmt.Fprintln(w)
		return nil
	}

	fmt.Fprintln(w, "Granger test results (significant lags)")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Lag\tF p-value\tChi-square p-value")
	for _, lag := range significant {
		rec := table[lag]
		fmt.Fprintf(tw, "%d\t%.4f\t%.4f\n", lag, rec.FPValue, rec.Chi2PValue)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return nil
}

func writeSelection(w io.Writer, selection autolag.SelectionResult) error {
	if len(selection) == 0 {
		return nil
	}

	fmt.Fprintln(w, "Optimal lags by information criterion (significant lags only)")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Criterion\tOptimal lag\tAdjusted lag")
	for _, criterion := range autolag.Criteria {
		sel, ok := selection[criterion]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\n", criterion, sel.Lag, sel.AdjustedLag)
	}
	return tw.Flush()
}
