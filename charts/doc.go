// Package charts renders analysis results as line charts.
//
// Three charts are produced from an analysis result, each keyed by lag:
//
//   - the F-test and chi-square p-values, with the 0.05 level marked
//   - the unrestricted model's AIC, BIC, and HQIC
//   - the unrestricted final prediction error next to the restricted
//     residual variance
//
// Save writes all three as PNG files:
//
//	paths, err := charts.Save(result, "out/")
//
// Individual renderers return a *plot.Plot for callers that want to
// change size, format, or styling before saving.
package charts
