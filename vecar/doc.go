// Package vecar fits the comparative autoregressive models behind lag
// selection.
//
// Two model families are provided for the same lag order:
//
//   - FitVAR: an unrestricted bivariate vector autoregression in which
//     each series regresses on lagged values of both, exposing AIC, BIC,
//     HQIC, and the final prediction error (FPE).
//   - FitAR: a restricted univariate autoregression of the effect series
//     on its own history only, exposing AIC, BIC, HQIC, and the residual
//     variance.
//
// The VAR criteria use the log-determinant of the residual covariance;
// the AR criteria use the Gaussian log-likelihood. Scores are therefore
// comparable across lags within one family, not between the two.
//
//	joint, err := vecar.FitVAR(pair, 3)
//	own, err := vecar.FitAR(pair.Y, 3)
package vecar
