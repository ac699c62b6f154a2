// Package autolag determines the differencing order that makes a pair of
// series stationary and the causal lag order best supported by competing
// information criteria.
package autolag

import (
	"errors"
	"fmt"

	"github.com/sartorproj/grangerscope/timeseries"
)

// Fatal analysis errors. Per-lag model fit failures are not fatal; they
// are recorded in the metrics table instead.
var (
	ErrInvalidConfig           = errors.New("autolag: invalid configuration")
	ErrStationarityNotAchieved = errors.New("autolag: stationarity not achieved")
)

// MaxLagFraction bounds the requested maximum lag relative to the sample
// size. Lags beyond 27% of the observations starve the regressions behind
// the causality tests.
const MaxLagFraction = 0.27

// Config holds the analysis configuration. It is created once at entry
// and never mutated by the pipeline.
type Config struct {
	// MaxLag is the largest lag order swept by the causality tests and
	// model fits.
	MaxLag int

	// Alpha is the significance level of the causality filter.
	Alpha float64
}

// DefaultConfig returns a config sweeping lags 1..maxLag at the
// conventional 5% significance level.
func DefaultConfig(maxLag int) *Config {
	return &Config{MaxLag: maxLag, Alpha: 0.05}
}

// Validate checks the configuration against the pair it will analyze.
// Every other component assumes these checks have passed.
func (c *Config) Validate(pair *timeseries.Pair) error {
	if pair == nil || pair.X == nil || pair.X.Len() == 0 {
		return fmt.Errorf("%w: x series is missing", ErrInvalidConfig)
	}
	if pair.Y == nil || pair.Y.Len() == 0 {
		return fmt.Errorf("%w: y series is missing", ErrInvalidConfig)
	}
	if pair.X.Len() != pair.Y.Len() {
		return fmt.Errorf("%w: series lengths differ (%d vs %d)",
			ErrInvalidConfig, pair.X.Len(), pair.Y.Len())
	}
	if c.MaxLag < 1 {
		return fmt.Errorf("%w: max lag must be positive, got %d", ErrInvalidConfig, c.MaxLag)
	}
	if float64(c.MaxLag) > MaxLagFraction*float64(pair.Len()) {
		return fmt.Errorf("%w: max lag %d exceeds 27%% of the %d observations",
			ErrInvalidConfig, c.MaxLag, pair.Len())
	}
	if c.Alpha <= 0 || c.Alpha >= 1 {
		return fmt.Errorf("%w: alpha must lie in (0,1), got %g", ErrInvalidConfig, c.Alpha)
	}
	return nil
}

// Result bundles the four tables the analysis produces. Reporting and
// plotting consume it read-only.
type Result struct {
	Stationarity *StationarityResult
	Causality    CausalityTable
	Metrics      *ModelMetrics
	Selection    SelectionResult
}

// Analyze runs the full pipeline on the pair: validation, stationarity
// enforcement, the causality scan, the model metrics sweep, and lag
// selection. The input pair is left untouched.
func Analyze(pair *timeseries.Pair, cfg *Config) (*Result, error) {
	if cfg == nil {
		return nil, fmt.Errorf("%w: nil config", ErrInvalidConfig)
	}
	if err := cfg.Validate(pair); err != nil {
		return nil, err
	}

	stationarity, err := EnforceStationarity(pair)
	if err != nil {
		return nil, err
	}

	causality, err := ScanCausality(stationarity.Pair, cfg.MaxLag)
	if err != nil {
		return nil, err
	}

	metrics := CollectMetrics(stationarity.Pair, cfg.MaxLag)
	selection := SelectLags(causality, metrics, stationarity.Order, cfg.Alpha)

	return &Result{
		Stationarity: stationarity,
		Causality:    causality,
		Metrics:      metrics,
		Selection:    selection,
	}, nil
}
