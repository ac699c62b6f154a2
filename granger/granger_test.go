package granger

import (
	"math/rand"
	"testing"

	"github.com/sartorproj/grangerscope/timeseries"
)

// causalPair builds a stationary pair where x drives y one step later.
func causalPair(n int, seed int64) *timeseries.Pair {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.NormFloat64()
	}
	for i := 1; i < n; i++ {
		y[i] = 0.8*x[i-1] + 0.3*rng.NormFloat64()
	}
	pair, err := timeseries.PairOf(x, y)
	if err != nil {
		panic(err)
	}
	return pair
}

func independentPair(n int, seed int64) *timeseries.Pair {
	rng := rand.New(rand.NewSource(seed))
	x := make([]float64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		x[i] = rng.NormFloat64()
		y[i] = rng.NormFloat64()
	}
	pair, err := timeseries.PairOf(x, y)
	if err != nil {
		panic(err)
	}
	return pair
}

func TestCausalPairSignificant(t *testing.T) {
	res, err := Test(causalPair(200, 11), 1)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}

	t.Logf("lag 1: F p=%.6f chi2 p=%.6f lr p=%.6f", res.FPValue, res.Chi2PValue, res.LRPValue)
	if res.FPValue >= 0.05 {
		t.Errorf("strong lag-1 coupling should be significant, F p=%f", res.FPValue)
	}
	if !res.Significant(0.05) {
		t.Error("Significant(0.05) should be true for a strongly coupled pair")
	}
}

func TestIndependentPair(t *testing.T) {
	res, err := Test(independentPair(200, 23), 2)
	if err != nil {
		t.Fatalf("Test: %v", err)
	}

	t.Logf("independent pair: F p=%.4f chi2 p=%.4f", res.FPValue, res.Chi2PValue)
	if res.Significant(0.05) {
		t.Logf("independent pair flagged significant; can happen by chance")
	}
}

func TestPValuesInRange(t *testing.T) {
	pair := causalPair(120, 5)
	for lag := 1; lag <= 6; lag++ {
		res, err := Test(pair, lag)
		if err != nil {
			t.Fatalf("lag %d: %v", lag, err)
		}
		for name, p := range map[string]float64{
			"F": res.FPValue, "chi2": res.Chi2PValue, "lr": res.LRPValue,
		} {
			if p < 0 || p > 1 {
				t.Errorf("lag %d: %s p-value out of range: %f", lag, name, p)
			}
		}
	}
}

func TestLagValidation(t *testing.T) {
	pair := independentPair(30, 3)

	if _, err := Test(pair, 0); err == nil {
		t.Error("expected error for lag 0")
	}
	// Lag 10 on 30 observations leaves no residual degrees of freedom.
	if _, err := Test(pair, 10); err == nil {
		t.Error("expected error when the sample cannot support the lag")
	}
}
