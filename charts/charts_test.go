package charts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sartorproj/grangerscope/autolag"
	"github.com/sartorproj/grangerscope/granger"
)

func testResult() *autolag.Result {
	return &autolag.Result{
		Causality: autolag.CausalityTable{
			1: granger.Result{Lag: 1, FPValue: 0.20, Chi2PValue: 0.18, LRPValue: 0.19},
			2: granger.Result{Lag: 2, FPValue: 0.01, Chi2PValue: 0.02, LRPValue: 0.02},
			3: granger.Result{Lag: 3, FPValue: 0.04, Chi2PValue: 0.05, LRPValue: 0.06},
		},
		Metrics: &autolag.ModelMetrics{
			Unrestricted: map[int]autolag.MetricEntry{
				1: {AIC: -1.0, BIC: -0.9, HQIC: -0.95, FPE: 0.9, Available: true},
				2: {AIC: -2.0, BIC: -1.5, HQIC: -1.8, FPE: 0.5, Available: true},
				3: {Available: false},
			},
			Restricted: map[int]autolag.MetricEntry{
				1: {AIC: 10, BIC: 11, HQIC: 10.5, FPE: 1.2, Available: true},
				2: {AIC: 9, BIC: 10, HQIC: 9.5, FPE: 1.1, Available: true},
			},
		},
	}
}

func TestSaveWritesAllCharts(t *testing.T) {
	dir := t.TempDir()

	paths, err := Save(testResult(), dir)
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if len(paths) != 3 {
		t.Fatalf("expected 3 charts, got %d", len(paths))
	}
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			t.Errorf("chart not written: %v", err)
			continue
		}
		if info.Size() == 0 {
			t.Errorf("chart %s is empty", filepath.Base(path))
		}
	}
}

func TestRenderersSkipUnavailable(t *testing.T) {
	p, err := InformationCriteria(testResult())
	if err != nil {
		t.Fatalf("InformationCriteria: %v", err)
	}
	if p == nil {
		t.Fatal("expected a plot")
	}
}

func TestRenderersRejectEmptyTables(t *testing.T) {
	empty := &autolag.Result{
		Causality: autolag.CausalityTable{},
		Metrics:   &autolag.ModelMetrics{},
	}

	if _, err := PValues(empty); err == nil {
		t.Error("expected error for an empty causality table")
	}
	if _, err := InformationCriteria(empty); err == nil {
		t.Error("expected error when no metrics are available")
	}
}
