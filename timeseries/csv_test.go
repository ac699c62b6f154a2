package timeseries

import (
	"strings"
	"testing"
)

func TestLoadPairFromReader(t *testing.T) {
	data := `date,x,y
2024-01-01,1.5,10
2024-01-02,2.5,20
2024-01-03,3.5,30
`
	pair, err := LoadPairFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadPairFromReader: %v", err)
	}

	if pair.Len() != 3 {
		t.Fatalf("expected 3 rows, got %d", pair.Len())
	}
	if pair.X.Values[1] != 2.5 || pair.Y.Values[1] != 20 {
		t.Errorf("row 1: got (%f, %f), want (2.5, 20)", pair.X.Values[1], pair.Y.Values[1])
	}
}

func TestLoadPairCustomColumns(t *testing.T) {
	data := `rainfall,riverflow
1.0,5.0
2.0,6.0
3.0,7.0
`
	opts := DefaultCSVOptions()
	opts.XColumn = "rainfall"
	opts.YColumn = "riverflow"

	pair, err := LoadPairFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadPairFromReader: %v", err)
	}
	if pair.X.Values[2] != 3 || pair.Y.Values[2] != 7 {
		t.Errorf("row 2: got (%f, %f), want (3, 7)", pair.X.Values[2], pair.Y.Values[2])
	}
}

func TestLoadPairSkipsBadRowsTogether(t *testing.T) {
	// Row 2 has a missing y and row 3 a non-numeric x; both columns of
	// each must be dropped so the pair stays aligned.
	data := `x,y
1,10
2,
abc,30
4,40
`
	pair, err := LoadPairFromReader(strings.NewReader(data), nil)
	if err != nil {
		t.Fatalf("LoadPairFromReader: %v", err)
	}
	if pair.Len() != 2 {
		t.Fatalf("expected 2 aligned rows, got %d", pair.Len())
	}
	if pair.X.Values[1] != 4 || pair.Y.Values[1] != 40 {
		t.Errorf("row 1: got (%f, %f), want (4, 40)", pair.X.Values[1], pair.Y.Values[1])
	}
}

func TestLoadPairMissingColumn(t *testing.T) {
	data := `x,z
1,10
`
	if _, err := LoadPairFromReader(strings.NewReader(data), nil); err == nil {
		t.Error("expected error for missing y column")
	}
}

func TestLoadPairNoHeader(t *testing.T) {
	data := `1,10
2,20
`
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	pair, err := LoadPairFromReader(strings.NewReader(data), opts)
	if err != nil {
		t.Fatalf("LoadPairFromReader: %v", err)
	}
	if pair.Len() != 2 || pair.X.Values[0] != 1 || pair.Y.Values[0] != 10 {
		t.Errorf("unexpected pair contents: %v / %v", pair.X.Values, pair.Y.Values)
	}
}

func TestLoadPairEmpty(t *testing.T) {
	if _, err := LoadPairFromReader(strings.NewReader("x,y\n"), nil); err == nil {
		t.Error("expected error for CSV without data rows")
	}
}
