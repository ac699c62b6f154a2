package timeseries

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOptions holds options for loading an x/y pair from CSV.
type CSVOptions struct {
	XColumn   string // Column name for the cause series (default: "x")
	YColumn   string // Column name for the effect series (default: "y")
	HasHeader bool   // Whether the CSV has a header row (default: true)
	Delimiter rune   // Field delimiter (default: ',')
	SkipRows  int    // Number of rows to skip at the start
}

// DefaultCSVOptions returns default options for CSV pair loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		XColumn:   "x",
		YColumn:   "y",
		HasHeader: true,
		Delimiter: ',',
	}
}

// LoadPairCSV loads an aligned x/y pair from a CSV file.
func LoadPairCSV(filename string, opts *CSVOptions) (*Pair, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadPairFromReader(file, opts)
}

// LoadPairFromReader loads an aligned x/y pair from an io.Reader. Rows
// where either column is empty or not numeric are skipped as a whole, so
// the two series stay aligned.
func LoadPairFromReader(r io.Reader, opts *CSVOptions) (*Pair, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	reader.Comma = opts.Delimiter
	reader.TrimLeadingSpace = true

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	xIdx, yIdx := -1, -1
	if opts.HasHeader {
		header, err := reader.Read()
		if err != nil {
			return nil, err
		}
		for i, h := range header {
			switch strings.TrimSpace(strings.Trim(h, "\"")) {
			case opts.XColumn:
				xIdx = i
			case opts.YColumn:
				yIdx = i
			}
		}
		if xIdx == -1 {
			return nil, errors.New("csv: column " + opts.XColumn + " not found")
		}
		if yIdx == -1 {
			return nil, errors.New("csv: column " + opts.YColumn + " not found")
		}
	} else {
		// Without a header the first column is x and the second is y.
		xIdx, yIdx = 0, 1
	}

	var xs, ys []float64
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if xIdx >= len(record) || yIdx >= len(record) {
			continue
		}
		xv, err := parseCSVValue(record[xIdx])
		if err != nil {
			continue
		}
		yv, err := parseCSVValue(record[yIdx])
		if err != nil {
			continue
		}
		xs = append(xs, xv)
		ys = append(ys, yv)
	}

	if len(xs) == 0 {
		return nil, errors.New("csv: no valid data rows found")
	}

	return PairOf(xs, ys)
}

func parseCSVValue(field string) (float64, error) {
	s := strings.TrimSpace(strings.Trim(field, "\""))
	if s == "" || s == "NA" || s == "NaN" || s == "null" {
		return 0, errors.New("missing value")
	}
	return strconv.ParseFloat(s, 64)
}
