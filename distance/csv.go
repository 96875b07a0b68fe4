package distance

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// CSVOption configures LoadCSV.
type CSVOption func(*csvOptions)

type csvOptions struct {
	comma     rune
	keyColumn string
}

// WithComma sets the field delimiter (default ',').
func WithComma(r rune) CSVOption {
	return func(o *csvOptions) {
		if r != 0 {
			o.comma = r
		}
	}
}

// WithKeyColumn names the header cell of the column holding row names.
// By default the first column is the key column, whatever its header says.
func WithKeyColumn(name string) CSVOption {
	return func(o *csvOptions) { o.keyColumn = name }
}

// LoadCSVFile opens path and delegates to LoadCSV.
func LoadCSVFile(path string, opts ...CSVOption) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("distance: open table: %w", err)
	}
	defer f.Close()

	t, err := LoadCSV(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return t, nil
}

// LoadCSV reads a distance table laid out as
//
//	Kota/Kab,  Surabaya, Gresik, ...
//	Surabaya,  0,        18.4,   ...
//	Gresik,    18.4,     0,      ...
//
// The key column holds row names; every other header cell names a column.
// Empty cells and the markers "-", "inf" and "nan" (any case) are absent
// distances. Any other cell must parse as a non-negative number.
//
// Complexity: O(r·c).
func LoadCSV(r io.Reader, opts ...CSVOption) (*Table, error) {
	o := csvOptions{comma: ','}
	for _, opt := range opts {
		opt(&o)
	}

	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.TrimLeadingSpace = true
	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}
	if len(records) < 2 {
		return nil, fmt.Errorf("%w: need a header and at least one row", ErrMalformedTable)
	}

	header := records[0]
	key := 0
	if o.keyColumn != "" {
		key = indexOf(header, o.keyColumn)
		if key < 0 {
			return nil, fmt.Errorf("%w: key column %q not in header", ErrMalformedTable, o.keyColumn)
		}
	}

	var cols []Location
	var colPos []int
	for j, name := range header {
		if j == key {
			continue
		}
		cols = append(cols, strings.TrimSpace(name))
		colPos = append(colPos, j)
	}
	rows := make([]Location, 0, len(records)-1)
	for _, rec := range records[1:] {
		rows = append(rows, strings.TrimSpace(rec[key]))
	}

	t, err := NewTable(rows, cols)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedTable, err)
	}

	for i, rec := range records[1:] {
		for c, j := range colPos {
			km, ok, perr := parseCell(rec[j])
			if perr != nil {
				return nil, fmt.Errorf("%w: row %q column %q: %w", ErrMalformedTable, rows[i], cols[c], perr)
			}
			if !ok {
				continue
			}
			if err = t.Set(rows[i], cols[c], km); err != nil {
				return nil, err
			}
		}
	}

	return t, nil
}

var errBadNumber = errors.New("not a number")

// parseCell returns (km, present, error) for one table cell.
func parseCell(s string) (float64, bool, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "-", "inf", "+inf", "nan":
		return 0, false, nil
	}
	km, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: %q", errBadNumber, s)
	}
	if km < 0 {
		return 0, false, fmt.Errorf("%w: %v", ErrNegativeDistance, km)
	}

	return km, true, nil
}

func indexOf(s []string, v string) int {
	for i, x := range s {
		if strings.TrimSpace(x) == v {
			return i
		}
	}

	return -1
}
