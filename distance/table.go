package distance

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Table is a raw pairwise-distance table: one row per origin, one column per
// destination, both keyed by location name. Cells without a recorded
// distance are absent. Rows and columns need not list the same names; the
// spreadsheet export keys rows by its first column and columns by its header.
//
// Storage is a dense row-major gonum matrix with NaN marking absent cells.
type Table struct {
	rows   []Location
	cols   []Location
	rowIdx map[Location]int
	colIdx map[Location]int
	data   *mat.Dense
}

// NewTable returns a table with every cell absent.
// Returns ErrEmptyTable, ErrEmptyLocation or ErrDuplicateLocation.
//
// Complexity: O(r·c).
func NewTable(rows, cols []Location) (*Table, error) {
	if len(rows) == 0 || len(cols) == 0 {
		return nil, ErrEmptyTable
	}
	rowIdx, err := indexNames(rows)
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	colIdx, err := indexNames(cols)
	if err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}

	// mat.NewDense with a nil backing slice zero-fills; overwrite with NaN.
	buf := make([]float64, len(rows)*len(cols))
	for i := range buf {
		buf[i] = math.NaN()
	}

	return &Table{
		rows:   append([]Location(nil), rows...),
		cols:   append([]Location(nil), cols...),
		rowIdx: rowIdx,
		colIdx: colIdx,
		data:   mat.NewDense(len(rows), len(cols), buf),
	}, nil
}

// NewSquareTable returns a table whose rows and columns are both names.
func NewSquareTable(names []Location) (*Table, error) {
	return NewTable(names, names)
}

// indexNames maps each name to its position, rejecting empty and repeated names.
func indexNames(names []Location) (map[Location]int, error) {
	idx := make(map[Location]int, len(names))
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w at position %d", ErrEmptyLocation, i)
		}
		if _, dup := idx[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocation, name)
		}
		idx[name] = i
	}

	return idx, nil
}

// Set records the distance from→to in kilometres.
// NaN or +Inf clears the cell. Negative values are rejected.
func (t *Table) Set(from, to Location, km float64) error {
	i, ok := t.rowIdx[from]
	if !ok {
		return fmt.Errorf("%w: row %q", ErrUnknownLocation, from)
	}
	j, ok := t.colIdx[to]
	if !ok {
		return fmt.Errorf("%w: column %q", ErrUnknownLocation, to)
	}
	if km < 0 {
		return fmt.Errorf("%w: %s→%s = %v", ErrNegativeDistance, from, to, km)
	}
	if math.IsInf(km, 1) {
		km = math.NaN()
	}
	t.data.Set(i, j, km)

	return nil
}

// Lookup returns the recorded distance from→to. The boolean is false when
// either name is not in the table or the cell is absent.
//
// Complexity: O(1).
func (t *Table) Lookup(from, to Location) (float64, bool) {
	i, ok := t.rowIdx[from]
	if !ok {
		return 0, false
	}
	j, ok := t.colIdx[to]
	if !ok {
		return 0, false
	}
	v := t.data.At(i, j)
	if math.IsNaN(v) {
		return 0, false
	}

	return v, true
}

// Rows returns the row names in table order.
func (t *Table) Rows() []Location { return append([]Location(nil), t.rows...) }

// Columns returns the column names in table order. These are the
// locations offered for selection.
func (t *Table) Columns() []Location { return append([]Location(nil), t.cols...) }

// Has reports whether name is both a row and a column of the table.
func (t *Table) Has(name Location) bool {
	_, r := t.rowIdx[name]
	_, c := t.colIdx[name]

	return r && c
}

// Dims returns the number of rows and columns.
func (t *Table) Dims() (rows, cols int) { return t.data.Dims() }
