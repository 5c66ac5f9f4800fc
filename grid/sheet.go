package grid

import (
	"github.com/kbukum/tablerw/errors"
)

type cell struct{ row, col int }

// Sheet is a sparse, one-based grid of values. An absent cell reads as nil.
// A Sheet is not safe for concurrent use.
type Sheet struct {
	cells map[cell]any
}

// New returns an empty sheet.
func New() *Sheet {
	return &Sheet{cells: make(map[cell]any)}
}

// Set stores v at (row, col). A nil v clears the cell.
func (s *Sheet) Set(row, col int, v any) error {
	if row < 1 || col < 1 {
		return errors.OutOfRange(row, col)
	}
	if v == nil {
		delete(s.cells, cell{row, col})
		return nil
	}
	s.cells[cell{row, col}] = v
	return nil
}

// Get returns the value at (row, col), nil for an empty cell.
func (s *Sheet) Get(row, col int) (any, error) {
	if row < 1 || col < 1 {
		return nil, errors.OutOfRange(row, col)
	}
	return s.cells[cell{row, col}], nil
}

// Clear removes every value.
func (s *Sheet) Clear() {
	clear(s.cells)
}

// Dimension returns the number of rows and columns spanned by non-empty
// cells, counted from (1, 1).
func (s *Sheet) Dimension() (rows, cols int) {
	for c := range s.cells {
		rows = max(rows, c.row)
		cols = max(cols, c.col)
	}
	return rows, cols
}

// Row returns the values of one row, as wide as the sheet.
func (s *Sheet) Row(row int) []any {
	_, cols := s.Dimension()
	return s.row(row, cols)
}

// Rows returns every row up to the sheet's extent, each as wide as the sheet.
func (s *Sheet) Rows() [][]any {
	rows, cols := s.Dimension()
	out := make([][]any, rows)
	for r := range rows {
		out[r] = s.row(r+1, cols)
	}
	return out
}

func (s *Sheet) row(row, cols int) []any {
	vals := make([]any, cols)
	for c := range cols {
		vals[c] = s.cells[cell{row, c + 1}]
	}
	return vals
}

// DeleteRows removes n rows starting at from and shifts the rows below up.
func (s *Sheet) DeleteRows(from, n int) error {
	if from < 1 || n < 0 {
		return errors.OutOfRange(from, 1)
	}
	if n == 0 {
		return nil
	}
	shifted := make(map[cell]any, len(s.cells))
	for c, v := range s.cells {
		switch {
		case c.row < from:
			shifted[c] = v
		case c.row >= from+n:
			shifted[cell{c.row - n, c.col}] = v
		}
	}
	s.cells = shifted
	return nil
}
