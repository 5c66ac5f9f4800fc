package read

import (
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/table"
)

// Context is the state threaded through one procedure invocation. Row and Col
// are promoted from the embedded cursor and name the cell being read.
type Context[S, E, D any] struct {
	table.Cursor

	// Src is the sink being read. It is borrowed for the invocation only.
	Src S
	// Entity is the record under construction for the current row. It starts
	// as a zero E on every row.
	Entity *E
	// Data is computed once per invocation by the builder's InitData function.
	Data D

	cells sink.Reader[S]
}

// Value returns the raw value of the current cell.
func (c *Context[S, E, D]) Value() (any, error) {
	return c.cells.Value(c.Src, c.Row, c.Col)
}

// ValueAt returns the raw value at (row, col) without moving the cursor.
func (c *Context[S, E, D]) ValueAt(row, col int) (any, error) {
	return c.cells.Value(c.Src, row, col)
}

// Scan converts the current cell into dst, a non-nil pointer.
func (c *Context[S, E, D]) Scan(dst any) error {
	return c.cells.Scan(c.Src, c.Row, c.Col, dst)
}

// ScanAt converts the cell at (row, col) into dst without moving the cursor.
func (c *Context[S, E, D]) ScanAt(row, col int, dst any) error {
	return c.cells.Scan(c.Src, row, col, dst)
}
