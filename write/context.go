package write

import (
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/table"
)

// Context is the state threaded through one procedure invocation. Row and Col
// are promoted from the embedded cursor and name the cell being written.
type Context[S, E, D any] struct {
	table.Cursor

	// Src is the sink being written. It is borrowed for the invocation only.
	Src S
	// Entity is the record of the current row.
	Entity E
	// Data is computed once per invocation by the builder's InitData function.
	Data D

	cells sink.Writer[S]
}

// SetValue writes v at the current cell.
func (c *Context[S, E, D]) SetValue(v any) error {
	return c.cells.SetValue(c.Src, c.Row, c.Col, v)
}

// SetValueAt writes v at (row, col) without moving the cursor.
func (c *Context[S, E, D]) SetValueAt(row, col int, v any) error {
	return c.cells.SetValue(c.Src, row, col, v)
}
