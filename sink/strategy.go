package sink

import (
	"fmt"

	"github.com/kbukum/tablerw/validation"
)

// Start is a one-based (row, column) coordinate.
type Start struct {
	Row int `validate:"min=1"`
	Col int `validate:"min=1"`
}

// At returns the Start for row and col.
func At(row, col int) Start {
	return Start{Row: row, Col: col}
}

// Validate checks that both coordinates are one-based.
func (s Start) Validate() error {
	return validation.Validate(s)
}

// String renders the coordinate as "(row, col)".
func (s Start) String() string {
	return fmt.Sprintf("(%d, %d)", s.Row, s.Col)
}

// Writer writes one cell of a sink of type S.
type Writer[S any] interface {
	// DefaultStart is used by builders that do not call SetStart.
	DefaultStart() Start
	// SetValue stores value at (row, col). A nil value, or a nil pointer,
	// stores the sink's representation of "no value".
	SetValue(src S, row, col int, value any) error
}

// Reader reads one cell of a sink of type S.
type Reader[S any] interface {
	// DefaultStart is used by builders that do not call SetStart.
	DefaultStart() Start
	// Value returns the raw cell value at (row, col), nil for an empty cell.
	Value(src S, row, col int) (any, error)
	// Scan converts the cell at (row, col) into dst, which must be a non-nil
	// pointer. An empty cell stores the zero value (nil for pointer targets).
	Scan(src S, row, col int, dst any) error
}

// Scanner is implemented by record field types that convert a raw cell value
// themselves.
type Scanner interface {
	ScanCell(value any) error
}
