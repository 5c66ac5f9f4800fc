package grid

import (
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/util"
)

// Cells is the cell strategy for *Sheet. It implements both sink.Writer and
// sink.Reader and starts tables at (1, 1).
type Cells struct{}

var (
	_ sink.Writer[*Sheet] = Cells{}
	_ sink.Reader[*Sheet] = Cells{}
)

// DefaultStart returns (1, 1).
func (Cells) DefaultStart() sink.Start { return sink.At(1, 1) }

// SetValue stores value at (row, col). Pointers are dereferenced; nil and nil
// pointers clear the cell.
func (Cells) SetValue(s *Sheet, row, col int, value any) error {
	return s.Set(row, col, util.Indirect(value))
}

// Value returns the raw value at (row, col).
func (Cells) Value(s *Sheet, row, col int) (any, error) {
	return s.Get(row, col)
}

// Scan assigns the value at (row, col) to dst.
func (Cells) Scan(s *Sheet, row, col int, dst any) error {
	v, err := s.Get(row, col)
	if err != nil {
		return err
	}
	return sink.Assign(dst, v)
}

// Register records Cells as the write and read strategy for *Sheet.
func Register(reg *sink.Registry) error {
	if err := sink.RegisterWriter[*Sheet](reg, Cells{}); err != nil {
		return err
	}
	return sink.RegisterReader[*Sheet](reg, Cells{})
}
