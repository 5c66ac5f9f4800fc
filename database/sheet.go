package database

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/util"
)

// Sheet is a named sheet stored in a database.
type Sheet struct {
	DB   *DB
	Name string
	ctx  context.Context
}

// NewSheet returns the sheet name of db.
func NewSheet(db *DB, name string) *Sheet {
	return &Sheet{DB: db, Name: name, ctx: context.Background()}
}

// WithContext returns a copy of s whose queries are bound to ctx.
func (s *Sheet) WithContext(ctx context.Context) *Sheet {
	c := *s
	c.ctx = ctx
	return &c
}

func (s *Sheet) query() *gorm.DB {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return s.DB.Gorm.WithContext(ctx)
}

// Atomically runs fn with a copy of s bound to a transaction. The changes fn
// makes are committed when it returns nil and rolled back otherwise.
func (s *Sheet) Atomically(fn func(*Sheet) error) error {
	ctx := s.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return s.DB.Transaction(ctx, func(tx *gorm.DB) error {
		c := *s
		c.DB = &DB{Gorm: tx, log: s.DB.log}
		return fn(&c)
	})
}

// Clear deletes every cell of the sheet.
func (s *Sheet) Clear() error {
	if err := s.query().Where("sheet = ?", s.Name).Delete(&Cell{}).Error; err != nil {
		return errors.New(errors.ErrCodeSinkFailure, "Cannot clear sheet "+s.Name).WithCause(err)
	}
	return nil
}

// Dimension returns the largest row and column holding a value, or (0, 0)
// for an empty sheet.
func (s *Sheet) Dimension() (rows, cols int, err error) {
	var dim struct {
		MaxRow int
		MaxCol int
	}
	err = s.query().Model(&Cell{}).
		Select("COALESCE(MAX(row_num), 0) AS max_row, COALESCE(MAX(col_num), 0) AS max_col").
		Where("sheet = ?", s.Name).
		Scan(&dim).Error
	if err != nil {
		return 0, 0, errors.New(errors.ErrCodeSinkFailure, "Cannot measure sheet "+s.Name).WithCause(err)
	}
	return dim.MaxRow, dim.MaxCol, nil
}

// Cells is the cell strategy for *Sheet. Tables start at (1, 1).
type Cells struct{}

var (
	_ sink.Writer[*Sheet] = Cells{}
	_ sink.Reader[*Sheet] = Cells{}
)

// DefaultStart returns (1, 1).
func (Cells) DefaultStart() sink.Start { return sink.At(1, 1) }

// SetValue stores value at (row, col). Nil and nil pointers delete the cell.
func (Cells) SetValue(s *Sheet, row, col int, value any) error {
	if row < 1 || col < 1 {
		return errors.OutOfRange(row, col)
	}
	v := util.Indirect(value)
	if v == nil {
		err := s.query().Where("sheet = ? AND row_num = ? AND col_num = ?", s.Name, row, col).Delete(&Cell{}).Error
		if err != nil {
			return errors.SinkFailure(row, col, err)
		}
		return nil
	}

	kind, text, err := encode(v)
	if err != nil {
		return err
	}
	cell := Cell{Sheet: s.Name, Row: row, Col: col, Kind: kind, Value: text}
	if err := s.query().Clauses(clause.OnConflict{UpdateAll: true}).Create(&cell).Error; err != nil {
		return errors.SinkFailure(row, col, err)
	}
	return nil
}

// Value returns the value at (row, col) with the type it was written as:
// string, int64, uint64, float64, bool or time.Time. Missing cells are nil.
func (Cells) Value(s *Sheet, row, col int) (any, error) {
	if row < 1 || col < 1 {
		return nil, errors.OutOfRange(row, col)
	}
	var cell Cell
	err := s.query().Where("sheet = ? AND row_num = ? AND col_num = ?", s.Name, row, col).Take(&cell).Error
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.SinkFailure(row, col, err)
	}
	return cell.decode()
}

// Scan stores the value at (row, col) into dst with sink.Assign.
func (c Cells) Scan(s *Sheet, row, col int, dst any) error {
	v, err := c.Value(s, row, col)
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
