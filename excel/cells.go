package excel

import (
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"
	"github.com/xuri/excelize/v2"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/util"
)

// Cells is the cell strategy for *Sheet. Tables start at (1, 1).
type Cells struct{}

var (
	_ sink.Writer[*Sheet] = Cells{}
	_ sink.Reader[*Sheet] = Cells{}
)

// DefaultStart returns (1, 1).
func (Cells) DefaultStart() sink.Start { return sink.At(1, 1) }

// SetValue writes value at (row, col). Pointers are dereferenced. Nil and nil
// pointers empty the cell; a cell that is already empty is left untouched.
func (Cells) SetValue(s *Sheet, row, col int, value any) error {
	name, err := cellName(row, col)
	if err != nil {
		return err
	}
	v := util.Indirect(value)
	if v == nil {
		var text string
		if text, err = s.File.GetCellValue(s.Name, name, rawValue); err == nil && text != "" {
			err = s.File.SetCellDefault(s.Name, name, "")
		}
	} else {
		err = s.File.SetCellValue(s.Name, name, v)
	}
	if err != nil {
		return errors.SinkFailure(row, col, err)
	}
	return nil
}

// Value returns the stored text at (row, col), nil for an empty cell. Numbers
// come back unrounded, booleans as "1" or "0" and dates as serial numbers.
func (Cells) Value(s *Sheet, row, col int) (any, error) {
	text, err := cellText(s, row, col)
	if err != nil || text == "" {
		return nil, err
	}
	return text, nil
}

// Scan converts the stored text at (row, col) into dst.
func (Cells) Scan(s *Sheet, row, col int, dst any) error {
	text, err := cellText(s, row, col)
	if err != nil {
		return err
	}
	if text == "" {
		return sink.Assign(dst, nil)
	}
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.TypeMismatch("non-nil pointer", dst)
	}
	return convert(rv.Elem(), text)
}

func cellText(s *Sheet, row, col int) (string, error) {
	name, err := cellName(row, col)
	if err != nil {
		return "", err
	}
	text, err := s.File.GetCellValue(s.Name, name, rawValue)
	if err != nil {
		return "", errors.SinkFailure(row, col, err)
	}
	return text, nil
}

// rawValue skips number formats, which round to 15 significant digits.
var rawValue = excelize.Options{RawCellValue: true}

var timeType = reflect.TypeFor[time.Time]()

// parseTime reads a date serial, or date text for cells written as strings.
func parseTime(text string) (time.Time, error) {
	if serial, err := strconv.ParseFloat(text, 64); err == nil {
		return excelize.ExcelDateToTime(serial, false)
	}
	return cast.ToTimeE(text)
}

func convert(target reflect.Value, text string) error {
	if target.CanAddr() {
		if sc, ok := target.Addr().Interface().(sink.Scanner); ok {
			return sc.ScanCell(text)
		}
	}

	var (
		v   any
		err error
	)
	switch k := target.Kind(); {
	case k == reflect.Pointer:
		elem := reflect.New(target.Type().Elem())
		if err := convert(elem.Elem(), text); err != nil {
			return err
		}
		target.Set(elem)
		return nil
	case target.Type() == timeType:
		v, err = parseTime(text)
	case k == reflect.String:
		v = text
	case k == reflect.Bool:
		v, err = cast.ToBoolE(text)
	case target.CanInt():
		var n int64
		if n, err = cast.ToInt64E(text); err == nil && target.OverflowInt(n) {
			return errors.TypeMismatch(target.Type().String(), text)
		}
		v = n
	case target.CanUint():
		var n uint64
		if n, err = cast.ToUint64E(text); err == nil && target.OverflowUint(n) {
			return errors.TypeMismatch(target.Type().String(), text)
		}
		v = n
	case target.CanFloat():
		var f float64
		if f, err = cast.ToFloat64E(text); err == nil && target.OverflowFloat(f) {
			return errors.TypeMismatch(target.Type().String(), text)
		}
		v = f
	case k == reflect.Interface && target.NumMethod() == 0:
		v = text
	default:
		return errors.TypeMismatch(target.Type().String(), text)
	}
	if err != nil {
		return errors.TypeMismatch(target.Type().String(), text).WithCause(err)
	}
	target.Set(reflect.ValueOf(v).Convert(target.Type()))
	return nil
}

// Register records Cells as the write and read strategy for *Sheet.
func Register(reg *sink.Registry) error {
	if err := sink.RegisterWriter[*Sheet](reg, Cells{}); err != nil {
		return err
	}
	return sink.RegisterReader[*Sheet](reg, Cells{})
}
