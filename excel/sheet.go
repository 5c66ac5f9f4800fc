package excel

import (
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kbukum/tablerw/errors"
)

// Sheet names one worksheet of a workbook.
type Sheet struct {
	File *excelize.File
	Name string
}

// NewSheet returns the worksheet name of f, creating it if it does not exist.
func NewSheet(f *excelize.File, name string) (*Sheet, error) {
	idx, err := f.GetSheetIndex(name)
	if err != nil {
		return nil, errors.InvalidConfig("sheet", err.Error())
	}
	if idx < 0 {
		if _, err := f.NewSheet(name); err != nil {
			return nil, errors.InvalidConfig("sheet", err.Error())
		}
	}
	return &Sheet{File: f, Name: name}, nil
}

// Open reads a workbook from r and returns its worksheet name. The caller
// closes the returned sheet's File.
func Open(r io.Reader, name string) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.New(errors.ErrCodeSinkFailure, "Cannot open workbook").WithCause(err)
	}
	idx, err := f.GetSheetIndex(name)
	if err != nil || idx < 0 {
		_ = f.Close()
		return nil, errors.InvalidConfig("sheet", "workbook has no sheet "+name)
	}
	return &Sheet{File: f, Name: name}, nil
}

// cellName converts a one-based coordinate to an A1 reference.
func cellName(row, col int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", errors.OutOfRange(row, col).WithCause(err)
	}
	return name, nil
}
