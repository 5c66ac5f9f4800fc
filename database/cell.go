package database

import (
	"reflect"
	"strconv"
	"time"

	"github.com/spf13/cast"

	"github.com/kbukum/tablerw/errors"
)

// Cell is one stored cell.
type Cell struct {
	Sheet     string `gorm:"primaryKey;size:255"`
	Row       int    `gorm:"column:row_num;primaryKey;autoIncrement:false"`
	Col       int    `gorm:"column:col_num;primaryKey;autoIncrement:false"`
	Kind      Kind   `gorm:"size:16;not null"`
	Value     string `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName implements gorm's tabler.
func (Cell) TableName() string { return "cells" }

// Kind tags the type a cell value was written with.
type Kind string

// Cell kinds.
const (
	KindString Kind = "string"
	KindInt    Kind = "int"
	KindUint   Kind = "uint"
	KindFloat  Kind = "float"
	KindBool   Kind = "bool"
	KindTime   Kind = "time"
)

// encode renders v, which must not be nil, as a kind and text.
func encode(v any) (Kind, string, error) {
	if t, ok := v.(time.Time); ok {
		return KindTime, t.Format(time.RFC3339Nano), nil
	}
	rv := reflect.ValueOf(v)
	switch {
	case rv.Kind() == reflect.String:
		return KindString, rv.String(), nil
	case rv.Kind() == reflect.Bool:
		return KindBool, strconv.FormatBool(rv.Bool()), nil
	case rv.CanInt():
		return KindInt, strconv.FormatInt(rv.Int(), 10), nil
	case rv.CanUint():
		return KindUint, strconv.FormatUint(rv.Uint(), 10), nil
	case rv.CanFloat():
		return KindFloat, strconv.FormatFloat(rv.Float(), 'g', -1, 64), nil
	}
	return "", "", errors.TypeMismatch("string, number, bool or time.Time", v)
}

// decode is the inverse of encode.
func (c Cell) decode() (any, error) {
	var (
		v   any
		err error
	)
	switch c.Kind {
	case KindString:
		return c.Value, nil
	case KindInt:
		v, err = cast.ToInt64E(c.Value)
	case KindUint:
		v, err = cast.ToUint64E(c.Value)
	case KindFloat:
		v, err = cast.ToFloat64E(c.Value)
	case KindBool:
		v, err = cast.ToBoolE(c.Value)
	case KindTime:
		v, err = time.Parse(time.RFC3339Nano, c.Value)
	default:
		return nil, errors.New(errors.ErrCodeSinkFailure, "Unknown cell kind "+string(c.Kind)).
			WithDetails(map[string]any{"row": c.Row, "col": c.Col})
	}
	if err != nil {
		return nil, errors.SinkFailure(c.Row, c.Col, err)
	}
	return v, nil
}
