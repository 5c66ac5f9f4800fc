package sink

import (
	"math"
	"reflect"

	"github.com/kbukum/tablerw/errors"
)

// Assign stores a raw cell value into dst, which must be a non-nil pointer.
//
// Conversion rules, in order: a nil value stores the zero value; a target
// implementing Scanner converts the value itself; a pointer target (a nullable
// field) is allocated and filled; an assignable value is stored as is; a
// number is converted to another number type when the conversion is lossless.
// Anything else is a TYPE_MISMATCH.
func Assign(dst any, value any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return errors.TypeMismatch("non-nil pointer", dst)
	}
	return assignValue(rv.Elem(), value)
}

func assignValue(target reflect.Value, value any) error {
	if value == nil {
		target.SetZero()
		return nil
	}
	if target.CanAddr() {
		if s, ok := target.Addr().Interface().(Scanner); ok {
			return s.ScanCell(value)
		}
	}
	if target.Kind() == reflect.Pointer {
		elem := reflect.New(target.Type().Elem())
		if err := assignValue(elem.Elem(), value); err != nil {
			return err
		}
		target.Set(elem)
		return nil
	}

	v := reflect.ValueOf(value)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			target.SetZero()
			return nil
		}
		v = v.Elem()
	}

	if v.Type().AssignableTo(target.Type()) {
		target.Set(v)
		return nil
	}
	if isNumber(v.Kind()) && isNumber(target.Kind()) {
		if v.CanInt() && v.Int() < 0 && target.CanUint() {
			return errors.TypeMismatch(target.Type().String(), value)
		}
		converted := v.Convert(target.Type())
		if isNaN(v) && target.CanFloat() {
			target.Set(converted)
			return nil
		}
		// reject overflow and truncation
		if !converted.Convert(v.Type()).Equal(v) {
			return errors.TypeMismatch(target.Type().String(), value)
		}
		target.Set(converted)
		return nil
	}
	return errors.TypeMismatch(target.Type().String(), value)
}

func isNaN(v reflect.Value) bool {
	return v.CanFloat() && math.IsNaN(v.Float())
}

func isNumber(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
