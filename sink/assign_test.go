package sink

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/kbukum/tablerw/errors"
)

type upper string

func (u *upper) ScanCell(value any) error {
	s, ok := value.(string)
	if !ok {
		return errors.TypeMismatch("string", value)
	}
	*u = upper(strings.ToUpper(s))
	return nil
}

func TestAssign_Direct(t *testing.T) {
	var s string
	if err := Assign(&s, "aaa"); err != nil {
		t.Fatal(err)
	}
	if s != "aaa" {
		t.Errorf("got %q, want aaa", s)
	}

	var ts time.Time
	now := time.Date(2023, 7, 17, 0, 0, 0, 0, time.UTC)
	if err := Assign(&ts, now); err != nil {
		t.Fatal(err)
	}
	if !ts.Equal(now) {
		t.Errorf("got %v, want %v", ts, now)
	}
}

func TestAssign_NumericConversion(t *testing.T) {
	var i64 int64
	if err := Assign(&i64, 1000); err != nil {
		t.Fatal(err)
	}
	if i64 != 1000 {
		t.Errorf("got %d, want 1000", i64)
	}

	var i int
	if err := Assign(&i, 7.0); err != nil {
		t.Fatal(err)
	}
	if i != 7 {
		t.Errorf("got %d, want 7", i)
	}
}

func TestAssign_LossyRejected(t *testing.T) {
	var i int
	if err := Assign(&i, 1.5); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH for truncation, got %v", err)
	}
	var i8 int8
	if err := Assign(&i8, 300); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH for overflow, got %v", err)
	}
	var u uint
	if err := Assign(&u, -1); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH for negative to unsigned, got %v", err)
	}
}

func TestAssign_NaNAndInf(t *testing.T) {
	var f32 float32
	if err := Assign(&f32, math.NaN()); err != nil {
		t.Fatalf("NaN into float32: %v", err)
	}
	if !math.IsNaN(float64(f32)) {
		t.Errorf("got %v, want NaN", f32)
	}
	if err := Assign(&f32, math.Inf(-1)); err != nil || !math.IsInf(float64(f32), -1) {
		t.Errorf("-Inf into float32: got %v, %v", f32, err)
	}
	var i int
	if err := Assign(&i, math.NaN()); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH for NaN into int, got %v", err)
	}
}

func TestAssign_Nullable(t *testing.T) {
	p := new(int)
	if err := Assign(&p, nil); err != nil {
		t.Fatal(err)
	}
	if p != nil {
		t.Errorf("expected nil pointer for empty cell, got %v", *p)
	}

	if err := Assign(&p, 7000); err != nil {
		t.Fatal(err)
	}
	if p == nil || *p != 7000 {
		t.Errorf("expected pointer to 7000, got %v", p)
	}
}

func TestAssign_ZeroOnNil(t *testing.T) {
	n := 5
	if err := Assign(&n, nil); err != nil {
		t.Fatal(err)
	}
	if n != 0 {
		t.Errorf("expected zero for empty cell, got %d", n)
	}
}

func TestAssign_PointerValue(t *testing.T) {
	var n int
	v := 9
	if err := Assign(&n, &v); err != nil {
		t.Fatal(err)
	}
	if n != 9 {
		t.Errorf("got %d, want 9", n)
	}
}

func TestAssign_Scanner(t *testing.T) {
	var u upper
	if err := Assign(&u, "abc"); err != nil {
		t.Fatal(err)
	}
	if u != "ABC" {
		t.Errorf("got %q, want ABC", u)
	}
}

func TestAssign_Mismatch(t *testing.T) {
	var n int
	err := Assign(&n, "abc")
	if !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH, got %v", err)
	}
}

func TestAssign_BadDestination(t *testing.T) {
	var n int
	if err := Assign(n, 1); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH for non-pointer, got %v", err)
	}
	var np *int
	if err := Assign(np, 1); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("expected TYPE_MISMATCH for nil pointer, got %v", err)
	}
}
