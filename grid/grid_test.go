package grid

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/util"
)

func TestSheetSetGet(t *testing.T) {
	s := New()
	if err := s.Set(2, 3, "x"); err != nil {
		t.Fatal(err)
	}
	v, err := s.Get(2, 3)
	if err != nil {
		t.Fatal(err)
	}
	if v != "x" {
		t.Errorf("got %v, want x", v)
	}
	if err := s.Set(2, 3, nil); err != nil {
		t.Fatal(err)
	}
	if v, _ := s.Get(2, 3); v != nil {
		t.Errorf("got %v after clearing, want nil", v)
	}
}

func TestSheetOutOfRange(t *testing.T) {
	s := New()
	if err := s.Set(0, 1, 1); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("got %v, want OUT_OF_RANGE", err)
	}
	if _, err := s.Get(1, 0); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("got %v, want OUT_OF_RANGE", err)
	}
}

func TestSheetRowsAndDimension(t *testing.T) {
	s := New()
	_ = s.Set(1, 1, 1)
	_ = s.Set(3, 2, "b")

	rows, cols := s.Dimension()
	if rows != 3 || cols != 2 {
		t.Errorf("got %dx%d, want 3x2", rows, cols)
	}
	want := [][]any{{1, nil}, {nil, nil}, {nil, "b"}}
	if diff := cmp.Diff(want, s.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{nil, "b"}, s.Row(3)); diff != "" {
		t.Errorf("row mismatch (-want +got):\n%s", diff)
	}

	s.Clear()
	if rows, cols := s.Dimension(); rows != 0 || cols != 0 {
		t.Errorf("got %dx%d after Clear, want 0x0", rows, cols)
	}
}

func TestSheetDeleteRows(t *testing.T) {
	s := New()
	for r := 1; r <= 5; r++ {
		_ = s.Set(r, 1, r)
	}
	if err := s.DeleteRows(2, 2); err != nil {
		t.Fatal(err)
	}
	want := [][]any{{1}, {4}, {5}}
	if diff := cmp.Diff(want, s.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	if err := s.DeleteRows(0, 1); !errors.HasCode(err, errors.ErrCodeOutOfRange) {
		t.Errorf("got %v, want OUT_OF_RANGE", err)
	}
}

func TestCellsWrite(t *testing.T) {
	s := New()
	c := Cells{}
	if c.DefaultStart() != sink.At(1, 1) {
		t.Errorf("got default start %v, want (1, 1)", c.DefaultStart())
	}
	if err := c.SetValue(s, 1, 1, util.Ptr(7)); err != nil {
		t.Fatal(err)
	}
	if err := c.SetValue(s, 1, 2, (*int)(nil)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([][]any{{7}}, s.Rows()); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

func TestCellsScan(t *testing.T) {
	s := New()
	_ = s.Set(1, 1, 1000)
	c := Cells{}

	var n *int
	if err := c.Scan(s, 1, 1, &n); err != nil {
		t.Fatal(err)
	}
	if n == nil || *n != 1000 {
		t.Errorf("got %v, want 1000", n)
	}
	if err := c.Scan(s, 1, 2, &n); err != nil {
		t.Fatal(err)
	}
	if n != nil {
		t.Errorf("got %v for empty cell, want nil", *n)
	}
	var str string
	if err := c.Scan(s, 1, 1, &str); !errors.HasCode(err, errors.ErrCodeTypeMismatch) {
		t.Errorf("got %v, want TYPE_MISMATCH", err)
	}
}

func TestRegister(t *testing.T) {
	reg := sink.NewRegistry()
	if err := Register(reg); err != nil {
		t.Fatal(err)
	}
	if _, err := sink.WriterFor[*Sheet](reg); err != nil {
		t.Error(err)
	}
	if _, err := sink.ReaderFor[*Sheet](reg); err != nil {
		t.Error(err)
	}
	if err := Register(reg); !errors.HasCode(err, errors.ErrCodeAlreadyRegistered) {
		t.Errorf("got %v, want ALREADY_REGISTERED", err)
	}
}
