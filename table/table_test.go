package table

import (
	"fmt"
	"slices"
	"testing"

	"github.com/kbukum/tablerw/sink"
)

type probe struct {
	Cursor
	log []string
}

func (p *probe) mark(tag string) Step[*probe] {
	return func(p *probe) error {
		p.log = append(p.log, fmt.Sprintf("%s@%d,%d", tag, p.Row, p.Col))
		return nil
	}
}

func TestCursorClaim(t *testing.T) {
	c := Cursor{Row: 1, Col: 1}
	c.Claim(1)
	if c.Col != 1 {
		t.Errorf("first claim: got col %d, want 1", c.Col)
	}
	c.Claim(1)
	if c.Col != 2 {
		t.Errorf("second claim: got col %d, want 2", c.Col)
	}
	c.Claim(3)
	if c.Col != 5 {
		t.Errorf("width 3 claim: got col %d, want 5", c.Col)
	}
	c.Claim(0)
	if c.Col != 5 {
		t.Errorf("zero claim moved the cursor to %d", c.Col)
	}
}

func TestCursorClaimWideFirst(t *testing.T) {
	c := Cursor{Row: 1, Col: 2}
	c.Claim(2)
	if c.Col != 3 || !c.Claimed() {
		t.Errorf("got col %d claimed %v, want 3 true", c.Col, c.Claimed())
	}
}

func TestPlanMergesSkips(t *testing.T) {
	pl := NewPlan[*probe](sink.At(1, 1))
	pl.Append(SkipColumns[*probe](1))
	pl.Append(SkipColumns[*probe](0))
	pl.Append(SkipColumns[*probe](2))
	pl.Append(Action[*probe](func(*probe) error { return nil }))
	pl.Append(SkipColumns[*probe](1))

	ops := pl.Ops()
	kinds := make([]Kind, len(ops))
	for i, op := range ops {
		kinds[i] = op.Kind
	}
	want := []Kind{KindSkip, KindAction, KindSkip}
	if !slices.Equal(kinds, want) {
		t.Fatalf("got kinds %v, want %v", kinds, want)
	}
	if ops[0].Width != 3 {
		t.Errorf("got merged width %d, want 3", ops[0].Width)
	}
}

func TestAssembleOrderAndCursor(t *testing.T) {
	p := &probe{}
	pl := NewPlan[*probe](sink.At(2, 3))
	pl.Hook(BeforeTable, p.mark("bt"))
	pl.Hook(BeforeRow, p.mark("br"))
	pl.Append(Action[*probe](p.mark("a0")))
	pl.Append(Column[*probe](p.mark("c")))
	pl.Append(SkipColumns[*probe](2))
	pl.Append(Column[*probe](p.mark("c")))
	pl.Hook(AfterRow, p.mark("ar"))
	pl.Hook(AfterTable, p.mark("at"))

	asm := Assemble(pl)
	if err := asm.Begin(p); err != nil {
		t.Fatal(err)
	}
	for range 2 {
		if err := asm.Row(p); err != nil {
			t.Fatal(err)
		}
	}
	if err := asm.End(p); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"bt@2,3",
		"br@2,3", "a0@2,3", "c@2,3", "c@2,6", "ar@2,6",
		"br@3,3", "a0@3,3", "c@3,3", "c@3,6", "ar@3,6",
		"at@4,6",
	}
	if !slices.Equal(p.log, want) {
		t.Errorf("got %v\nwant %v", p.log, want)
	}
}

func TestAssembleSnapshot(t *testing.T) {
	p := &probe{}
	pl := NewPlan[*probe](sink.At(1, 1))
	pl.Append(Column[*probe](p.mark("c")))
	asm := Assemble(pl.Clone())

	pl.SetStart(sink.At(5, 5))
	pl.Append(Column[*probe](p.mark("late")))

	if err := asm.Begin(p); err != nil {
		t.Fatal(err)
	}
	if err := asm.Row(p); err != nil {
		t.Fatal(err)
	}
	if want := []string{"c@1,1"}; !slices.Equal(p.log, want) {
		t.Errorf("got %v, want %v", p.log, want)
	}
	if asm.Start() != sink.At(1, 1) {
		t.Errorf("got start %v, want (1, 1)", asm.Start())
	}
}

func TestRowErrorKeepsRow(t *testing.T) {
	boom := fmt.Errorf("boom")
	p := &probe{}
	pl := NewPlan[*probe](sink.At(1, 1))
	pl.Append(Column[*probe](func(*probe) error { return boom }))
	asm := Assemble(pl)
	if err := asm.Begin(p); err != nil {
		t.Fatal(err)
	}
	if err := asm.Row(p); err != boom {
		t.Fatalf("got %v, want the step error unchanged", err)
	}
	if p.Row != 1 {
		t.Errorf("got row %d, want 1", p.Row)
	}
}

func TestFuse(t *testing.T) {
	var got []int
	step := func(n int) Step[int] {
		return func(int) error {
			got = append(got, n)
			return nil
		}
	}
	if err := Fuse[int]()(0); err != nil {
		t.Errorf("empty fuse returned %v", err)
	}
	if err := Fuse[int](step(1), nil, step(2), step(3))(0); err != nil {
		t.Fatal(err)
	}
	if want := []int{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	got = nil
	stop := fmt.Errorf("stop")
	err := Fuse[int](step(1), func(int) error { return stop }, step(3))(0)
	if err != stop {
		t.Errorf("got %v, want stop", err)
	}
	if want := []int{1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestPointString(t *testing.T) {
	if BeforeRow.String() != "before_row" || KindSkip.String() != "skip" {
		t.Errorf("unexpected names %s %s", BeforeRow, KindSkip)
	}
}
