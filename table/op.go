package table

import "fmt"

// Step is one executable unit of a plan, run against the invocation context.
type Step[P any] func(P) error

// Skip marks columns to leave untouched. Selectors passed to AddColumns may
// yield Skip(n) among their values.
type Skip int

// Kind tags a column operation.
type Kind uint8

const (
	// KindComputed runs a selector that claims and fills its own columns.
	KindComputed Kind = iota
	// KindSkip claims Width columns without touching the sink.
	KindSkip
	// KindAction runs a step without moving the cursor.
	KindAction
	// KindColumn claims one column, then runs a step positioned on it.
	KindColumn
)

func (k Kind) String() string {
	switch k {
	case KindComputed:
		return "computed"
	case KindSkip:
		return "skip"
	case KindAction:
		return "action"
	case KindColumn:
		return "column"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Op is one column operation. Ops are immutable once appended to a Plan.
type Op[P Positioned] struct {
	Kind  Kind
	Width int
	Run   Step[P]
}

// Computed returns an op whose step claims columns itself, one Claim per
// value it produces.
func Computed[P Positioned](run Step[P]) Op[P] {
	return Op[P]{Kind: KindComputed, Run: run}
}

// SkipColumns returns an op that claims n columns and writes nothing.
func SkipColumns[P Positioned](n int) Op[P] {
	return Op[P]{Kind: KindSkip, Width: n}
}

// Action returns an op that runs step at the current cursor.
func Action[P Positioned](step Step[P]) Op[P] {
	return Op[P]{Kind: KindAction, Run: step}
}

// Column returns an op that claims one column and runs step on it. The step
// may reposition the cursor explicitly; later operations continue from there.
func Column[P Positioned](step Step[P]) Op[P] {
	return Op[P]{Kind: KindColumn, Width: 1, Run: step}
}

// Point is a lifecycle point a hook is bound to.
type Point uint8

const (
	BeforeTable Point = iota
	BeforeRow
	AfterRow
	AfterTable

	numPoints
)

func (p Point) String() string {
	switch p {
	case BeforeTable:
		return "before_table"
	case BeforeRow:
		return "before_row"
	case AfterRow:
		return "after_row"
	case AfterTable:
		return "after_table"
	default:
		return fmt.Sprintf("point(%d)", uint8(p))
	}
}
