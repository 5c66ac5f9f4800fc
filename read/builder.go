package read

import (
	stderrors "errors"
	"fmt"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/pipeline"
	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/table"
	"github.com/kbukum/tablerw/validation"
)

// Skip marks columns a selector leaves unread.
type Skip = table.Skip

// Stop ends the table when returned by a hook or step. The row being read is
// discarded, AfterTable hooks run, and iteration finishes without error.
var Stop = stderrors.New("read: stop")

// Builder configures a read pipeline for sink type S, record type E and
// per-invocation data D. Builder methods never touch a sink; configuration
// problems are collected and reported by Compile.
type Builder[S, E, D any] struct {
	cells   sink.Reader[S]
	plan    *table.Plan[*Context[S, E, D]]
	init    func(S) (D, error)
	hasInit bool
	v       *validation.Validator
}

// New returns a builder without per-invocation data.
func New[S, E any](r sink.Reader[S]) *Builder[S, E, struct{}] {
	return NewWithData[S, E, struct{}](r)
}

// NewWithData returns a builder whose contexts carry a D produced by
// InitData.
func NewWithData[S, E, D any](r sink.Reader[S]) *Builder[S, E, D] {
	b := &Builder[S, E, D]{cells: r, v: validation.New()}
	start := sink.At(1, 1)
	if r == nil {
		b.v.AddError("strategy", "must not be nil")
	} else {
		start = r.DefaultStart()
	}
	b.plan = table.NewPlan[*Context[S, E, D]](start)
	return b
}

// SetStart moves the first cell of the table to (row, col).
func (b *Builder[S, E, D]) SetStart(row, col int) *Builder[S, E, D] {
	b.v.Min("start.row", row, 1).Min("start.col", col, 1)
	b.plan.SetStart(sink.At(row, col))
	return b
}

// AddColumn appends an operation that occupies the next column and runs step
// positioned on it. The step usually reads with Context.Scan.
func (b *Builder[S, E, D]) AddColumn(step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	if step == nil {
		b.v.AddError("column", "step must not be nil")
		return b
	}
	b.plan.Append(table.Column[*Context[S, E, D]](step))
	return b
}

// AddColumns appends a selector yielding pointer targets that are filled from
// consecutive columns. A Skip(n) value leaves n columns unread.
func (b *Builder[S, E, D]) AddColumns(selector func(*E) []any) *Builder[S, E, D] {
	if selector == nil {
		b.v.AddError("columns", "selector must not be nil")
		return b
	}
	b.plan.Append(table.Computed[*Context[S, E, D]](func(c *Context[S, E, D]) error {
		for _, dst := range selector(c.Entity) {
			if n, ok := dst.(Skip); ok {
				if n < 0 {
					return errors.InvalidConfig("skip", fmt.Sprintf("selector yielded Skip(%d)", n))
				}
				c.Claim(int(n))
				continue
			}
			c.Claim(1)
			if err := c.cells.Scan(c.Src, c.Row, c.Col, dst); err != nil {
				return err
			}
		}
		return nil
	}))
	return b
}

// AddSkipColumn leaves the next n columns unread. Zero is a no-op.
func (b *Builder[S, E, D]) AddSkipColumn(n int) *Builder[S, E, D] {
	b.v.Min("skip", n, 0)
	if n > 0 {
		b.plan.Append(table.SkipColumns[*Context[S, E, D]](n))
	}
	return b
}

// AddAction appends a step that runs at the current cell without moving the
// cursor.
func (b *Builder[S, E, D]) AddAction(step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	if step == nil {
		b.v.AddError("action", "step must not be nil")
		return b
	}
	b.plan.Append(table.Action[*Context[S, E, D]](step))
	return b
}

// OnStartReadingTable runs step once per invocation, before the first row.
func (b *Builder[S, E, D]) OnStartReadingTable(step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	return b.hook(table.BeforeTable, step)
}

// OnStartReadingRow runs step at the start of every row, after the fresh
// record is bound.
func (b *Builder[S, E, D]) OnStartReadingRow(step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	return b.hook(table.BeforeRow, step)
}

// OnEndReadingRow runs step at the end of every row, before the record is
// yielded.
func (b *Builder[S, E, D]) OnEndReadingRow(step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	return b.hook(table.AfterRow, step)
}

// OnEndReadingTable runs step once per invocation, after the last row.
func (b *Builder[S, E, D]) OnEndReadingTable(step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	return b.hook(table.AfterTable, step)
}

func (b *Builder[S, E, D]) hook(at table.Point, step func(*Context[S, E, D]) error) *Builder[S, E, D] {
	if step == nil {
		b.v.AddError(at.String(), "hook must not be nil")
		return b
	}
	b.plan.Hook(at, step)
	return b
}

// InitData registers the function that computes Context.Data from the sink at
// the start of every invocation. It may be registered once.
func (b *Builder[S, E, D]) InitData(init func(S) (D, error)) *Builder[S, E, D] {
	switch {
	case init == nil:
		b.v.AddError("init_data", "initializer must not be nil")
	case b.hasInit:
		b.v.AddError("init_data", "initializer already registered")
	default:
		b.init, b.hasInit = init, true
	}
	return b
}

// Compile validates the configuration and fuses it into a Procedure. The
// builder may keep being modified afterwards without affecting the result.
func (b *Builder[S, E, D]) Compile() (Procedure[S, E], error) {
	if appErr := b.v.Validate(); appErr != nil {
		return nil, appErr
	}
	cells, asm, init := b.cells, table.Assemble(b.plan.Clone()), b.init
	return func(src S, count int) pipeline.Iterator[E] {
		return &rows[S, E, D]{
			asm:   asm,
			init:  init,
			count: count,
			c:     &Context[S, E, D]{Src: src, cells: cells},
		}
	}, nil
}
