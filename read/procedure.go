package read

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/pipeline"
	"github.com/kbukum/tablerw/table"
)

// Procedure reads at most count rows of src into records. Every call starts a
// fresh read of the sheet.
type Procedure[S, E any] func(src S, count int) pipeline.Iterator[E]

// Pipeline wraps the procedure as a pipeline. Each run of the pipeline reads
// src again.
func (p Procedure[S, E]) Pipeline(src S, count int) *pipeline.Pipeline[E] {
	return pipeline.FromFunc(func(context.Context) pipeline.Iterator[E] {
		return p(src, count)
	})
}

// Collect reads up to count rows and returns them as a slice. On error the
// records read so far are returned with it.
func (p Procedure[S, E]) Collect(ctx context.Context, src S, count int) ([]E, error) {
	return pipeline.Collect(ctx, p.Pipeline(src, count))
}

type rows[S, E, D any] struct {
	asm   *table.Assembled[*Context[S, E, D]]
	init  func(S) (D, error)
	c     *Context[S, E, D]
	count int
	read  int

	started bool
	done    bool
	err     error
}

func (it *rows[S, E, D]) Next(ctx context.Context) (E, bool, error) {
	var zero E
	if it.done {
		return zero, false, it.err
	}
	if !it.started {
		it.started = true
		if err := it.begin(); err != nil {
			if stderrors.Is(err, Stop) {
				return it.finish()
			}
			return it.fail(err)
		}
	}
	if it.read >= it.count {
		return it.finish()
	}
	if err := ctx.Err(); err != nil {
		return it.fail(err)
	}

	rec := new(E)
	it.c.Entity = rec
	if err := it.asm.Row(it.c); err != nil {
		if stderrors.Is(err, Stop) {
			return it.finish()
		}
		return it.fail(err)
	}
	it.read++
	return *rec, true, nil
}

func (it *rows[S, E, D]) begin() error {
	if it.count < 0 {
		return errors.InvalidConfig("count", fmt.Sprintf("must not be negative (got: %d)", it.count))
	}
	if it.init != nil {
		data, err := it.init(it.c.Src)
		if err != nil {
			return err
		}
		it.c.Data = data
	}
	return it.asm.Begin(it.c)
}

func (it *rows[S, E, D]) finish() (E, bool, error) {
	it.done = true
	if err := it.asm.End(it.c); err != nil && !stderrors.Is(err, Stop) {
		it.err = err
	}
	var zero E
	return zero, false, it.err
}

func (it *rows[S, E, D]) fail(err error) (E, bool, error) {
	it.done, it.err = true, err
	var zero E
	return zero, false, err
}

// Close ends the iteration without running the AfterTable hooks.
func (it *rows[S, E, D]) Close() error {
	it.done = true
	return nil
}
