package write

import (
	"iter"
	"slices"

	"github.com/kbukum/tablerw/sink"
	"github.com/kbukum/tablerw/table"
)

// Procedure writes records as consecutive rows of src.
type Procedure[S, E any] func(src S, records iter.Seq[E]) error

// Slice writes the records of a slice.
func (p Procedure[S, E]) Slice(src S, records []E) error {
	return p(src, slices.Values(records))
}

func compile[S, E, D any](cells sink.Writer[S], asm *table.Assembled[*Context[S, E, D]], init func(S) (D, error)) Procedure[S, E] {
	return func(src S, records iter.Seq[E]) error {
		c := &Context[S, E, D]{Src: src, cells: cells}
		if init != nil {
			data, err := init(src)
			if err != nil {
				return err
			}
			c.Data = data
		}
		if err := asm.Begin(c); err != nil {
			return err
		}
		if records != nil {
			for rec := range records {
				c.Entity = rec
				if err := asm.Row(c); err != nil {
					return err
				}
			}
		}
		return asm.End(c)
	}
}
