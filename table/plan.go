package table

import (
	"slices"

	"github.com/kbukum/tablerw/sink"
)

// Plan is the builder-owned intermediate representation of a layout.
type Plan[P Positioned] struct {
	start sink.Start
	ops   []Op[P]
	hooks [numPoints][]Step[P]
}

// NewPlan returns an empty plan starting at start.
func NewPlan[P Positioned](start sink.Start) *Plan[P] {
	return &Plan[P]{start: start}
}

// SetStart replaces the start coordinate.
func (pl *Plan[P]) SetStart(start sink.Start) { pl.start = start }

// Start returns the start coordinate.
func (pl *Plan[P]) Start() sink.Start { return pl.start }

// Append adds op after the existing operations. Consecutive skips are merged,
// which claims the same columns as running them one by one.
func (pl *Plan[P]) Append(op Op[P]) {
	if op.Kind == KindSkip {
		if op.Width == 0 {
			return
		}
		if n := len(pl.ops); n > 0 && pl.ops[n-1].Kind == KindSkip {
			pl.ops[n-1].Width += op.Width
			return
		}
	}
	pl.ops = append(pl.ops, op)
}

// Hook binds step to a lifecycle point. Hooks at one point run in the order
// they were bound.
func (pl *Plan[P]) Hook(at Point, step Step[P]) {
	pl.hooks[at] = append(pl.hooks[at], step)
}

// Ops returns a copy of the column operations.
func (pl *Plan[P]) Ops() []Op[P] { return slices.Clone(pl.ops) }

// Hooks returns the number of hooks bound to at.
func (pl *Plan[P]) Hooks(at Point) int { return len(pl.hooks[at]) }

// Clone returns an independent copy, used to snapshot a builder at compile
// time.
func (pl *Plan[P]) Clone() *Plan[P] {
	c := &Plan[P]{start: pl.start, ops: slices.Clone(pl.ops)}
	for i := range pl.hooks {
		c.hooks[i] = slices.Clone(pl.hooks[i])
	}
	return c
}
