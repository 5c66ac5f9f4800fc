package table

import "github.com/kbukum/tablerw/sink"

// Assembled is a fused plan. It is immutable and holds no per-invocation
// state, so one value may drive any number of concurrent invocations as long
// as each has its own context.
type Assembled[P Positioned] struct {
	start      sink.Start
	row        Step[P]
	beforeTbl  Step[P]
	afterTable Step[P]
}

// Assemble lowers every operation to a step and fuses the plan into one
// table-start step, one row step and one table-end step.
func Assemble[P Positioned](pl *Plan[P]) *Assembled[P] {
	steps := make([]Step[P], 0, len(pl.hooks[BeforeRow])+len(pl.ops)+len(pl.hooks[AfterRow]))
	steps = append(steps, pl.hooks[BeforeRow]...)
	for _, op := range pl.ops {
		steps = append(steps, lower(op))
	}
	steps = append(steps, pl.hooks[AfterRow]...)

	return &Assembled[P]{
		start:      pl.start,
		row:        Fuse(steps...),
		beforeTbl:  Fuse(pl.hooks[BeforeTable]...),
		afterTable: Fuse(pl.hooks[AfterTable]...),
	}
}

func lower[P Positioned](op Op[P]) Step[P] {
	switch op.Kind {
	case KindSkip:
		n := op.Width
		return func(p P) error {
			p.Pos().Claim(n)
			return nil
		}
	case KindColumn:
		run := op.Run
		return func(p P) error {
			p.Pos().Claim(1)
			return run(p)
		}
	default:
		return op.Run
	}
}

// Start returns the coordinate every invocation begins at.
func (a *Assembled[P]) Start() sink.Start { return a.start }

// Begin positions p at the start coordinate and runs the BeforeTable hooks.
func (a *Assembled[P]) Begin(p P) error {
	c := p.Pos()
	c.Row = a.start.Row
	c.beginRow(a.start.Col)
	return a.beforeTbl(p)
}

// Row processes one row: the column resets to the start column, the row step
// runs, and the row advances by one. On error the row is not advanced.
func (a *Assembled[P]) Row(p P) error {
	c := p.Pos()
	c.beginRow(a.start.Col)
	if err := a.row(p); err != nil {
		return err
	}
	c.Row++
	return nil
}

// End runs the AfterTable hooks at the cursor the last row left behind.
func (a *Assembled[P]) End(p P) error {
	return a.afterTable(p)
}

// Fuse composes steps into one step that runs them in order and stops at the
// first error. Nil steps are dropped; no steps fuse to a no-op.
func Fuse[P any](steps ...Step[P]) Step[P] {
	live := make([]Step[P], 0, len(steps))
	for _, s := range steps {
		if s != nil {
			live = append(live, s)
		}
	}
	switch len(live) {
	case 0:
		return func(P) error { return nil }
	case 1:
		return live[0]
	case 2:
		first, second := live[0], live[1]
		return func(p P) error {
			if err := first(p); err != nil {
				return err
			}
			return second(p)
		}
	default:
		return func(p P) error {
			for _, s := range live {
				if err := s(p); err != nil {
					return err
				}
			}
			return nil
		}
	}
}
