package main

import (
	"context"
	"fmt"

	"github.com/kbukum/tablerw/config"
	"github.com/kbukum/tablerw/observability"
	"github.com/kbukum/tablerw/pipeline"
	"github.com/kbukum/tablerw/read"
	"github.com/kbukum/tablerw/write"
)

// Stock is one line of the inventory report.
type Stock struct {
	SKU          string
	Name         string
	Qty          int
	Price        float64
	Discontinued bool
	Reorder      *int
}

var header = []string{"SKU", "Name", "Qty", "Price", "Discontinued", "Reorder"}

// Cache keys of the report layouts.
const (
	keyWrite = iota + 1
	keyRead
)

type totals struct {
	qty   int
	value float64
}

// generateStock returns n deterministic stock lines.
func generateStock(n int) []Stock {
	items := make([]Stock, n)
	for i := range items {
		s := Stock{
			SKU:          fmt.Sprintf("SKU-%04d", i+1),
			Name:         fmt.Sprintf("Item %d", i+1),
			Qty:          (i * 7) % 50,
			Price:        float64((i*13)%200+1) / 4,
			Discontinued: i%11 == 10,
		}
		if s.Qty < 10 && !s.Discontinued {
			reorder := 50 - s.Qty
			s.Reorder = &reorder
		}
		items[i] = s
	}
	return items
}

// writeLayout lays out the report on any sink type S: a header row at the
// configured start, one row per record below it and a totals row after the
// last record.
func writeLayout[S any](exp config.Export) func(*write.Builder[S, Stock, *totals]) {
	return func(b *write.Builder[S, Stock, *totals]) {
		b.InitData(func(S) (*totals, error) { return &totals{}, nil }).
			SetStart(exp.StartRow+1, exp.StartCol).
			OnStartWritingTable(func(c *write.Context[S, Stock, *totals]) error {
				for i, h := range header {
					if err := c.SetValueAt(c.Row-1, c.Col+i, h); err != nil {
						return err
					}
				}
				return nil
			}).
			AddColumns(func(s Stock) []any {
				return []any{s.SKU, s.Name, s.Qty, s.Price, s.Discontinued, s.Reorder}
			}).
			AddAction(func(c *write.Context[S, Stock, *totals]) error {
				c.Data.qty += c.Entity.Qty
				c.Data.value += float64(c.Entity.Qty) * c.Entity.Price
				return nil
			}).
			OnEndWritingTable(func(c *write.Context[S, Stock, *totals]) error {
				if err := c.SetValueAt(c.Row, exp.StartCol, "Total"); err != nil {
					return err
				}
				if err := c.SetValueAt(c.Row, exp.StartCol+2, c.Data.qty); err != nil {
					return err
				}
				return c.SetValueAt(c.Row, exp.StartCol+3, c.Data.value)
			})
	}
}

// readLayout reads back the records written by writeLayout.
func readLayout[S any](exp config.Export) func(*read.Builder[S, Stock, struct{}]) {
	return func(b *read.Builder[S, Stock, struct{}]) {
		b.SetStart(exp.StartRow+1, exp.StartCol).
			AddColumns(func(s *Stock) []any {
				return []any{&s.SKU, &s.Name, &s.Qty, &s.Price, &s.Discontinued, &s.Reorder}
			})
	}
}

// checkTotals reads the records of proc from src and compares their total
// quantity with items. It returns the number of records read.
func checkTotals[S any](ctx context.Context, m *observability.Metrics, layout string, proc read.Procedure[S, Stock], src S, items []Stock) (int, error) {
	var n, got, want int
	err := observability.Track(ctx, m, observability.Run{Direction: "read", Layout: layout}, func(ctx context.Context) (int, error) {
		counted := pipeline.Tap(proc.Pipeline(src, len(items)), func(context.Context, Stock) error {
			n++
			return nil
		})
		var err error
		got, err = totalQty(ctx, counted)
		return n, err
	})
	if err != nil {
		return 0, err
	}
	if want, err = totalQty(ctx, pipeline.FromSlice(items)); err != nil {
		return 0, err
	}
	if got != want {
		return n, fmt.Errorf("read back quantity %d, wrote %d", got, want)
	}
	return n, nil
}

// totalQty sums the quantities of items.
func totalQty(ctx context.Context, items *pipeline.Pipeline[Stock]) (int, error) {
	sums, err := pipeline.Collect(ctx, pipeline.Reduce(items, 0, func(sum int, s Stock) int {
		return sum + s.Qty
	}))
	if err != nil || len(sums) == 0 {
		return 0, err
	}
	return sums[0], nil
}
