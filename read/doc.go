// Package read builds and compiles read pipelines, the mirror of package
// write: procedures that turn rows of a tabular sink back into records.
//
// The builder surface matches the write side. Selectors passed to AddColumns
// yield pointers into the record under construction, and the sink strategy
// converts each cell into its target:
//
//	proc, err := read.New[*grid.Sheet, Stock](grid.Cells{}).
//		AddColumns(func(s *Stock) []any { return []any{&s.SKU, read.Skip(1), &s.Qty} }).
//		Compile()
//	stock, err := proc.Collect(ctx, sheet, 10)
//
// A compiled procedure returns a pipeline.Iterator; each call reads the sheet
// again. Hooks and steps may return Stop to end the table early.
package read
