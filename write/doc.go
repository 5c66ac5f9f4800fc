// Package write builds and compiles write pipelines: procedures that lay a
// sequence of records out as rows of a tabular sink.
//
// A Builder collects column operations and lifecycle hooks, and Compile fuses
// them once into a Procedure that can be run against any number of sinks:
//
//	proc, err := write.New[*grid.Sheet, Stock](grid.Cells{}).
//		AddColumns(func(s Stock) []any { return []any{s.SKU, write.Skip(1), s.Qty} }).
//		OnEndWritingTable(func(c *write.Context[*grid.Sheet, Stock, struct{}]) error {
//			return c.SetValueAt(c.Row, 1, "total")
//		}).
//		Compile()
//
// Procedures are stateless and may be shared between goroutines, each
// invocation writing to its own sink. Errors returned by steps, hooks, the
// data initializer or the sink strategy are returned unchanged.
package write
