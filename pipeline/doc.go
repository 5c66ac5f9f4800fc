// Package pipeline provides composable, pull-based operators over the rows a
// read procedure produces.
//
// Pipelines are lazy: nothing runs until Collect pulls, and each stage pulls
// from the one before it on demand, so a read stops touching the sheet as
// soon as the consumer stops pulling. A pipeline can be run again; each run
// opens fresh iterators.
//
// # Operators
//
//   - Filter: keep values matching a predicate
//   - Tap: observe values without changing them (counting, metrics)
//   - Take: stop after n values
//   - Reduce: fold all values into one result
//
// # Usage
//
//	rows := proc.Pipeline(sheet, 100)
//	low := pipeline.Filter(rows, func(s Stock) bool { return s.Qty < 10 })
//	results, err := pipeline.Collect(ctx, low)
package pipeline
