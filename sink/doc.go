// Package sink defines the capability a grid must offer to the write and read
// pipelines: a default start coordinate and a one-cell primitive per direction.
//
// The pipeline core only ever talks to these interfaces. A concrete grid
// registers one Writer and one Reader for its sink type:
//
//	reg := sink.NewRegistry()
//	_ = sink.RegisterWriter[*grid.Sheet](reg, grid.Cells{})
//	w, err := sink.WriterFor[*grid.Sheet](reg)
//
// Value marshalling (pointer dereference, the "no value" representation,
// conversion on read) is the strategy's job, not the core's.
package sink
