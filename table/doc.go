// Package table is the compilation core shared by the write and read
// directions.
//
// A Plan is the intermediate representation of one table layout: an ordered
// list of column operations and the hooks bound to the four lifecycle points.
// Assemble fuses a Plan into three steps (table start, one row, table end)
// once; the direction packages wrap those steps with their record loop.
//
// Cursor semantics are owned here. Col always names the cell being processed.
// The first column-consuming operation of a row occupies the start column and
// every later one first moves one column right, so after a row Col rests on
// the last column that was used. Actions do not move the cursor. Row is bumped
// after each row's AfterRow hooks, so AfterTable hooks see the row just past
// the data.
package table
