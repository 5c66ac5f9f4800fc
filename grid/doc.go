// Package grid provides a sparse in-memory sheet and the cell strategy that
// lets write and read pipelines target it. It is the reference sink used by
// the package tests and is handy for staging data before it reaches a real
// workbook.
package grid
