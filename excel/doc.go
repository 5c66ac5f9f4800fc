// Package excel targets worksheets of an excelize workbook.
//
// Cells implements both sink strategies for *Sheet. Values are written with
// excelize's native typing; reads return the cell's formatted text and Scan
// converts it into the destination type with spf13/cast. An empty cell reads
// as nil and scans as the zero value.
//
// WriteFrom, WriteFromWithData and ReadTo pair a worksheet with a procedure
// cache, compiling a layout once per record type and key:
//
//	err := excel.WriteFrom(c, sheet, stock, 0, func(b *write.Builder[*excel.Sheet, Stock, struct{}]) {
//		b.AddColumns(func(s Stock) []any { return []any{s.SKU, s.Qty} })
//	})
package excel
