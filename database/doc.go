// Package database stores sheets in a SQL database through GORM.
//
// Every cell is one row of the cells table, keyed by sheet name, row and
// column, with its value kept as text next to a kind tag so that reads return
// the type that was written. Cells is the sink strategy for *Sheet, so the
// same write and read layouts used for workbooks run against a database:
//
//	db, err := database.Open(ctx, database.Config{DSN: "report.db"})
//	sheet := database.NewSheet(db, "Stock")
//	proc, err := write.Cached(c, database.Cells{}, key, layout)
package database
