// Package logger provides structured logging for tablerw using zerolog.
//
// It supports JSON and console output, level configuration, and
// component-scoped loggers with structured fields.
//
// # Configuration
//
//	logging:
//	  level: "info"
//	  format: "json"
//
// # Usage
//
//	logger.RegisterComponents(logger.New(&cfg.Logging, "tablerw"), "cache", "storage")
//	log := logger.Get("storage")
//	log.Info("sheet written", logger.Fields(logger.FieldSheet, "Stock", logger.FieldRows, 42))
package logger
