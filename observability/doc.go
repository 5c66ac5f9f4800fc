// Package observability provides OpenTelemetry tracing and metrics for
// table pipelines.
//
// Tracing:
//
//	tp, err := observability.InitTracer(ctx, &cfg)
//	defer tp.Shutdown(ctx)
//
// Metrics:
//
//	mp, err := observability.InitMeter(ctx, &cfg)
//	defer mp.Shutdown(ctx)
//
//	metrics, err := observability.NewMetrics(observability.Meter("tablerw"))
//	err = observability.Track(ctx, metrics, observability.Run{Direction: "write", Layout: "stock"},
//		func(ctx context.Context) (int, error) { return len(rows), proc.Slice(sheet, rows) })
//
// A nil *Metrics records nothing, so callers can pass metrics through
// unconditionally.
package observability
