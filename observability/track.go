package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Run names one procedure invocation for spans and metrics.
type Run struct {
	// Direction is "write" or "read".
	Direction string
	// Layout is a caller-chosen layout name, e.g. the report being produced.
	Layout string
}

// Track runs fn inside a span named after the run and records the row count
// it reports, its duration and its error. The error is returned unchanged.
func Track(ctx context.Context, m *Metrics, run Run, fn func(context.Context) (int, error)) error {
	start := time.Now()
	ctx, span := StartSpan(ctx, "tablerw."+run.Direction, trace.WithAttributes(
		attribute.String(AttrDirection, run.Direction),
		attribute.String(AttrLayout, run.Layout),
	))
	defer span.End()

	rows, err := fn(ctx)
	span.SetAttributes(attribute.Int(AttrRows, rows))
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String(AttrErrorCode, errorCode(err)))
		span.SetStatus(codes.Error, err.Error())
	}
	m.RecordRun(ctx, run, rows, time.Since(start), err)
	return err
}
