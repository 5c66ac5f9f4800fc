package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/kbukum/tablerw/errors"
	"github.com/kbukum/tablerw/logger"
)

// MeterConfig configures the OpenTelemetry meter provider.
type MeterConfig struct {
	// ServiceName is the name of the service.
	ServiceName string
	// ServiceVersion is the version of the service.
	ServiceVersion string
	// Environment is the deployment environment (dev, staging, prod).
	Environment string
	// Endpoint is the OTLP HTTP endpoint host:port (e.g., "localhost:4318").
	Endpoint string
	// Insecure allows insecure connections (for development).
	Insecure bool
	// Interval is the metric export interval.
	Interval time.Duration
}

// DefaultMeterConfig returns sensible defaults for development.
func DefaultMeterConfig(serviceName string) MeterConfig {
	return MeterConfig{
		ServiceName:    serviceName,
		ServiceVersion: "1.0.0",
		Environment:    "development",
		Endpoint:       "localhost:4318",
		Insecure:       true,
		Interval:       15 * time.Second,
	}
}

// InitMeter initializes the OpenTelemetry meter provider.
// Returns a MeterProvider that should be shut down on application exit.
func InitMeter(ctx context.Context, config *MeterConfig) (*sdkmetric.MeterProvider, error) {
	opts := []otlpmetrichttp.Option{
		otlpmetrichttp.WithEndpoint(config.Endpoint),
	}
	if config.Insecure {
		opts = append(opts, otlpmetrichttp.WithInsecure())
	}

	exporter, err := otlpmetrichttp.New(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	res, err := newResource(config.ServiceName, config.ServiceVersion, config.Environment)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	readerOpts := []sdkmetric.PeriodicReaderOption{}
	if config.Interval > 0 {
		readerOpts = append(readerOpts, sdkmetric.WithInterval(config.Interval))
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(exporter, readerOpts...)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	logger.Info("meter initialized", logger.Fields(
		"service", config.ServiceName,
		"endpoint", config.Endpoint,
		"interval", config.Interval.String(),
	))

	return mp, nil
}

// Meter returns a named meter from the global provider.
func Meter(name string) metric.Meter {
	return otel.Meter(name)
}

// Instrument names.
const (
	MetricCacheLookups    = "tablerw.cache.lookups"
	MetricCompileDuration = "tablerw.compile.duration"
	MetricRows            = "tablerw.rows"
	MetricRunDuration     = "tablerw.run.duration"
	MetricErrors          = "tablerw.errors"
)

// Metrics holds the instruments recorded by the cache and by tracked runs.
// All methods are no-ops on a nil receiver.
type Metrics struct {
	cacheLookups    metric.Int64Counter
	compileDuration metric.Float64Histogram
	rows            metric.Int64Counter
	runDuration     metric.Float64Histogram
	errorTotal      metric.Int64Counter
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	cacheLookups, err := meter.Int64Counter(MetricCacheLookups,
		metric.WithDescription("Procedure cache lookups by result"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricCacheLookups, err)
	}

	compileDuration, err := meter.Float64Histogram(MetricCompileDuration,
		metric.WithDescription("Time spent compiling procedures on cache misses"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricCompileDuration, err)
	}

	rows, err := meter.Int64Counter(MetricRows,
		metric.WithDescription("Rows written or read by tracked runs"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricRows, err)
	}

	runDuration, err := meter.Float64Histogram(MetricRunDuration,
		metric.WithDescription("Duration of tracked procedure runs"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s histogram: %w", MetricRunDuration, err)
	}

	errorTotal, err := meter.Int64Counter(MetricErrors,
		metric.WithDescription("Failed runs by error code"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating %s counter: %w", MetricErrors, err)
	}

	return &Metrics{
		cacheLookups:    cacheLookups,
		compileDuration: compileDuration,
		rows:            rows,
		runDuration:     runDuration,
		errorTotal:      errorTotal,
	}, nil
}

// RecordCacheLookup counts one cache lookup as a hit or a miss.
func (m *Metrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}

// RecordCompile records how long a procedure for recordType took to build.
func (m *Metrics) RecordCompile(ctx context.Context, recordType string, d time.Duration) {
	if m == nil {
		return
	}
	m.compileDuration.Record(ctx, d.Seconds(), metric.WithAttributes(
		attribute.String("record", recordType),
	))
}

// RecordRun records one procedure run.
func (m *Metrics) RecordRun(ctx context.Context, run Run, rows int, d time.Duration, err error) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("direction", run.Direction),
		attribute.String("layout", run.Layout),
	)
	m.rows.Add(ctx, int64(rows), attrs)
	m.runDuration.Record(ctx, d.Seconds(), attrs)
	if err != nil {
		m.RecordError(ctx, errorCode(err), run.Direction)
	}
}

// RecordError records an error by code and component.
func (m *Metrics) RecordError(ctx context.Context, code, component string) {
	if m == nil {
		return
	}
	m.errorTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("code", code),
		attribute.String("component", component),
	))
}

func errorCode(err error) string {
	if appErr, ok := errors.AsAppError(err); ok {
		return string(appErr.Code)
	}
	return "UNKNOWN"
}
