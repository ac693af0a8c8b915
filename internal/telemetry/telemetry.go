// Package telemetry bootstraps OpenTelemetry tracing and metrics for the
// daemon. Init is process-wide; with telemetry disabled the global no-op
// providers stay in place and the rest of the program is oblivious.
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc/credentials"

	"github.com/quarterdeckhq/quarterdeck/internal/config"
)

const (
	serviceName = "quarterdeck"

	// scopeName identifies the instrumentation scope for tracers and meters.
	scopeName = "github.com/quarterdeckhq/quarterdeck"
)

// ErrAlreadyInitialized is returned when Init is called more than once in the
// same process.
var ErrAlreadyInitialized = errors.New("telemetry already initialized")

var initialized atomic.Bool

// Dispatch outcome attribute values.
const (
	OutcomeMatched    = "matched"
	OutcomeUnmatched  = "unmatched"
	OutcomeSuppressed = "suppressed"
)

// Provider owns the SDK trace and meter providers. Shutdown flushes both
// before the process exits.
type Provider struct {
	traces       *sdktrace.TracerProvider
	meters       *sdkmetric.MeterProvider
	flushTimeout time.Duration

	// Metrics holds the console's instruments. Always non-nil after Init;
	// instruments are no-ops when telemetry is disabled.
	Metrics *Metrics
}

// Init configures the global OpenTelemetry providers from cfg. The first call
// wins; any later call returns ErrAlreadyInitialized. With cfg.Enabled false
// no exporters are built and the returned provider's Shutdown is a no-op.
func Init(ctx context.Context, cfg config.TelemetryConfig, version string) (*Provider, error) {
	if !initialized.CompareAndSwap(false, true) {
		return nil, ErrAlreadyInitialized
	}

	p := &Provider{flushTimeout: cfg.FlushTimeout()}

	if cfg.Enabled {
		res, err := resource.Merge(resource.Default(), resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
			semconv.ServiceVersion(version),
		))
		if err != nil {
			return nil, fmt.Errorf("build telemetry resource: %w", err)
		}

		traceOpts := []otlptracegrpc.Option{otlptracegrpc.WithEndpoint(cfg.Endpoint)}
		metricOpts := []otlpmetricgrpc.Option{otlpmetricgrpc.WithEndpoint(cfg.Endpoint)}
		if cfg.Insecure {
			traceOpts = append(traceOpts, otlptracegrpc.WithInsecure())
			metricOpts = append(metricOpts, otlpmetricgrpc.WithInsecure())
		} else {
			creds := credentials.NewClientTLSFromCert(nil, "")
			traceOpts = append(traceOpts, otlptracegrpc.WithTLSCredentials(creds))
			metricOpts = append(metricOpts, otlpmetricgrpc.WithTLSCredentials(creds))
		}

		traceExp, err := otlptracegrpc.New(ctx, traceOpts...)
		if err != nil {
			return nil, fmt.Errorf("create trace exporter: %w", err)
		}
		metricExp, err := otlpmetricgrpc.New(ctx, metricOpts...)
		if err != nil {
			return nil, fmt.Errorf("create metric exporter: %w", err)
		}

		p.traces = sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithBatcher(traceExp),
			sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		)
		p.meters = sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExp)),
		)

		otel.SetTracerProvider(p.traces)
		otel.SetMeterProvider(p.meters)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
			propagation.TraceContext{},
			propagation.Baggage{},
		))
	}

	metrics, err := newMetrics(otel.Meter(scopeName))
	if err != nil {
		return nil, err
	}
	p.Metrics = metrics
	return p, nil
}

// Shutdown flushes and stops both providers under the configured flush
// timeout. Callers log the returned error rather than aborting shutdown.
func (p *Provider) Shutdown(ctx context.Context) error {
	if p == nil || (p.traces == nil && p.meters == nil) {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.flushTimeout)
	defer cancel()

	var errs []error
	if p.traces != nil {
		if err := p.traces.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown tracer provider: %w", err))
		}
	}
	if p.meters != nil {
		if err := p.meters.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("shutdown meter provider: %w", err))
		}
	}
	return errors.Join(errs...)
}

// Tracer returns the console's tracer from the global provider.
func Tracer() trace.Tracer {
	return otel.Tracer(scopeName)
}

// Metrics bundles the console's instruments. A nil *Metrics is safe to call;
// every method is a no-op, which keeps test wiring light.
type Metrics struct {
	dispatches      metric.Int64Counter
	dispatchLatency metric.Float64Histogram
	wsSessions      metric.Int64UpDownCounter
}

func newMetrics(meter metric.Meter) (*Metrics, error) {
	dispatches, err := meter.Int64Counter("quarterdeck.dispatch.count",
		metric.WithDescription("Key events dispatched, by outcome"))
	if err != nil {
		return nil, fmt.Errorf("create dispatch counter: %w", err)
	}
	latency, err := meter.Float64Histogram("quarterdeck.dispatch.duration",
		metric.WithDescription("Time spent matching and running a key event"),
		metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("create dispatch histogram: %w", err)
	}
	sessions, err := meter.Int64UpDownCounter("quarterdeck.ws.sessions",
		metric.WithDescription("Active WebSocket sessions"))
	if err != nil {
		return nil, fmt.Errorf("create session counter: %w", err)
	}

	return &Metrics{
		dispatches:      dispatches,
		dispatchLatency: latency,
		wsSessions:      sessions,
	}, nil
}

// RecordDispatch counts one dispatched key event and its handling duration,
// labeled with the outcome (OutcomeMatched, OutcomeUnmatched or
// OutcomeSuppressed).
func (m *Metrics) RecordDispatch(ctx context.Context, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.dispatches.Add(ctx, 1, attrs)
	m.dispatchLatency.Record(ctx, float64(elapsed.Microseconds())/1000.0, attrs)
}

// SessionOpened increments the active WebSocket session gauge.
func (m *Metrics) SessionOpened(ctx context.Context) {
	if m == nil {
		return
	}
	m.wsSessions.Add(ctx, 1)
}

// SessionClosed decrements the active WebSocket session gauge.
func (m *Metrics) SessionClosed(ctx context.Context) {
	if m == nil {
		return
	}
	m.wsSessions.Add(ctx, -1)
}
