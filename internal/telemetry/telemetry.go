// Package telemetry provides OpenTelemetry instrumentation over OTLP.
package telemetry

import (
	"context"
	"os"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

const (
	serviceName    = "gloomcast"
	serviceVersion = "0.1.0"
)

// Setup initializes OpenTelemetry with an OTLP HTTP exporter. The exporter
// reads the standard OTEL_* environment variables, so the caller only
// enables telemetry when OTEL_EXPORTER_OTLP_ENDPOINT is set.
//
// Returns a shutdown function to call on application exit.
func Setup(ctx context.Context) (shutdown func(context.Context) error, err error) {
	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	// Build the resource directly rather than merging with Default() to
	// avoid schema URL conflicts between SDK versions.
	res, err := resource.New(ctx,
		resource.WithAttributes(
			attribute.String("service.name", serviceName),
			attribute.String("service.version", serviceVersion),
			attribute.String("telemetry.sdk.language", "go"),
			attribute.String("telemetry.sdk.name", "opentelemetry"),
			attribute.String("host.name", getHostname()),
			attribute.String("os.type", runtime.GOOS),
			attribute.String("process.runtime.name", "go"),
			attribute.String("process.runtime.version", runtime.Version()),
		),
	)
	if err != nil {
		return nil, err
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Tracer returns a named tracer for the given component. Spans are only
// recorded after Setup has installed a real provider; otherwise the global
// default discards them.
func Tracer(name string) trace.Tracer {
	return otel.GetTracerProvider().Tracer("gloomcast/" + name)
}

// NoopTracer returns a no-op tracer for use when telemetry is disabled.
func NoopTracer() trace.Tracer {
	return noop.NewTracerProvider().Tracer("gloomcast/noop")
}

// getHostname returns the system hostname, or "unknown" if it cannot be
// determined.
func getHostname() string {
	hostname, err := os.Hostname()
	if err != nil {
		return "unknown"
	}
	return hostname
}
