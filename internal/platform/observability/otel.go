package observability

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const serviceNamespace = "petcare"

// Instruments bundles the runtime-wide observability dependencies.
type Instruments struct {
	Logger         *slog.Logger
	TracerProvider trace.TracerProvider
	MeterProvider  metric.MeterProvider
}

// Identity labels a PetCare process on its logs, spans and metrics.
type Identity struct {
	// Component is the binary: api, worker or session-purger.
	Component string
	// Profile is the validation profile the process serves, if any.
	Profile string
	// Env is APP_ENV; empty means development.
	Env string
}

// ServiceName is petcare-<component>, suffixed with the profile when one is set.
func (id Identity) ServiceName() string {
	name := serviceNamespace + "-" + id.Component
	if id.Profile != "" {
		name += "-" + id.Profile
	}
	return name
}

func (id Identity) env() string {
	if id.Env == "" {
		return "development"
	}
	return strings.ToLower(id.Env)
}

// Attributes are the resource attributes shared by every signal of the process.
func (id Identity) Attributes() []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("service.name", id.ServiceName()),
		attribute.String("service.namespace", serviceNamespace),
		attribute.String("petcare.component", id.Component),
		attribute.String("deployment.environment", id.env()),
	}
	if id.Profile != "" {
		attrs = append(attrs, attribute.String("petcare.profile", id.Profile))
	}
	return attrs
}

// Init installs the slog default logger and the global tracer and meter providers
// for id. The returned function flushes pending spans and must run on exit.
func Init(ctx context.Context, id Identity) (*Instruments, func(context.Context) error, error) {
	logger := newLogger(id)

	res, err := resource.New(ctx,
		resource.WithFromEnv(),
		resource.WithProcess(),
		resource.WithTelemetrySDK(),
		resource.WithHost(),
		resource.WithAttributes(id.Attributes()...),
	)
	if err != nil {
		return nil, nil, err
	}

	traceOpts := []sdktrace.TracerProviderOption{sdktrace.WithResource(res)}
	exporter, err := newSpanExporter(ctx)
	if err != nil {
		logger.Warn("span exporter unavailable, spans stay local", slog.String("error", err.Error()))
	} else if exporter != nil {
		traceOpts = append(traceOpts, sdktrace.WithBatcher(exporter))
	}
	tracerProvider := sdktrace.NewTracerProvider(traceOpts...)
	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithResource(res),
		sdkmetric.WithReader(sdkmetric.NewManualReader()),
	)
	otel.SetMeterProvider(meterProvider)

	shutdown := func(ctx context.Context) error {
		return errors.Join(meterProvider.Shutdown(ctx), tracerProvider.Shutdown(ctx))
	}
	return &Instruments{
		Logger:         logger,
		TracerProvider: tracerProvider,
		MeterProvider:  meterProvider,
	}, shutdown, nil
}

// Tracer returns a named tracer from the configured provider.
func (i *Instruments) Tracer(name string) trace.Tracer {
	if i == nil || i.TracerProvider == nil {
		return otel.Tracer(name)
	}
	return i.TracerProvider.Tracer(name)
}

// Meter returns a named meter from the configured provider.
func (i *Instruments) Meter(name string) metric.Meter {
	if i == nil || i.MeterProvider == nil {
		return metricnoop.NewMeterProvider().Meter(name)
	}
	return i.MeterProvider.Meter(name)
}

// newLogger logs JSON to stdout, at debug level outside production.
func newLogger(id Identity) *slog.Logger {
	level := slog.LevelDebug
	if id.env() == "production" {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level, AddSource: true})
	attrs := []any{slog.String("service", id.ServiceName())}
	if id.Profile != "" {
		attrs = append(attrs, slog.String("profile", id.Profile))
	}
	logger := slog.New(handler).With(attrs...)
	slog.SetDefault(logger)
	return logger
}

// newSpanExporter follows OTEL_TRACES_EXPORTER: "console" prints spans, "none" or an
// unset OTLP endpoint keeps them in process, anything else ships them over OTLP/HTTP.
func newSpanExporter(ctx context.Context) (sdktrace.SpanExporter, error) {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("OTEL_TRACES_EXPORTER"))) {
	case "console":
		return stdouttrace.New()
	case "none":
		return nil, nil
	}
	endpoint := strings.TrimSpace(os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if endpoint == "" {
		return nil, nil
	}
	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(endpoint)}
	if os.Getenv("OTEL_EXPORTER_OTLP_INSECURE") != "0" {
		opts = append(opts, otlptracehttp.WithInsecure())
	}
	return otlptracehttp.New(ctx, opts...)
}
