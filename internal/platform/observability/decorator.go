package observability

import (
	"context"
	"io"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"
)

// Counter declares an Int64Counter owned by a service decorator.
type Counter struct {
	Name        string
	Description string
}

// DecoratorOption customizes a Decorator.
type DecoratorOption func(*decoratorConfig)

type decoratorConfig struct {
	tracer trace.Tracer
	logger *slog.Logger
	meter  metric.Meter
}

func WithLogger(logger *slog.Logger) DecoratorOption {
	return func(c *decoratorConfig) { c.logger = logger }
}

func WithTracer(tr trace.Tracer) DecoratorOption {
	return func(c *decoratorConfig) { c.tracer = tr }
}

func WithMeter(m metric.Meter) DecoratorOption {
	return func(c *decoratorConfig) { c.meter = m }
}

// Decorator holds the tracer, logger and counters shared by the service
// decorators of each bounded context.
type Decorator struct {
	tracer   trace.Tracer
	logger   *slog.Logger
	counters map[string]metric.Int64Counter
}

// NewDecorator resolves options, falling back to no-op tracing and a discarding logger.
func NewDecorator(tracerName string, counters []Counter, opts ...DecoratorOption) *Decorator {
	cfg := decoratorConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	d := &Decorator{
		tracer:   cfg.tracer,
		logger:   cfg.logger,
		counters: make(map[string]metric.Int64Counter, len(counters)),
	}
	if d.tracer == nil {
		d.tracer = nooptrace.NewTracerProvider().Tracer(tracerName)
	}
	if d.logger == nil {
		d.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if cfg.meter != nil {
		for _, c := range counters {
			counter, err := cfg.meter.Int64Counter(c.Name, metric.WithDescription(c.Description))
			if err == nil {
				d.counters[c.Name] = counter
			}
		}
	}
	return d
}

// Start opens a span named after the decorated operation.
func (d *Decorator) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return d.tracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

// Fail records err on the span, logs it and returns it unchanged.
func (d *Decorator) Fail(ctx context.Context, span trace.Span, err error, msg string, attrs ...slog.Attr) error {
	if span != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	d.logger.LogAttrs(ctx, slog.LevelError, msg, attrs...)
	return err
}

func (d *Decorator) Info(ctx context.Context, msg string, attrs ...slog.Attr) {
	d.logger.LogAttrs(ctx, slog.LevelInfo, msg, attrs...)
}

// Count adds one to the named counter when a meter was configured.
func (d *Decorator) Count(ctx context.Context, name string) {
	if counter, ok := d.counters[name]; ok {
		counter.Add(ctx, 1)
	}
}
