package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestDecoratorCountsAndLogs(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	d := NewDecorator("test",
		[]Counter{{Name: "things.created", Description: "Things created"}},
		WithMeter(provider.Meter("test")),
		WithLogger(logger),
	)

	ctx, span := d.Start(context.Background(), "Thing.Create")
	d.Count(ctx, "things.created")
	d.Count(ctx, "unknown.counter")
	err := d.Fail(ctx, span, errors.New("boom"), "failed to create thing", slog.Int64("thing.id", 7))
	span.End()

	require.EqualError(t, err, "boom")
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"thing.id":7`)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
	sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
	require.True(t, ok)
	assert.Equal(t, int64(1), sum.DataPoints[0].Value)
}

func TestDecoratorDefaultsAreSafe(t *testing.T) {
	d := NewDecorator("test", nil)
	ctx, span := d.Start(context.Background(), "Noop")
	d.Count(ctx, "missing")
	d.Info(ctx, "ignored")
	span.End()
}
