package api

import (
	"errors"
	"log/slog"

	"go.temporal.io/sdk/client"
	temporalotel "go.temporal.io/sdk/contrib/opentelemetry"
	workerlog "go.temporal.io/sdk/log"

	platformobservability "github.com/petcare/petcare-api/internal/platform/observability"
)

// ErrTemporalDisabled is returned by DialTemporal when TEMPORAL_DISABLED is set.
var ErrTemporalDisabled = errors.New("temporal disabled via TEMPORAL_DISABLED")

// DialTemporal connects a Temporal client with OpenTelemetry tracing and slog logging.
func DialTemporal(cfg Config, instruments *platformobservability.Instruments, component string) (client.Client, error) {
	if cfg.TemporalDisabled {
		return nil, ErrTemporalDisabled
	}
	tracerOptions := temporalotel.TracerOptions{}
	logger := slog.Default()
	if instruments != nil {
		tracerOptions.Tracer = instruments.Tracer(component)
		logger = instruments.Logger
	}
	tracingInterceptor, err := temporalotel.NewTracingInterceptor(tracerOptions)
	if err != nil {
		return nil, err
	}
	options := client.Options{
		HostPort:  cfg.TemporalAddress,
		Namespace: cfg.TemporalNamespace,
		Logger:    workerlog.NewStructuredLogger(logger),
	}
	options.Interceptors = append(options.Interceptors, tracingInterceptor)
	return client.Dial(options)
}
