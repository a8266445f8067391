package workflows

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	oteltrace "go.opentelemetry.io/otel/trace"
	"go.temporal.io/api/serviceerror"
	"go.temporal.io/sdk/client"
	"go.temporal.io/sdk/temporal"

	petsapp "github.com/petcare/petcare-api/internal/domains/pets/application"
	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/domains/pets/ports"
	petactivities "github.com/petcare/petcare-api/internal/platform/temporal/activities/pets"
	petworkflows "github.com/petcare/petcare-api/internal/platform/temporal/workflows/pets"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

var (
	_ ports.WorkflowOrchestrator = (*TemporalPetWorkflows)(nil)
	_ ports.WorkflowOrchestrator = (*InlinePetWorkflows)(nil)
)

// TemporalPetWorkflows starts pet workflows on a Temporal cluster.
type TemporalPetWorkflows struct {
	client    client.Client
	taskQueue string
	profile   rules.Name
}

// NewTemporalPetWorkflows wires a Temporal client into the orchestrator. Every workflow
// it starts asks the worker to validate with profile.
func NewTemporalPetWorkflows(c client.Client, profile rules.Name) *TemporalPetWorkflows {
	return &TemporalPetWorkflows{client: c, taskQueue: petworkflows.PetCreationTaskQueue, profile: profile}
}

// CreatePet starts the Temporal workflow that persists a pet aggregate and waits for its result.
func (o *TemporalPetWorkflows) CreatePet(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error) {
	if o == nil || o.client == nil {
		return nil, errors.New("temporal pet workflows not configured")
	}
	traceComponent := workflowTraceComponent(ctx)
	workflowID := buildPetCreationWorkflowID(o.profile, input, traceComponent)
	options := client.StartWorkflowOptions{
		ID:        workflowID,
		TaskQueue: o.taskQueue,
	}
	run, err := o.client.ExecuteWorkflow(
		ctx,
		options,
		petworkflows.PetCreationWorkflowName,
		petworkflows.PetCreationWorkflowInput{Command: input, Profile: o.profile, TraceID: traceComponent},
	)
	if err != nil {
		var alreadyStarted *serviceerror.WorkflowExecutionAlreadyStarted
		if errors.As(err, &alreadyStarted) && strings.TrimSpace(input.IdempotencyKey) != "" {
			run = o.client.GetWorkflow(ctx, workflowID, alreadyStarted.RunId)
		} else {
			return nil, err
		}
	}
	var created projection.Projection[*domain.Pet]
	if err := run.Get(ctx, &created); err != nil {
		return nil, translateWorkflowError(err)
	}
	return &created, nil
}

// InlinePetWorkflows executes the service directly without Temporal, useful for tests or dev fallbacks.
type InlinePetWorkflows struct {
	service ports.Service
}

// NewInlinePetWorkflows wraps the pets service for synchronous execution.
func NewInlinePetWorkflows(service ports.Service) *InlinePetWorkflows {
	return &InlinePetWorkflows{service: service}
}

// CreatePet delegates to the application service without durable orchestration.
func (o *InlinePetWorkflows) CreatePet(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error) {
	if o == nil || o.service == nil {
		return nil, errors.New("inline pet workflows not configured")
	}
	return o.service.Create(ctx, input)
}

// translateWorkflowError restores the application sentinels carried as Temporal error types.
func translateWorkflowError(err error) error {
	var appErr *temporal.ApplicationError
	if !errors.As(err, &appErr) {
		return err
	}
	switch appErr.Type() {
	case petactivities.ErrTypeOwnerMissing:
		return fmt.Errorf("%w: %w", petsapp.ErrReference, ports.ErrOwnerMissing)
	case petactivities.ErrTypeConflict:
		return fmt.Errorf("%w: %w", petsapp.ErrConflict, ports.ErrIdempotencyConflict)
	case petactivities.ErrTypeInvalidInput:
		return fmt.Errorf("%w: %s", petsapp.ErrInvalidInput, invalidInputDetail(appErr.Error()))
	}
	return err
}

// invalidInputDetail strips the sentinel prefix added by the application layer.
func invalidInputDetail(msg string) string {
	prefix := petsapp.ErrInvalidInput.Error() + ": "
	if i := strings.Index(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return msg
}

// Keys are scoped per profile, since both APIs may share one Temporal namespace.
func buildPetCreationWorkflowID(profile rules.Name, input pettypes.AddPetInput, traceComponent string) string {
	if key := strings.TrimSpace(input.IdempotencyKey); key != "" {
		return fmt.Sprintf("pet-creation-%s-idem-%s", profile, hashIdempotencyKey(key))
	}
	return fmt.Sprintf("pet-creation-%s-%d-%s", profile, time.Now().UnixNano(), traceComponent)
}

func hashIdempotencyKey(key string) string {
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:8])
}

func workflowTraceComponent(ctx context.Context) string {
	if traceID := workflowTraceID(ctx); traceID != "" {
		return traceID
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}

func workflowTraceID(ctx context.Context) string {
	spanCtx := oteltrace.SpanFromContext(ctx).SpanContext()
	if !spanCtx.IsValid() {
		return ""
	}
	return spanCtx.TraceID().String()
}
