package pets

import (
	"go.temporal.io/sdk/workflow"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/platform/temporal/sequences"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

const (
	// PetCreationWorkflowName is the public identifier for registering the workflow.
	PetCreationWorkflowName = "pets.workflows.Creation"
	// PetCreationTaskQueue is the queue consumed by the worker processing pet workflows.
	PetCreationTaskQueue = "PET_CREATION"
)

// PetCreationWorkflowInput captures the payload required to provision a new pet.
type PetCreationWorkflowInput struct {
	Command pettypes.AddPetInput
	// Profile names the validation rules of the API that started the workflow.
	Profile rules.Name
	TraceID string
}

// PetCreationWorkflow orchestrates the activities needed to persist a pet aggregate.
func PetCreationWorkflow(ctx workflow.Context, input PetCreationWorkflowInput) (*projection.Projection[*petdomain.Pet], error) {
	logger := workflow.GetLogger(ctx)
	logger.Info("PetCreationWorkflow started", withTraceID(input.TraceID, "profile", string(input.Profile))...)
	created, err := sequences.RunPetPersistenceSequence(ctx, input.Profile, input.Command)
	if err != nil {
		logger.Error("PetCreationWorkflow failed", withTraceID(input.TraceID, "error", err)...)
		return nil, err
	}
	if created != nil && created.Entity != nil {
		logger.Info("PetCreationWorkflow completed", withTraceID(input.TraceID, "petId", created.Entity.ID)...)
	}
	return created, nil
}

func withTraceID(traceID string, keyvals ...interface{}) []interface{} {
	if traceID == "" {
		return keyvals
	}
	return append(keyvals, "traceId", traceID)
}
