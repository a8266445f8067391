package ports

import (
	"context"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	"github.com/petcare/petcare-api/internal/domains/pets/domain"
	"github.com/petcare/petcare-api/internal/shared/projection"
)

// WorkflowOrchestrator runs pet creation, either inline or as a durable workflow.
type WorkflowOrchestrator interface {
	CreatePet(ctx context.Context, input pettypes.AddPetInput) (*projection.Projection[*domain.Pet], error)
}
