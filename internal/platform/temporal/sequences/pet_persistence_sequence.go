package sequences

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	petactivities "github.com/petcare/petcare-api/internal/platform/temporal/activities/pets"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// RunPetPersistenceSequence verifies the owner and then persists the pet under the
// rules of profile.
func RunPetPersistenceSequence(ctx workflow.Context, profile rules.Name, input pettypes.AddPetInput) (*projection.Projection[*petdomain.Pet], error) {
	logger := workflow.GetLogger(ctx)
	verifyOptions := workflow.ActivityOptions{
		StartToCloseTimeout: 15 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    5 * time.Second,
			MaximumAttempts:    3,
		},
	}
	persistOptions := workflow.ActivityOptions{
		StartToCloseTimeout: time.Minute,
		HeartbeatTimeout:    20 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    10 * time.Second,
			MaximumAttempts:    5,
		},
	}

	if input.UsuarioID != nil {
		usuarioID := *input.UsuarioID
		logger.Info("pet persistence sequence verifying owner", "usuarioId", usuarioID)
		if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, verifyOptions), petactivities.VerifyOwnerActivityName, usuarioID).Get(ctx, nil); err != nil {
			logger.Error("pet persistence sequence owner check failed", "usuarioId", usuarioID, "error", err)
			return nil, err
		}
	}

	var created projection.Projection[*petdomain.Pet]
	if err := workflow.ExecuteActivity(workflow.WithActivityOptions(ctx, persistOptions), petactivities.PersistPetActivityName, petactivities.PersistPetInput{Profile: profile, Command: input}).Get(ctx, &created); err != nil {
		logger.Error("pet persistence sequence failed", "error", err)
		return nil, err
	}
	if created.Entity != nil {
		logger.Info("pet persistence sequence persisted", "petId", created.Entity.ID)
	}
	return &created, nil
}
