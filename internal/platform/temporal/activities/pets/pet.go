package pets

import (
	"context"
	"errors"
	"fmt"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/temporal"

	petsapp "github.com/petcare/petcare-api/internal/domains/pets/application"
	pettypes "github.com/petcare/petcare-api/internal/domains/pets/application/types"
	petdomain "github.com/petcare/petcare-api/internal/domains/pets/domain"
	petsports "github.com/petcare/petcare-api/internal/domains/pets/ports"
	"github.com/petcare/petcare-api/internal/shared/projection"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

const (
	// VerifyOwnerActivityName checks that the owning usuario exists.
	VerifyOwnerActivityName = "pets.activities.VerifyOwner"
	// PersistPetActivityName persists a pet aggregate.
	PersistPetActivityName = "pets.activities.PersistPet"
)

// Application error types that cross the workflow boundary. They are never retried.
const (
	ErrTypeOwnerMissing = "OwnerMissing"
	ErrTypeInvalidInput = "InvalidInput"
	ErrTypeConflict     = "Conflict"

	// ErrTypeProfileUnavailable marks a profile this worker has no pets service for.
	ErrTypeProfileUnavailable = "ProfileUnavailable"
)

// Activities groups activities that operate on the pets bounded context.
type Activities struct {
	services map[rules.Name]petsports.Service
	owners   petsports.OwnerDirectory
}

// NewActivities wires one pets service per validation profile, so a pet is always
// validated with the rules of the API that accepted it.
func NewActivities(services map[rules.Name]petsports.Service, owners petsports.OwnerDirectory) *Activities {
	return &Activities{services: services, owners: owners}
}

// PersistPetInput is a pet creation command tagged with the profile of the API that sent it.
type PersistPetInput struct {
	Profile rules.Name
	Command pettypes.AddPetInput
}

// VerifyOwner fails without retries when the usuario does not exist.
func (a *Activities) VerifyOwner(ctx context.Context, usuarioID int64) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.owners == nil {
		return errors.New("verify owner activity not initialized")
	}
	ok, err := a.owners.Exists(ctx, usuarioID)
	if err != nil {
		logger.Error("VerifyOwner lookup failed", "usuarioId", usuarioID, "error", err)
		return err
	}
	if !ok {
		logger.Info("VerifyOwner rejected missing usuario", "usuarioId", usuarioID)
		return temporal.NewNonRetryableApplicationError(petsports.ErrOwnerMissing.Error(), ErrTypeOwnerMissing, nil)
	}
	return nil
}

// PersistPet stores a new pet aggregate and returns its projection. A retry after a
// successful insert reloads the pet recorded in the heartbeat instead of inserting again.
func (a *Activities) PersistPet(ctx context.Context, input PersistPetInput) (*projection.Projection[*petdomain.Pet], error) {
	logger := activity.GetLogger(ctx)
	if a == nil || len(a.services) == 0 {
		logger.Error("pet persist activity not initialized")
		return nil, errors.New("pet persist activity not initialized")
	}
	service, err := a.serviceFor(input.Profile)
	if err != nil {
		logger.Error("PersistPet profile rejected", "profile", input.Profile, "error", err)
		return nil, err
	}

	var hb persistHeartbeat
	if activity.HasHeartbeatDetails(ctx) {
		_ = activity.GetHeartbeatDetails(ctx, &hb)
	}
	if hb.PetID != 0 {
		logger.Info("PersistPet already completed in prior attempt", "petId", hb.PetID)
		return service.GetByID(ctx, hb.PetID)
	}

	logger.Info("PersistPet activity started", "profile", input.Profile)
	created, err := service.Create(ctx, input.Command)
	if err != nil {
		logger.Error("PersistPet activity failed", "error", err)
		return nil, classify(err)
	}
	activity.RecordHeartbeat(ctx, persistHeartbeat{PetID: created.Entity.ID})
	logger.Info("PersistPet activity completed", "petId", created.Entity.ID)
	return created, nil
}

// serviceFor resolves the pets service for a profile; an empty name means main.
func (a *Activities) serviceFor(name rules.Name) (petsports.Service, error) {
	profile, err := rules.Lookup(string(name))
	if err != nil {
		return nil, temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeProfileUnavailable, err)
	}
	service, ok := a.services[profile.Name]
	if !ok || service == nil {
		msg := fmt.Sprintf("worker has no pets service for profile %q", profile.Name)
		return nil, temporal.NewNonRetryableApplicationError(msg, ErrTypeProfileUnavailable, nil)
	}
	return service, nil
}

type persistHeartbeat struct {
	PetID int64
}

func classify(err error) error {
	switch {
	case errors.Is(err, petsapp.ErrInvalidInput):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeInvalidInput, err)
	case errors.Is(err, petsapp.ErrReference):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeOwnerMissing, err)
	case errors.Is(err, petsapp.ErrConflict):
		return temporal.NewNonRetryableApplicationError(err.Error(), ErrTypeConflict, err)
	}
	return err
}
