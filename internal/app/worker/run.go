// Package worker hosts the Temporal worker that executes pet creation workflows.
package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/worker"
	"go.temporal.io/sdk/workflow"

	"github.com/petcare/petcare-api/internal/app/api"
	petsports "github.com/petcare/petcare-api/internal/domains/pets/ports"
	platformobservability "github.com/petcare/petcare-api/internal/platform/observability"
	platformpostgres "github.com/petcare/petcare-api/internal/platform/postgres"
	petactivities "github.com/petcare/petcare-api/internal/platform/temporal/activities/pets"
	petworkflows "github.com/petcare/petcare-api/internal/platform/temporal/workflows/pets"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// Run registers the pet creation workflow and its activities and polls until ctx is done.
func Run(ctx context.Context, cfg api.Config) error {
	identity := platformobservability.Identity{Component: "worker", Env: cfg.Env}
	instruments, shutdown, err := platformobservability.Init(ctx, identity)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	db, closeDB := platformpostgres.ConnectOptional(ctx, cfg.PostgresDSN, logger)
	defer closeDB()
	if db == nil {
		logger.Warn("worker running on in-memory repositories, pets it creates are invisible to the API")
	}
	repos, err := api.NewRepositories(db)
	if err != nil {
		return err
	}
	activities := petactivities.NewActivities(petServices(cfg, repos, instruments), repos.Owners)

	temporalClient, err := api.DialTemporal(cfg, instruments, "temporal-worker")
	if err != nil {
		return fmt.Errorf("failed to create Temporal client: %w", err)
	}
	defer temporalClient.Close()

	w := worker.New(temporalClient, petworkflows.PetCreationTaskQueue, worker.Options{})
	w.RegisterWorkflowWithOptions(petworkflows.PetCreationWorkflow, workflow.RegisterOptions{Name: petworkflows.PetCreationWorkflowName})
	w.RegisterActivityWithOptions(activities.VerifyOwner, activity.RegisterOptions{Name: petactivities.VerifyOwnerActivityName})
	w.RegisterActivityWithOptions(activities.PersistPet, activity.RegisterOptions{Name: petactivities.PersistPetActivityName})

	stop := make(chan interface{})
	go func() {
		<-ctx.Done()
		close(stop)
	}()
	logger.Info("worker listening",
		slog.String("taskQueue", petworkflows.PetCreationTaskQueue),
		slog.String("namespace", cfg.TemporalNamespace),
	)
	if err := w.Run(stop); err != nil {
		return fmt.Errorf("temporal worker exited: %w", err)
	}
	logger.Info("Temporal worker stopped")
	return nil
}

// petServices builds a pets service for every profile. Both APIs share the task queue,
// and each workflow names the profile whose rules apply.
func petServices(cfg api.Config, repos api.Repositories, instruments *platformobservability.Instruments) map[rules.Name]petsports.Service {
	services := make(map[rules.Name]petsports.Service)
	for _, profile := range rules.All() {
		profileCfg := cfg
		profileCfg.Profile = profile
		services[profile.Name] = api.NewServices(profileCfg, repos, nil, instruments).Pets
	}
	return services
}
