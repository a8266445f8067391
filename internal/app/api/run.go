package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	petcareserver "github.com/petcare/petcare-api/go"

	authobs "github.com/petcare/petcare-api/internal/domains/auth/adapters/observability"
	"github.com/petcare/petcare-api/internal/domains/auth/adapters/token"
	authusuarios "github.com/petcare/petcare-api/internal/domains/auth/adapters/usuarios"
	authapp "github.com/petcare/petcare-api/internal/domains/auth/application"
	petsworkflows "github.com/petcare/petcare-api/internal/domains/pets/adapters/workflows"
	petsports "github.com/petcare/petcare-api/internal/domains/pets/ports"
	"github.com/petcare/petcare-api/internal/domains/uploads/adapters/disk"
	uploadsapp "github.com/petcare/petcare-api/internal/domains/uploads/application"
	platformobservability "github.com/petcare/petcare-api/internal/platform/observability"
	platformpostgres "github.com/petcare/petcare-api/internal/platform/postgres"
	platformredis "github.com/petcare/petcare-api/internal/platform/redis"
)

const shutdownTimeout = 10 * time.Second

// Run boots the PetCare HTTP API for cfg.Profile and blocks until ctx is cancelled
// or the server fails.
func Run(ctx context.Context, cfg Config) error {
	identity := platformobservability.Identity{Component: "api", Profile: string(cfg.Profile.Name), Env: cfg.Env}
	serviceName := identity.ServiceName()
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
	repos, err := NewRepositories(db)
	if err != nil {
		return err
	}
	redis, closeRedis := platformredis.ConnectOptional(ctx, cfg.RedisURL, logger)
	defer closeRedis()

	sessions := NewSessionStore(redis, db, logger)
	services := NewServices(cfg, repos, sessions, instruments)

	var petWorkflows petsports.WorkflowOrchestrator = petsworkflows.NewInlinePetWorkflows(services.Pets)
	if !repos.Postgres {
		// The worker runs in its own process and cannot see in-memory state.
		logger.Info("in-memory repositories, pet creation runs inline")
	} else if temporalClient, err := DialTemporal(cfg, instruments, "temporal-client"); err != nil {
		logger.Warn("Temporal workflows unavailable, running inline pet creation", slog.String("error", err.Error()))
	} else {
		defer temporalClient.Close()
		petWorkflows = petsworkflows.NewTemporalPetWorkflows(temporalClient, cfg.Profile.Name)
		logger.Info("Temporal workflows enabled", slog.String("namespace", cfg.TemporalNamespace))
	}

	storage, err := disk.NewStorage(cfg.UploadDir)
	if err != nil {
		return fmt.Errorf("prepare upload directory: %w", err)
	}

	handlers := petcareserver.ApiHandleFunctions{
		UsuarioAPI: petcareserver.NewUsuarioAPI(services.Usuarios),
		PetAPI:     petcareserver.NewPetAPI(services.Pets, petWorkflows),
		ProdutoAPI: petcareserver.NewProdutoAPI(services.Produtos),
		UploadAPI:  petcareserver.NewUploadAPI(uploadsapp.NewService(storage, cfg.PublicBaseURL)),
		HealthAPI:  petcareserver.NewHealthAPI(cfg.Profile.Name, db, redis),
	}
	opts := petcareserver.RouterOptions{
		Profile:            cfg.Profile,
		ServiceName:        serviceName,
		Logger:             logger,
		CORSOrigin:         cfg.CORSOrigin,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		UploadDir:          storage.Dir(),
	}
	if cfg.Profile.AuthEnabled {
		if cfg.JWTSecretGenerated {
			logger.Warn("JWT_SECRET not set, using a random secret; tokens die with the process")
		}
		signer, err := token.NewJWT(cfg.JWTSecret, cfg.JWTExpiration)
		if err != nil {
			return err
		}
		authService := authapp.NewService(authusuarios.NewAccounts(services.Usuarios), signer, sessions,
			authapp.WithSessionTTL(cfg.SessionTTL))
		auth := petcareserver.NewAuthAPI(authobs.New(authService, decoratorOptions(instruments, "internal.auth.application")...))
		handlers.AuthAPI = &auth
		opts.Chain = authapp.NewDefaultChain(signer, sessions)
	}

	if purger, ok := sessions.(SessionPurger); ok && cfg.SessionPurgeInterval > 0 {
		go PurgeSessions(ctx, purger, cfg.SessionPurgeInterval, logger)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           petcareserver.NewRouter(handlers, opts),
		ReadHeaderTimeout: 10 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		logger.Info("PetCare API listening", slog.String("addr", server.Addr), slog.String("env", cfg.Env))
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		logger.Error("PetCare API server exited", slog.String("addr", server.Addr), slog.String("error", err.Error()))
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down PetCare API")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}
	return nil
}
