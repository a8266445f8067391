package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/petcare/petcare-api/internal/app/api"
	authpostgres "github.com/petcare/petcare-api/internal/domains/auth/adapters/persistence/postgres"
	"github.com/petcare/petcare-api/internal/platform/migrations"
	"github.com/petcare/petcare-api/internal/platform/observability"
	platformpostgres "github.com/petcare/petcare-api/internal/platform/postgres"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// Purges expired sessions once, or every SESSION_PURGE_INTERVAL_MINUTES when set.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := api.LoadConfig(rules.ProfileMain)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	instruments, shutdown, err := observability.Init(ctx, observability.Identity{Component: "session-purger", Env: cfg.Env})
	if err != nil {
		log.Fatalf("failed to initialize observability: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdown(shutdownCtx)
	}()
	logger := instruments.Logger
	db, err := platformpostgres.Connect(ctx, cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("cannot purge sessions without postgres: %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}
	if err := migrations.Run(db); err != nil {
		log.Fatalf("migrate schema: %v", err)
	}

	api.PurgeSessions(ctx, authpostgres.NewSessionStore(db), cfg.SessionPurgeInterval, logger)
}
