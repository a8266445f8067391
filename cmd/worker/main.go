package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/petcare/petcare-api/internal/app/api"
	"github.com/petcare/petcare-api/internal/app/worker"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The worker validates with the profile each workflow names; APP_PROFILE is unused here.
	cfg, err := api.LoadConfig(rules.ProfileMain)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := worker.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
