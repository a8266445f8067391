package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/petcare/petcare-api/internal/app/api"
	"github.com/petcare/petcare-api/internal/shared/rules"
)

// main serves the coursework build: no authentication, letters-only pet text
// and unique usuario names.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := api.LoadConfig(rules.ProfileCoursework)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := api.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
