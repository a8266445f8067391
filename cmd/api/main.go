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

// @title PetCare API
// @version 1.0
// @description Usuarios, pets e produtos com autenticacao JWT.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := api.LoadConfig(rules.ProfileMain)
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	if err := api.Run(ctx, cfg); err != nil {
		log.Fatal(err)
	}
}
