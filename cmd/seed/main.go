package main

import (
	"context"
	"log"
	"os"

	"plan-migration-be/internal/repository/implementation"
	"plan-migration-be/internal/service"
	"plan-migration-be/pkg/database"

	"github.com/joho/godotenv"
)

// Seeds the built-in catalog as version 1. Idempotent: does nothing when any
// catalog version is already installed.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	ctx := context.Background()
	catalogRepo := implementation.NewCatalogRepository(db)

	existing, err := catalogRepo.ActiveCatalog(ctx)
	if err != nil {
		log.Fatalf("Error: Failed to check active catalog: %v", err)
	}
	if existing != nil {
		log.Printf("Skip: Catalog version %d already active, nothing to seed.", existing.Version)
		return
	}

	catalog := service.DefaultSeedCatalog()
	if err := catalogRepo.InstallCatalog(ctx, catalog); err != nil {
		log.Fatalf("Error: Failed to install seed catalog: %v", err)
	}

	log.Printf("Success: Seed catalog installed as version %d with %d plans.", catalog.Version, len(catalog.Plans))
}
