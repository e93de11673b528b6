package main

import (
	"context"
	"log"

	"plan-migration-be/internal/bootstrap"
	"plan-migration-be/internal/config"
	"plan-migration-be/pkg/database"

	"github.com/fatih/color"
)

// One-shot recompute of every account against the active catalog, for
// operators and cron. The REST endpoint does the same thing in-process.
func main() {
	cfg := config.Load()

	gormDB, err := database.NewGormDBFromDSN(cfg.Database.Connection)
	if err != nil {
		log.Fatalf("Unable to connect to GORM DB: %v", err)
	}

	container := bootstrap.NewContainer(gormDB, cfg)

	report, err := container.BatchService.RecomputeAll(context.Background())
	if err != nil {
		color.Red("Batch recompute failed: %v", err)
		log.Fatal(err)
	}

	color.Cyan("Batch recompute finished (catalog version %d, %dms)", report.CatalogVersion, report.DurationMs)
	color.Green("  processed:        %d", report.Processed)
	color.Green("  succeeded:        %d", report.Succeeded)
	if report.PartialCoverage > 0 {
		color.Yellow("  partial coverage: %d", report.PartialCoverage)
	}
	if report.NoCandidate > 0 {
		color.Yellow("  no candidate:     %d", report.NoCandidate)
	}
	if report.Failed > 0 {
		color.Red("  failed:           %d", report.Failed)
		for _, e := range report.Errors {
			color.Red("    %s (%s): %s", e.AccountId, e.ExternalKey, e.Error)
		}
	}
}
