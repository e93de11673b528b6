package contract

import (
	"context"

	"plan-migration-be/internal/entity"
)

type CatalogRepository interface {
	// InstallCatalog persists a whole catalog (version row, plans, add-ons)
	// and makes it the single active version. Seed and override catalogs are
	// installed the same way; versions are never merged.
	InstallCatalog(ctx context.Context, catalog *entity.Catalog) error
	// ActiveCatalog loads the live catalog version with its plans in
	// declared order and each plan's add-ons in declared order. Returns
	// nil when no version has been installed yet.
	ActiveCatalog(ctx context.Context) (*entity.Catalog, error)
	// FindCatalog loads one specific version, nil when absent.
	FindCatalog(ctx context.Context, version int) (*entity.Catalog, error)
}
