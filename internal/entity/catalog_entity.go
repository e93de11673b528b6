// FILE: internal/entity/catalog_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type CatalogSource string

const (
	CatalogSourceSeed     CatalogSource = "seed"
	CatalogSourceOverride CatalogSource = "override"
)

// AddOn is an optional, separately priced extension belonging to exactly one plan.
type AddOn struct {
	Id       uuid.UUID
	PlanId   uuid.UUID
	Position int // Declared order within the plan's add-on catalog
	Name     string
	Covers   FeatureSet
	Cost     float64
}

// Plan is a priced tier with a base feature set and an ordered add-on catalog.
// An empty base feature set is valid (fully add-on-driven plan).
type Plan struct {
	Id           uuid.UUID
	Position     int // Declared order within the catalog
	Name         string
	Slug         string
	BaseFeatures FeatureSet
	BaseCost     float64
	AddOns       []AddOn // In declared catalog order
	IsActive     bool
}

// Catalog is one immutable version of the plan catalog. Overrides replace the
// active version wholesale; seed and override catalogs are never merged.
type Catalog struct {
	Version    int
	Source     CatalogSource
	SuppliedBy string
	Plans      []Plan // In declared catalog order
	CreatedAt  time.Time
}
