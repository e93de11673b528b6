package dto

import (
	"time"

	"github.com/google/uuid"
)

// OverrideAddOnRequest declares one add-on inside an override catalog.
type OverrideAddOnRequest struct {
	Name   string   `json:"name" validate:"required"`
	Covers []string `json:"covers"`
	Cost   float64  `json:"cost" validate:"gte=0"`
}

// OverridePlanRequest declares one plan inside an override catalog. Order in
// the request is the catalog order used for tie-breaks.
type OverridePlanRequest struct {
	Name         string                 `json:"name" validate:"required"`
	Slug         string                 `json:"slug" validate:"required"`
	BaseFeatures []string               `json:"base_features"`
	BaseCost     float64                `json:"base_cost" validate:"gte=0"`
	AddOns       []OverrideAddOnRequest `json:"add_ons" validate:"dive"`
}

// InstallOverrideRequest replaces the active catalog wholesale with the
// supplied plans. Override and seed catalogs are never merged.
type InstallOverrideRequest struct {
	SuppliedBy string                `json:"supplied_by" validate:"required"`
	Plans      []OverridePlanRequest `json:"plans" validate:"required,min=1,dive"`
}

type AddOnResponse struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Covers []string  `json:"covers"`
	Cost   float64   `json:"cost"`
}

type PlanResponse struct {
	Id           uuid.UUID       `json:"id"`
	Name         string          `json:"name"`
	Slug         string          `json:"slug"`
	BaseFeatures []string        `json:"base_features"`
	BaseCost     float64         `json:"base_cost"`
	AddOns       []AddOnResponse `json:"add_ons"`
}

type CatalogResponse struct {
	Version    int            `json:"version"`
	Source     string         `json:"source"`
	SuppliedBy string         `json:"supplied_by,omitempty"`
	Plans      []PlanResponse `json:"plans"`
	CreatedAt  time.Time      `json:"created_at"`
}
