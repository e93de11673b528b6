package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChosenAddOnDTO struct {
	Id     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Covers []string  `json:"covers"`
	Cost   float64   `json:"cost"`
}

// RankedPlanDTO is one candidate from the ranked sequence, kept verbatim so
// a reviewer can see why the top plan won.
type RankedPlanDTO struct {
	PlanId        uuid.UUID        `json:"plan_id"`
	PlanName      string           `json:"plan_name"`
	CoverageScore float64          `json:"coverage_score"`
	TotalCost     float64          `json:"total_cost"`
	AddOns        []ChosenAddOnDTO `json:"add_ons"`
	UnmetFeatures []string         `json:"unmet_features"`
	BloatFeatures []string         `json:"bloat_features"`
	BloatCount    int              `json:"bloat_count"`
}

type RecommendationResponse struct {
	AccountId      uuid.UUID        `json:"account_id"`
	CatalogVersion int              `json:"catalog_version"`
	PlanId         uuid.UUID        `json:"plan_id"`
	PlanName       string           `json:"plan_name"`
	AddOns         []ChosenAddOnDTO `json:"add_ons"`
	UnmetFeatures  []string         `json:"unmet_features"`
	BloatFeatures  []string         `json:"bloat_features"`
	BloatCount     int              `json:"bloat_count"`
	CoverageScore  float64          `json:"coverage_score"`
	TotalCost      float64          `json:"total_cost"`
	HasGap         bool             `json:"has_gap"`
	Alternatives   []RankedPlanDTO  `json:"alternatives"`
	ComputedAt     time.Time        `json:"computed_at"`
}

// PublishRecomputeMessage is the in-process queue payload that asks the
// consumer to recompute one account (or every account when All is set).
type PublishRecomputeMessage struct {
	AccountId uuid.UUID `json:"account_id"`
	All       bool      `json:"all"`
	Reason    string    `json:"reason"`
}
