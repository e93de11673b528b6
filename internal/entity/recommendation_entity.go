// FILE: internal/entity/recommendation_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CoverageResult is the outcome of matching one account against one plan's
// base features. Derived value, never persisted on its own.
type CoverageResult struct {
	PlanId  uuid.UUID
	Covered FeatureSet
	Missing FeatureSet
}

// ChosenAddOn is a point-in-time copy of an add-on picked by the selector.
// Copied rather than referenced so recommendations survive catalog swaps.
type ChosenAddOn struct {
	Id     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Covers FeatureSet `json:"covers"`
	Cost   float64    `json:"cost"`
}

// AddOnSelection is the selector's result for one plan: the chosen add-ons in
// catalog order, the residual gap and the added cost. Derived value.
type AddOnSelection struct {
	PlanId       uuid.UUID
	ChosenAddOns []ChosenAddOn
	StillMissing FeatureSet
	AddedCost    float64
}

// PlanRankEntry is one candidate in the ranked sequence for an account.
// BloatFeatures lists what the plan bundle includes beyond the account's
// needs; it is reviewer context only and never affects ordering.
type PlanRankEntry struct {
	PlanId        uuid.UUID     `json:"planId"`
	PlanName      string        `json:"planName"`
	CoverageScore float64       `json:"coverageScore"`
	TotalCost     float64       `json:"totalCost"`
	AddOns        []ChosenAddOn `json:"addOns"`
	UnmetFeatures FeatureSet    `json:"unmetFeatures"`
	BloatFeatures FeatureSet    `json:"bloatFeatures"`
}

// Recommendation is the engine's per-account output: the chosen plan and
// add-ons, residual gaps, and the full ranked alternatives for auditability.
// Recomputation overwrites the stored row for the account.
type Recommendation struct {
	Id             uuid.UUID
	AccountId      uuid.UUID
	CatalogVersion int
	PlanId         uuid.UUID
	PlanName       string
	AddOns         []ChosenAddOn
	UnmetFeatures  FeatureSet
	BloatFeatures  FeatureSet
	CoverageScore  float64
	TotalCost      float64
	Alternatives   []PlanRankEntry
	ComputedAt     time.Time
}

// HasGap reports whether the recommendation leaves required features unmet.
// A non-empty gap is always surfaced to the reviewer, never suppressed.
func (r *Recommendation) HasGap() bool {
	return !r.UnmetFeatures.IsEmpty()
}
