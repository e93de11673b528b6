// FILE: internal/entity/approval_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// RecommendationSnapshot is the point-in-time copy of a recommendation that an
// approval refers to. Only the fields that make a recomputation "materially
// different" (plan, add-on sequence, unmet features) plus audit context.
type RecommendationSnapshot struct {
	PlanId         uuid.UUID   `json:"planId"`
	PlanName       string      `json:"planName"`
	AddOnIds       []uuid.UUID `json:"addOnIds"` // In selection order
	UnmetFeatures  FeatureSet  `json:"unmetFeatures"`
	CoverageScore  float64     `json:"coverageScore"`
	TotalCost      float64     `json:"totalCost"`
	CatalogVersion int         `json:"catalogVersion"`
	ComputedAt     time.Time   `json:"computedAt"`
}

// Approval tracks the human disposition of one account's recommendation.
// At most one live approval exists per account; it references (does not own)
// the recommendation snapshot it was taken against.
type Approval struct {
	Id         uuid.UUID
	AccountId  uuid.UUID
	Snapshot   RecommendationSnapshot
	Status     ApprovalStatus
	ApprovedBy string
	ApprovedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
