package dto

import (
	"time"

	"github.com/google/uuid"
)

type ApproveRequest struct {
	ApprovedBy string `json:"approved_by" validate:"required"`
}

// ApprovalStatsResponse is the reviewer's progress overview across all
// accounts.
type ApprovalStatsResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type ApprovalResponse struct {
	AccountId      uuid.UUID  `json:"account_id"`
	Status         string     `json:"status"`
	PlanId         uuid.UUID  `json:"plan_id"`
	PlanName       string     `json:"plan_name"`
	CatalogVersion int        `json:"catalog_version"`
	ApprovedBy     string     `json:"approved_by,omitempty"`
	ApprovedAt     *time.Time `json:"approved_at,omitempty"`
	UpdatedAt      time.Time  `json:"updated_at"`
}
