package dto

import (
	"time"

	"github.com/google/uuid"
)

// UpsertAccountRequest is what the ingestion collaborator delivers: a
// normalized account keyed by its source-system identifier. Re-delivery of
// the same key refreshes the stored row.
type UpsertAccountRequest struct {
	ExternalKey      string             `json:"external_key" validate:"required"`
	Name             string             `json:"name" validate:"required"`
	RequiredFeatures []string           `json:"required_features"`
	UsageWeight      map[string]float64 `json:"usage_weight"`
}

type UpsertAccountResponse struct {
	Id uuid.UUID `json:"id"`
}

type AccountResponse struct {
	Id               uuid.UUID          `json:"id"`
	ExternalKey      string             `json:"external_key"`
	Name             string             `json:"name"`
	RequiredFeatures []string           `json:"required_features"`
	UsageWeight      map[string]float64 `json:"usage_weight,omitempty"`
	CreatedAt        time.Time          `json:"created_at"`
	UpdatedAt        time.Time          `json:"updated_at"`
}
