// FILE: internal/entity/account_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Account is a normalized legacy customer account as delivered by the
// ingestion collaborator. Immutable for the duration of a ranking run.
type Account struct {
	Id               uuid.UUID
	ExternalKey      string // Key in the source system (CRM id, sheet row key)
	Name             string
	RequiredFeatures FeatureSet
	UsageWeight      map[string]float64 // Optional per-feature usage weighting
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
