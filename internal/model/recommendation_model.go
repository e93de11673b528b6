package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Recommendation holds one row per account; recomputation upserts the row in
// place (history lives in the event stream, not in this table).
type Recommendation struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountId      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	CatalogVersion int            `gorm:"not null"`
	PlanId         uuid.UUID      `gorm:"type:uuid;not null"`
	PlanName       string         `gorm:"type:varchar(255);not null"`
	AddOns         datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	UnmetFeatures  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	BloatFeatures  datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	CoverageScore  float64        `gorm:"not null"`
	TotalCost      float64        `gorm:"type:decimal(10,2);not null"`
	Alternatives   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	ComputedAt     time.Time      `gorm:"not null"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
