package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CatalogVersion tracks which plan catalog is live. Exactly one row is active
// at a time; an override install deactivates the previous version.
type CatalogVersion struct {
	Id         int       `gorm:"primaryKey;autoIncrement"`
	Source     string    `gorm:"type:varchar(50);not null"` // seed | override
	SuppliedBy string    `gorm:"type:varchar(255)"`
	IsActive   bool      `gorm:"default:false;index"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (CatalogVersion) TableName() string {
	return "catalog_versions"
}

type Plan struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CatalogVersion int            `gorm:"not null;index"`
	Position       int            `gorm:"not null"` // Declared catalog order
	Name           string         `gorm:"type:varchar(255);not null"`
	Slug           string         `gorm:"type:varchar(255);not null;index:idx_plans_version_slug,unique"`
	BaseFeatures   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	BaseCost       float64        `gorm:"type:decimal(10,2);not null"`
	IsActive       bool           `gorm:"default:true"`

	// Relations
	AddOns []*AddOn `gorm:"foreignKey:PlanId"`
}

func (Plan) TableName() string {
	return "plans"
}

type AddOn struct {
	Id       uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	PlanId   uuid.UUID      `gorm:"type:uuid;not null;index"`
	Position int            `gorm:"not null"` // Declared order within the plan
	Name     string         `gorm:"type:varchar(255);not null"`
	Covers   datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	Cost     float64        `gorm:"type:decimal(10,2);not null"`
}

func (AddOn) TableName() string {
	return "add_ons"
}
