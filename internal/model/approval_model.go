package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Approval struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AccountId  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex"`
	Snapshot   datatypes.JSON `gorm:"type:jsonb;not null"`
	Status     string         `gorm:"type:varchar(50);not null;index"`
	ApprovedBy string         `gorm:"type:varchar(255)"`
	ApprovedAt *time.Time
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}

func (Approval) TableName() string {
	return "approvals"
}
