package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Account struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ExternalKey      string         `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name             string         `gorm:"type:varchar(255)"`
	RequiredFeatures datatypes.JSON `gorm:"type:jsonb;not null;default:'[]'"`
	UsageWeight      datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt        time.Time      `gorm:"autoCreateTime"`
	UpdatedAt        time.Time      `gorm:"autoUpdateTime"`
}

func (Account) TableName() string {
	return "accounts"
}
