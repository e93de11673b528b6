package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByAccountID filters recommendation/approval rows by their owning account.
type ByAccountID struct {
	AccountID uuid.UUID
}

func (s ByAccountID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("account_id = ?", s.AccountID)
}

// ByExternalKey filters accounts by their source-system key.
type ByExternalKey struct {
	Key string
}

func (s ByExternalKey) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("external_key = ?", s.Key)
}

// ByStatus filters approvals by lifecycle status.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

// ByCatalogVersion filters plans by the catalog version they belong to.
type ByCatalogVersion struct {
	Version int
}

func (s ByCatalogVersion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("catalog_version = ?", s.Version)
}

// ActiveOnly keeps rows flagged active.
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}
