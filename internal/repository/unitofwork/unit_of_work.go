package unitofwork

import (
	"context"

	"plan-migration-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	AccountRepository() contract.AccountRepository
	CatalogRepository() contract.CatalogRepository
	RecommendationRepository() contract.RecommendationRepository
	ApprovalRepository() contract.ApprovalRepository
}
