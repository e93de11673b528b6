package contract

import (
	"context"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/repository/specification"

	"github.com/google/uuid"
)

type AccountRepository interface {
	Create(ctx context.Context, account *entity.Account) error
	Update(ctx context.Context, account *entity.Account) error
	// UpsertByExternalKey inserts or refreshes the account matching its
	// source-system key; ingestion re-delivers accounts freely.
	UpsertByExternalKey(ctx context.Context, account *entity.Account) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Account, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Account, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
