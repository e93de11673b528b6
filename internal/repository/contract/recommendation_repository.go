package contract

import (
	"context"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/repository/specification"

	"github.com/google/uuid"
)

type RecommendationRepository interface {
	// UpsertByAccount writes the account's single recommendation row,
	// replacing any previous computation.
	UpsertByAccount(ctx context.Context, rec *entity.Recommendation) error
	FindByAccount(ctx context.Context, accountId uuid.UUID) (*entity.Recommendation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error)
	DeleteByAccount(ctx context.Context, accountId uuid.UUID) error
}
