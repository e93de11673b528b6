package contract

import (
	"context"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/repository/specification"

	"github.com/google/uuid"
)

type ApprovalRepository interface {
	// UpsertByAccount writes the account's single live approval row.
	UpsertByAccount(ctx context.Context, approval *entity.Approval) error
	FindByAccount(ctx context.Context, accountId uuid.UUID) (*entity.Approval, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Approval, error)
	CountByStatus(ctx context.Context, status entity.ApprovalStatus) (int64, error)
}
