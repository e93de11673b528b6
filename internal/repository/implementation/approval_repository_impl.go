package implementation

import (
	"context"
	"errors"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/mapper"
	"plan-migration-be/internal/model"
	"plan-migration-be/internal/repository/contract"
	"plan-migration-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ApprovalRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ApprovalMapper
}

func NewApprovalRepository(db *gorm.DB) contract.ApprovalRepository {
	return &ApprovalRepositoryImpl{
		db:     db,
		mapper: mapper.NewApprovalMapper(),
	}
}

func (r *ApprovalRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ApprovalRepositoryImpl) UpsertByAccount(ctx context.Context, approval *entity.Approval) error {
	m := r.mapper.ToModel(approval)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"snapshot", "status", "approved_by", "approved_at", "updated_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	var stored model.Approval
	if err := r.db.WithContext(ctx).Where("account_id = ?", m.AccountId).First(&stored).Error; err != nil {
		return err
	}
	*approval = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *ApprovalRepositoryImpl) FindByAccount(ctx context.Context, accountId uuid.UUID) (*entity.Approval, error) {
	var m model.Approval
	err := r.db.WithContext(ctx).Where("account_id = ?", accountId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ApprovalRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Approval, error) {
	var models []*model.Approval
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Approval, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ApprovalRepositoryImpl) CountByStatus(ctx context.Context, status entity.ApprovalStatus) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Approval{}).
		Where("status = ?", string(status)).Count(&count).Error
	return count, err
}
