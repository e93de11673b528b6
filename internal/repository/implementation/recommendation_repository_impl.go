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

type RecommendationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RecommendationMapper
}

func NewRecommendationRepository(db *gorm.DB) contract.RecommendationRepository {
	return &RecommendationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRecommendationMapper(),
	}
}

func (r *RecommendationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RecommendationRepositoryImpl) UpsertByAccount(ctx context.Context, rec *entity.Recommendation) error {
	m := r.mapper.ToModel(rec)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "account_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"catalog_version", "plan_id", "plan_name", "add_ons", "unmet_features",
			"bloat_features", "coverage_score", "total_cost", "alternatives", "computed_at",
		}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	var stored model.Recommendation
	if err := r.db.WithContext(ctx).Where("account_id = ?", m.AccountId).First(&stored).Error; err != nil {
		return err
	}
	*rec = *r.mapper.ToEntity(&stored)
	return nil
}

func (r *RecommendationRepositoryImpl) FindByAccount(ctx context.Context, accountId uuid.UUID) (*entity.Recommendation, error) {
	var m model.Recommendation
	err := r.db.WithContext(ctx).Where("account_id = ?", accountId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *RecommendationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error) {
	var models []*model.Recommendation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.Recommendation, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *RecommendationRepositoryImpl) DeleteByAccount(ctx context.Context, accountId uuid.UUID) error {
	return r.db.WithContext(ctx).Where("account_id = ?", accountId).Delete(&model.Recommendation{}).Error
}
