package implementation

import (
	"context"
	"errors"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/mapper"
	"plan-migration-be/internal/model"
	"plan-migration-be/internal/repository/contract"

	"gorm.io/gorm"
)

type CatalogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CatalogMapper
}

func NewCatalogRepository(db *gorm.DB) contract.CatalogRepository {
	return &CatalogRepositoryImpl{
		db:     db,
		mapper: mapper.NewCatalogMapper(),
	}
}

func (r *CatalogRepositoryImpl) InstallCatalog(ctx context.Context, catalog *entity.Catalog) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Exactly one active version at a time.
		if err := tx.Model(&model.CatalogVersion{}).Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		version := &model.CatalogVersion{
			Source:     string(catalog.Source),
			SuppliedBy: catalog.SuppliedBy,
			IsActive:   true,
		}
		if err := tx.Create(version).Error; err != nil {
			return err
		}

		for i := range catalog.Plans {
			plan := &catalog.Plans[i]
			plan.Position = i
			for j := range plan.AddOns {
				plan.AddOns[j].Position = j
			}
			pm := r.mapper.PlanToModel(plan, version.Id)
			if err := tx.Create(pm).Error; err != nil {
				return err
			}
			*plan = *r.mapper.PlanToEntity(pm)
		}

		catalog.Version = version.Id
		catalog.CreatedAt = version.CreatedAt
		return nil
	})
}

func (r *CatalogRepositoryImpl) ActiveCatalog(ctx context.Context) (*entity.Catalog, error) {
	var version model.CatalogVersion
	err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&version).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.loadVersion(ctx, &version)
}

func (r *CatalogRepositoryImpl) FindCatalog(ctx context.Context, versionId int) (*entity.Catalog, error) {
	var version model.CatalogVersion
	err := r.db.WithContext(ctx).First(&version, versionId).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.loadVersion(ctx, &version)
}

func (r *CatalogRepositoryImpl) loadVersion(ctx context.Context, version *model.CatalogVersion) (*entity.Catalog, error) {
	var plans []*model.Plan
	err := r.db.WithContext(ctx).
		Where("catalog_version = ?", version.Id).
		Order("position ASC").
		Preload("AddOns", func(db *gorm.DB) *gorm.DB {
			return db.Order("add_ons.position ASC")
		}).
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.VersionToEntity(version, plans), nil
}
