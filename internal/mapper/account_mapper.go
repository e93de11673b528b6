package mapper

import (
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/model"
)

type AccountMapper struct{}

func NewAccountMapper() *AccountMapper {
	return &AccountMapper{}
}

func (m *AccountMapper) ToEntity(a *model.Account) *entity.Account {
	if a == nil {
		return nil
	}
	weights := map[string]float64{}
	fromJSON(a.UsageWeight, &weights)
	return &entity.Account{
		Id:               a.Id,
		ExternalKey:      a.ExternalKey,
		Name:             a.Name,
		RequiredFeatures: featureSetFromJSON(a.RequiredFeatures),
		UsageWeight:      weights,
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}

func (m *AccountMapper) ToModel(a *entity.Account) *model.Account {
	if a == nil {
		return nil
	}
	return &model.Account{
		Id:               a.Id,
		ExternalKey:      a.ExternalKey,
		Name:             a.Name,
		RequiredFeatures: featureSetToJSON(a.RequiredFeatures),
		UsageWeight:      toJSON(a.UsageWeight),
		CreatedAt:        a.CreatedAt,
		UpdatedAt:        a.UpdatedAt,
	}
}
