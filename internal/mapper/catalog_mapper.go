package mapper

import (
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/model"
)

type CatalogMapper struct{}

func NewCatalogMapper() *CatalogMapper {
	return &CatalogMapper{}
}

func (m *CatalogMapper) PlanToEntity(p *model.Plan) *entity.Plan {
	if p == nil {
		return nil
	}
	addOns := make([]entity.AddOn, 0, len(p.AddOns))
	for _, a := range p.AddOns {
		addOns = append(addOns, *m.AddOnToEntity(a))
	}
	return &entity.Plan{
		Id:           p.Id,
		Position:     p.Position,
		Name:         p.Name,
		Slug:         p.Slug,
		BaseFeatures: featureSetFromJSON(p.BaseFeatures),
		BaseCost:     p.BaseCost,
		AddOns:       addOns,
		IsActive:     p.IsActive,
	}
}

func (m *CatalogMapper) PlanToModel(p *entity.Plan, catalogVersion int) *model.Plan {
	if p == nil {
		return nil
	}
	addOns := make([]*model.AddOn, 0, len(p.AddOns))
	for i := range p.AddOns {
		addOns = append(addOns, m.AddOnToModel(&p.AddOns[i]))
	}
	return &model.Plan{
		Id:             p.Id,
		CatalogVersion: catalogVersion,
		Position:       p.Position,
		Name:           p.Name,
		Slug:           p.Slug,
		BaseFeatures:   featureSetToJSON(p.BaseFeatures),
		BaseCost:       p.BaseCost,
		IsActive:       p.IsActive,
		AddOns:         addOns,
	}
}

func (m *CatalogMapper) AddOnToEntity(a *model.AddOn) *entity.AddOn {
	if a == nil {
		return nil
	}
	return &entity.AddOn{
		Id:       a.Id,
		PlanId:   a.PlanId,
		Position: a.Position,
		Name:     a.Name,
		Covers:   featureSetFromJSON(a.Covers),
		Cost:     a.Cost,
	}
}

func (m *CatalogMapper) AddOnToModel(a *entity.AddOn) *model.AddOn {
	if a == nil {
		return nil
	}
	return &model.AddOn{
		Id:       a.Id,
		PlanId:   a.PlanId,
		Position: a.Position,
		Name:     a.Name,
		Covers:   featureSetToJSON(a.Covers),
		Cost:     a.Cost,
	}
}

func (m *CatalogMapper) VersionToEntity(v *model.CatalogVersion, plans []*model.Plan) *entity.Catalog {
	if v == nil {
		return nil
	}
	catalog := &entity.Catalog{
		Version:    v.Id,
		Source:     entity.CatalogSource(v.Source),
		SuppliedBy: v.SuppliedBy,
		CreatedAt:  v.CreatedAt,
	}
	for _, p := range plans {
		catalog.Plans = append(catalog.Plans, *m.PlanToEntity(p))
	}
	return catalog
}
