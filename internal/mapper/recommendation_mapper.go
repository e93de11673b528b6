package mapper

import (
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/model"
)

type RecommendationMapper struct{}

func NewRecommendationMapper() *RecommendationMapper {
	return &RecommendationMapper{}
}

func (m *RecommendationMapper) ToEntity(r *model.Recommendation) *entity.Recommendation {
	if r == nil {
		return nil
	}
	var addOns []entity.ChosenAddOn
	fromJSON(r.AddOns, &addOns)
	var alternatives []entity.PlanRankEntry
	fromJSON(r.Alternatives, &alternatives)
	return &entity.Recommendation{
		Id:             r.Id,
		AccountId:      r.AccountId,
		CatalogVersion: r.CatalogVersion,
		PlanId:         r.PlanId,
		PlanName:       r.PlanName,
		AddOns:         addOns,
		UnmetFeatures:  featureSetFromJSON(r.UnmetFeatures),
		BloatFeatures:  featureSetFromJSON(r.BloatFeatures),
		CoverageScore:  r.CoverageScore,
		TotalCost:      r.TotalCost,
		Alternatives:   alternatives,
		ComputedAt:     r.ComputedAt,
	}
}

func (m *RecommendationMapper) ToModel(r *entity.Recommendation) *model.Recommendation {
	if r == nil {
		return nil
	}
	addOns := r.AddOns
	if addOns == nil {
		addOns = []entity.ChosenAddOn{}
	}
	alternatives := r.Alternatives
	if alternatives == nil {
		alternatives = []entity.PlanRankEntry{}
	}
	return &model.Recommendation{
		Id:             r.Id,
		AccountId:      r.AccountId,
		CatalogVersion: r.CatalogVersion,
		PlanId:         r.PlanId,
		PlanName:       r.PlanName,
		AddOns:         toJSON(addOns),
		UnmetFeatures:  featureSetToJSON(r.UnmetFeatures),
		BloatFeatures:  featureSetToJSON(r.BloatFeatures),
		CoverageScore:  r.CoverageScore,
		TotalCost:      r.TotalCost,
		Alternatives:   toJSON(alternatives),
		ComputedAt:     r.ComputedAt,
	}
}
