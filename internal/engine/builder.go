// FILE: internal/engine/builder.go
package engine

import (
	"time"

	"plan-migration-be/internal/entity"
)

// Build assembles the ranked sequence into a persistable recommendation: the
// top entry becomes the chosen plan, the rest are kept verbatim as
// alternatives so a reviewer can see why a plan was or was not chosen.
// Identical inputs produce identical output except ComputedAt. An empty
// ranking returns ErrNoCandidate.
func Build(account *entity.Account, catalogVersion int, ranked []entity.PlanRankEntry, computedAt time.Time) (*entity.Recommendation, error) {
	if len(ranked) == 0 {
		return nil, ErrNoCandidate
	}

	top := ranked[0]
	alternatives := make([]entity.PlanRankEntry, len(ranked)-1)
	copy(alternatives, ranked[1:])

	return &entity.Recommendation{
		AccountId:      account.Id,
		CatalogVersion: catalogVersion,
		PlanId:         top.PlanId,
		PlanName:       top.PlanName,
		AddOns:         top.AddOns,
		UnmetFeatures:  top.UnmetFeatures,
		BloatFeatures:  top.BloatFeatures,
		CoverageScore:  top.CoverageScore,
		TotalCost:      top.TotalCost,
		Alternatives:   alternatives,
		ComputedAt:     computedAt,
	}, nil
}
