// FILE: internal/engine/ranker.go
// Deterministic ranking of catalog plans for one account
package engine

import (
	"sort"

	"plan-migration-be/internal/entity"
)

// Rank evaluates every plan in the catalog for the account and orders the
// candidates best-first: higher coverage score, then lower total cost, then
// catalog insertion order as the stable final tie-break. An empty catalog
// yields an empty sequence; the builder turns that into "no recommendation
// available".
func Rank(account *entity.Account, catalog []entity.Plan) []entity.PlanRankEntry {
	entries := make([]entity.PlanRankEntry, 0, len(catalog))
	required := account.RequiredFeatures.Len()

	for i := range catalog {
		plan := &catalog[i]
		cov := Coverage(account, plan)
		sel := SelectAddOns(plan.Id, cov.Missing, plan.AddOns)

		coveredTotal := required - sel.StillMissing.Len()
		score := 1.0
		if required > 0 {
			score = float64(coveredTotal) / float64(required)
		}

		// Everything the bundle ships beyond the account's needs. Reviewer
		// context only; ordering below ignores it.
		bundle := plan.BaseFeatures.Clone()
		for _, a := range sel.ChosenAddOns {
			bundle = bundle.Union(a.Covers)
		}

		entries = append(entries, entity.PlanRankEntry{
			PlanId:        plan.Id,
			PlanName:      plan.Name,
			CoverageScore: score,
			TotalCost:     plan.BaseCost + sel.AddedCost,
			AddOns:        sel.ChosenAddOns,
			UnmetFeatures: sel.StillMissing,
			BloatFeatures: bundle.Diff(account.RequiredFeatures),
		})
	}

	// Stable sort keeps catalog insertion order for full ties.
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].CoverageScore != entries[j].CoverageScore {
			return entries[i].CoverageScore > entries[j].CoverageScore
		}
		return entries[i].TotalCost < entries[j].TotalCost
	})
	return entries
}
