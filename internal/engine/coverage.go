// FILE: internal/engine/coverage.go
// Feature coverage matching between an account and a plan's base features
package engine

import "plan-migration-be/internal/entity"

// Coverage splits the account's required features into those covered by the
// plan's base feature set and those missing from it. Pure and total: empty
// sets are valid on both sides, and covered ∪ missing always equals the
// account's required set with the two halves disjoint.
func Coverage(account *entity.Account, plan *entity.Plan) entity.CoverageResult {
	return entity.CoverageResult{
		PlanId:  plan.Id,
		Covered: account.RequiredFeatures.Intersect(plan.BaseFeatures),
		Missing: account.RequiredFeatures.Diff(plan.BaseFeatures),
	}
}
