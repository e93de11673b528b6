// FILE: internal/engine/addons.go
// Minimal-cost add-on selection over a plan's add-on catalog
package engine

import (
	"github.com/google/uuid"

	"plan-migration-be/internal/entity"
)

// Per-plan add-on catalogs are expected to stay in the tens; beyond this the
// exact search hands over to a greedy weighted-set-cover approximation that
// keeps the same tie-break ordering.
const maxExactSearchAddOns = 20

// SelectAddOns picks the sub-collection of the plan's add-on catalog that
// covers missing at the lowest added cost. Ties prefer fewer add-ons, then
// the combination appearing earliest in catalog order. When nothing covers
// the gap completely the selector maximizes covered features at minimal cost
// and reports the remainder as StillMissing: best effort, never an error.
func SelectAddOns(planId uuid.UUID, missing entity.FeatureSet, catalog []entity.AddOn) entity.AddOnSelection {
	selection := entity.AddOnSelection{
		PlanId:       planId,
		ChosenAddOns: []entity.ChosenAddOn{},
		StillMissing: missing.Clone(),
	}
	if missing.IsEmpty() {
		selection.StillMissing = entity.NewFeatureSet()
		return selection
	}

	// Only add-ons closing at least one gap can ever be part of an optimal
	// selection; the rest would add cost without coverage.
	type indexed struct {
		addOn  entity.AddOn
		covers entity.FeatureSet
	}
	relevant := make([]indexed, 0, len(catalog))
	for _, a := range catalog {
		usable := a.Covers.Intersect(missing)
		if !usable.IsEmpty() {
			relevant = append(relevant, indexed{addOn: a, covers: usable})
		}
	}
	if len(relevant) == 0 {
		return selection
	}

	covers := make([]entity.FeatureSet, len(relevant))
	costs := make([]float64, len(relevant))
	for i, r := range relevant {
		covers[i] = r.covers
		costs[i] = r.addOn.Cost
	}

	var chosen []int
	if len(relevant) <= maxExactSearchAddOns {
		chosen = searchExact(missing, covers, costs)
	} else {
		chosen = greedyCover(missing, covers, costs)
	}

	covered := entity.NewFeatureSet()
	for _, i := range chosen {
		r := relevant[i]
		selection.ChosenAddOns = append(selection.ChosenAddOns, entity.ChosenAddOn{
			Id:     r.addOn.Id,
			Name:   r.addOn.Name,
			Covers: r.addOn.Covers.Clone(),
			Cost:   r.addOn.Cost,
		})
		selection.AddedCost += r.addOn.Cost
		covered = covered.Union(r.covers)
	}
	selection.StillMissing = missing.Diff(covered)
	return selection
}

type searchBest struct {
	found      bool
	coverCount int
	cost       float64
	picks      []int
}

// betterThan ranks candidate selections: more coverage first, then cheaper,
// then fewer add-ons, then the pick sequence appearing earliest in catalog
// order. This ordering is what makes repeated runs reproducible.
func (b *searchBest) betterThan(coverCount int, cost float64, picks []int) bool {
	if !b.found {
		return true
	}
	if coverCount != b.coverCount {
		return coverCount > b.coverCount
	}
	if cost != b.cost {
		return cost < b.cost
	}
	if len(picks) != len(b.picks) {
		return len(picks) < len(b.picks)
	}
	for i := range picks {
		if picks[i] != b.picks[i] {
			return picks[i] < b.picks[i]
		}
	}
	return false
}

// searchExact enumerates sub-collections of the relevant add-ons with two safe
// prunes: an add-on contributing no new coverage on the current path is
// skipped (dropping it can only improve cost and count), and once a full
// cover is known, paths already strictly costlier are abandoned.
func searchExact(missing entity.FeatureSet, covers []entity.FeatureSet, costs []float64) []int {
	best := &searchBest{}
	picks := make([]int, 0, len(covers))

	var walk func(next int, covered entity.FeatureSet, cost float64)
	walk = func(next int, covered entity.FeatureSet, cost float64) {
		count := covered.Len()
		if best.betterThan(count, cost, picks) {
			best.found = true
			best.coverCount = count
			best.cost = cost
			best.picks = append([]int(nil), picks...)
		}
		if count == missing.Len() {
			return // Full cover; supersets only add cost
		}
		for i := next; i < len(covers); i++ {
			gain := covers[i].Diff(covered)
			if gain.IsEmpty() {
				continue
			}
			nextCost := cost + costs[i]
			if best.found && best.coverCount == missing.Len() && nextCost > best.cost {
				continue
			}
			picks = append(picks, i)
			walk(i+1, covered.Union(covers[i]), nextCost)
			picks = picks[:len(picks)-1]
		}
	}
	walk(0, entity.NewFeatureSet(), 0)
	return best.picks
}

// greedyCover is the large-catalog fallback: repeatedly take the add-on with
// the most new coverage, breaking ties on lower cost and then catalog order.
func greedyCover(missing entity.FeatureSet, covers []entity.FeatureSet, costs []float64) []int {
	remaining := missing.Clone()
	used := make([]bool, len(covers))
	var picks []int
	for !remaining.IsEmpty() {
		bestIdx, bestGain := -1, 0
		var bestCost float64
		for i := range covers {
			if used[i] {
				continue
			}
			gain := covers[i].Intersect(remaining).Len()
			if gain == 0 {
				continue
			}
			if bestIdx < 0 || gain > bestGain || (gain == bestGain && costs[i] < bestCost) {
				bestIdx, bestGain, bestCost = i, gain, costs[i]
			}
		}
		if bestIdx < 0 {
			break
		}
		used[bestIdx] = true
		picks = append(picks, bestIdx)
		remaining = remaining.Diff(covers[bestIdx])
	}
	// Report picks in catalog order, matching the exact search.
	for i := 1; i < len(picks); i++ {
		for j := i; j > 0 && picks[j] < picks[j-1]; j-- {
			picks[j], picks[j-1] = picks[j-1], picks[j]
		}
	}
	return picks
}
