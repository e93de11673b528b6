package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plan-migration-be/internal/entity"
)

func withAddOns(plan entity.Plan, addOns ...entity.AddOn) entity.Plan {
	for i := range addOns {
		addOns[i].PlanId = plan.Id
		addOns[i].Position = i
	}
	plan.AddOns = addOns
	return plan
}

func TestRankFullBaseCoverageBeatsAddOnCoverageOnCost(t *testing.T) {
	// Plan X covers {A,B} natively for 10; Plan Y needs a 5-cost add-on on
	// top of base 8 for the same coverage. X wins on total cost.
	account := testAccount("A", "B")
	planX := testPlan("X", 10, "A", "B")
	planY := withAddOns(testPlan("Y", 8, "A"), testAddOn("cover-B", 5, "B"))

	ranked := Rank(account, []entity.Plan{planX, planY})

	require.Len(t, ranked, 2)
	assert.Equal(t, "X", ranked[0].PlanName)
	assert.Equal(t, 1.0, ranked[0].CoverageScore)
	assert.Equal(t, 10.0, ranked[0].TotalCost)
	assert.Equal(t, "Y", ranked[1].PlanName)
	assert.Equal(t, 1.0, ranked[1].CoverageScore)
	assert.Equal(t, 13.0, ranked[1].TotalCost)
}

func TestRankSelectsMultipleAddOnsToCloseGap(t *testing.T) {
	// Only plan Z exists; it needs two separate add-ons to close the gap.
	account := testAccount("A", "B", "C")
	planZ := withAddOns(testPlan("Z", 6, "A"),
		testAddOn("cover-B", 3, "B"),
		testAddOn("cover-C", 4, "C"),
	)

	ranked := Rank(account, []entity.Plan{planZ})

	require.Len(t, ranked, 1)
	assert.Equal(t, 1.0, ranked[0].CoverageScore)
	assert.Equal(t, 13.0, ranked[0].TotalCost) // base 6 + 3 + 4
	assert.Len(t, ranked[0].AddOns, 2)
	assert.True(t, ranked[0].UnmetFeatures.IsEmpty())
}

func TestRankSurfacesFullGapForUncoverablePlan(t *testing.T) {
	// A plan covering nothing is still returned as a candidate with its
	// whole gap visible; partial coverage is a warning, not an error.
	account := testAccount("A", "B")
	planW := testPlan("W", 5)

	ranked := Rank(account, []entity.Plan{planW})

	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].CoverageScore)
	assert.Equal(t, []string{"A", "B"}, ranked[0].UnmetFeatures.Sorted())
	assert.Empty(t, ranked[0].AddOns)
}

func TestRankEmptyCatalog(t *testing.T) {
	ranked := Rank(testAccount("A"), nil)
	assert.Empty(t, ranked)
}

func TestRankEmptyRequiredFeaturesScoresFullCoverage(t *testing.T) {
	account := testAccount()
	cheap := testPlan("Cheap", 1)
	pricey := testPlan("Pricey", 9, "A")

	ranked := Rank(account, []entity.Plan{pricey, cheap})

	require.Len(t, ranked, 2)
	assert.Equal(t, 1.0, ranked[0].CoverageScore)
	assert.Equal(t, "Cheap", ranked[0].PlanName)
}

func TestRankOrdersByCoverageThenCost(t *testing.T) {
	account := testAccount("A", "B")
	full := testPlan("Full", 20, "A", "B")
	half := testPlan("Half", 1, "A")

	ranked := Rank(account, []entity.Plan{half, full})

	require.Len(t, ranked, 2)
	assert.Equal(t, "Full", ranked[0].PlanName)
	assert.Equal(t, "Half", ranked[1].PlanName)
	assert.Equal(t, 0.5, ranked[1].CoverageScore)
}

func TestRankTieBreaksByCatalogOrder(t *testing.T) {
	account := testAccount("A")
	first := testPlan("First", 5, "A")
	second := testPlan("Second", 5, "A")
	catalog := []entity.Plan{first, second}

	for i := 0; i < 25; i++ {
		ranked := Rank(account, catalog)
		require.Len(t, ranked, 2)
		assert.Equal(t, "First", ranked[0].PlanName)
		assert.Equal(t, "Second", ranked[1].PlanName)
	}
}

func TestRankReportsBloat(t *testing.T) {
	account := testAccount("A")
	plan := testPlan("Big", 5, "A", "X", "Y")

	ranked := Rank(account, []entity.Plan{plan})

	require.Len(t, ranked, 1)
	assert.Equal(t, []string{"X", "Y"}, ranked[0].BloatFeatures.Sorted())
	// Bloat never affects ordering or score.
	assert.Equal(t, 1.0, ranked[0].CoverageScore)
}
