package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"plan-migration-be/internal/entity"
)

func testAccount(features ...string) *entity.Account {
	return &entity.Account{
		Id:               uuid.New(),
		ExternalKey:      "acct-1",
		Name:             "Test Account",
		RequiredFeatures: entity.NewFeatureSet(features...),
	}
}

func testPlan(name string, baseCost float64, base ...string) entity.Plan {
	return entity.Plan{
		Id:           uuid.New(),
		Name:         name,
		Slug:         name,
		BaseFeatures: entity.NewFeatureSet(base...),
		BaseCost:     baseCost,
		IsActive:     true,
	}
}

func TestCoverage(t *testing.T) {
	tests := []struct {
		name        string
		required    []string
		base        []string
		wantCovered []string
		wantMissing []string
	}{
		{
			name:        "full coverage",
			required:    []string{"a", "b"},
			base:        []string{"a", "b", "c"},
			wantCovered: []string{"a", "b"},
			wantMissing: []string{},
		},
		{
			name:        "partial coverage",
			required:    []string{"a", "b", "c"},
			base:        []string{"a"},
			wantCovered: []string{"a"},
			wantMissing: []string{"b", "c"},
		},
		{
			name:        "no overlap",
			required:    []string{"a", "b"},
			base:        []string{"x"},
			wantCovered: []string{},
			wantMissing: []string{"a", "b"},
		},
		{
			name:        "empty required",
			required:    nil,
			base:        []string{"a"},
			wantCovered: []string{},
			wantMissing: []string{},
		},
		{
			name:        "empty base features",
			required:    []string{"a"},
			base:        nil,
			wantCovered: []string{},
			wantMissing: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			account := testAccount(tt.required...)
			plan := testPlan("P", 0, tt.base...)

			result := Coverage(account, &plan)

			assert.Equal(t, plan.Id, result.PlanId)
			assert.Equal(t, tt.wantCovered, result.Covered.Sorted())
			assert.Equal(t, tt.wantMissing, result.Missing.Sorted())
		})
	}
}

// Covered and missing must partition the account's required features: their
// union is exactly the required set and they never overlap.
func TestCoveragePartitionsRequiredFeatures(t *testing.T) {
	account := testAccount("a", "b", "c", "d")
	plan := testPlan("P", 0, "b", "d", "z")

	result := Coverage(account, &plan)

	assert.True(t, result.Covered.Union(result.Missing).Equal(account.RequiredFeatures))
	assert.True(t, result.Covered.Intersect(result.Missing).IsEmpty())
}

func TestCoverageDoesNotMutateInputs(t *testing.T) {
	account := testAccount("a", "b")
	plan := testPlan("P", 0, "a")

	_ = Coverage(account, &plan)

	assert.Equal(t, []string{"a", "b"}, account.RequiredFeatures.Sorted())
	assert.Equal(t, []string{"a"}, plan.BaseFeatures.Sorted())
}
