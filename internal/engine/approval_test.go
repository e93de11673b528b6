package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plan-migration-be/internal/entity"
)

func buildRecommendation(t *testing.T, account *entity.Account, catalog []entity.Plan) *entity.Recommendation {
	t.Helper()
	rec, err := Build(account, 1, Rank(account, catalog), time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return rec
}

func TestApprovalLifecycle(t *testing.T) {
	account := testAccount("A")
	rec := buildRecommendation(t, account, []entity.Plan{testPlan("X", 5, "A")})
	now := time.Now()

	approval := NewPendingApproval(rec, now)
	assert.Equal(t, entity.ApprovalStatusPending, approval.Status)

	require.NoError(t, Approve(approval, "reviewer@example.com", now))
	assert.Equal(t, entity.ApprovalStatusApproved, approval.Status)
	assert.Equal(t, "reviewer@example.com", approval.ApprovedBy)
	require.NotNil(t, approval.ApprovedAt)
}

func TestApproveRequiresApprovedBy(t *testing.T) {
	account := testAccount("A")
	rec := buildRecommendation(t, account, []entity.Plan{testPlan("X", 5, "A")})
	approval := NewPendingApproval(rec, time.Now())

	err := Approve(approval, "", time.Now())

	assert.True(t, IsInputError(err))
	assert.Equal(t, entity.ApprovalStatusPending, approval.Status)
}

func TestApproveTwiceIsNoOp(t *testing.T) {
	account := testAccount("A")
	rec := buildRecommendation(t, account, []entity.Plan{testPlan("X", 5, "A")})
	approval := NewPendingApproval(rec, time.Now())

	first := time.Now()
	require.NoError(t, Approve(approval, "first@example.com", first))
	require.NoError(t, Approve(approval, "second@example.com", time.Now()))

	// The original disposition stands.
	assert.Equal(t, "first@example.com", approval.ApprovedBy)
	assert.Equal(t, first, *approval.ApprovedAt)
}

func TestIllegalTransitions(t *testing.T) {
	account := testAccount("A")
	rec := buildRecommendation(t, account, []entity.Plan{testPlan("X", 5, "A")})

	approved := NewPendingApproval(rec, time.Now())
	require.NoError(t, Approve(approved, "r@example.com", time.Now()))
	assert.ErrorIs(t, Reject(approved, time.Now()), ErrInvalidTransition)

	rejected := NewPendingApproval(rec, time.Now())
	require.NoError(t, Reject(rejected, time.Now()))
	assert.ErrorIs(t, Approve(rejected, "r@example.com", time.Now()), ErrInvalidTransition)
	// Rejecting twice stays a no-op.
	assert.NoError(t, Reject(rejected, time.Now()))
}

func TestReconcileInvalidatesApprovalOnPlanChange(t *testing.T) {
	account := testAccount("A")
	oldCatalog := []entity.Plan{testPlan("X", 5, "A")}
	newCatalog := []entity.Plan{testPlan("Y", 2, "A")}

	rec := buildRecommendation(t, account, oldCatalog)
	approval := NewPendingApproval(rec, time.Now())
	require.NoError(t, Approve(approval, "r@example.com", time.Now()))

	latest := buildRecommendation(t, account, newCatalog)
	changed := Reconcile(approval, latest, time.Now())

	assert.True(t, changed)
	assert.Equal(t, entity.ApprovalStatusPending, approval.Status)
	assert.Empty(t, approval.ApprovedBy)
	assert.Nil(t, approval.ApprovedAt)
	assert.Equal(t, latest.PlanId, approval.Snapshot.PlanId)
}

func TestReconcileKeepsApprovalWhenOnlyCostDrifts(t *testing.T) {
	account := testAccount("A")
	plan := testPlan("X", 5, "A")
	rec := buildRecommendation(t, account, []entity.Plan{plan})

	approval := NewPendingApproval(rec, time.Now())
	require.NoError(t, Approve(approval, "r@example.com", time.Now()))

	// Same plan id, same add-ons, same gaps; only the price moved.
	repriced := plan
	repriced.BaseCost = 7
	latest := buildRecommendation(t, account, []entity.Plan{repriced})

	assert.False(t, Reconcile(approval, latest, time.Now()))
	assert.Equal(t, entity.ApprovalStatusApproved, approval.Status)
}

func TestMateriallyDiffers(t *testing.T) {
	account := testAccount("A", "B")
	catalog := []entity.Plan{
		withAddOns(testPlan("X", 5, "A"), testAddOn("cover-B", 2, "B")),
	}
	rec := buildRecommendation(t, account, catalog)
	snap := Snapshot(rec)

	assert.False(t, MateriallyDiffers(snap, rec))

	differentAddOns := *rec
	differentAddOns.AddOns = nil
	assert.True(t, MateriallyDiffers(snap, &differentAddOns))

	differentGap := *rec
	differentGap.UnmetFeatures = entity.NewFeatureSet("Z")
	assert.True(t, MateriallyDiffers(snap, &differentGap))
}
