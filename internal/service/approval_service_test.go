package service

import (
	"context"
	"testing"
	"time"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPendingApproval(store *fakeStore, accountId uuid.UUID) *entity.Approval {
	approval := &entity.Approval{
		Id:        uuid.New(),
		AccountId: accountId,
		Snapshot: entity.RecommendationSnapshot{
			PlanId:         uuid.New(),
			PlanName:       "Standard",
			CatalogVersion: 1,
			ComputedAt:     time.Now(),
		},
		Status:    entity.ApprovalStatusPending,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	store.approvals[accountId] = approval
	return approval
}

func TestApproveMovesPendingToApproved(t *testing.T) {
	store := newFakeStore()
	accountId := uuid.New()
	seedPendingApproval(store, accountId)

	svc := NewApprovalService(newFakeUowFactory(store), nil, NewKeyedMutex(), noopLogger{})

	resp, err := svc.Approve(context.Background(), accountId, &dto.ApproveRequest{ApprovedBy: "reviewer@example.com"})
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "reviewer@example.com", resp.ApprovedBy)
	require.NotNil(t, resp.ApprovedAt)

	assert.Equal(t, entity.ApprovalStatusApproved, store.approvals[accountId].Status)
}

func TestApproveTwiceIsANoOp(t *testing.T) {
	store := newFakeStore()
	accountId := uuid.New()
	seedPendingApproval(store, accountId)

	svc := NewApprovalService(newFakeUowFactory(store), nil, NewKeyedMutex(), noopLogger{})
	ctx := context.Background()

	first, err := svc.Approve(ctx, accountId, &dto.ApproveRequest{ApprovedBy: "first@example.com"})
	require.NoError(t, err)

	second, err := svc.Approve(ctx, accountId, &dto.ApproveRequest{ApprovedBy: "second@example.com"})
	require.NoError(t, err)

	// The original decision stands.
	assert.Equal(t, first.ApprovedBy, second.ApprovedBy)
	assert.Equal(t, "first@example.com", store.approvals[accountId].ApprovedBy)
}

func TestRejectAfterApproveIsIllegal(t *testing.T) {
	store := newFakeStore()
	accountId := uuid.New()
	seedPendingApproval(store, accountId)

	svc := NewApprovalService(newFakeUowFactory(store), nil, NewKeyedMutex(), noopLogger{})
	ctx := context.Background()

	_, err := svc.Approve(ctx, accountId, &dto.ApproveRequest{ApprovedBy: "reviewer@example.com"})
	require.NoError(t, err)

	_, err = svc.Reject(ctx, accountId)
	assert.ErrorIs(t, err, engine.ErrInvalidTransition)
	assert.Equal(t, entity.ApprovalStatusApproved, store.approvals[accountId].Status)
}

func TestRejectMovesPendingToRejected(t *testing.T) {
	store := newFakeStore()
	accountId := uuid.New()
	seedPendingApproval(store, accountId)

	svc := NewApprovalService(newFakeUowFactory(store), nil, NewKeyedMutex(), noopLogger{})

	resp, err := svc.Reject(context.Background(), accountId)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "rejected", resp.Status)
	assert.Empty(t, resp.ApprovedBy)
}

func TestStatsCountsByStatus(t *testing.T) {
	store := newFakeStore()
	svc := NewApprovalService(newFakeUowFactory(store), nil, NewKeyedMutex(), noopLogger{})
	ctx := context.Background()

	a := uuid.New()
	b := uuid.New()
	c := uuid.New()
	seedPendingApproval(store, a)
	seedPendingApproval(store, b)
	seedPendingApproval(store, c)

	_, err := svc.Approve(ctx, a, &dto.ApproveRequest{ApprovedBy: "reviewer@example.com"})
	require.NoError(t, err)
	_, err = svc.Reject(ctx, b)
	require.NoError(t, err)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Pending)
	assert.Equal(t, int64(1), stats.Approved)
	assert.Equal(t, int64(1), stats.Rejected)
}

func TestApprovalLookupWithoutRecordReturnsNil(t *testing.T) {
	store := newFakeStore()
	svc := NewApprovalService(newFakeUowFactory(store), nil, NewKeyedMutex(), noopLogger{})

	resp, err := svc.Show(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, resp)

	resp, err = svc.Reject(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, resp)
}
