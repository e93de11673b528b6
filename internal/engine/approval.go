// FILE: internal/engine/approval.go
// Three-state approval lifecycle, kept independent of the ranking logic
package engine

import (
	"time"

	"github.com/google/uuid"

	"plan-migration-be/internal/entity"
)

// Snapshot captures the parts of a recommendation an approval binds to.
func Snapshot(rec *entity.Recommendation) entity.RecommendationSnapshot {
	addOnIds := make([]uuid.UUID, len(rec.AddOns))
	for i, a := range rec.AddOns {
		addOnIds[i] = a.Id
	}
	return entity.RecommendationSnapshot{
		PlanId:         rec.PlanId,
		PlanName:       rec.PlanName,
		AddOnIds:       addOnIds,
		UnmetFeatures:  rec.UnmetFeatures.Clone(),
		CoverageScore:  rec.CoverageScore,
		TotalCost:      rec.TotalCost,
		CatalogVersion: rec.CatalogVersion,
		ComputedAt:     rec.ComputedAt,
	}
}

// MateriallyDiffers reports whether a recomputed recommendation no longer
// matches the snapshot an approval was taken against: the chosen plan, the
// add-on sequence, or the unmet feature set changed. Cost or score drift
// alone does not invalidate a disposition.
func MateriallyDiffers(snap entity.RecommendationSnapshot, rec *entity.Recommendation) bool {
	if snap.PlanId != rec.PlanId {
		return true
	}
	if len(snap.AddOnIds) != len(rec.AddOns) {
		return true
	}
	for i, a := range rec.AddOns {
		if snap.AddOnIds[i] != a.Id {
			return true
		}
	}
	return !snap.UnmetFeatures.Equal(rec.UnmetFeatures)
}

// NewPendingApproval starts the lifecycle for a freshly computed
// recommendation.
func NewPendingApproval(rec *entity.Recommendation, now time.Time) *entity.Approval {
	return &entity.Approval{
		AccountId: rec.AccountId,
		Snapshot:  Snapshot(rec),
		Status:    entity.ApprovalStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Reconcile applies the forced transition after a recompute: if the latest
// recommendation materially differs from the approved/rejected snapshot, the
// approval reverts to pending against the new snapshot. Returns true when the
// approval changed. A stale approval must never silently survive.
func Reconcile(approval *entity.Approval, latest *entity.Recommendation, now time.Time) bool {
	if !MateriallyDiffers(approval.Snapshot, latest) {
		return false
	}
	approval.Snapshot = Snapshot(latest)
	approval.Status = entity.ApprovalStatusPending
	approval.ApprovedBy = ""
	approval.ApprovedAt = nil
	approval.UpdatedAt = now
	return true
}

// Approve moves pending -> approved. Approving an already approved record is
// a no-op; approving a rejected one is not a legal transition.
func Approve(approval *entity.Approval, approvedBy string, now time.Time) error {
	switch approval.Status {
	case entity.ApprovalStatusApproved:
		return nil
	case entity.ApprovalStatusRejected:
		return ErrInvalidTransition
	}
	if approvedBy == "" {
		return &InputError{Record: "approval", Key: approval.AccountId.String(), Reason: "approvedBy is required"}
	}
	approval.Status = entity.ApprovalStatusApproved
	approval.ApprovedBy = approvedBy
	approval.ApprovedAt = &now
	approval.UpdatedAt = now
	return nil
}

// Reject moves pending -> rejected. Rejecting twice is a no-op; rejecting an
// approved record is not a legal transition.
func Reject(approval *entity.Approval, now time.Time) error {
	switch approval.Status {
	case entity.ApprovalStatusRejected:
		return nil
	case entity.ApprovalStatusApproved:
		return ErrInvalidTransition
	}
	approval.Status = entity.ApprovalStatusRejected
	approval.ApprovedBy = ""
	approval.ApprovedAt = nil
	approval.UpdatedAt = now
	return nil
}
