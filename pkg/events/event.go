package events

import "time"

// Event types published on the migration bus.
const (
	TypeRecommendationComputed = "RECOMMENDATION_COMPUTED"
	TypeApprovalChanged        = "APPROVAL_CHANGED"
	TypeCatalogInstalled       = "CATALOG_INSTALLED"
)

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "APPROVAL_CHANGED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent is the common implementation used by all publishers.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewRecommendationComputed reports that an account's recommendation was
// recomputed and stored.
func NewRecommendationComputed(accountId, planId string, catalogVersion int, coverageScore float64) Event {
	return BaseEvent{
		Type: TypeRecommendationComputed,
		Data: map[string]interface{}{
			"account_id":      accountId,
			"plan_id":         planId,
			"catalog_version": catalogVersion,
			"coverage_score":  coverageScore,
		},
		OccurredAt: time.Now(),
	}
}

// NewApprovalChanged reports an approval status transition for an account.
func NewApprovalChanged(accountId, status, actor string) Event {
	return BaseEvent{
		Type: TypeApprovalChanged,
		Data: map[string]interface{}{
			"account_id": accountId,
			"status":     status,
			"actor":      actor,
		},
		OccurredAt: time.Now(),
	}
}

// NewCatalogInstalled reports that a new catalog version became active.
func NewCatalogInstalled(version int, source string, planCount int) Event {
	return BaseEvent{
		Type: TypeCatalogInstalled,
		Data: map[string]interface{}{
			"version":    version,
			"source":     source,
			"plan_count": planCount,
		},
		OccurredAt: time.Now(),
	}
}
