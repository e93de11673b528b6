package mapper

import (
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/model"
)

type ApprovalMapper struct{}

func NewApprovalMapper() *ApprovalMapper {
	return &ApprovalMapper{}
}

func (m *ApprovalMapper) ToEntity(a *model.Approval) *entity.Approval {
	if a == nil {
		return nil
	}
	var snapshot entity.RecommendationSnapshot
	fromJSON(a.Snapshot, &snapshot)
	return &entity.Approval{
		Id:         a.Id,
		AccountId:  a.AccountId,
		Snapshot:   snapshot,
		Status:     entity.ApprovalStatus(a.Status),
		ApprovedBy: a.ApprovedBy,
		ApprovedAt: a.ApprovedAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}

func (m *ApprovalMapper) ToModel(a *entity.Approval) *model.Approval {
	if a == nil {
		return nil
	}
	return &model.Approval{
		Id:         a.Id,
		AccountId:  a.AccountId,
		Snapshot:   toJSON(a.Snapshot),
		Status:     string(a.Status),
		ApprovedBy: a.ApprovedBy,
		ApprovedAt: a.ApprovedAt,
		CreatedAt:  a.CreatedAt,
		UpdatedAt:  a.UpdatedAt,
	}
}
