package service

import (
	"context"
	"fmt"
	"time"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/pkg/logger"
	"plan-migration-be/internal/repository/unitofwork"
	"plan-migration-be/pkg/events"
	pkgNats "plan-migration-be/pkg/nats"

	"github.com/google/uuid"
)

type IApprovalService interface {
	Show(ctx context.Context, accountId uuid.UUID) (*dto.ApprovalResponse, error)
	Approve(ctx context.Context, accountId uuid.UUID, req *dto.ApproveRequest) (*dto.ApprovalResponse, error)
	Reject(ctx context.Context, accountId uuid.UUID) (*dto.ApprovalResponse, error)
	Stats(ctx context.Context) (*dto.ApprovalStatsResponse, error)
}

type approvalService struct {
	uowFactory     unitofwork.RepositoryFactory
	eventPublisher *pkgNats.Publisher
	locks          *KeyedMutex
	logger         logger.ILogger
}

func NewApprovalService(
	uowFactory unitofwork.RepositoryFactory,
	eventPublisher *pkgNats.Publisher,
	locks *KeyedMutex,
	sysLogger logger.ILogger,
) IApprovalService {
	return &approvalService{
		uowFactory:     uowFactory,
		eventPublisher: eventPublisher,
		locks:          locks,
		logger:         sysLogger,
	}
}

func (s *approvalService) Show(ctx context.Context, accountId uuid.UUID) (*dto.ApprovalResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	approval, err := uow.ApprovalRepository().FindByAccount(ctx, accountId)
	if err != nil {
		return nil, err
	}
	if approval == nil {
		return nil, nil
	}
	return approvalToResponse(approval), nil
}

func (s *approvalService) Approve(ctx context.Context, accountId uuid.UUID, req *dto.ApproveRequest) (*dto.ApprovalResponse, error) {
	return s.transition(ctx, accountId, func(approval *entity.Approval, now time.Time) error {
		return engine.Approve(approval, req.ApprovedBy, now)
	})
}

func (s *approvalService) Reject(ctx context.Context, accountId uuid.UUID) (*dto.ApprovalResponse, error) {
	return s.transition(ctx, accountId, engine.Reject)
}

func (s *approvalService) transition(ctx context.Context, accountId uuid.UUID, apply func(*entity.Approval, time.Time) error) (*dto.ApprovalResponse, error) {
	// Same lock the recompute path holds; a decision never lands on a
	// snapshot that is being reconciled underneath it.
	unlock := s.locks.Lock(accountId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	approval, err := uow.ApprovalRepository().FindByAccount(ctx, accountId)
	if err != nil {
		return nil, err
	}
	if approval == nil {
		return nil, nil
	}

	before := approval.Status
	now := time.Now()
	if err := apply(approval, now); err != nil {
		return nil, err
	}

	if approval.Status != before {
		if err := uow.ApprovalRepository().UpsertByAccount(ctx, approval); err != nil {
			return nil, err
		}

		s.logger.Info("approval", "Approval status changed", map[string]interface{}{
			"account_id": accountId,
			"from":       string(before),
			"to":         string(approval.Status),
			"actor":      approval.ApprovedBy,
		})

		if s.eventPublisher != nil {
			evt := events.NewApprovalChanged(accountId.String(), string(approval.Status), approval.ApprovedBy)
			if err := s.eventPublisher.Publish(ctx, evt); err != nil {
				fmt.Printf("[WARN] Failed to publish APPROVAL_CHANGED event: %v\n", err)
			}
		}
	}

	return approvalToResponse(approval), nil
}

func (s *approvalService) Stats(ctx context.Context) (*dto.ApprovalStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ApprovalRepository()

	pending, err := repo.CountByStatus(ctx, entity.ApprovalStatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := repo.CountByStatus(ctx, entity.ApprovalStatusApproved)
	if err != nil {
		return nil, err
	}
	rejected, err := repo.CountByStatus(ctx, entity.ApprovalStatusRejected)
	if err != nil {
		return nil, err
	}

	return &dto.ApprovalStatsResponse{
		Pending:  pending,
		Approved: approved,
		Rejected: rejected,
	}, nil
}

func approvalToResponse(approval *entity.Approval) *dto.ApprovalResponse {
	return &dto.ApprovalResponse{
		AccountId:      approval.AccountId,
		Status:         string(approval.Status),
		PlanId:         approval.Snapshot.PlanId,
		PlanName:       approval.Snapshot.PlanName,
		CatalogVersion: approval.Snapshot.CatalogVersion,
		ApprovedBy:     approval.ApprovedBy,
		ApprovedAt:     approval.ApprovedAt,
		UpdatedAt:      approval.UpdatedAt,
	}
}
