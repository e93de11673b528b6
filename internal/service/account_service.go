package service

import (
	"context"
	"encoding/json"
	"time"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/repository/specification"
	"plan-migration-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type IAccountService interface {
	// Upsert stores a normalized account by its source-system key and
	// queues a recompute for it. Re-delivery refreshes the stored row.
	Upsert(ctx context.Context, req *dto.UpsertAccountRequest) (*dto.UpsertAccountResponse, error)
	Show(ctx context.Context, id uuid.UUID) (*dto.AccountResponse, error)
	Index(ctx context.Context) ([]*dto.AccountResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type accountService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
}

func NewAccountService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
) IAccountService {
	return &accountService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
	}
}

func (s *accountService) Upsert(ctx context.Context, req *dto.UpsertAccountRequest) (*dto.UpsertAccountResponse, error) {
	account := &entity.Account{
		Id:               uuid.New(),
		ExternalKey:      req.ExternalKey,
		Name:             req.Name,
		RequiredFeatures: entity.NewFeatureSet(req.RequiredFeatures...),
		UsageWeight:      req.UsageWeight,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}
	if err := engine.ValidateAccount(account); err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.AccountRepository().UpsertByExternalKey(ctx, account); err != nil {
		return nil, err
	}

	msgJson, err := json.Marshal(dto.PublishRecomputeMessage{AccountId: account.Id, Reason: "account_upsert"})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	return &dto.UpsertAccountResponse{Id: account.Id}, nil
}

func (s *accountService) Show(ctx context.Context, id uuid.UUID) (*dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}
	return accountToResponse(account), nil
}

func (s *accountService) Index(ctx context.Context) ([]*dto.AccountResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	accounts, err := uow.AccountRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.AccountResponse, 0, len(accounts))
	for _, account := range accounts {
		result = append(result, accountToResponse(account))
	}
	return result, nil
}

func (s *accountService) Delete(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	// Derived rows go with the account.
	if err := uow.RecommendationRepository().DeleteByAccount(ctx, id); err != nil {
		return err
	}
	if err := uow.AccountRepository().Delete(ctx, id); err != nil {
		return err
	}

	return uow.Commit()
}

func accountToResponse(account *entity.Account) *dto.AccountResponse {
	return &dto.AccountResponse{
		Id:               account.Id,
		ExternalKey:      account.ExternalKey,
		Name:             account.Name,
		RequiredFeatures: account.RequiredFeatures.Sorted(),
		UsageWeight:      account.UsageWeight,
		CreatedAt:        account.CreatedAt,
		UpdatedAt:        account.UpdatedAt,
	}
}
