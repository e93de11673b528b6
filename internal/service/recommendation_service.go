package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/pkg/logger"
	"plan-migration-be/internal/pkg/mailer"
	"plan-migration-be/internal/repository/specification"
	"plan-migration-be/internal/repository/unitofwork"
	"plan-migration-be/pkg/events"
	pkgNats "plan-migration-be/pkg/nats"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const recommendationCacheTTL = 10 * time.Minute

type IRecommendationService interface {
	// Get returns the stored recommendation for one account. Nil when the
	// account exists but has no computation yet.
	Get(ctx context.Context, accountId uuid.UUID) (*dto.RecommendationResponse, error)

	// Recompute runs the full pipeline for one account against the active
	// catalog and stores the result. Returns ErrNoCandidate when the
	// catalog has no plans to offer.
	Recompute(ctx context.Context, accountId uuid.UUID) (*dto.RecommendationResponse, error)

	// RecomputeWithCatalog runs the pipeline for an already loaded account
	// against a pinned catalog snapshot. Batch runs use this so every
	// account in one run sees the same catalog version.
	RecomputeWithCatalog(ctx context.Context, account *entity.Account, catalog *entity.Catalog) (*entity.Recommendation, error)
}

type recommendationService struct {
	uowFactory     unitofwork.RepositoryFactory
	catalogService ICatalogService
	rdb            *redis.Client
	eventPublisher *pkgNats.Publisher
	emailService   mailer.IEmailService
	locks          *KeyedMutex
	logger         logger.ILogger
}

func NewRecommendationService(
	uowFactory unitofwork.RepositoryFactory,
	catalogService ICatalogService,
	rdb *redis.Client,
	eventPublisher *pkgNats.Publisher,
	emailService mailer.IEmailService,
	locks *KeyedMutex,
	sysLogger logger.ILogger,
) IRecommendationService {
	return &recommendationService{
		uowFactory:     uowFactory,
		catalogService: catalogService,
		rdb:            rdb,
		eventPublisher: eventPublisher,
		emailService:   emailService,
		locks:          locks,
		logger:         sysLogger,
	}
}

func (s *recommendationService) Get(ctx context.Context, accountId uuid.UUID) (*dto.RecommendationResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey(accountId)).Result()
		if err == nil {
			var response dto.RecommendationResponse
			if err := json.Unmarshal([]byte(cached), &response); err == nil {
				return &response, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			s.logger.Warn("recommendation", "Redis read failed, falling back to database", map[string]interface{}{
				"account_id": accountId,
				"error":      err.Error(),
			})
		}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	rec, err := uow.RecommendationRepository().FindByAccount(ctx, accountId)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}

	response := recommendationToResponse(rec)
	s.cacheResponse(ctx, accountId, response)
	return response, nil
}

func (s *recommendationService) Recompute(ctx context.Context, accountId uuid.UUID) (*dto.RecommendationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	account, err := uow.AccountRepository().FindOne(ctx, specification.ByID{ID: accountId})
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, nil
	}

	catalog, err := s.catalogService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if catalog == nil || len(catalog.Plans) == 0 {
		return nil, engine.ErrNoCandidate
	}

	rec, err := s.RecomputeWithCatalog(ctx, account, catalog)
	if err != nil {
		return nil, err
	}

	response := recommendationToResponse(rec)
	s.cacheResponse(ctx, accountId, response)
	return response, nil
}

// RecomputeWithCatalog is the single write path for recommendations. It holds
// the account's lock across compute, store and approval reconciliation so a
// concurrent recompute can never leave an approval pointing at a
// recommendation it was not reconciled against.
func (s *recommendationService) RecomputeWithCatalog(ctx context.Context, account *entity.Account, catalog *entity.Catalog) (*entity.Recommendation, error) {
	if err := engine.ValidateAccount(account); err != nil {
		return nil, err
	}

	unlock := s.locks.Lock(account.Id.String())
	defer unlock()

	now := time.Now()
	ranked := engine.Rank(account, catalog.Plans)
	rec, err := engine.Build(account, catalog.Version, ranked, now)
	if err != nil {
		return nil, err
	}
	rec.Id = uuid.New()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.RecommendationRepository().UpsertByAccount(ctx, rec); err != nil {
		return nil, err
	}

	approval, err := uow.ApprovalRepository().FindByAccount(ctx, account.Id)
	if err != nil {
		return nil, err
	}

	var invalidatedPlan, invalidatedReviewer string
	if approval == nil {
		approval = engine.NewPendingApproval(rec, now)
		approval.Id = uuid.New()
		if err := uow.ApprovalRepository().UpsertByAccount(ctx, approval); err != nil {
			return nil, err
		}
	} else {
		wasApproved := approval.Status == entity.ApprovalStatusApproved
		oldPlan := approval.Snapshot.PlanName
		oldReviewer := approval.ApprovedBy
		if engine.Reconcile(approval, rec, now) {
			if err := uow.ApprovalRepository().UpsertByAccount(ctx, approval); err != nil {
				return nil, err
			}
			if wasApproved {
				invalidatedPlan = oldPlan
				invalidatedReviewer = oldReviewer
			}
		}
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx, account.Id)

	s.logger.Info("recommendation", "Recommendation computed", map[string]interface{}{
		"account_id":      account.Id,
		"plan":            rec.PlanName,
		"coverage_score":  rec.CoverageScore,
		"total_cost":      rec.TotalCost,
		"catalog_version": rec.CatalogVersion,
		"has_gap":         rec.HasGap(),
	})

	if invalidatedReviewer != "" {
		s.notifyApprovalReset(invalidatedReviewer, account.Name, invalidatedPlan, rec.PlanName)
	}

	if s.eventPublisher != nil {
		evt := events.NewRecommendationComputed(account.Id.String(), rec.PlanId.String(), rec.CatalogVersion, rec.CoverageScore)
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish RECOMMENDATION_COMPUTED event: %v\n", err)
		}
	}

	return rec, nil
}

// notifyApprovalReset emails the reviewer whose approval was forced back to
// pending. Best effort; a mail failure never fails the recompute.
func (s *recommendationService) notifyApprovalReset(reviewerEmail, accountName, oldPlan, newPlan string) {
	if s.emailService == nil {
		return
	}
	go func() {
		if err := s.emailService.SendApprovalInvalidated(reviewerEmail, accountName, oldPlan, newPlan); err != nil {
			s.logger.Warn("recommendation", "Approval reset notice failed", map[string]interface{}{
				"reviewer": reviewerEmail,
				"error":    err.Error(),
			})
		}
	}()
}

func (s *recommendationService) cacheResponse(ctx context.Context, accountId uuid.UUID, response *dto.RecommendationResponse) {
	if s.rdb == nil {
		return
	}
	payload, err := json.Marshal(response)
	if err != nil {
		return
	}
	if err := s.rdb.Set(ctx, cacheKey(accountId), payload, recommendationCacheTTL).Err(); err != nil {
		s.logger.Warn("recommendation", "Redis write failed", map[string]interface{}{
			"account_id": accountId,
			"error":      err.Error(),
		})
	}
}

func (s *recommendationService) invalidateCache(ctx context.Context, accountId uuid.UUID) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, cacheKey(accountId)).Err(); err != nil {
		s.logger.Warn("recommendation", "Redis delete failed", map[string]interface{}{
			"account_id": accountId,
			"error":      err.Error(),
		})
	}
}

func cacheKey(accountId uuid.UUID) string {
	return "recommendation:" + accountId.String()
}

func recommendationToResponse(rec *entity.Recommendation) *dto.RecommendationResponse {
	return &dto.RecommendationResponse{
		AccountId:      rec.AccountId,
		CatalogVersion: rec.CatalogVersion,
		PlanId:         rec.PlanId,
		PlanName:       rec.PlanName,
		AddOns:         chosenAddOnsToDTO(rec.AddOns),
		UnmetFeatures:  rec.UnmetFeatures.Sorted(),
		BloatFeatures:  rec.BloatFeatures.Sorted(),
		BloatCount:     rec.BloatFeatures.Len(),
		CoverageScore:  rec.CoverageScore,
		TotalCost:      rec.TotalCost,
		HasGap:         rec.HasGap(),
		Alternatives:   rankedToDTO(rec.Alternatives),
		ComputedAt:     rec.ComputedAt,
	}
}

func chosenAddOnsToDTO(addOns []entity.ChosenAddOn) []dto.ChosenAddOnDTO {
	result := make([]dto.ChosenAddOnDTO, 0, len(addOns))
	for _, a := range addOns {
		result = append(result, dto.ChosenAddOnDTO{
			Id:     a.Id,
			Name:   a.Name,
			Covers: a.Covers.Sorted(),
			Cost:   a.Cost,
		})
	}
	return result
}

func rankedToDTO(entries []entity.PlanRankEntry) []dto.RankedPlanDTO {
	result := make([]dto.RankedPlanDTO, 0, len(entries))
	for _, e := range entries {
		result = append(result, dto.RankedPlanDTO{
			PlanId:        e.PlanId,
			PlanName:      e.PlanName,
			CoverageScore: e.CoverageScore,
			TotalCost:     e.TotalCost,
			AddOns:        chosenAddOnsToDTO(e.AddOns),
			UnmetFeatures: e.UnmetFeatures.Sorted(),
			BloatFeatures: e.BloatFeatures.Sorted(),
			BloatCount:    e.BloatFeatures.Len(),
		})
	}
	return result
}
