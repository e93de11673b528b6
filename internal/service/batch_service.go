package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/pkg/logger"
	"plan-migration-be/internal/repository/unitofwork"
)

type IBatchService interface {
	// RecomputeAll reruns the pipeline for every stored account against one
	// pinned catalog snapshot. One bad account is reported and skipped,
	// never aborting the run.
	RecomputeAll(ctx context.Context) (*dto.BatchReportResponse, error)
}

type batchService struct {
	uowFactory            unitofwork.RepositoryFactory
	catalogService        ICatalogService
	recommendationService IRecommendationService
	workers               int
	logger                logger.ILogger
}

func NewBatchService(
	uowFactory unitofwork.RepositoryFactory,
	catalogService ICatalogService,
	recommendationService IRecommendationService,
	workers int,
	sysLogger logger.ILogger,
) IBatchService {
	if workers < 1 {
		workers = 1
	}
	return &batchService{
		uowFactory:            uowFactory,
		catalogService:        catalogService,
		recommendationService: recommendationService,
		workers:               workers,
		logger:                sysLogger,
	}
}

func (s *batchService) RecomputeAll(ctx context.Context) (*dto.BatchReportResponse, error) {
	started := time.Now()

	// Pin one snapshot up front; an override landing mid-run does not split
	// the batch across catalog versions.
	catalog, err := s.catalogService.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if catalog == nil || len(catalog.Plans) == 0 {
		return nil, engine.ErrNoCandidate
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	accounts, err := uow.AccountRepository().FindAll(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.BatchReportResponse{
		CatalogVersion: catalog.Version,
		Processed:      len(accounts),
	}

	jobs := make(chan *entity.Account)
	var mu sync.Mutex
	var wg sync.WaitGroup

	for w := 0; w < s.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for account := range jobs {
				rec, err := s.recommendationService.RecomputeWithCatalog(ctx, account, catalog)

				mu.Lock()
				switch {
				case errors.Is(err, engine.ErrNoCandidate):
					report.NoCandidate++
				case err != nil:
					report.Failed++
					report.Errors = append(report.Errors, dto.BatchAccountError{
						AccountId:   account.Id.String(),
						ExternalKey: account.ExternalKey,
						Error:       err.Error(),
					})
				default:
					report.Succeeded++
					if rec.HasGap() {
						report.PartialCoverage++
					}
				}
				mu.Unlock()
			}
		}()
	}

	for _, account := range accounts {
		jobs <- account
	}
	close(jobs)
	wg.Wait()

	report.DurationMs = time.Since(started).Milliseconds()

	s.logger.Info("batch", "Recompute run finished", map[string]interface{}{
		"catalog_version":  report.CatalogVersion,
		"processed":        report.Processed,
		"succeeded":        report.Succeeded,
		"failed":           report.Failed,
		"no_candidate":     report.NoCandidate,
		"partial_coverage": report.PartialCoverage,
		"duration_ms":      report.DurationMs,
	})

	return report, nil
}
