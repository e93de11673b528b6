package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"plan-migration-be/internal/dto"
	"plan-migration-be/internal/engine"
	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/pkg/logger"
	"plan-migration-be/internal/repository/memory"
	"plan-migration-be/internal/repository/unitofwork"
	"plan-migration-be/pkg/events"
	pkgNats "plan-migration-be/pkg/nats"

	"github.com/google/uuid"
)

type ICatalogService interface {
	// GetActiveCatalog returns the live catalog version for the reviewer UI.
	GetActiveCatalog(ctx context.Context) (*dto.CatalogResponse, error)

	// InstallOverride replaces the active catalog wholesale with the
	// supplied plans and queues a recompute for every account.
	InstallOverride(ctx context.Context, req *dto.InstallOverrideRequest) (*dto.CatalogResponse, error)

	// Snapshot loads the active catalog as an entity, serving it from the
	// in-memory cache when possible. Returns nil when no catalog is
	// installed yet.
	Snapshot(ctx context.Context) (*entity.Catalog, error)
}

type catalogService struct {
	uowFactory       unitofwork.RepositoryFactory
	snapshotCache    *memory.CatalogSnapshotCache
	publisherService IPublisherService
	eventPublisher   *pkgNats.Publisher
	logger           logger.ILogger
}

func NewCatalogService(
	uowFactory unitofwork.RepositoryFactory,
	snapshotCache *memory.CatalogSnapshotCache,
	publisherService IPublisherService,
	eventPublisher *pkgNats.Publisher,
	sysLogger logger.ILogger,
) ICatalogService {
	return &catalogService{
		uowFactory:       uowFactory,
		snapshotCache:    snapshotCache,
		publisherService: publisherService,
		eventPublisher:   eventPublisher,
		logger:           sysLogger,
	}
}

func (s *catalogService) Snapshot(ctx context.Context) (*entity.Catalog, error) {
	if cached, found := s.snapshotCache.GetActive(); found {
		return cached, nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	catalog, err := uow.CatalogRepository().ActiveCatalog(ctx)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, nil
	}

	s.snapshotCache.SetActive(catalog)
	return catalog, nil
}

func (s *catalogService) GetActiveCatalog(ctx context.Context) (*dto.CatalogResponse, error) {
	catalog, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	if catalog == nil {
		return nil, engine.ErrNoCandidate
	}
	return catalogToResponse(catalog), nil
}

func (s *catalogService) InstallOverride(ctx context.Context, req *dto.InstallOverrideRequest) (*dto.CatalogResponse, error) {
	catalog := &entity.Catalog{
		Source:     entity.CatalogSourceOverride,
		SuppliedBy: req.SuppliedBy,
		Plans:      make([]entity.Plan, 0, len(req.Plans)),
	}

	slugs := make(map[string]struct{}, len(req.Plans))
	for i, p := range req.Plans {
		if _, dup := slugs[p.Slug]; dup {
			return nil, &engine.InputError{Record: "plan", Key: p.Slug, Reason: "duplicate plan slug"}
		}
		slugs[p.Slug] = struct{}{}

		planId := uuid.New()
		plan := entity.Plan{
			Id:           planId,
			Position:     i,
			Name:         p.Name,
			Slug:         p.Slug,
			BaseFeatures: entity.NewFeatureSet(p.BaseFeatures...),
			BaseCost:     p.BaseCost,
			IsActive:     true,
			AddOns:       make([]entity.AddOn, 0, len(p.AddOns)),
		}
		for j, a := range p.AddOns {
			plan.AddOns = append(plan.AddOns, entity.AddOn{
				Id:       uuid.New(),
				PlanId:   planId,
				Position: j,
				Name:     a.Name,
				Covers:   entity.NewFeatureSet(a.Covers...),
				Cost:     a.Cost,
			})
		}
		catalog.Plans = append(catalog.Plans, plan)
	}

	if errs := engine.ValidateCatalog(catalog.Plans); len(errs) > 0 {
		return nil, errs[0]
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.CatalogRepository().InstallCatalog(ctx, catalog); err != nil {
		return nil, err
	}

	s.snapshotCache.InvalidateActive()
	s.snapshotCache.SetActive(catalog)

	s.logger.Info("catalog", "Override catalog installed", map[string]interface{}{
		"version":     catalog.Version,
		"supplied_by": catalog.SuppliedBy,
		"plan_count":  len(catalog.Plans),
	})

	// Every stored recommendation may now be stale.
	msgJson, err := json.Marshal(dto.PublishRecomputeMessage{All: true, Reason: "catalog_override"})
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		return nil, err
	}

	if s.eventPublisher != nil {
		evt := events.NewCatalogInstalled(catalog.Version, string(catalog.Source), len(catalog.Plans))
		if err := s.eventPublisher.Publish(ctx, evt); err != nil {
			fmt.Printf("[WARN] Failed to publish CATALOG_INSTALLED event: %v\n", err)
		}
	}

	return catalogToResponse(catalog), nil
}

func catalogToResponse(catalog *entity.Catalog) *dto.CatalogResponse {
	plans := make([]dto.PlanResponse, 0, len(catalog.Plans))
	for _, p := range catalog.Plans {
		addOns := make([]dto.AddOnResponse, 0, len(p.AddOns))
		for _, a := range p.AddOns {
			addOns = append(addOns, dto.AddOnResponse{
				Id:     a.Id,
				Name:   a.Name,
				Covers: a.Covers.Sorted(),
				Cost:   a.Cost,
			})
		}
		plans = append(plans, dto.PlanResponse{
			Id:           p.Id,
			Name:         p.Name,
			Slug:         p.Slug,
			BaseFeatures: p.BaseFeatures.Sorted(),
			BaseCost:     p.BaseCost,
			AddOns:       addOns,
		})
	}
	return &dto.CatalogResponse{
		Version:    catalog.Version,
		Source:     string(catalog.Source),
		SuppliedBy: catalog.SuppliedBy,
		Plans:      plans,
		CreatedAt:  catalog.CreatedAt,
	}
}

// DefaultSeedCatalog is the built-in catalog installed by the seeder when no
// version exists yet. Kept here so the seeder and tests share one source.
func DefaultSeedCatalog() *entity.Catalog {
	basicId := uuid.New()
	standardId := uuid.New()
	premiumId := uuid.New()

	return &entity.Catalog{
		Source: entity.CatalogSourceSeed,
		Plans: []entity.Plan{
			{
				Id:           basicId,
				Position:     0,
				Name:         "Basic",
				Slug:         "basic",
				BaseFeatures: entity.NewFeatureSet("storage", "email"),
				BaseCost:     5,
				IsActive:     true,
				AddOns: []entity.AddOn{
					{Id: uuid.New(), PlanId: basicId, Position: 0, Name: "Reporting Pack", Covers: entity.NewFeatureSet("reporting"), Cost: 3},
					{Id: uuid.New(), PlanId: basicId, Position: 1, Name: "API Access", Covers: entity.NewFeatureSet("api"), Cost: 4},
				},
			},
			{
				Id:           standardId,
				Position:     1,
				Name:         "Standard",
				Slug:         "standard",
				BaseFeatures: entity.NewFeatureSet("storage", "email", "reporting"),
				BaseCost:     10,
				IsActive:     true,
				AddOns: []entity.AddOn{
					{Id: uuid.New(), PlanId: standardId, Position: 0, Name: "API Access", Covers: entity.NewFeatureSet("api"), Cost: 3},
					{Id: uuid.New(), PlanId: standardId, Position: 1, Name: "SSO", Covers: entity.NewFeatureSet("sso"), Cost: 5},
				},
			},
			{
				Id:           premiumId,
				Position:     2,
				Name:         "Premium",
				Slug:         "premium",
				BaseFeatures: entity.NewFeatureSet("storage", "email", "reporting", "api", "sso"),
				BaseCost:     20,
				IsActive:     true,
				AddOns: []entity.AddOn{
					{Id: uuid.New(), PlanId: premiumId, Position: 0, Name: "Audit Logs", Covers: entity.NewFeatureSet("audit"), Cost: 6},
				},
			},
		},
		CreatedAt: time.Now(),
	}
}
