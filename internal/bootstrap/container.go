package bootstrap

import (
	"context"
	"log"

	"plan-migration-be/internal/config"
	"plan-migration-be/internal/controller"
	"plan-migration-be/internal/pkg/logger"
	"plan-migration-be/internal/pkg/mailer"
	"plan-migration-be/internal/repository/memory"
	"plan-migration-be/internal/repository/unitofwork"
	"plan-migration-be/internal/service"

	pkgNats "plan-migration-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const recomputeTopicName = "RECOMPUTE_RECOMMENDATION"

type Container struct {
	// Controllers
	CatalogController        controller.ICatalogController
	AccountController        controller.IAccountController
	RecommendationController controller.IRecommendationController
	ApprovalController       controller.IApprovalController
	BatchController          controller.IBatchController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for cmd/batch
	BatchService service.IBatchService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pkgNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// In-memory catalog snapshot cache
	snapshotCache := memory.NewCatalogSnapshotCache()

	// 3. Services
	publisherService := service.NewPublisherService(recomputeTopicName, pubSub)

	accountLocks := service.NewKeyedMutex()

	catalogService := service.NewCatalogService(uowFactory, snapshotCache, publisherService, natsPub, sysLogger)
	recommendationService := service.NewRecommendationService(uowFactory, catalogService, rdb, natsPub, emailService, accountLocks, sysLogger)
	approvalService := service.NewApprovalService(uowFactory, natsPub, accountLocks, sysLogger)
	accountService := service.NewAccountService(uowFactory, publisherService)
	batchService := service.NewBatchService(uowFactory, catalogService, recommendationService, cfg.Batch.Workers, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		recomputeTopicName,
		uowFactory,
		recommendationService,
		batchService,
	)

	// 4. Controllers
	return &Container{
		CatalogController:        controller.NewCatalogController(catalogService),
		AccountController:        controller.NewAccountController(accountService),
		RecommendationController: controller.NewRecommendationController(recommendationService),
		ApprovalController:       controller.NewApprovalController(approvalService),
		BatchController:          controller.NewBatchController(batchService),

		ConsumerService: consumerService,
		BatchService:    batchService,
	}
}
