package integration

import (
	"context"
	"log"
	"os"
	"testing"
	"time"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/repository/unitofwork"
	"plan-migration-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.AccountRepository())
	assert.NotNil(t, uow.CatalogRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	t.Run("Check Account Repository", func(t *testing.T) {
		count, err := uow.AccountRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("Account count: %d", count)
	})

	t.Run("Account Upsert By External Key", func(t *testing.T) {
		ctx := context.Background()
		key := "integration-" + uuid.New().String()

		account := &entity.Account{
			Id:               uuid.New(),
			ExternalKey:      key,
			Name:             "Integration Test Account",
			RequiredFeatures: entity.NewFeatureSet("storage", "api"),
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		require.NoError(t, uow.AccountRepository().UpsertByExternalKey(ctx, account))

		// Re-delivery with the same key must refresh, not duplicate.
		refreshed := &entity.Account{
			Id:               uuid.New(),
			ExternalKey:      key,
			Name:             "Integration Test Account Renamed",
			RequiredFeatures: entity.NewFeatureSet("storage", "api", "sso"),
			CreatedAt:        time.Now(),
			UpdatedAt:        time.Now(),
		}
		require.NoError(t, uow.AccountRepository().UpsertByExternalKey(ctx, refreshed))
		assert.Equal(t, account.Id, refreshed.Id)
	})

	t.Run("Catalog Install And Reload", func(t *testing.T) {
		ctx := context.Background()

		planId := uuid.New()
		catalog := &entity.Catalog{
			Source:     entity.CatalogSourceOverride,
			SuppliedBy: "integration-test",
			Plans: []entity.Plan{
				{
					Id:           planId,
					Name:         "Integration Plan",
					Slug:         "integration-" + uuid.New().String(),
					BaseFeatures: entity.NewFeatureSet("storage"),
					BaseCost:     7,
					IsActive:     true,
					AddOns: []entity.AddOn{
						{Id: uuid.New(), PlanId: planId, Name: "Mail Pack", Covers: entity.NewFeatureSet("email"), Cost: 2},
					},
				},
			},
		}

		require.NoError(t, uow.CatalogRepository().InstallCatalog(ctx, catalog))
		assert.Greater(t, catalog.Version, 0)

		active, err := uow.CatalogRepository().ActiveCatalog(ctx)
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, catalog.Version, active.Version)
		require.Len(t, active.Plans, 1)
		require.Len(t, active.Plans[0].AddOns, 1)
		assert.True(t, active.Plans[0].AddOns[0].Covers.Contains("email"))

		t.Log("Successfully installed and reloaded catalog version")
	})
}
