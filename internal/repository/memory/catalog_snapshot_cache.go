package memory

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"

	"plan-migration-be/internal/entity"
)

const activeKey = "active"

// CatalogSnapshotCache keeps recently loaded catalog versions in memory so a
// batch over thousands of accounts pins one snapshot without re-reading the
// database. Installing an override flushes the active entry.
type CatalogSnapshotCache struct {
	cache *cache.Cache
}

func NewCatalogSnapshotCache() *CatalogSnapshotCache {
	// Catalog versions are immutable once installed; the TTL only bounds
	// memory, not correctness.
	c := cache.New(30*time.Minute, 10*time.Minute)
	return &CatalogSnapshotCache{
		cache: c,
	}
}

func (c *CatalogSnapshotCache) GetActive() (*entity.Catalog, bool) {
	if x, found := c.cache.Get(activeKey); found {
		return x.(*entity.Catalog), true
	}
	return nil, false
}

func (c *CatalogSnapshotCache) SetActive(catalog *entity.Catalog) {
	c.cache.Set(activeKey, catalog, cache.DefaultExpiration)
	c.cache.Set(versionKey(catalog.Version), catalog, cache.DefaultExpiration)
}

func (c *CatalogSnapshotCache) GetVersion(version int) (*entity.Catalog, bool) {
	if x, found := c.cache.Get(versionKey(version)); found {
		return x.(*entity.Catalog), true
	}
	return nil, false
}

// InvalidateActive drops the active pointer; pinned version entries stay
// valid for batches still running against them.
func (c *CatalogSnapshotCache) InvalidateActive() {
	c.cache.Delete(activeKey)
}

func versionKey(version int) string {
	return "version:" + strconv.Itoa(version)
}
