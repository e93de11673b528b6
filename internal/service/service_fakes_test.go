package service

import (
	"context"
	"sync"

	"plan-migration-be/internal/entity"
	"plan-migration-be/internal/repository/contract"
	"plan-migration-be/internal/repository/specification"
	"plan-migration-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests. They honor the
// single-row-per-account semantics of the real implementations.

type fakeStore struct {
	mu              sync.Mutex
	accounts        map[uuid.UUID]*entity.Account
	recommendations map[uuid.UUID]*entity.Recommendation
	approvals       map[uuid.UUID]*entity.Approval
	catalog         *entity.Catalog
	nextVersion     int
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:        make(map[uuid.UUID]*entity.Account),
		recommendations: make(map[uuid.UUID]*entity.Recommendation),
		approvals:       make(map[uuid.UUID]*entity.Approval),
		nextVersion:     1,
	}
}

type fakeUowFactory struct {
	store *fakeStore
}

func newFakeUowFactory(store *fakeStore) unitofwork.RepositoryFactory {
	return &fakeUowFactory{store: store}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &fakeUow{store: f.store}
}

type fakeUow struct {
	store *fakeStore
}

func (u *fakeUow) Begin(ctx context.Context) error { return nil }
func (u *fakeUow) Commit() error                   { return nil }
func (u *fakeUow) Rollback() error                 { return nil }

func (u *fakeUow) AccountRepository() contract.AccountRepository {
	return &fakeAccountRepo{store: u.store}
}

func (u *fakeUow) CatalogRepository() contract.CatalogRepository {
	return &fakeCatalogRepo{store: u.store}
}

func (u *fakeUow) RecommendationRepository() contract.RecommendationRepository {
	return &fakeRecommendationRepo{store: u.store}
}

func (u *fakeUow) ApprovalRepository() contract.ApprovalRepository {
	return &fakeApprovalRepo{store: u.store}
}

type fakeAccountRepo struct {
	store *fakeStore
}

func (r *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.accounts[account.Id] = account
	return nil
}

func (r *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	return r.Create(ctx, account)
}

func (r *fakeAccountRepo) UpsertByExternalKey(ctx context.Context, account *entity.Account) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.accounts {
		if existing.ExternalKey == account.ExternalKey {
			account.Id = existing.Id
			account.CreatedAt = existing.CreatedAt
			r.store.accounts[existing.Id] = account
			return nil
		}
	}
	r.store.accounts[account.Id] = account
	return nil
}

func (r *fakeAccountRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.accounts, id)
	return nil
}

func (r *fakeAccountRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, account := range r.store.accounts {
		if matchAccount(account, specs) {
			return account, nil
		}
	}
	return nil, nil
}

func (r *fakeAccountRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Account, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Account
	for _, account := range r.store.accounts {
		if matchAccount(account, specs) {
			result = append(result, account)
		}
	}
	return result, nil
}

func (r *fakeAccountRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	all, _ := r.FindAll(ctx, specs...)
	return int64(len(all)), nil
}

func matchAccount(account *entity.Account, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if account.Id != s.ID {
				return false
			}
		case specification.ByExternalKey:
			if account.ExternalKey != s.Key {
				return false
			}
		}
	}
	return true
}

type fakeCatalogRepo struct {
	store *fakeStore
}

func (r *fakeCatalogRepo) InstallCatalog(ctx context.Context, catalog *entity.Catalog) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	catalog.Version = r.store.nextVersion
	r.store.nextVersion++
	r.store.catalog = catalog
	return nil
}

func (r *fakeCatalogRepo) ActiveCatalog(ctx context.Context) (*entity.Catalog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.catalog, nil
}

func (r *fakeCatalogRepo) FindCatalog(ctx context.Context, version int) (*entity.Catalog, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.catalog != nil && r.store.catalog.Version == version {
		return r.store.catalog, nil
	}
	return nil, nil
}

type fakeRecommendationRepo struct {
	store *fakeStore
}

func (r *fakeRecommendationRepo) UpsertByAccount(ctx context.Context, rec *entity.Recommendation) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.recommendations[rec.AccountId] = rec
	return nil
}

func (r *fakeRecommendationRepo) FindByAccount(ctx context.Context, accountId uuid.UUID) (*entity.Recommendation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return r.store.recommendations[accountId], nil
}

func (r *fakeRecommendationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Recommendation, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Recommendation
	for _, rec := range r.store.recommendations {
		result = append(result, rec)
	}
	return result, nil
}

func (r *fakeRecommendationRepo) DeleteByAccount(ctx context.Context, accountId uuid.UUID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.recommendations, accountId)
	return nil
}

type fakeApprovalRepo struct {
	store *fakeStore
}

func (r *fakeApprovalRepo) UpsertByAccount(ctx context.Context, approval *entity.Approval) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	copied := *approval
	r.store.approvals[approval.AccountId] = &copied
	return nil
}

func (r *fakeApprovalRepo) FindByAccount(ctx context.Context, accountId uuid.UUID) (*entity.Approval, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if approval, ok := r.store.approvals[accountId]; ok {
		copied := *approval
		return &copied, nil
	}
	return nil, nil
}

func (r *fakeApprovalRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Approval, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var result []*entity.Approval
	for _, approval := range r.store.approvals {
		copied := *approval
		result = append(result, &copied)
	}
	return result, nil
}

func (r *fakeApprovalRepo) CountByStatus(ctx context.Context, status entity.ApprovalStatus) (int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var count int64
	for _, approval := range r.store.approvals {
		if approval.Status == status {
			count++
		}
	}
	return count, nil
}

// fakePublisher records published payloads instead of hitting a bus.
type fakePublisher struct {
	mu       sync.Mutex
	payloads [][]byte
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) published() [][]byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([][]byte(nil), p.payloads...)
}

// fakeMailer records approval reset notices.
type fakeMailer struct {
	mu    sync.Mutex
	sent  int
	calls []string
	done  chan struct{}
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{done: make(chan struct{}, 8)}
}

func (m *fakeMailer) SendApprovalInvalidated(toEmail, accountName, oldPlan, newPlan string) error {
	m.mu.Lock()
	m.sent++
	m.calls = append(m.calls, toEmail)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

func (m *fakeMailer) sentCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sent
}

// noopLogger satisfies the logging facade without output noise in tests.
type noopLogger struct{}

func (noopLogger) Debug(module, message string, details map[string]interface{}) {}
func (noopLogger) Info(module, message string, details map[string]interface{})  {}
func (noopLogger) Warn(module, message string, details map[string]interface{})  {}
func (noopLogger) Error(module, message string, details map[string]interface{}) {}
func (noopLogger) Sync() error                                                  { return nil }
