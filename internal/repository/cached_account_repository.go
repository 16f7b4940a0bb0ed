package repository

import (
	"context"
	"strconv"

	"github.com/ultimatebank/account-service/internal/models"
)

const accountViewKeyPrefix = "account:view:"

// RecordCache is the subset of redis.ViewCache used for account records.
type RecordCache interface {
	Get(ctx context.Context, key string) (*models.AccountRecord, bool)
	Set(ctx context.Context, key string, value *models.AccountRecord)
}

// CachedAccountStore fronts an AccountStore with a read-through cache.
// Lookups try the cache first and warm it on a miss; inserts warm it too.
// Listing always goes to the underlying store.
type CachedAccountStore struct {
	store AccountStore
	cache RecordCache
}

func NewCachedAccountStore(store AccountStore, cache RecordCache) *CachedAccountStore {
	return &CachedAccountStore{store: store, cache: cache}
}

func accountKey(id uint64) string {
	return accountViewKeyPrefix + strconv.FormatUint(id, 10)
}

func (r *CachedAccountStore) ListAll(ctx context.Context) ([]models.AccountRecord, error) {
	return r.store.ListAll(ctx)
}

func (r *CachedAccountStore) Insert(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error) {
	created, err := r.store.Insert(ctx, record)
	if err != nil {
		return models.AccountRecord{}, err
	}
	r.cache.Set(ctx, accountKey(created.ID), &created)
	return created, nil
}

func (r *CachedAccountStore) FindByID(ctx context.Context, id uint64) (*models.AccountRecord, error) {
	if rec, ok := r.cache.Get(ctx, accountKey(id)); ok {
		return rec, nil
	}

	rec, err := r.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	r.cache.Set(ctx, accountKey(id), rec)
	return rec, nil
}

// PingContext delegates to the underlying store when it supports health checks.
func (r *CachedAccountStore) PingContext(ctx context.Context) error {
	if p, ok := r.store.(interface{ PingContext(context.Context) error }); ok {
		return p.PingContext(ctx)
	}
	return nil
}
