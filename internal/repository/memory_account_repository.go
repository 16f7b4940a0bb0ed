package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ultimatebank/account-service/internal/models"
)

// MemoryAccountStore keeps accounts in process memory. It is safe for
// concurrent use and intended for tests and local development.
type MemoryAccountStore struct {
	mu      sync.RWMutex
	nextID  uint64
	records []models.AccountRecord
	byID    map[uint64]int
	now     func() time.Time
}

func NewMemoryAccountStore() *MemoryAccountStore {
	return &MemoryAccountStore{
		nextID: FirstAccountID,
		byID:   make(map[uint64]int),
		now:    time.Now,
	}
}

func (s *MemoryAccountStore) ListAll(_ context.Context) ([]models.AccountRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.AccountRecord, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryAccountStore) Insert(_ context.Context, record models.AccountRecord) (models.AccountRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ID = s.nextID
	s.nextID++
	record.CreatedAt = s.now().UTC()

	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, record)
	return record, nil
}

func (s *MemoryAccountStore) FindByID(_ context.Context, id uint64) (*models.AccountRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return nil, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	rec := s.records[idx]
	return &rec, nil
}

func (s *MemoryAccountStore) PingContext(_ context.Context) error {
	return nil
}
