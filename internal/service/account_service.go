// Package service holds the account business operations. It is independent
// of any transport and performs no HTTP-specific error shaping.
package service

import (
	"context"

	"github.com/ultimatebank/account-service/internal/events"
	"github.com/ultimatebank/account-service/internal/models"
	"github.com/ultimatebank/account-service/internal/repository"
	"go.uber.org/zap"
)

// EventPublisher emits domain events. A nil publisher disables events.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountService maps store records to API accounts. It holds no state of
// its own.
type AccountService struct {
	store     repository.AccountStore
	publisher EventPublisher
	logger    *zap.Logger
}

func NewAccountService(store repository.AccountStore, publisher EventPublisher, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{store: store, publisher: publisher, logger: logger}
}

// ReadAccounts returns every account in id order; never nil.
func (s *AccountService) ReadAccounts(ctx context.Context) ([]models.Account, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	accounts := make([]models.Account, 0, len(records))
	for _, rec := range records {
		accounts = append(accounts, rec.ToAccount())
	}
	return accounts, nil
}

// ReadAccount returns models.ErrNotFound when no account has the id.
func (s *AccountService) ReadAccount(ctx context.Context, id uint64) (*models.Account, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	account := rec.ToAccount()
	return &account, nil
}

// CreateAccount persists the account under a store-assigned id. Any id the
// caller supplied is discarded.
func (s *AccountService) CreateAccount(ctx context.Context, account models.Account) (*models.Account, error) {
	record := account.ToRecord()
	record.ID = 0

	created, err := s.store.Insert(ctx, record)
	if err != nil {
		return nil, err
	}
	result := created.ToAccount()

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.AccountEventsStream, events.AccountCreated, events.AccountCreatedEvent{
			ID:      result.ID,
			Alias:   result.Alias,
			Balance: result.Balance,
		}); err != nil {
			s.logger.Warn("failed to publish account.created event", zap.Uint64("account_id", result.ID), zap.Error(err))
		}
	}
	return &result, nil
}
