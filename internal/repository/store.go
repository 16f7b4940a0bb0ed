// Package repository provides account storage implementations.
package repository

import (
	"context"

	"github.com/ultimatebank/account-service/internal/models"
)

// AccountStore is the durable keyed collection of accounts.
//
// Insert ignores any caller-supplied id and always assigns a fresh, strictly
// increasing one. FindByID returns models.ErrNotFound when the id was never
// assigned.
type AccountStore interface {
	ListAll(ctx context.Context) ([]models.AccountRecord, error)
	Insert(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error)
	FindByID(ctx context.Context, id uint64) (*models.AccountRecord, error)
}

// FirstAccountID is the first id handed out by every store.
const FirstAccountID uint64 = 1000

var (
	_ AccountStore = (*PostgresAccountStore)(nil)
	_ AccountStore = (*MemoryAccountStore)(nil)
	_ AccountStore = (*CachedAccountStore)(nil)
)
