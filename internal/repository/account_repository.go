package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/lib/pq"
	"github.com/ultimatebank/account-service/internal/models"
)

// PostgresAccountStore persists accounts in the account table. Ids come from
// account_sequence, so concurrent inserts never collide.
type PostgresAccountStore struct {
	db *sql.DB
}

func NewPostgresAccountStore(db *sql.DB) *PostgresAccountStore {
	return &PostgresAccountStore{db: db}
}

func (r *PostgresAccountStore) ListAll(ctx context.Context) ([]models.AccountRecord, error) {
	query := `
		SELECT id, alias, balance, created_at
		FROM account
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", storeError(err))
	}
	defer rows.Close()

	records := make([]models.AccountRecord, 0)
	for rows.Next() {
		var rec models.AccountRecord
		if err := rows.Scan(&rec.ID, &rec.Alias, &rec.Balance, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", storeError(err))
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", storeError(err))
	}
	return records, nil
}

func (r *PostgresAccountStore) Insert(ctx context.Context, record models.AccountRecord) (models.AccountRecord, error) {
	query := `
		INSERT INTO account (id, alias, balance)
		VALUES (nextval('account_sequence'), $1, $2)
		RETURNING id, alias, balance, created_at
	`
	var created models.AccountRecord
	err := r.db.QueryRowContext(ctx, query, record.Alias, record.Balance).Scan(
		&created.ID, &created.Alias, &created.Balance, &created.CreatedAt,
	)
	if err != nil {
		return models.AccountRecord{}, fmt.Errorf("failed to create account: %w", storeError(err))
	}
	return created, nil
}

func (r *PostgresAccountStore) FindByID(ctx context.Context, id uint64) (*models.AccountRecord, error) {
	if id > math.MaxInt64 {
		return nil, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}

	query := `
		SELECT id, alias, balance, created_at
		FROM account
		WHERE id = $1
	`
	var rec models.AccountRecord
	err := r.db.QueryRowContext(ctx, query, int64(id)).Scan(&rec.ID, &rec.Alias, &rec.Balance, &rec.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("account %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", storeError(err))
	}
	return &rec, nil
}

// PingContext reports whether the database is reachable.
func (r *PostgresAccountStore) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// storeError classifies a driver error. Postgres data exceptions (class 22,
// e.g. an alias longer than the column) are validation failures; everything
// else is a store failure.
func storeError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "22" {
		return fmt.Errorf("%w: %s", models.ErrValidation, pqErr.Message)
	}
	return fmt.Errorf("%w: %w", models.ErrStore, err)
}
