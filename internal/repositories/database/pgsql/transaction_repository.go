package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/models"
	"github.com/crestbuild/ops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for imported transactions.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

// ListTransactions retrieves the imported set in position order. Position is
// the identity every match and tag refers to, so the ordering here is load
// bearing.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	query := `
		SELECT position, date, vendor, amount, description, transaction_type, created_at
		FROM transactions
		ORDER BY position;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}
	defer rows.Close()

	modelTransactions, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Transaction, error) {
		var txn models.Transaction
		err := row.Scan(
			&txn.Position,
			&txn.Date,
			&txn.Vendor,
			&txn.Amount,
			&txn.Description,
			&txn.TransactionType,
			&txn.CreatedAt,
		)
		return txn, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan transactions: %w", err)
	}

	return mapping.ToDomainTransactionSlice(modelTransactions), nil
}

// ReplaceTransactions deletes the entire imported set and re-inserts the
// given sequence inside one transaction, assigning positions from slice order.
func (r *PgxTransactionRepository) ReplaceTransactions(ctx context.Context, transactions []domain.Transaction) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM transactions;`); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	insert := `
		INSERT INTO transactions (position, date, vendor, amount, description, transaction_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, modelTxn := range mapping.ToModelTransactionSlice(transactions, time.Now()) {
		if _, err := tx.Exec(ctx, insert,
			modelTxn.Position,
			modelTxn.Date,
			modelTxn.Vendor,
			modelTxn.Amount,
			modelTxn.Description,
			modelTxn.TransactionType,
			modelTxn.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert transaction %d: %w", modelTxn.Position, err)
		}
	}

	return r.Commit(ctx, tx)
}
