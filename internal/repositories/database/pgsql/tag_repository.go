package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxTransactionTagRepository struct {
	BaseRepository
}

// newPgxTransactionTagRepository creates a new repository for transaction tag data.
func newPgxTransactionTagRepository(pool *pgxpool.Pool) portsrepo.TransactionTagRepositoryFacade {
	return &PgxTransactionTagRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TransactionTagRepositoryFacade = (*PgxTransactionTagRepository)(nil)

// ListTags retrieves the full transaction position to tag list map.
func (r *PgxTransactionTagRepository) ListTags(ctx context.Context) (domain.TransactionTags, error) {
	query := `
		SELECT transaction_index, tags
		FROM transaction_tags;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query transaction tags: %w", err)
	}
	defer rows.Close()

	tags := domain.TransactionTags{}
	for rows.Next() {
		var tag models.TransactionTag
		if err := rows.Scan(&tag.TransactionIndex, &tag.Tags); err != nil {
			return nil, fmt.Errorf("failed to scan transaction tags: %w", err)
		}
		tags[tag.TransactionIndex] = tag.Tags
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transaction tags: %w", err)
	}

	return tags, nil
}

// ReplaceTags deletes every tag row and re-inserts the given map inside one
// transaction.
func (r *PgxTransactionTagRepository) ReplaceTags(ctx context.Context, tags domain.TransactionTags) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM transaction_tags;`); err != nil {
		return fmt.Errorf("failed to clear transaction tags: %w", err)
	}

	insert := `
		INSERT INTO transaction_tags (transaction_index, tags, created_at)
		VALUES ($1, $2, $3);
	`
	now := time.Now()
	for transactionIndex, tagList := range tags {
		tag := models.TransactionTag{TransactionIndex: transactionIndex, Tags: tagList, CreatedAt: now}
		if _, err := tx.Exec(ctx, insert, tag.TransactionIndex, tag.Tags, tag.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert tags for transaction %d: %w", tag.TransactionIndex, err)
		}
	}

	return r.Commit(ctx, tx)
}
