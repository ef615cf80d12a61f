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

type PgxManualMatchRepository struct {
	BaseRepository
}

// newPgxManualMatchRepository creates a new repository for manual match data.
func newPgxManualMatchRepository(pool *pgxpool.Pool) portsrepo.ManualMatchRepositoryFacade {
	return &PgxManualMatchRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ManualMatchRepositoryFacade = (*PgxManualMatchRepository)(nil)

// ListMatches retrieves the full filename to transaction position map.
func (r *PgxManualMatchRepository) ListMatches(ctx context.Context) (domain.ManualMatches, error) {
	query := `
		SELECT filename, transaction_index
		FROM manual_matches;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query manual matches: %w", err)
	}
	defer rows.Close()

	matches := domain.ManualMatches{}
	for rows.Next() {
		var match models.ManualMatch
		if err := rows.Scan(&match.Filename, &match.TransactionIndex); err != nil {
			return nil, fmt.Errorf("failed to scan manual match: %w", err)
		}
		matches[match.Filename] = match.TransactionIndex
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read manual matches: %w", err)
	}

	return matches, nil
}

// ReplaceMatches deletes every match row and re-inserts the given map inside
// one transaction.
func (r *PgxManualMatchRepository) ReplaceMatches(ctx context.Context, matches domain.ManualMatches) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM manual_matches;`); err != nil {
		return fmt.Errorf("failed to clear manual matches: %w", err)
	}

	insert := `
		INSERT INTO manual_matches (filename, transaction_index, created_at)
		VALUES ($1, $2, $3);
	`
	now := time.Now()
	for filename, transactionIndex := range matches {
		match := models.ManualMatch{Filename: filename, TransactionIndex: transactionIndex, CreatedAt: now}
		if _, err := tx.Exec(ctx, insert, match.Filename, match.TransactionIndex, match.CreatedAt); err != nil {
			return fmt.Errorf("failed to insert manual match %q: %w", match.Filename, err)
		}
	}

	return r.Commit(ctx, tx)
}
