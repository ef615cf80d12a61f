package pgsql

import (
	"context"
	"fmt"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/models"
	"github.com/crestbuild/ops_backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReimbursementRepository struct {
	BaseRepository
}

// newPgxReimbursementRepository creates a new repository for reimbursement data.
func newPgxReimbursementRepository(pool *pgxpool.Pool) portsrepo.ReimbursementRepositoryFacade {
	return &PgxReimbursementRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReimbursementRepositoryFacade = (*PgxReimbursementRepository)(nil)

// ListReimbursements retrieves all reimbursements, newest date first.
func (r *PgxReimbursementRepository) ListReimbursements(ctx context.Context) ([]domain.Reimbursement, error) {
	query := `
		SELECT id, vendor, amount, date, description, created_at, updated_at
		FROM reimbursements
		ORDER BY date DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query reimbursements: %w", err)
	}
	defer rows.Close()

	modelReimbursements, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Reimbursement, error) {
		var reimbursement models.Reimbursement
		err := row.Scan(
			&reimbursement.ID,
			&reimbursement.Vendor,
			&reimbursement.Amount,
			&reimbursement.Date,
			&reimbursement.Description,
			&reimbursement.CreatedAt,
			&reimbursement.UpdatedAt,
		)
		return reimbursement, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reimbursements: %w", err)
	}

	return mapping.ToDomainReimbursementSlice(modelReimbursements), nil
}

// ReplaceReimbursements deletes every reimbursement row and re-inserts the
// given sequence inside one transaction.
func (r *PgxReimbursementRepository) ReplaceReimbursements(ctx context.Context, reimbursements []domain.Reimbursement) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM reimbursements;`); err != nil {
		return fmt.Errorf("failed to clear reimbursements: %w", err)
	}

	insert := `
		INSERT INTO reimbursements (id, vendor, amount, date, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, reimbursement := range reimbursements {
		modelReimbursement := mapping.ToModelReimbursement(reimbursement)
		if _, err := tx.Exec(ctx, insert,
			modelReimbursement.ID,
			modelReimbursement.Vendor,
			modelReimbursement.Amount,
			modelReimbursement.Date,
			modelReimbursement.Description,
			modelReimbursement.CreatedAt,
			modelReimbursement.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert reimbursement %d: %w", modelReimbursement.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}
