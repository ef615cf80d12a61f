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

type PgxVendorRepository struct {
	BaseRepository
}

// newPgxVendorRepository creates a new repository for vendor data.
func newPgxVendorRepository(pool *pgxpool.Pool) portsrepo.VendorRepositoryFacade {
	return &PgxVendorRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.VendorRepositoryFacade = (*PgxVendorRepository)(nil)

// ListVendors retrieves all vendors ordered by name.
func (r *PgxVendorRepository) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	query := `
		SELECT id, name, description, contact, phone, email, address, created_at, updated_at
		FROM vendors
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query vendors: %w", err)
	}
	defer rows.Close()

	modelVendors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Vendor, error) {
		var vendor models.Vendor
		err := row.Scan(
			&vendor.ID,
			&vendor.Name,
			&vendor.Description,
			&vendor.Contact,
			&vendor.Phone,
			&vendor.Email,
			&vendor.Address,
			&vendor.CreatedAt,
			&vendor.UpdatedAt,
		)
		return vendor, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan vendors: %w", err)
	}

	return mapping.ToDomainVendorSlice(modelVendors), nil
}

// ReplaceVendors deletes every vendor row and re-inserts the given sequence
// inside one transaction, so a failed write leaves the prior rows intact.
func (r *PgxVendorRepository) ReplaceVendors(ctx context.Context, vendors []domain.Vendor) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM vendors;`); err != nil {
		return fmt.Errorf("failed to clear vendors: %w", err)
	}

	insert := `
		INSERT INTO vendors (id, name, description, contact, phone, email, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	for _, v := range vendors {
		modelVendor := mapping.ToModelVendor(v)
		if _, err := tx.Exec(ctx, insert,
			modelVendor.ID,
			modelVendor.Name,
			modelVendor.Description,
			modelVendor.Contact,
			modelVendor.Phone,
			modelVendor.Email,
			modelVendor.Address,
			modelVendor.CreatedAt,
			modelVendor.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert vendor %s: %w", modelVendor.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}
