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

type PgxProjectRepository struct {
	BaseRepository
}

// newPgxProjectRepository creates a new repository for project data.
func newPgxProjectRepository(pool *pgxpool.Pool) portsrepo.ProjectRepositoryFacade {
	return &PgxProjectRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ProjectRepositoryFacade = (*PgxProjectRepository)(nil)

// ListProjects retrieves all projects ordered by name.
func (r *PgxProjectRepository) ListProjects(ctx context.Context) ([]domain.Project, error) {
	query := `
		SELECT id, name, description, client, status, start_date, end_date, builders_fee, created_at, updated_at
		FROM projects
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer rows.Close()

	modelProjects, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Project, error) {
		var project models.Project
		err := row.Scan(
			&project.ID,
			&project.Name,
			&project.Description,
			&project.Client,
			&project.Status,
			&project.StartDate,
			&project.EndDate,
			&project.BuildersFee,
			&project.CreatedAt,
			&project.UpdatedAt,
		)
		return project, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan projects: %w", err)
	}

	return mapping.ToDomainProjectSlice(modelProjects), nil
}

// ReplaceProjects deletes every project row and re-inserts the given
// sequence inside one transaction.
func (r *PgxProjectRepository) ReplaceProjects(ctx context.Context, projects []domain.Project) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM projects;`); err != nil {
		return fmt.Errorf("failed to clear projects: %w", err)
	}

	insert := `
		INSERT INTO projects (id, name, description, client, status, start_date, end_date, builders_fee, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	for _, p := range projects {
		modelProject := mapping.ToModelProject(p)
		if _, err := tx.Exec(ctx, insert,
			modelProject.ID,
			modelProject.Name,
			modelProject.Description,
			modelProject.Client,
			modelProject.Status,
			modelProject.StartDate,
			modelProject.EndDate,
			modelProject.BuildersFee,
			modelProject.CreatedAt,
			modelProject.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert project %s: %w", modelProject.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}
