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

type PgxTeamMemberRepository struct {
	BaseRepository
}

// newPgxTeamMemberRepository creates a new repository for team member data.
func newPgxTeamMemberRepository(pool *pgxpool.Pool) portsrepo.TeamMemberRepositoryFacade {
	return &PgxTeamMemberRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TeamMemberRepositoryFacade = (*PgxTeamMemberRepository)(nil)

// ListTeamMembers retrieves all team members ordered by name.
func (r *PgxTeamMemberRepository) ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error) {
	query := `
		SELECT id, name, card_last_four, title, department, email, created_at, updated_at
		FROM team_members
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query team members: %w", err)
	}
	defer rows.Close()

	modelMembers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.TeamMember, error) {
		var member models.TeamMember
		err := row.Scan(
			&member.ID,
			&member.Name,
			&member.CardLastFour,
			&member.Title,
			&member.Department,
			&member.Email,
			&member.CreatedAt,
			&member.UpdatedAt,
		)
		return member, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan team members: %w", err)
	}

	return mapping.ToDomainTeamMemberSlice(modelMembers), nil
}

// ReplaceTeamMembers deletes every team member row and re-inserts the given
// sequence inside one transaction.
func (r *PgxTeamMemberRepository) ReplaceTeamMembers(ctx context.Context, members []domain.TeamMember) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, `DELETE FROM team_members;`); err != nil {
		return fmt.Errorf("failed to clear team members: %w", err)
	}

	insert := `
		INSERT INTO team_members (id, name, card_last_four, title, department, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	for _, m := range members {
		modelMember := mapping.ToModelTeamMember(m)
		if _, err := tx.Exec(ctx, insert,
			modelMember.ID,
			modelMember.Name,
			modelMember.CardLastFour,
			modelMember.Title,
			modelMember.Department,
			modelMember.Email,
			modelMember.CreatedAt,
			modelMember.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to insert team member %s: %w", modelMember.ID, err)
		}
	}

	return r.Commit(ctx, tx)
}
