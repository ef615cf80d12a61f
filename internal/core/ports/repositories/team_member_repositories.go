package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// TeamMemberReader defines read operations for team member data.
type TeamMemberReader interface {
	// ListTeamMembers retrieves every team member, ordered by name.
	ListTeamMembers(ctx context.Context) ([]domain.TeamMember, error)
}

// TeamMemberWriter defines write operations for team member data.
type TeamMemberWriter interface {
	// ReplaceTeamMembers atomically replaces the whole team member table.
	ReplaceTeamMembers(ctx context.Context, members []domain.TeamMember) error
}

// TeamMemberRepositoryFacade combines all team-member-related repository interfaces.
type TeamMemberRepositoryFacade interface {
	TeamMemberReader
	TeamMemberWriter
}
