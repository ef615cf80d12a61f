package dto

import "github.com/crestbuild/ops_backend/internal/core/domain"

// CreateTeamMemberRequest defines the data needed to create a new team member.
// carddigits is a custom binding rule: exactly four digits when present.
type CreateTeamMemberRequest struct {
	Name         string  `json:"name" binding:"required"`
	CardLastFour *string `json:"card_last_four" binding:"omitempty,carddigits"`
	Title        *string `json:"title"`
	Department   *string `json:"department"`
	Email        *string `json:"email"`
}

// TeamMemberListResponse is the envelope returned by the team member list endpoint.
type TeamMemberListResponse struct {
	Success     bool                `json:"success"`
	TeamMembers []domain.TeamMember `json:"team_members"`
	Total       int                 `json:"total"`
	Query       string              `json:"query"`
}

// CreateTeamMemberResponse is the envelope returned after creating a team member.
type CreateTeamMemberResponse struct {
	Success    bool              `json:"success"`
	TeamMember domain.TeamMember `json:"team_member"`
	Message    string            `json:"message"`
}
