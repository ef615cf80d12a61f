package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// TeamMemberReaderSvc defines read operations for team member data.
type TeamMemberReaderSvc interface {
	// ListTeamMembers retrieves team members whose name contains query
	// (case-insensitive), capped at limit.
	ListTeamMembers(ctx context.Context, query string, limit int) ([]domain.TeamMember, error)
}

// TeamMemberWriterSvc defines write operations for team member data.
type TeamMemberWriterSvc interface {
	// CreateTeamMember validates and persists a new team member.
	CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*domain.TeamMember, error)
}

// TeamMemberSvcFacade combines all team-member-related service interfaces.
type TeamMemberSvcFacade interface {
	TeamMemberReaderSvc
	TeamMemberWriterSvc
}
