package services

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/dto"
)

var cardLastFourRe = regexp.MustCompile(`^\d{4}$`)

// TeamMemberService manages the team member table, including the uniqueness
// of assigned card suffixes.
type TeamMemberService struct {
	teamMemberRepo portsrepo.TeamMemberRepositoryFacade
}

func NewTeamMemberService(teamMemberRepo portsrepo.TeamMemberRepositoryFacade) *TeamMemberService {
	return &TeamMemberService{teamMemberRepo: teamMemberRepo}
}

// CreateTeamMember validates the candidate, assigns the next identifier, and
// rewrites the team member table with the new record appended. A card suffix,
// when given, must be four digits and not already assigned.
func (s *TeamMemberService) CreateTeamMember(ctx context.Context, req dto.CreateTeamMemberRequest) (*domain.TeamMember, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: team member name cannot be empty", apperrors.ErrValidation)
	}

	members, err := s.teamMemberRepo.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members in service: %w", err)
	}

	for _, m := range members {
		if strings.EqualFold(m.Name, name) {
			return nil, fmt.Errorf("%w: team member %q already exists", apperrors.ErrDuplicate, name)
		}
	}

	cardLastFour := optionalField(req.CardLastFour)
	if cardLastFour != "" {
		if !cardLastFourRe.MatchString(cardLastFour) {
			return nil, fmt.Errorf("%w: card last four must be exactly 4 digits", apperrors.ErrValidation)
		}
		for _, m := range members {
			if m.CardLastFour == cardLastFour {
				return nil, fmt.Errorf("%w: card number %s is already assigned to %s", apperrors.ErrDuplicate, cardLastFour, m.Name)
			}
		}
	}

	now := time.Now()
	member := domain.TeamMember{
		ID:           strconv.Itoa(len(members) + 1),
		Name:         name,
		CardLastFour: cardLastFour,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	member.Title = optionalField(req.Title)
	member.Department = optionalField(req.Department)
	member.Email = optionalField(req.Email)

	members = append(members, member)
	if err := s.teamMemberRepo.ReplaceTeamMembers(ctx, members); err != nil {
		return nil, fmt.Errorf("failed to save team members in service: %w", err)
	}

	return &member, nil
}

// ListTeamMembers returns team members filtered by a case-insensitive name
// substring and capped at limit.
func (s *TeamMemberService) ListTeamMembers(ctx context.Context, query string, limit int) ([]domain.TeamMember, error) {
	members, err := s.teamMemberRepo.ListTeamMembers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members in service: %w", err)
	}

	filtered := make([]domain.TeamMember, 0, len(members))
	for _, m := range members {
		if query != "" && !strings.Contains(strings.ToLower(m.Name), strings.ToLower(query)) {
			continue
		}
		filtered = append(filtered, m)
		if limit > 0 && len(filtered) >= limit {
			break
		}
	}
	return filtered, nil
}
