package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portsrepo "github.com/crestbuild/ops_backend/internal/core/ports/repositories"
	"github.com/crestbuild/ops_backend/internal/dto"
)

var maxBuildersFee = decimal.NewFromInt(100)

// ProjectService manages the project table.
type ProjectService struct {
	projectRepo portsrepo.ProjectRepositoryFacade
}

func NewProjectService(projectRepo portsrepo.ProjectRepositoryFacade) *ProjectService {
	return &ProjectService{projectRepo: projectRepo}
}

// CreateProject validates the candidate, assigns the next identifier, and
// rewrites the project table with the new record appended.
func (s *ProjectService) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: project name cannot be empty", apperrors.ErrValidation)
	}

	var fee *decimal.Decimal
	if req.BuildersFee != nil {
		f := decimal.NewFromFloat(*req.BuildersFee)
		if f.IsNegative() || f.GreaterThan(maxBuildersFee) {
			return nil, fmt.Errorf("%w: builders fee must be between 0 and 100", apperrors.ErrValidation)
		}
		fee = &f
	}

	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects in service: %w", err)
	}

	for _, p := range projects {
		if strings.EqualFold(p.Name, name) {
			return nil, fmt.Errorf("%w: project %q already exists", apperrors.ErrDuplicate, name)
		}
	}

	now := time.Now()
	project := domain.Project{
		ID:          strconv.Itoa(len(projects) + 1),
		Name:        name,
		BuildersFee: fee,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	project.Description = optionalField(req.Description)
	project.Client = optionalField(req.Client)
	project.Status = optionalField(req.Status)
	project.StartDate = optionalField(req.StartDate)
	project.EndDate = optionalField(req.EndDate)

	projects = append(projects, project)
	if err := s.projectRepo.ReplaceProjects(ctx, projects); err != nil {
		return nil, fmt.Errorf("failed to save projects in service: %w", err)
	}

	return &project, nil
}

// ListProjects returns projects filtered by a case-insensitive name
// substring and capped at limit.
func (s *ProjectService) ListProjects(ctx context.Context, query string, limit int) ([]domain.Project, error) {
	projects, err := s.projectRepo.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects in service: %w", err)
	}

	filtered := make([]domain.Project, 0, len(projects))
	for _, p := range projects {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(query)) {
			continue
		}
		filtered = append(filtered, p)
		if limit > 0 && len(filtered) >= limit {
			break
		}
	}
	return filtered, nil
}
