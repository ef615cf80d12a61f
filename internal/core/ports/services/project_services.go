package services

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
	"github.com/crestbuild/ops_backend/internal/dto"
)

// ProjectReaderSvc defines read operations for project data.
type ProjectReaderSvc interface {
	// ListProjects retrieves projects whose name contains query
	// (case-insensitive), capped at limit.
	ListProjects(ctx context.Context, query string, limit int) ([]domain.Project, error)
}

// ProjectWriterSvc defines write operations for project data.
type ProjectWriterSvc interface {
	// CreateProject validates and persists a new project.
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*domain.Project, error)
}

// ProjectSvcFacade combines all project-related service interfaces.
type ProjectSvcFacade interface {
	ProjectReaderSvc
	ProjectWriterSvc
}
