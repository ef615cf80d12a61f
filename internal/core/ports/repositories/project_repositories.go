package repositories

import (
	"context"

	"github.com/crestbuild/ops_backend/internal/core/domain"
)

// ProjectReader defines read operations for project data.
type ProjectReader interface {
	// ListProjects retrieves every project, ordered by name.
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

// ProjectWriter defines write operations for project data.
type ProjectWriter interface {
	// ReplaceProjects atomically replaces the whole project table.
	ReplaceProjects(ctx context.Context, projects []domain.Project) error
}

// ProjectRepositoryFacade combines all project-related repository interfaces.
type ProjectRepositoryFacade interface {
	ProjectReader
	ProjectWriter
}
