package dto

import "github.com/crestbuild/ops_backend/internal/core/domain"

// CreateProjectRequest defines the data needed to create a new project.
type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description *string  `json:"description"`
	Client      *string  `json:"client"`
	Status      *string  `json:"status"`
	StartDate   *string  `json:"start_date"`
	EndDate     *string  `json:"end_date"`
	BuildersFee *float64 `json:"builders_fee"` // percentage, validated to [0,100]
}

// ProjectListResponse is the envelope returned by the project list endpoint.
type ProjectListResponse struct {
	Success  bool             `json:"success"`
	Projects []domain.Project `json:"projects"`
	Total    int              `json:"total"`
	Query    string           `json:"query"`
}

// CreateProjectResponse is the envelope returned after creating a project.
type CreateProjectResponse struct {
	Success bool           `json:"success"`
	Project domain.Project `json:"project"`
	Message string         `json:"message"`
}
