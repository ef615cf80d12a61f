package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/crestbuild/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// projectHandler handles HTTP requests related to projects.
type projectHandler struct {
	projectService portssvc.ProjectSvcFacade
}

// newProjectHandler creates a new projectHandler.
func newProjectHandler(ps portssvc.ProjectSvcFacade) *projectHandler {
	return &projectHandler{
		projectService: ps,
	}
}

// registerProjectRoutes registers routes related to projects.
func registerProjectRoutes(rg *gin.RouterGroup, projectService portssvc.ProjectSvcFacade) {
	h := newProjectHandler(projectService)

	projects := rg.Group("/projects")
	{
		projects.GET("", h.listProjects)
		projects.POST("", h.createProject)
	}
}

// listProjects godoc
// @Summary List projects
// @Description Retrieves projects, optionally filtered by a case-insensitive name substring
// @Tags projects
// @Produce  json
// @Param   q query string false "Name substring to filter by"
// @Param   limit query int false "Maximum number of projects to return" default(10000)
// @Success 200 {object} dto.ProjectListResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list projects"
// @Router /projects [get]
func (h *projectHandler) listProjects(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10000"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	projects, err := h.projectService.ListProjects(c.Request.Context(), query, limit)
	if err != nil {
		logger.Error("Failed to list projects from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list projects"})
		return
	}

	c.JSON(http.StatusOK, dto.ProjectListResponse{
		Success:  true,
		Projects: projects,
		Total:    len(projects),
		Query:    query,
	})
}

// createProject godoc
// @Summary Create a new project
// @Description Adds a project; names must be unique case-insensitively and the builders fee must lie in [0,100]
// @Tags projects
// @Accept  json
// @Produce  json
// @Param   project body dto.CreateProjectRequest true "Project details"
// @Success 201 {object} dto.CreateProjectResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Project name already exists"
// @Failure 500 {object} map[string]string "Failed to create project"
// @Router /projects [post]
func (h *projectHandler) createProject(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateProject", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdProject, err := h.projectService.CreateProject(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate project", slog.String("project_name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "A project with this name already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating project", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create project in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create project"})
		}
		return
	}

	logger.Info("Project created successfully", slog.String("project_id", createdProject.ID))
	c.JSON(http.StatusCreated, dto.CreateProjectResponse{
		Success: true,
		Project: *createdProject,
		Message: "Project created successfully",
	})
}
