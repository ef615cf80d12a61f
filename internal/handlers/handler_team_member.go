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

// teamMemberHandler handles HTTP requests related to team members.
type teamMemberHandler struct {
	teamMemberService portssvc.TeamMemberSvcFacade
}

// newTeamMemberHandler creates a new teamMemberHandler.
func newTeamMemberHandler(ts portssvc.TeamMemberSvcFacade) *teamMemberHandler {
	return &teamMemberHandler{
		teamMemberService: ts,
	}
}

// registerTeamMemberRoutes registers routes related to team members.
func registerTeamMemberRoutes(rg *gin.RouterGroup, teamMemberService portssvc.TeamMemberSvcFacade) {
	h := newTeamMemberHandler(teamMemberService)

	teamMembers := rg.Group("/team-members")
	{
		teamMembers.GET("", h.listTeamMembers)
		teamMembers.POST("", h.createTeamMember)
	}
}

// listTeamMembers godoc
// @Summary List team members
// @Description Retrieves team members, optionally filtered by a case-insensitive name substring
// @Tags team-members
// @Produce  json
// @Param   q query string false "Name substring to filter by"
// @Param   limit query int false "Maximum number of team members to return" default(10000)
// @Success 200 {object} dto.TeamMemberListResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list team members"
// @Router /team-members [get]
func (h *teamMemberHandler) listTeamMembers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10000"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	teamMembers, err := h.teamMemberService.ListTeamMembers(c.Request.Context(), query, limit)
	if err != nil {
		logger.Error("Failed to list team members from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list team members"})
		return
	}

	c.JSON(http.StatusOK, dto.TeamMemberListResponse{
		Success:     true,
		TeamMembers: teamMembers,
		Total:       len(teamMembers),
		Query:       query,
	})
}

// createTeamMember godoc
// @Summary Create a new team member
// @Description Adds a team member; names must be unique case-insensitively and any card suffix must be exactly four digits and unused
// @Tags team-members
// @Accept  json
// @Produce  json
// @Param   teamMember body dto.CreateTeamMemberRequest true "Team member details"
// @Success 201 {object} dto.CreateTeamMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Name or card suffix already in use"
// @Failure 500 {object} map[string]string "Failed to create team member"
// @Router /team-members [post]
func (h *teamMemberHandler) createTeamMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTeamMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdMember, err := h.teamMemberService.CreateTeamMember(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create conflicting team member", slog.String("member_name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating team member", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create team member in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create team member"})
		}
		return
	}

	logger.Info("Team member created successfully", slog.String("member_id", createdMember.ID))
	c.JSON(http.StatusCreated, dto.CreateTeamMemberResponse{
		Success:    true,
		TeamMember: *createdMember,
		Message:    "Team member created successfully",
	})
}
