package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/crestbuild/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reimbursementHandler handles HTTP requests related to reimbursements.
type reimbursementHandler struct {
	reimbursementService portssvc.ReimbursementSvcFacade
}

// newReimbursementHandler creates a new reimbursementHandler.
func newReimbursementHandler(rs portssvc.ReimbursementSvcFacade) *reimbursementHandler {
	return &reimbursementHandler{
		reimbursementService: rs,
	}
}

// registerReimbursementRoutes registers routes related to reimbursements.
func registerReimbursementRoutes(rg *gin.RouterGroup, reimbursementService portssvc.ReimbursementSvcFacade) {
	h := newReimbursementHandler(reimbursementService)

	reimbursements := rg.Group("/reimbursements")
	{
		reimbursements.GET("", h.listReimbursements)
		reimbursements.POST("", h.createReimbursement)
	}
}

// listReimbursements godoc
// @Summary List reimbursements
// @Description Retrieves all recorded reimbursements, newest date first
// @Tags reimbursements
// @Produce  json
// @Success 200 {object} dto.ReimbursementListResponse
// @Failure 500 {object} map[string]string "Failed to list reimbursements"
// @Router /reimbursements [get]
func (h *reimbursementHandler) listReimbursements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	reimbursements, err := h.reimbursementService.ListReimbursements(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list reimbursements from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list reimbursements"})
		return
	}

	c.JSON(http.StatusOK, dto.ReimbursementListResponse{
		Success:        true,
		Reimbursements: reimbursements,
	})
}

// createReimbursement godoc
// @Summary Record a reimbursement
// @Description Records a reimbursement paid back to the company
// @Tags reimbursements
// @Accept  json
// @Produce  json
// @Param   reimbursement body dto.CreateReimbursementRequest true "Reimbursement details"
// @Success 201 {object} dto.CreateReimbursementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to record reimbursement"
// @Router /reimbursements [post]
func (h *reimbursementHandler) createReimbursement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateReimbursementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateReimbursement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdReimbursement, err := h.reimbursementService.CreateReimbursement(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error recording reimbursement", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to record reimbursement in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record reimbursement"})
		}
		return
	}

	logger.Info("Reimbursement recorded successfully", slog.Int64("reimbursement_id", createdReimbursement.ID))
	c.JSON(http.StatusCreated, dto.CreateReimbursementResponse{
		Success:       true,
		Reimbursement: *createdReimbursement,
		Message:       "Reimbursement recorded successfully",
	})
}
