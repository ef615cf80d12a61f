package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/crestbuild/ops_backend/internal/apperrors"
	"github.com/crestbuild/ops_backend/internal/core/domain"
	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/crestbuild/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// matchHandler handles HTTP requests related to manual file matches.
type matchHandler struct {
	matchService portssvc.MatchSvcFacade
}

// newMatchHandler creates a new matchHandler.
func newMatchHandler(ms portssvc.MatchSvcFacade) *matchHandler {
	return &matchHandler{
		matchService: ms,
	}
}

// registerMatchRoutes registers routes related to manual matches.
func registerMatchRoutes(rg *gin.RouterGroup, matchService portssvc.MatchSvcFacade) {
	h := newMatchHandler(matchService)

	matches := rg.Group("/matches")
	{
		matches.GET("", h.listMatches)
		matches.POST("", h.setMatch)
	}
}

// listMatches godoc
// @Summary List manual matches
// @Description Retrieves the full filename to transaction index mapping
// @Tags matches
// @Produce  json
// @Success 200 {object} dto.MatchListResponse
// @Failure 500 {object} map[string]string "Failed to list matches"
// @Router /matches [get]
func (h *matchHandler) listMatches(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	matches, err := h.matchService.ListMatches(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list matches from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list matches"})
		return
	}

	c.JSON(http.StatusOK, dto.MatchListResponse{
		Success: true,
		Matches: matches,
	})
}

// setMatch godoc
// @Summary Set or clear a manual match
// @Description Associates an uploaded file with a transaction index, or clears the association when the index is -1. Conflicting assignments are rejected with 409 unless force is set.
// @Tags matches
// @Accept  json
// @Produce  json
// @Param   match body dto.SetMatchRequest true "Match details"
// @Success 200 {object} dto.MatchMutationResponse
// @Failure 400 {object} map[string]string "Invalid input or transaction index out of range"
// @Failure 409 {object} map[string]string "Transaction or file already matched"
// @Failure 500 {object} map[string]string "Failed to save match"
// @Router /matches [post]
func (h *matchHandler) setMatch(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SetMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetMatch", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	transactionIndex := *req.TransactionIndex
	err := h.matchService.SetMatch(c.Request.Context(), req.Filename, transactionIndex, req.Force)
	if err != nil {
		var txnConflict *apperrors.TransactionConflictError
		var fileConflict *apperrors.FileConflictError
		switch {
		case errors.As(err, &txnConflict):
			logger.Warn("Rejected match: transaction already assigned",
				slog.String("filename", req.Filename),
				slog.String("conflict_file", txnConflict.ConflictFile),
				slog.Int("transaction_index", txnConflict.TransactionIndex),
			)
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"code":    "duplicate_transaction",
				"error": fmt.Sprintf("Transaction %q is already assigned to file %q",
					conflictLabel(txnConflict.Vendor, txnConflict.Amount), txnConflict.ConflictFile),
			})
		case errors.As(err, &fileConflict):
			logger.Warn("Rejected match: file already matched",
				slog.String("filename", req.Filename),
				slog.Int("transaction_index", fileConflict.TransactionIndex),
			)
			c.JSON(http.StatusConflict, gin.H{
				"success": false,
				"code":    "duplicate_file",
				"error": fmt.Sprintf("File %q is already matched to transaction %q",
					fileConflict.Filename, conflictLabel(fileConflict.Vendor, fileConflict.Amount)),
			})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error setting match", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to set match in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save match"})
		}
		return
	}

	message := "Match created successfully"
	if transactionIndex == domain.ClearMatchIndex {
		message = "Match cleared successfully"
	}
	logger.Info(message, slog.String("filename", req.Filename), slog.Int("transaction_index", transactionIndex))
	c.JSON(http.StatusOK, dto.MatchMutationResponse{
		Success: true,
		Message: message,
	})
}

// conflictLabel renders a transaction for a conflict message, e.g.
// `Acme Lumber - $123.45`. Missing details fall back to placeholders so the
// message never renders blank.
func conflictLabel(vendor, amount string) string {
	if vendor == "" {
		vendor = "Unknown"
	}
	if amount == "" {
		amount = "0"
	}
	return fmt.Sprintf("%s - $%s", vendor, amount)
}
