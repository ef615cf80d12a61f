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

// transactionHandler handles HTTP requests related to imported transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

// newTransactionHandler creates a new transactionHandler.
func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{
		transactionService: ts,
	}
}

// registerTransactionRoutes registers routes related to imported transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("/import", h.importCSV)
	}
}

// listTransactions godoc
// @Summary List imported transactions
// @Description Retrieves the imported transaction set in statement order, with cardholder names resolved from card suffixes
// @Tags transactions
// @Produce  json
// @Success 200 {object} dto.TransactionListResponse
// @Failure 500 {object} map[string]string "Failed to list transactions"
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	transactions, err := h.transactionService.ListTransactions(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list transactions from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
		return
	}

	c.JSON(http.StatusOK, dto.TransactionListResponse{
		Success:      true,
		Transactions: transactions,
		Count:        len(transactions),
	})
}

// importCSV godoc
// @Summary Import a credit card statement
// @Description Replaces the entire transaction set with the parsed CSV contents, clearing all existing matches and tags
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   statement body dto.ImportCSVRequest true "Raw CSV statement text"
// @Success 200 {object} dto.ImportResponse
// @Failure 400 {object} map[string]string "Invalid or empty CSV"
// @Failure 500 {object} map[string]string "Failed to import transactions"
// @Router /transactions/import [post]
func (h *transactionHandler) importCSV(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ImportCSVRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportCSV", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	summary, err := h.transactionService.ImportCSV(c.Request.Context(), req.CSVData)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Rejected statement import", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to import transactions in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to import transactions"})
		}
		return
	}

	logger.Info("Statement imported successfully",
		slog.Int("transaction_count", summary.TransactionCount),
		slog.Int("cleared_matches", summary.ClearedMatches),
		slog.Int("cleared_tags", summary.ClearedTags),
	)
	c.JSON(http.StatusOK, dto.ImportResponse{
		Success:           true,
		Message:           "Transactions imported successfully",
		TransactionsCount: summary.TransactionCount,
		ClearedMatches:    summary.ClearedMatches,
		ClearedTags:       summary.ClearedTags,
	})
}
