package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/crestbuild/ops_backend/internal/core/ports/services"
	"github.com/crestbuild/ops_backend/internal/dto"
	"github.com/crestbuild/ops_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tagHandler handles HTTP requests related to transaction tags.
type tagHandler struct {
	tagService portssvc.TagSvcFacade
}

// newTagHandler creates a new tagHandler.
func newTagHandler(ts portssvc.TagSvcFacade) *tagHandler {
	return &tagHandler{
		tagService: ts,
	}
}

// registerTagRoutes registers routes related to transaction tags.
func registerTagRoutes(rg *gin.RouterGroup, tagService portssvc.TagSvcFacade) {
	h := newTagHandler(tagService)

	tags := rg.Group("/transaction-tags")
	{
		tags.GET("", h.listTags)
		tags.POST("", h.replaceTags)
	}
}

// listTags godoc
// @Summary List transaction tags
// @Description Retrieves the full transaction index to tag list mapping
// @Tags transaction-tags
// @Produce  json
// @Success 200 {object} dto.TagListResponse
// @Failure 500 {object} map[string]string "Failed to list tags"
// @Router /transaction-tags [get]
func (h *tagHandler) listTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	tags, err := h.tagService.ListTags(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list tags from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tags"})
		return
	}

	c.JSON(http.StatusOK, dto.TagListResponse{
		Success: true,
		Tags:    tags,
	})
}

// replaceTags godoc
// @Summary Replace transaction tags
// @Description Wholesale replaces the transaction index to tag list mapping
// @Tags transaction-tags
// @Accept  json
// @Produce  json
// @Param   tags body dto.ReplaceTagsRequest true "Full tag mapping"
// @Success 200 {object} dto.ReplaceTagsResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to save tags"
// @Router /transaction-tags [post]
func (h *tagHandler) replaceTags(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ReplaceTagsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ReplaceTags", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.tagService.ReplaceTags(c.Request.Context(), req.Tags); err != nil {
		logger.Error("Failed to replace tags in service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tags"})
		return
	}

	logger.Info("Tags replaced successfully", slog.Int("entry_count", len(req.Tags)))
	c.JSON(http.StatusOK, dto.ReplaceTagsResponse{
		Success: true,
		Message: "Tags saved successfully",
	})
}
