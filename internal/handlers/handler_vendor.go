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

// vendorHandler handles HTTP requests related to vendors.
type vendorHandler struct {
	vendorService portssvc.VendorSvcFacade
}

// newVendorHandler creates a new vendorHandler.
func newVendorHandler(vs portssvc.VendorSvcFacade) *vendorHandler {
	return &vendorHandler{
		vendorService: vs,
	}
}

// registerVendorRoutes registers routes related to vendors.
func registerVendorRoutes(rg *gin.RouterGroup, vendorService portssvc.VendorSvcFacade) {
	h := newVendorHandler(vendorService)

	vendors := rg.Group("/vendors")
	{
		vendors.GET("", h.listVendors)
		vendors.POST("", h.createVendor)
	}
}

// listVendors godoc
// @Summary List vendors
// @Description Retrieves vendors, optionally filtered by a case-insensitive name substring
// @Tags vendors
// @Produce  json
// @Param   q query string false "Name substring to filter by"
// @Param   limit query int false "Maximum number of vendors to return" default(10000)
// @Success 200 {object} dto.VendorListResponse
// @Failure 400 {object} map[string]string "Invalid limit"
// @Failure 500 {object} map[string]string "Failed to list vendors"
// @Router /vendors [get]
func (h *vendorHandler) listVendors(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	query := c.Query("q")
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10000"))
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
		return
	}

	vendors, err := h.vendorService.ListVendors(c.Request.Context(), query, limit)
	if err != nil {
		logger.Error("Failed to list vendors from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list vendors"})
		return
	}

	c.JSON(http.StatusOK, dto.VendorListResponse{
		Success: true,
		Vendors: vendors,
		Total:   len(vendors),
		Query:   query,
	})
}

// createVendor godoc
// @Summary Create a new vendor
// @Description Adds a vendor to the roster; names must be unique case-insensitively
// @Tags vendors
// @Accept  json
// @Produce  json
// @Param   vendor body dto.CreateVendorRequest true "Vendor details"
// @Success 201 {object} dto.CreateVendorResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Vendor name already exists"
// @Failure 500 {object} map[string]string "Failed to create vendor"
// @Router /vendors [post]
func (h *vendorHandler) createVendor(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateVendor", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	createdVendor, err := h.vendorService.CreateVendor(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			logger.Warn("Attempted to create duplicate vendor", slog.String("vendor_name", req.Name))
			c.JSON(http.StatusConflict, gin.H{"error": "A vendor with this name already exists"})
		} else if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error creating vendor", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create vendor in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create vendor"})
		}
		return
	}

	logger.Info("Vendor created successfully", slog.String("vendor_id", createdVendor.ID))
	c.JSON(http.StatusCreated, dto.CreateVendorResponse{
		Success: true,
		Vendor:  *createdVendor,
		Message: "Vendor created successfully",
	})
}
